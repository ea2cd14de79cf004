package media

import (
	"fmt"
	"io"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// fakeMessenger records every gateway call so tests can assert on the
// exact sequence of status and relay messages.
type fakeMessenger struct {
	mu     sync.Mutex
	nextID int

	sends   []sentEmbed
	edits   []editedEmbed
	files   []sentFile
	deletes []deletedMessage

	fileURL string
	sendErr error
	fileErr error
}

type sentEmbed struct {
	channelID string
	embed     *discordgo.MessageEmbed
}

type editedEmbed struct {
	channelID string
	messageID string
	embed     *discordgo.MessageEmbed
}

type sentFile struct {
	channelID string
	name      string
	messageID string
}

type deletedMessage struct {
	channelID string
	messageID string
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{fileURL: "https://cdn.example.com/durable/artifact.mp3"}
}

func (f *fakeMessenger) newMessageID() string {
	f.nextID++
	return fmt.Sprintf("msg-%d", f.nextID)
}

func (f *fakeMessenger) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sends = append(f.sends, sentEmbed{channelID: channelID, embed: embed})
	return &discordgo.Message{ID: f.newMessageID(), ChannelID: channelID}, nil
}

func (f *fakeMessenger) ChannelMessageEditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, editedEmbed{channelID: channelID, messageID: messageID, embed: embed})
	return &discordgo.Message{ID: messageID, ChannelID: channelID}, nil
}

func (f *fakeMessenger) ChannelFileSend(channelID, name string, r io.Reader, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fileErr != nil {
		return nil, f.fileErr
	}
	id := f.newMessageID()
	f.files = append(f.files, sentFile{channelID: channelID, name: name, messageID: id})
	return &discordgo.Message{
		ID:        id,
		ChannelID: channelID,
		Attachments: []*discordgo.MessageAttachment{
			{URL: f.fileURL, Filename: name},
		},
	}, nil
}

func (f *fakeMessenger) ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, deletedMessage{channelID: channelID, messageID: messageID})
	return nil
}

func (f *fakeMessenger) sentEmbeds() []sentEmbed {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentEmbed{}, f.sends...)
}

func (f *fakeMessenger) editedEmbeds() []editedEmbed {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]editedEmbed{}, f.edits...)
}

func (f *fakeMessenger) sentFiles() []sentFile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentFile{}, f.files...)
}

func (f *fakeMessenger) deletedMessages() []deletedMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]deletedMessage{}, f.deletes...)
}

// fakeConfig is a minimal guild config read side for classifier tests.
type fakeConfig struct {
	activeGuilds map[string]bool
}

func (f *fakeConfig) Active(guildID string) bool {
	return f.activeGuilds[guildID]
}
