package media

import (
	"io"

	"github.com/bwmarrin/discordgo"
)

// Messenger is the narrow slice of the chat session the pipeline needs:
// send and edit embeds, upload a file, delete a message. Method names
// match *discordgo.Session so the live session satisfies it directly and
// tests can substitute a fake.
type Messenger interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelFileSend(channelID, name string, r io.Reader, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}
