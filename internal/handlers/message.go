package handlers

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/audiolink/audiolink/pkg/media"
)

// MessageHandler feeds inbound messages through the classifier and
// dispatches one pipeline task per detected media reference.
type MessageHandler struct {
	Classifier *media.Classifier
	Pipeline   *media.Pipeline
}

// Handle is registered on the gateway session for MessageCreate events.
func (h *MessageHandler) Handle(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore all messages created by the bot itself
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	msg := media.Message{
		ID:        m.ID,
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		AuthorBot: m.Author.Bot,
		Content:   m.Content,
	}
	for _, att := range m.Attachments {
		msg.Attachments = append(msg.Attachments, media.Attachment{
			Filename: att.Filename,
			URL:      att.URL,
			Size:     int64(att.Size),
		})
	}

	tasks := h.Classifier.Classify(msg)
	if len(tasks) == 0 {
		return
	}

	log.Printf("Detected %d media reference(s) in message %s", len(tasks), m.ID)
	h.Pipeline.Dispatch(context.Background(), tasks)
}
