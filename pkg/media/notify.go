package media

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
)

// StatusState tracks the lifecycle of a task's status message.
type StatusState int

const (
	StatusIdle StatusState = iota
	StatusPending
	StatusSuccess
	StatusError
)

func (s StatusState) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

const embedFooter = "Audio Link Bot"

// StatusNotifier manages the single status message for one task,
// transitioning it pending -> success | error. Once terminal it refuses
// further transitions, so a task can never double-report.
type StatusNotifier struct {
	msgr      Messenger
	channelID string
	messageID string
	state     StatusState
}

// NewStatusNotifier creates a notifier posting into channelID.
func NewStatusNotifier(msgr Messenger, channelID string) *StatusNotifier {
	return &StatusNotifier{msgr: msgr, channelID: channelID}
}

// State returns the current notification state.
func (n *StatusNotifier) State() StatusState {
	return n.state
}

// Pending posts the "please wait" message and remembers it for in-place
// edits on the terminal transition.
func (n *StatusNotifier) Pending(task *MediaTask) {
	if n.state != StatusIdle {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "⏳ Processing Media",
		Description: pendingDescription(task),
		Color:       0x7289DA,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: embedFooter,
		},
	}

	msg, err := n.msgr.ChannelMessageSendEmbed(n.channelID, embed)
	if err != nil {
		log.Printf("Failed to post status message for task %s: %v", task.ID, err)
		return
	}
	n.messageID = msg.ID
	n.state = StatusPending
}

// Success renders the durable URL twice: once inside a code block so
// desktop users can copy it, once as plain text so mobile users can hold
// to copy. Both fields carry the identical URL.
func (n *StatusNotifier) Success(title, description, url string, duration time.Duration) {
	if n.state == StatusSuccess || n.state == StatusError {
		return
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:  "***FOR PC***",
			Value: fmt.Sprintf("```%s```", url),
		},
		{
			Name:  "***FOR MOBILE (HOLD TO COPY):***",
			Value: url,
		},
	}
	if duration > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "⏱️ Duration",
			Value:  duration.Round(time.Second).String(),
			Inline: true,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       0x7289DA,
		Timestamp:   time.Now().Format(time.RFC3339),
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: embedFooter,
		},
	}

	n.deliver(embed)
	n.state = StatusSuccess
}

// Fail transitions the status message to its terminal error state,
// showing the failure reason verbatim.
func (n *StatusNotifier) Fail(reason string) {
	if n.state == StatusSuccess || n.state == StatusError {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "❌ Extraction Failed",
		Description: reason,
		Color:       0xff0000,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: embedFooter,
		},
	}

	n.deliver(embed)
	n.state = StatusError
}

// deliver edits the pending message in place when one exists, otherwise
// posts a fresh message (the plain-audio fast path never goes pending).
func (n *StatusNotifier) deliver(embed *discordgo.MessageEmbed) {
	if n.state == StatusPending && n.messageID != "" {
		if _, err := n.msgr.ChannelMessageEditEmbed(n.channelID, n.messageID, embed); err != nil {
			log.Printf("Failed to edit status message %s: %v", n.messageID, err)
		}
		return
	}

	msg, err := n.msgr.ChannelMessageSendEmbed(n.channelID, embed)
	if err != nil {
		log.Printf("Failed to post status message: %v", err)
		return
	}
	n.messageID = msg.ID
}

func pendingDescription(task *MediaTask) string {
	switch task.Kind {
	case KindAttachmentVideo:
		return fmt.Sprintf("Extracting audio from **%s**, please wait...", task.FileName)
	case KindExternalLink:
		return "Extracting audio from the linked media, please wait..."
	default:
		return "Processing, please wait..."
	}
}
