package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingTask() *MediaTask {
	return &MediaTask{
		ID:        "task-1",
		Kind:      KindAttachmentVideo,
		FileName:  "clip.mp4",
		GuildID:   "guild-1",
		ChannelID: "chan-1",
	}
}

func TestNotifierPendingToSuccess(t *testing.T) {
	msgr := newFakeMessenger()
	n := NewStatusNotifier(msgr, "chan-1")

	n.Pending(pendingTask())
	require.Equal(t, StatusPending, n.State())
	require.Len(t, msgr.sentEmbeds(), 1)
	assert.Equal(t, "⏳ Processing Media", msgr.sentEmbeds()[0].embed.Title)

	url := "https://cdn.example.com/durable/out.mp3"
	n.Success("🎵 Audio Extracted", "desc", url, 90*time.Second)

	assert.Equal(t, StatusSuccess, n.State())
	// Terminal state is an in-place edit of the pending message, not a
	// second message.
	require.Len(t, msgr.sentEmbeds(), 1)
	edits := msgr.editedEmbeds()
	require.Len(t, edits, 1)
	assert.Equal(t, "msg-1", edits[0].messageID)

	embed := edits[0].embed
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "```"+url+"```", embed.Fields[0].Value)
	assert.Equal(t, url, embed.Fields[1].Value)
	assert.Equal(t, "1m30s", embed.Fields[2].Value)
}

func TestNotifierURLFieldsCarryIdenticalURL(t *testing.T) {
	msgr := newFakeMessenger()
	n := NewStatusNotifier(msgr, "chan-1")

	url := "https://cdn.example.com/a/b/c.mp3?ex=123&sig=abc"
	n.Success("🎵 Audio File Detected", "desc", url, 0)

	embeds := msgr.sentEmbeds()
	require.Len(t, embeds, 1)
	fields := embeds[0].embed.Fields
	require.Len(t, fields, 2)

	verbatim := fields[0].Value
	plain := fields[1].Value
	assert.Equal(t, "```"+plain+"```", verbatim)
	assert.Equal(t, url, plain)
}

func TestNotifierPendingToError(t *testing.T) {
	msgr := newFakeMessenger()
	n := NewStatusNotifier(msgr, "chan-1")

	n.Pending(pendingTask())
	n.Fail("external tool failed: yt-dlp: exit status 1")

	assert.Equal(t, StatusError, n.State())
	edits := msgr.editedEmbeds()
	require.Len(t, edits, 1)
	assert.Equal(t, "❌ Extraction Failed", edits[0].embed.Title)
	assert.Equal(t, "external tool failed: yt-dlp: exit status 1", edits[0].embed.Description)
}

func TestNotifierTerminalStatesAreFinal(t *testing.T) {
	msgr := newFakeMessenger()
	n := NewStatusNotifier(msgr, "chan-1")

	n.Pending(pendingTask())
	n.Success("🎵 Audio Extracted", "desc", "https://cdn.example.com/out.mp3", 0)
	n.Fail("too late")
	n.Success("🎵 Audio Extracted", "desc", "https://cdn.example.com/other.mp3", 0)

	assert.Equal(t, StatusSuccess, n.State())
	assert.Len(t, msgr.sentEmbeds(), 1)
	assert.Len(t, msgr.editedEmbeds(), 1)
}

func TestNotifierDirectSuccessSkipsPending(t *testing.T) {
	msgr := newFakeMessenger()
	n := NewStatusNotifier(msgr, "chan-1")

	n.Success("🎵 Audio File Detected", "desc", "https://cdn.example.com/song.mp3", 0)

	assert.Equal(t, StatusSuccess, n.State())
	assert.Len(t, msgr.sentEmbeds(), 1)
	assert.Empty(t, msgr.editedEmbeds())
}

func TestNotifierSecondPendingIgnored(t *testing.T) {
	msgr := newFakeMessenger()
	n := NewStatusNotifier(msgr, "chan-1")

	n.Pending(pendingTask())
	n.Pending(pendingTask())

	assert.Len(t, msgr.sentEmbeds(), 1)
}
