package media

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// UploadRelay re-hosts a local artifact through the platform's file
// upload so the resulting attachment URL outlives the temp file.
type UploadRelay struct {
	msgr Messenger
}

// NewUploadRelay creates a relay posting through msgr.
func NewUploadRelay(msgr Messenger) *UploadRelay {
	return &UploadRelay{msgr: msgr}
}

// Upload posts the artifact to channelID and returns the durable
// attachment URL. Unless keep is set, the relay message is deleted as
// soon as the URL is captured; it is a mechanism, not content.
func (r *UploadRelay) Upload(channelID, path string, keep bool) (string, *TaskError) {
	f, err := os.Open(path)
	if err != nil {
		return "", NewTaskError(UploadFailed, fmt.Errorf("opening artifact: %w", err))
	}
	defer f.Close()

	msg, err := r.msgr.ChannelFileSend(channelID, filepath.Base(path), f)
	if err != nil {
		return "", NewTaskError(UploadFailed, fmt.Errorf("uploading artifact: %w", err))
	}

	if len(msg.Attachments) == 0 {
		return "", NewTaskError(UploadFailed, fmt.Errorf("upload response carried no attachment"))
	}
	url := msg.Attachments[0].URL

	if !keep {
		if err := r.msgr.ChannelMessageDelete(channelID, msg.ID); err != nil {
			// The URL is already captured; a leftover relay message is
			// cosmetic, not a task failure.
			log.Printf("Failed to delete relay message %s: %v", msg.ID, err)
		}
	}

	return url, nil
}
