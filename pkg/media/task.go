package media

import (
	"log"
	"os"

	"github.com/google/uuid"
)

// TaskKind classifies a detected media reference.
type TaskKind int

const (
	KindAttachmentAudio TaskKind = iota
	KindAttachmentVideo
	KindExternalLink
)

func (k TaskKind) String() string {
	switch k {
	case KindAttachmentAudio:
		return "attachment-audio"
	case KindAttachmentVideo:
		return "attachment-video"
	case KindExternalLink:
		return "external-link"
	default:
		return "unknown"
	}
}

// FailureKind categorizes pipeline failures surfaced to the user.
type FailureKind int

const (
	DownloadFailed FailureKind = iota
	ExternalToolFailed
	UploadFailed
	Timeout
)

func (k FailureKind) String() string {
	switch k {
	case DownloadFailed:
		return "download failed"
	case ExternalToolFailed:
		return "external tool failed"
	case UploadFailed:
		return "upload failed"
	case Timeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// TaskError is a classified pipeline failure. It is caught at the task
// boundary and rendered into the error notification; it never propagates
// to sibling tasks or the gateway.
type TaskError struct {
	Kind FailureKind
	Err  error
}

func (e *TaskError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// NewTaskError creates a classified task error.
func NewTaskError(kind FailureKind, err error) *TaskError {
	return &TaskError{Kind: kind, Err: err}
}

// Attachment is the narrow view of a message attachment the pipeline needs.
type Attachment struct {
	Filename string
	URL      string
	Size     int64
}

// Message is the narrow view of an inbound gateway message event.
type Message struct {
	ID        string
	GuildID   string
	ChannelID string
	AuthorBot bool
	Content   string

	Attachments []Attachment
}

// MediaTask is one unit of pipeline work, created per detected media
// reference. Tasks are independent; nothing on a task is shared across
// goroutines.
type MediaTask struct {
	ID   string
	Kind TaskKind

	// FileName and SourceURL describe the attachment for attachment
	// kinds; for external links SourceURL holds the raw token and
	// FileName is empty.
	FileName  string
	SourceURL string

	GuildID   string
	ChannelID string
	MessageID string

	tempFiles []string
}

// NewMediaTask creates a task with a fresh ID. The ID feeds the local
// artifact naming template so concurrent tasks never collide on disk.
func NewMediaTask(kind TaskKind, msg Message) *MediaTask {
	return &MediaTask{
		ID:        uuid.New().String(),
		Kind:      kind,
		GuildID:   msg.GuildID,
		ChannelID: msg.ChannelID,
		MessageID: msg.ID,
	}
}

// AddTempFile records a local path for cleanup at task end.
func (t *MediaTask) AddTempFile(path string) {
	t.tempFiles = append(t.tempFiles, path)
}

// TempFiles returns the recorded local paths, oldest first.
func (t *MediaTask) TempFiles() []string {
	return t.tempFiles
}

// Cleanup removes every recorded temp file. It runs on every pipeline
// exit path; missing files are not an error.
func (t *MediaTask) Cleanup() {
	for _, path := range t.tempFiles {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to remove temp file %s: %v", path, err)
		}
	}
	t.tempFiles = nil
}
