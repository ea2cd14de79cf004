package media

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/samber/mo"

	"github.com/audiolink/audiolink/pkg/metrics"
)

// Extractor produces a local audio artifact for a task.
type Extractor interface {
	ExtractAttachment(ctx context.Context, task *MediaTask) (string, *TaskError)
	ExtractLink(ctx context.Context, task *MediaTask, sourceURL string) (string, *TaskError)
}

// Resolver canonicalizes an external link before extraction.
type Resolver interface {
	Resolve(ctx context.Context, rawURL string) string
}

// Uploader re-hosts a local artifact and returns a durable URL.
type Uploader interface {
	Upload(channelID, path string, keep bool) (string, *TaskError)
}

// TargetChannelReader is the pipeline's read view of the guild store.
type TargetChannelReader interface {
	TargetChannel(guildID string) mo.Option[string]
}

// RetentionPolicy controls whether the relay message is left in place
// after its URL is captured. The defaults mirror the original behavior:
// link extractions keep their artifact message as the deliverable, video
// extractions delete it. Flagged for product clarification, hence
// configurable rather than unified.
type RetentionPolicy struct {
	KeepLinkRelay  bool
	KeepVideoRelay bool
}

// DefaultRetention returns the source-faithful retention policy.
func DefaultRetention() RetentionPolicy {
	return RetentionPolicy{KeepLinkRelay: true}
}

// Pipeline orchestrates one task end to end: resolve, extract, relay,
// notify, clean up. Tasks are fully independent; a failure in one never
// reaches another.
type Pipeline struct {
	Store     TargetChannelReader
	Messenger Messenger
	Resolver  Resolver
	Extractor Extractor
	Uploader  Uploader
	Metrics   *metrics.Collector
	Retention RetentionPolicy

	// Overridable in tests; both are best-effort lookups.
	LookupMetadata func(ctx context.Context, sourceURL string) LinkMetadata
	ProbeDuration  func(path string) time.Duration
}

// NewPipeline wires a pipeline from its collaborators with default
// metadata and duration probes.
func NewPipeline(store TargetChannelReader, msgr Messenger, resolver Resolver, extractor Extractor, uploader Uploader, collector *metrics.Collector, retention RetentionPolicy) *Pipeline {
	return &Pipeline{
		Store:          store,
		Messenger:      msgr,
		Resolver:       resolver,
		Extractor:      extractor,
		Uploader:       uploader,
		Metrics:        collector,
		Retention:      retention,
		LookupMetadata: LookupLinkMetadata,
		ProbeDuration:  ProbeDuration,
	}
}

// Dispatch spawns one goroutine per task. There is deliberately no
// concurrency ceiling: every detected media reference gets its own task.
func (p *Pipeline) Dispatch(ctx context.Context, tasks []*MediaTask) {
	for _, task := range tasks {
		go p.Run(ctx, task)
	}
}

// Run executes a single task to completion. Temp files are released on
// every exit path, including faults inside the external tools.
func (p *Pipeline) Run(ctx context.Context, task *MediaTask) {
	p.Metrics.TaskStarted()
	defer task.Cleanup()

	log.Printf("Task %s started: %s in guild %s", task.ID, task.Kind, task.GuildID)

	notifier := NewStatusNotifier(p.Messenger, task.ChannelID)

	// Plain audio attachments need no processing; the attachment URL is
	// already durable, so skip straight to a single success message.
	if task.Kind == KindAttachmentAudio {
		notifier.Success(
			"🎵 Audio File Detected",
			fmt.Sprintf("**File name:** %s\n📥 **Link:**", task.FileName),
			task.SourceURL,
			0,
		)
		p.Metrics.TaskSucceeded()
		log.Printf("Task %s completed (direct link)", task.ID)
		return
	}

	notifier.Pending(task)

	artifact, taskErr := p.extract(ctx, task)
	if taskErr != nil {
		p.fail(notifier, task, taskErr)
		return
	}

	destChannel := p.Store.TargetChannel(task.GuildID).OrElse(task.ChannelID)
	keep := p.keepRelay(task.Kind)

	url, taskErr := p.Uploader.Upload(destChannel, artifact, keep)
	if taskErr != nil {
		p.fail(notifier, task, taskErr)
		return
	}

	title, description, duration := p.describe(ctx, task, artifact)
	notifier.Success(title, description, url, duration)
	p.Metrics.TaskSucceeded()
	log.Printf("Task %s completed: %s", task.ID, url)
}

func (p *Pipeline) extract(ctx context.Context, task *MediaTask) (string, *TaskError) {
	switch task.Kind {
	case KindAttachmentVideo:
		return p.Extractor.ExtractAttachment(ctx, task)
	case KindExternalLink:
		resolved := p.Resolver.Resolve(ctx, task.SourceURL)
		return p.Extractor.ExtractLink(ctx, task, resolved)
	default:
		return "", NewTaskError(ExternalToolFailed, fmt.Errorf("no extraction path for %s task", task.Kind))
	}
}

func (p *Pipeline) fail(notifier *StatusNotifier, task *MediaTask, taskErr *TaskError) {
	log.Printf("Task %s failed: %v", task.ID, taskErr)
	notifier.Fail(taskErr.Error())
	p.Metrics.TaskFailed(taskErr.Kind.String())
}

func (p *Pipeline) keepRelay(kind TaskKind) bool {
	switch kind {
	case KindExternalLink:
		return p.Retention.KeepLinkRelay
	case KindAttachmentVideo:
		return p.Retention.KeepVideoRelay
	default:
		return false
	}
}

func (p *Pipeline) describe(ctx context.Context, task *MediaTask, artifact string) (title, description string, duration time.Duration) {
	duration = p.ProbeDuration(artifact)

	switch task.Kind {
	case KindAttachmentVideo:
		return "🎵 Audio Extracted",
			fmt.Sprintf("**File name:** %s\n📥 **Link:**", task.FileName),
			duration
	case KindExternalLink:
		meta := p.LookupMetadata(ctx, task.SourceURL)
		if meta.Duration > 0 && duration == 0 {
			duration = meta.Duration
		}
		source := task.SourceURL
		if meta.Title != "" {
			source = meta.Title
		}
		return "🎵 Audio Extracted",
			fmt.Sprintf("**Source:** %s\n📥 **Link:**", source),
			duration
	default:
		return "🎵 Audio Extracted", "📥 **Link:**", duration
	}
}
