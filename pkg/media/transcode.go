package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep/mp3"
)

// TranscodeExecutor wraps the external tools that produce a local audio
// artifact: ffmpeg for video attachments and yt-dlp for hosted links.
// Both are treated as opaque synchronous invocations with an exit status.
type TranscodeExecutor struct {
	FFmpegPath string
	YtdlpPath  string
	TempDir    string

	// Timeout bounds a single tool invocation. Zero means unbounded,
	// which is the default: a long transcode runs to completion.
	Timeout time.Duration

	client *http.Client
}

// NewTranscodeExecutor creates an executor writing artifacts under tempDir.
func NewTranscodeExecutor(tempDir string, timeout time.Duration) *TranscodeExecutor {
	return &TranscodeExecutor{
		FFmpegPath: "ffmpeg",
		YtdlpPath:  "yt-dlp",
		TempDir:    tempDir,
		Timeout:    timeout,
		client:     &http.Client{},
	}
}

// ExtractAttachment downloads a video attachment and extracts its audio
// track to an MP3 artifact. Both the downloaded input and the artifact
// are recorded on the task for cleanup.
func (e *TranscodeExecutor) ExtractAttachment(ctx context.Context, task *MediaTask) (string, *TaskError) {
	inputPath := filepath.Join(e.TempDir, task.ID+strings.ToLower(filepath.Ext(task.FileName)))
	task.AddTempFile(inputPath)

	if err := e.download(ctx, task.SourceURL, inputPath); err != nil {
		return "", NewTaskError(DownloadFailed, err)
	}

	outputPath := filepath.Join(e.TempDir, task.ID+".mp3")
	task.AddTempFile(outputPath)

	log.Printf("Transcoding %s (task %s)", task.FileName, task.ID)
	args := []string{
		"-y",
		"-i", inputPath,
		"-vn",
		"-acodec", "libmp3lame",
		"-q:a", "2",
		outputPath,
	}
	if taskErr := e.run(ctx, e.FFmpegPath, args); taskErr != nil {
		return "", taskErr
	}

	return outputPath, nil
}

// ExtractLink invokes yt-dlp against a resolved URL with a fixed output
// template keyed on the task ID, so concurrent extractions never collide.
func (e *TranscodeExecutor) ExtractLink(ctx context.Context, task *MediaTask, sourceURL string) (string, *TaskError) {
	template := filepath.Join(e.TempDir, task.ID+".%(ext)s")
	outputPath := filepath.Join(e.TempDir, task.ID+".mp3")
	task.AddTempFile(outputPath)

	log.Printf("Extracting audio from %s (task %s)", sourceURL, task.ID)
	args := []string{
		"--no-playlist",
		"--no-warnings",
		"-x",
		"--audio-format", "mp3",
		"-o", template,
		sourceURL,
	}
	if taskErr := e.run(ctx, e.YtdlpPath, args); taskErr != nil {
		return "", taskErr
	}

	if _, err := os.Stat(outputPath); err != nil {
		return "", NewTaskError(ExternalToolFailed, fmt.Errorf("extractor produced no artifact: %w", err))
	}

	return outputPath, nil
}

// run executes an external tool and classifies the failure. Stderr is
// captured so the error notification can show the tool's own message.
func (e *TranscodeExecutor) run(ctx context.Context, name string, args []string) *TaskError {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return NewTaskError(Timeout, fmt.Errorf("%s timed out after %v", name, e.Timeout))
		}
		return NewTaskError(ExternalToolFailed, fmt.Errorf("%s: %v: %s", name, err, lastLine(stderr.String())))
	}

	return nil
}

// download fetches a remote attachment to a local path.
func (e *TranscodeExecutor) download(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating local file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(path)
		return fmt.Errorf("writing local file: %w", err)
	}

	return nil
}

// ProbeDuration decodes an MP3 artifact and returns its play time.
// Best effort; a zero duration just leaves the field out of the embed.
func ProbeDuration(path string) time.Duration {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return 0
	}
	// Closing the streamer closes the underlying file.
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len())
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
