package media

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"
)

// LinkMetadata describes the hosted media behind an external link, used
// to flesh out the success notification.
type LinkMetadata struct {
	Title    string
	Duration time.Duration
}

// LookupLinkMetadata fetches title and duration for YouTube links. Other
// hosts, and any lookup failure, yield empty metadata; the notification
// just falls back to the URL itself.
func LookupLinkMetadata(ctx context.Context, sourceURL string) LinkMetadata {
	if !strings.Contains(sourceURL, "youtube.com") && !strings.Contains(sourceURL, "youtu.be") {
		return LinkMetadata{}
	}

	client := youtube.Client{}
	video, err := client.GetVideoContext(ctx, sourceURL)
	if err != nil {
		log.Printf("Metadata lookup failed for %s: %v", sourceURL, err)
		return LinkMetadata{}
	}

	return LinkMetadata{
		Title:    video.Title,
		Duration: video.Duration,
	}
}
