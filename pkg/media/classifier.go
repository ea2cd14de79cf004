package media

import (
	"path/filepath"
	"strings"
)

// Extension sets for attachment classification. Matching is
// case-insensitive on the filename extension; anything outside both sets
// is ignored without producing a task.
var (
	audioExtensions = []string{".mp3", ".wav", ".ogg", ".flac", ".m4a", ".aac", ".opus", ".wma"}
	videoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".webm", ".flv", ".m4v"}
)

// linkPatterns is the allow-list of hosting-site fragments that mark a
// message token as an extractable link. Matching is substring
// containment, not URL parsing, so short links and tracking query
// strings still match.
var linkPatterns = []string{
	"youtube.com/watch",
	"youtube.com/shorts",
	"youtu.be/",
	"vimeo.com/",
	"soundcloud.com/",
	"tiktok.com/",
	"twitter.com/",
	"x.com/",
	"instagram.com/reel",
	"twitch.tv/",
	"streamable.com/",
}

// ConfigReader is the read side of the guild configuration store.
type ConfigReader interface {
	Active(guildID string) bool
}

// Classifier turns inbound messages into media tasks. Extra extensions
// and link patterns can be appended from the config file.
type Classifier struct {
	store ConfigReader

	audioExts []string
	videoExts []string
	patterns  []string
}

// NewClassifier creates a classifier reading activation state from store.
func NewClassifier(store ConfigReader, extraAudio, extraVideo, extraPatterns []string) *Classifier {
	return &Classifier{
		store:     store,
		audioExts: append(append([]string{}, audioExtensions...), extraAudio...),
		videoExts: append(append([]string{}, videoExtensions...), extraVideo...),
		patterns:  append(append([]string{}, linkPatterns...), extraPatterns...),
	}
}

// Classify produces one task per detected media reference: attachments
// first in the order they appear, then link tokens in textual order.
// Repeated references produce repeated tasks on purpose; the pipeline
// treats every reference independently. Messages from bots and from
// inactive guilds produce nothing.
func (c *Classifier) Classify(msg Message) []*MediaTask {
	if msg.AuthorBot {
		return nil
	}
	if !c.store.Active(msg.GuildID) {
		return nil
	}

	var tasks []*MediaTask

	for _, att := range msg.Attachments {
		ext := strings.ToLower(filepath.Ext(att.Filename))
		kind, ok := c.classifyExtension(ext)
		if !ok {
			continue
		}
		task := NewMediaTask(kind, msg)
		task.FileName = att.Filename
		task.SourceURL = att.URL
		tasks = append(tasks, task)
	}

	for _, token := range strings.Fields(msg.Content) {
		if !c.matchesLinkPattern(token) {
			continue
		}
		task := NewMediaTask(KindExternalLink, msg)
		task.SourceURL = token
		tasks = append(tasks, task)
	}

	return tasks
}

func (c *Classifier) classifyExtension(ext string) (TaskKind, bool) {
	for _, e := range c.audioExts {
		if ext == e {
			return KindAttachmentAudio, true
		}
	}
	for _, e := range c.videoExts {
		if ext == e {
			return KindAttachmentVideo, true
		}
	}
	return 0, false
}

func (c *Classifier) matchesLinkPattern(token string) bool {
	lower := strings.ToLower(token)
	for _, pattern := range c.patterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
