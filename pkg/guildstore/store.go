package guildstore

import (
	"sync"

	"github.com/samber/mo"
)

// GuildConfig holds the per-guild settings mutated by the activate and
// deactivate commands. Configuration is volatile and resets on restart.
type GuildConfig struct {
	Active        bool
	TargetChannel mo.Option[string]
}

// Store keeps per-guild configuration in memory. Reads are concurrent,
// writes are serialized behind a single lock; writes only happen on the
// rare administrative commands so global mutual exclusion is fine.
type Store struct {
	mu     sync.RWMutex
	guilds map[string]GuildConfig
}

// NewStore creates an empty guild configuration store.
func NewStore() *Store {
	return &Store{
		guilds: make(map[string]GuildConfig),
	}
}

// Activate marks a guild as active. channelID is the upload target for
// extracted audio; pass an empty string to leave it unset, in which case
// results land in the channel the request came from.
func (s *Store) Activate(guildID, channelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := GuildConfig{Active: true}
	if channelID != "" {
		cfg.TargetChannel = mo.Some(channelID)
	}
	s.guilds[guildID] = cfg
}

// Deactivate removes a guild's configuration entirely.
func (s *Store) Deactivate(guildID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.guilds, guildID)
}

// Active reports whether the bot should process messages from the guild.
func (s *Store) Active(guildID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.guilds[guildID].Active
}

// TargetChannel returns the configured upload channel for the guild, if any.
func (s *Store) TargetChannel(guildID string) mo.Option[string] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.guilds[guildID].TargetChannel
}

// Count returns the number of active guilds.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.guilds)
}
