package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// ReadyHandler logs the connected identity and sets the presence line.
func ReadyHandler(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("Logged in as %s#%s", r.User.Username, r.User.Discriminator)
	log.Printf("Bot is in %d guilds", len(r.Guilds))

	if err := s.UpdateListeningStatus("audio files | /activate"); err != nil {
		log.Printf("Failed to set presence: %v", err)
	}
}
