package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// RegisterSlashCommands registers the administrative commands globally.
func RegisterSlashCommands(s *discordgo.Session) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "activate",
			Description: "Activate audio extraction for this server",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Channel to post extracted audio in (defaults to the channel the request came from)",
					Required:    false,
				},
			},
		},
		{
			Name:        "deactivate",
			Description: "Deactivate audio extraction for this server",
		},
	}

	for _, cmd := range commands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, "", cmd); err != nil {
			return fmt.Errorf("registering /%s: %w", cmd.Name, err)
		}
	}

	return nil
}
