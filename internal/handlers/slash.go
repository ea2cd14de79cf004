package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/audiolink/audiolink/internal/commands"
)

// SlashCommandHandler routes slash command interactions.
func SlashCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	// Commands are guild-only; ignore anything without a member context.
	if i.Member == nil || i.Member.User == nil || i.Member.User.Bot {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "activate":
		commands.ActivateCommand(s, i)
	case "deactivate":
		commands.DeactivateCommand(s, i)
	default:
		log.Printf("Unknown command: %s", i.ApplicationCommandData().Name)
	}
}
