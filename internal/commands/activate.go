package commands

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/audiolink/audiolink/pkg/guildstore"
)

var (
	store   *guildstore.Store
	ownerID string
)

// Configure injects the guild store and the optional owner override
// identity before handlers run.
func Configure(s *guildstore.Store, owner string) {
	store = s
	ownerID = owner
}

// ActivateCommand enables extraction for the guild. The optional channel
// option sets the upload target; omitted, results go to each request's
// origin channel.
func ActivateCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !isAuthorized(i) {
		respondEphemeral(s, i, "You need administrator permissions to use this command.")
		return
	}

	channelID := ""
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "channel" {
			channelID = opt.ChannelValue(nil).ID
		}
	}
	if channelID == "" {
		channelID = i.ChannelID
	}

	store.Activate(i.GuildID, channelID)
	log.Printf("Guild %s activated, target channel %s", i.GuildID, channelID)

	respond(s, i, "AudioLink is now active and will extract audio from media in this server!")
}

// DeactivateCommand disables extraction and forgets the guild's settings.
func DeactivateCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !isAuthorized(i) {
		respondEphemeral(s, i, "You need administrator permissions to use this command.")
		return
	}

	store.Deactivate(i.GuildID)
	log.Printf("Guild %s deactivated", i.GuildID)

	respond(s, i, "AudioLink is now inactive and will not respond to media in this server.")
}

// isAuthorized allows guild administrators plus the configured owner
// override identity.
func isAuthorized(i *discordgo.InteractionCreate) bool {
	if i.Member == nil || i.Member.User == nil {
		return false
	}
	if ownerID != "" && i.Member.User.ID == ownerID {
		return true
	}
	return i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		log.Printf("Error responding to interaction: %v", err)
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error responding to interaction: %v", err)
	}
}
