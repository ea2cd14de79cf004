package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/audiolink/audiolink/internal/commands"
	"github.com/audiolink/audiolink/internal/config"
	"github.com/audiolink/audiolink/internal/dashboard"
	"github.com/audiolink/audiolink/internal/handlers"
	"github.com/audiolink/audiolink/pkg/guildstore"
	"github.com/audiolink/audiolink/pkg/media"
	"github.com/audiolink/audiolink/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Create a new Discord session using the provided token
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	dg.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentMessageContent

	// Wire the pipeline
	store := guildstore.NewStore()
	collector := metrics.NewCollector()
	commands.Configure(store, cfg.OwnerID)

	classifier := media.NewClassifier(store,
		cfg.File.ExtraAudioExtensions,
		cfg.File.ExtraVideoExtensions,
		cfg.File.ExtraLinkPatterns,
	)

	retention := media.DefaultRetention()
	if cfg.File.KeepLinkRelay != nil {
		retention.KeepLinkRelay = *cfg.File.KeepLinkRelay
	}
	if cfg.File.KeepVideoRelay != nil {
		retention.KeepVideoRelay = *cfg.File.KeepVideoRelay
	}

	pipeline := media.NewPipeline(
		store,
		dg,
		media.NewRedirectResolver(10*time.Second),
		media.NewTranscodeExecutor(cfg.TempDir, cfg.TranscodeTimeout()),
		media.NewUploadRelay(dg),
		collector,
		retention,
	)

	// Register handlers
	messageHandler := &handlers.MessageHandler{
		Classifier: classifier,
		Pipeline:   pipeline,
	}
	dg.AddHandler(messageHandler.Handle)
	dg.AddHandler(handlers.SlashCommandHandler)
	dg.AddHandler(handlers.ReadyHandler)

	// Open a websocket connection to Discord and begin listening.
	err = dg.Open()
	if err != nil {
		log.Fatalf("Failed to open Discord session: %v", err)
	}

	if err := commands.RegisterSlashCommands(dg); err != nil {
		log.Fatalf("Failed to register slash commands: %v", err)
	}

	// Start the stats dashboard
	dash := dashboard.New(store, collector, func() int {
		return len(dg.State.Guilds)
	})
	go func() {
		log.Printf("Dashboard listening on %s", cfg.DashboardAddr)
		if err := http.ListenAndServe(cfg.DashboardAddr, dash.Handler()); err != nil {
			log.Printf("Dashboard server stopped: %v", err)
		}
	}()

	log.Println("Bot is running. Press CTRL-C to exit.")
	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Cleanly close down the Discord session.
	dg.Close()
}
