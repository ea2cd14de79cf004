package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var ErrDiscordTokenNotSet = errors.New("DISCORD_TOKEN is not set")

// Config carries everything the bot needs at startup. The token and a
// few addresses come from the environment; tuning knobs live in an
// optional TOML file pointed at by AUDIOLINK_CONFIG.
type Config struct {
	DiscordToken  string
	OwnerID       string
	DashboardAddr string
	TempDir       string

	File FileConfig
}

// FileConfig is the optional TOML override file. Everything in it has a
// working default; the file exists for operators who need to extend the
// recognized formats or change relay retention.
type FileConfig struct {
	ExtraAudioExtensions []string `toml:"extra_audio_extensions"`
	ExtraVideoExtensions []string `toml:"extra_video_extensions"`
	ExtraLinkPatterns    []string `toml:"extra_link_patterns"`

	// Zero keeps the default behavior: a transcode runs as long as it
	// needs to.
	TranscodeTimeoutSeconds int `toml:"transcode_timeout_seconds"`

	KeepLinkRelay  *bool `toml:"keep_link_relay"`
	KeepVideoRelay *bool `toml:"keep_video_relay"`
}

// LoadConfig reads environment variables (via .env when present) and
// the optional config file.
func LoadConfig() (*Config, error) {
	// The .env file is optional in deployed environments.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, ErrDiscordTokenNotSet
	}

	cfg := &Config{
		DiscordToken:  token,
		OwnerID:       os.Getenv("AUDIOLINK_OWNER_ID"),
		DashboardAddr: os.Getenv("AUDIOLINK_DASHBOARD_ADDR"),
		TempDir:       os.Getenv("AUDIOLINK_TEMP_DIR"),
	}
	if cfg.DashboardAddr == "" {
		cfg.DashboardAddr = ":5000"
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}

	if path := os.Getenv("AUDIOLINK_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg.File); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	return cfg, nil
}

// TranscodeTimeout returns the configured tool timeout, zero when unbounded.
func (c *Config) TranscodeTimeout() time.Duration {
	return time.Duration(c.File.TranscodeTimeoutSeconds) * time.Second
}
