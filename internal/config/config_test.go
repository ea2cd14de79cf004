package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrDiscordTokenNotSet)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("AUDIOLINK_OWNER_ID", "")
	t.Setenv("AUDIOLINK_DASHBOARD_ADDR", "")
	t.Setenv("AUDIOLINK_TEMP_DIR", "")
	t.Setenv("AUDIOLINK_CONFIG", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "token-123", cfg.DiscordToken)
	assert.Equal(t, ":5000", cfg.DashboardAddr)
	assert.Equal(t, os.TempDir(), cfg.TempDir)
	assert.Zero(t, cfg.TranscodeTimeout())
	assert.Nil(t, cfg.File.KeepLinkRelay)
}

func TestLoadConfigFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audiolink.toml")
	content := `
extra_audio_extensions = [".mid"]
extra_link_patterns = ["example.org/clips"]
transcode_timeout_seconds = 120
keep_link_relay = false
keep_video_relay = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("AUDIOLINK_CONFIG", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{".mid"}, cfg.File.ExtraAudioExtensions)
	assert.Equal(t, []string{"example.org/clips"}, cfg.File.ExtraLinkPatterns)
	assert.Equal(t, 2*time.Minute, cfg.TranscodeTimeout())
	require.NotNil(t, cfg.File.KeepLinkRelay)
	assert.False(t, *cfg.File.KeepLinkRelay)
	require.NotNil(t, cfg.File.KeepVideoRelay)
	assert.True(t, *cfg.File.KeepVideoRelay)
}

func TestLoadConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0o644))

	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("AUDIOLINK_CONFIG", path)

	_, err := LoadConfig()
	assert.Error(t, err)
}
