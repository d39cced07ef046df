package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOTTO_ASSET_BASE", "src/image/numbers")
	t.Setenv("LOTTO_ROUND_LABEL", "auto")
	t.Setenv("LOTTO_ALLOW_ORIGINS", "http://a.example, http://b.example,")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	cfg := Default()
	LoadFromEnv(&cfg)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "src/image/numbers", cfg.AssetBase)
	assert.Equal(t, AutoRoundLabel, cfg.RoundLabel)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowOrigins)
	assert.Equal(t, "lotto_numbers.txt", cfg.HistoryFile)
	assert.False(t, cfg.TelegramEnabled())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port":"9000","telegramBotToken":"abc","telegramChatId":"1"}`), 0644))

	cfg := Default()
	require.NoError(t, LoadFromFile(&cfg, path))

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "static/image/numbers", cfg.AssetBase)
	assert.True(t, cfg.TelegramEnabled())
}

func TestLoadFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	assert.ErrorIs(t, LoadFromFile(&cfg, filepath.Join(dir, "missing.json")), os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	assert.Error(t, LoadFromFile(&cfg, bad))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.AssetBase = ""
	assert.Error(t, cfg.Validate())
}

func TestMask(t *testing.T) {
	assert.Equal(t, "***", mask("abc"))
	assert.Equal(t, "1234****", mask("12345678"))
}
