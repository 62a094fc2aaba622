package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.UI.DarkMode)
	assert.Equal(t, time.Second, cfg.Chat.ReplyDelay)
	assert.False(t, cfg.Chat.Coalesce)
	assert.Empty(t, cfg.Store.Path)
	assert.Equal(t, ":8080", cfg.API.Addr)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oasys.yaml")
	content := `ui:
  dark_mode: true
chat:
  reply_delay: 250ms
  coalesce: true
store:
  path: /tmp/oasys.db
api:
  addr: 127.0.0.1:9000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.UI.DarkMode)
	assert.Equal(t, 250*time.Millisecond, cfg.Chat.ReplyDelay)
	assert.True(t, cfg.Chat.Coalesce)
	assert.Equal(t, "/tmp/oasys.db", cfg.Store.Path)
	assert.Equal(t, "127.0.0.1:9000", cfg.API.Addr)
}

func TestLoadDefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "oasys"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "oasys", "config.yaml"),
		[]byte("ui:\n  dark_mode: true\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.UI.DarkMode)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("OASYS_STORE_PATH", "/data/oasys.db")
	t.Setenv("OASYS_CHAT_REPLY_DELAY", "2s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/data/oasys.db", cfg.Store.Path)
	assert.Equal(t, 2*time.Second, cfg.Chat.ReplyDelay)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsNegativeDelay(t *testing.T) {
	cfg := &Config{Chat: ChatConfig{ReplyDelay: -time.Second}}
	assert.Error(t, cfg.Validate())
}
