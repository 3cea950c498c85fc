package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	err := os.WriteFile(path, []byte(`
[server]
port = 8080
debug_mode = true

[auth]
token = "from-file"
expiration = "2h"
root_email = "root@test.com"
`), 0o600)
	require.NoError(t, err)
	t.Setenv("SCHEDULER_TOKEN", "from-env")

	cfg, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, "scheduler.sqlite", cfg.Server.SqliteFile)
	assert.False(t, cfg.Server.TLSEnabled())
	assert.Equal(t, "from-env", cfg.Auth.Token)
	assert.Equal(t, 2*time.Hour, cfg.Auth.Expiration)
	assert.Equal(t, "root@test.com", cfg.Auth.RootEmail)
}

func TestNew_MissingFile(t *testing.T) {
	t.Setenv("SCHEDULER_PORT", "4000")
	cfg, err := New(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, Default().Server.Host, cfg.Server.Host)
}

func TestNew_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nport = "), 0o600))
	_, err := New(path)
	assert.Error(t, err)
}
