package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, "session.db", c.DatabasePath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"server_endpoint_addr": "json:1",
		"database_path":        "json.db",
	})
	t.Setenv(EnvPrefix+"SERVER_ADDR", "env:2")
	os.Args = []string{"cmd", "-config", path, "-t", "7"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "env:2", cfg.ServerEndpointAddr)
	assert.Equal(t, "json.db", cfg.DatabasePath)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadEnv(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	err := loadEnv(cfg, map[string]string{
		EnvPrefix + "DATABASE_PATH":   "env.db",
		EnvPrefix + "REQUEST_TIMEOUT": "2s",
	})
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.DatabasePath)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)

	err = loadEnv(cfg, map[string]string{EnvPrefix + "REQUEST_TIMEOUT": "soon"})
	assert.Error(t, err)
}
