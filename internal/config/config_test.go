package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyantic/sojourn/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "stdio", cfg.MCPTransport)
	assert.Equal(t, 8090, cfg.MCPPort)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SOJOURN_HTTP_ADDR", ":9999")
	t.Setenv("SOJOURN_REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("SOJOURN_LOG_LEVEL", "debug")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, "redis://localhost:6379/2", cfg.RedisURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sojourn.yaml")
	data := []byte("http_addr: \":7070\"\nmcp_transport: sse\nmcp_port: 9001\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.HTTPAddr)
	assert.Equal(t, "sse", cfg.MCPTransport)
	assert.Equal(t, 9001, cfg.MCPPort)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
