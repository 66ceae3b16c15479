package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[simplauto]
url = "https://www.simplauto.com/private-api/slots/"
token = "tok"

[elevenlabs]
url = "https://api.elevenlabs.io"
api_key = "key"

[slots]
respect_client_range = true
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.True(t, cfg.Slots.RespectClientRange)
	assert.Equal(t, "tok", cfg.Simplauto.Token)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[simplauto]
url = "https://www.simplauto.com/private-api/slots/"

[elevenlabs]
url = "https://api.elevenlabs.io"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "ctc-voice-service", cfg.Metrics.ServiceName)
	assert.Equal(t, 10, cfg.Simplauto.Timeout)
	assert.Equal(t, 30, cfg.ElevenLabs.Timeout)
	assert.Equal(t, "demo-center-001", cfg.Centers.DemoID)
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.Slots.RespectClientRange)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Run("missing simplauto url", func(t *testing.T) {
		path := writeConfig(t, `
[elevenlabs]
url = "https://api.elevenlabs.io"
`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "simplauto.url")
	})

	t.Run("missing elevenlabs url", func(t *testing.T) {
		path := writeConfig(t, `
[simplauto]
url = "https://www.simplauto.com/private-api/slots/"
`)
		_, err := Load(path)
		assert.ErrorContains(t, err, "elevenlabs.url")
	})
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "ctc",
		Password: "secret",
		DBName:   "voice",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=ctc password=secret dbname=voice sslmode=disable", cfg.DSN())
}
