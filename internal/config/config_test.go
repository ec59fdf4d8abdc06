package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "./main.exe", cfg.Engine.Path)
	assert.Equal(t, "data.json", cfg.Engine.InputFile)
	assert.Equal(t, "output.json", cfg.Engine.OutputFile)
	assert.Equal(t, time.Duration(0), cfg.Engine.Timeout)
	assert.Equal(t, IsolationPerRequest, cfg.Engine.Isolation)
	assert.Equal(t, DefaultAllowedOrigin, cfg.CORS.AllowedOrigin)
	assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, cfg.CORS.AllowedMethods)
	assert.Equal(t, []string{"Content-Type"}, cfg.CORS.AllowedHeaders)
	assert.False(t, cfg.CORS.AllowCredentials)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9090"
engine:
  path: /opt/engine/main
  timeout: 45s
  isolation: shared
cors:
  allowed_origin: https://flights.example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/opt/engine/main", cfg.Engine.Path)
	assert.Equal(t, 45*time.Second, cfg.Engine.Timeout)
	assert.Equal(t, IsolationShared, cfg.Engine.Isolation)
	assert.Equal(t, "https://flights.example.com", cfg.CORS.AllowedOrigin)
	// untouched keys keep their defaults
	assert.Equal(t, "data.json", cfg.Engine.InputFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PLANEBOOKING_ENGINE_PATH", "/usr/local/bin/flights")
	t.Setenv("PLANEBOOKING_ENGINE_TIMEOUT", "2m")
	t.Setenv("PLANEBOOKING_LOGGING_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/flights", cfg.Engine.Path)
	assert.Equal(t, 2*time.Minute, cfg.Engine.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "empty engine path", mutate: func(c *Config) { c.Engine.Path = " " }, want: "engine.path"},
		{name: "empty output", mutate: func(c *Config) { c.Engine.OutputFile = "" }, want: "engine.output_file"},
		{name: "negative timeout", mutate: func(c *Config) { c.Engine.Timeout = -time.Second }, want: "engine.timeout"},
		{name: "bad isolation", mutate: func(c *Config) { c.Engine.Isolation = "sometimes" }, want: "engine.isolation"},
		{name: "no origin", mutate: func(c *Config) { c.CORS.AllowedOrigin = "" }, want: "cors.allowed_origin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
