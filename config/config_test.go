package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.ServerAddress)
	assert.Equal(t, "http://localhost:8000", cfg.PublicBaseURL)
	assert.Equal(t, "backend/generated_sites", cfg.SitesDir)
	assert.False(t, cfg.UseMock)
	assert.Equal(t, BackendCLI, cfg.GeneratorBackend)
	assert.Equal(t, "ollama", cfg.GeneratorCLIPath)
	assert.Equal(t, "codellama:7b-code", cfg.GeneratorModel)
	assert.Equal(t, time.Duration(0), cfg.GenerationTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("USE_MOCK", "true")
	t.Setenv("SITES_DIR", "/tmp/sites")
	t.Setenv("GENERATION_TIMEOUT", "90s")
	t.Setenv("PUBLIC_BASE_URL", "https://sites.example.com/")
	t.Setenv("GENERATOR_BACKEND", " OpenAI ")

	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.True(t, cfg.UseMock)
	assert.Equal(t, "/tmp/sites", cfg.SitesDir)
	assert.Equal(t, 90*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, "https://sites.example.com", cfg.PublicBaseURL)
	assert.Equal(t, BackendOpenAI, cfg.GeneratorBackend)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	yaml := "SERVER_ADDRESS: \":9090\"\nGENERATOR_MODEL: llama3\nCORS_ALLOWED_ORIGINS:\n  - http://localhost:3000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := LoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "llama3", cfg.GeneratorModel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoadConfig_UnknownBackend(t *testing.T) {
	t.Setenv("GENERATOR_BACKEND", "carrier-pigeon")

	_, err := LoadConfig(t.TempDir())

	assert.ErrorContains(t, err, "unknown GENERATOR_BACKEND")
}
