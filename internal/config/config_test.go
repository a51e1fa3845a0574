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
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"database_url": "postgres://localhost/assessor",
		"api_key": "test-key",
		"port": 9090,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/assessor", cfg.DatabaseURL)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeConfig(t, `{not json`)
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{Port: 8080}
	assert.NoError(t, cfg.Validate())

	cfg = Config{Port: -1}
	assert.Error(t, cfg.Validate())

	cfg = Config{Port: 70000}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "explicit-key"}
	merged := cfg.MergeWithDefaults(Config{
		DatabaseURL: "postgres://default",
		APIKey:      "default-key",
		Port:        9000,
	})

	assert.Equal(t, "postgres://default", merged.DatabaseURL, "empty fields take defaults")
	assert.Equal(t, "explicit-key", merged.APIKey, "explicit values win")
	assert.Equal(t, 9000, merged.Port)

	empty := Config{}
	assert.Equal(t, 8080, empty.MergeWithDefaults(Config{}).Port, "port falls back to 8080")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := Config{}
	cfg.FromEnv()
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
	assert.Equal(t, "env-key", cfg.APIKey)

	explicit := Config{DatabaseURL: "postgres://file", APIKey: "file-key"}
	explicit.FromEnv()
	assert.Equal(t, "postgres://file", explicit.DatabaseURL, "config values win over environment")
	assert.Equal(t, "file-key", explicit.APIKey)
}
