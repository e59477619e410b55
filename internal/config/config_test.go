package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearKeys(t *testing.T) {
	t.Helper()
	for _, name := range []string{"API_KEY", "GOOGLE_API_KEY", "GEMINI_API_KEY", "UNDERGROUND_MODEL", "UNDERGROUND_DARK_MODE", "UNDERGROUND_DEBUG"} {
		t.Setenv(name, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini", cfg.Tutor.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Tutor.Model)
	assert.InDelta(t, 0.8, cfg.Tutor.Temperature, 1e-6)
	assert.False(t, cfg.Logging.DebugMode)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 26, cfg.StartElement().Number)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearKeys(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Tutor.APIKey = "k-test"
	cfg.UI.DefaultElement = "Cu"
	cfg.Logging.Categories = map[string]bool{"tutor": true}

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "k-test", loaded.Tutor.APIKey)
	assert.Equal(t, 29, loaded.StartElement().Number)
	assert.True(t, loaded.Logging.Categories["tutor"])
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearKeys(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tutor: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("GEMINI_API_KEY wins", func(t *testing.T) {
		clearKeys(t)
		t.Setenv("API_KEY", "plain")
		t.Setenv("GEMINI_API_KEY", "gem")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "gem", cfg.Tutor.APIKey)
	})

	t.Run("API_KEY alone", func(t *testing.T) {
		clearKeys(t)
		t.Setenv("API_KEY", "plain")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "plain", cfg.Tutor.APIKey)
		assert.True(t, cfg.HasAPIKey())
	})

	t.Run("model, theme and debug", func(t *testing.T) {
		clearKeys(t)
		t.Setenv("UNDERGROUND_MODEL", "gemini-2.5-pro")
		t.Setenv("UNDERGROUND_DARK_MODE", "1")
		t.Setenv("UNDERGROUND_DEBUG", "1")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "gemini-2.5-pro", cfg.Tutor.Model)
		assert.Equal(t, "dark", cfg.UI.Theme)
		assert.True(t, cfg.Logging.DebugMode)
	})
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tutor.Provider = "openai"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Tutor.Temperature = 3
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.UI.DefaultElement = "Kr"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.UI.Theme = "neon"
	assert.Error(t, cfg.Validate())
}

func TestGetTutorTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 60*time.Second, cfg.GetTutorTimeout())

	cfg.Tutor.Timeout = "5s"
	assert.Equal(t, 5*time.Second, cfg.GetTutorTimeout())

	cfg.Tutor.Timeout = "soon"
	assert.Equal(t, 60*time.Second, cfg.GetTutorTimeout())
}
