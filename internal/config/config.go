package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"underground/internal/elements"
)

// DefaultPath is where the config lives relative to the working directory.
const DefaultPath = ".underground/config.yaml"

// Config holds all Electron Underground configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Tutor configures the chat tutor backend.
	Tutor TutorConfig `yaml:"tutor"`

	// UI holds interactive defaults.
	UI UIConfig `yaml:"ui"`

	Logging LoggingConfig `yaml:"logging"`
}

// TutorConfig configures the language-model tutor.
type TutorConfig struct {
	Provider    string  `yaml:"provider"` // gemini
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	Timeout     string  `yaml:"timeout"`
}

// UIConfig configures the TUI.
type UIConfig struct {
	Theme            string `yaml:"theme"` // auto, dark, light
	DefaultElement   string `yaml:"default_element"`
	NobleGasShortcut bool   `yaml:"noble_gas_shortcut"`
}

// LoggingConfig configures file logging. Nothing is written unless DebugMode is set.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"` // debug, info, warn, error
	Dir        string          `yaml:"dir"`
	Categories map[string]bool `yaml:"categories,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "Electron Underground",
		Version: "1.0.0",

		Tutor: TutorConfig{
			Provider:    "gemini",
			Model:       "gemini-2.5-flash",
			Temperature: 0.8,
			Timeout:     "60s",
		},

		UI: UIConfig{
			Theme:          "auto",
			DefaultElement: "Fe",
		},

		Logging: LoggingConfig{
			Level: "info",
			Dir:   ".underground/logs",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// API key, lowest priority first
	for _, name := range []string{"API_KEY", "GOOGLE_API_KEY", "GEMINI_API_KEY"} {
		if key := os.Getenv(name); key != "" {
			c.Tutor.APIKey = key
		}
	}
	if model := os.Getenv("UNDERGROUND_MODEL"); model != "" {
		c.Tutor.Model = model
	}
	if os.Getenv("UNDERGROUND_DARK_MODE") == "1" {
		c.UI.Theme = "dark"
	}
	if os.Getenv("UNDERGROUND_DEBUG") == "1" {
		c.Logging.DebugMode = true
	}
}

// GetTutorTimeout returns the tutor request timeout as a duration.
func (c *Config) GetTutorTimeout() time.Duration {
	d, err := time.ParseDuration(c.Tutor.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}

// HasAPIKey reports whether the tutor can reach its backend.
func (c *Config) HasAPIKey() bool {
	return c.Tutor.APIKey != ""
}

// ValidProviders lists the supported tutor backends.
var ValidProviders = []string{"gemini"}

// ValidThemes lists the accepted ui.theme values.
var ValidThemes = []string{"auto", "dark", "light"}

// Validate validates the configuration. A missing API key is allowed: the tutor
// answers with its fallback line instead.
func (c *Config) Validate() error {
	if !slices.Contains(ValidProviders, c.Tutor.Provider) {
		return fmt.Errorf("invalid tutor provider: %s (valid: %v)", c.Tutor.Provider, ValidProviders)
	}
	if c.Tutor.Temperature < 0 || c.Tutor.Temperature > 2 {
		return fmt.Errorf("tutor temperature %.2f out of range [0, 2]", c.Tutor.Temperature)
	}
	if c.UI.Theme != "" && !slices.Contains(ValidThemes, c.UI.Theme) {
		return fmt.Errorf("invalid ui theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}
	if c.UI.DefaultElement != "" {
		if _, err := elements.Lookup(c.UI.DefaultElement); err != nil {
			return fmt.Errorf("invalid default element: %w", err)
		}
	}
	return nil
}

// StartElement resolves the configured start-up element, falling back to Iron.
func (c *Config) StartElement() elements.Element {
	if e, err := elements.Lookup(c.UI.DefaultElement); err == nil {
		return e
	}
	return elements.Default()
}
