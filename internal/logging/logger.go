// Package logging provides config-driven categorized logging for the Electron Underground.
// Each category writes JSON lines to its own file under the configured log directory.
// Logging is controlled by logging.debug_mode - when false, every logger is a no-op
// so the TUI keeps the terminal to itself.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"underground/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config resolution
	CategoryEngine Category = "engine" // Orbital state transitions
	CategoryTutor  Category = "tutor"  // Tutor requests and fallbacks
	CategoryQuiz   Category = "quiz"   // Quiz answers and results
	CategoryUI     Category = "ui"     // View switches, key handling
)

var (
	mu      sync.RWMutex
	cfg     config.LoggingConfig
	level   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	loggers = make(map[Category]*zap.Logger)
	files   []*os.File

	// core replaces the file sinks when set (tests).
	core zapcore.Core
)

// Initialize applies the logging config. It creates the log directory only in debug mode.
func Initialize(c config.LoggingConfig) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	cfg = c
	level.SetLevel(parseLevel(c.Level))

	if !cfg.DebugMode {
		return nil
	}
	if cfg.Dir == "" {
		return fmt.Errorf("log directory required in debug mode")
	}
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	return nil
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return cfg.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return categoryEnabledLocked(category)
}

func categoryEnabledLocked(category Category) bool {
	if !cfg.DebugMode {
		return false
	}
	enabled, exists := cfg.Categories[string(category)]
	return !exists || enabled
}

// Get returns (or creates) the logger for a category.
// Returns a no-op logger if debug mode or the category is disabled.
func Get(category Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	enabled := categoryEnabledLocked(category)
	mu.RUnlock()

	if !enabled {
		return zap.NewNop()
	}

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	c := core
	if c == nil {
		date := time.Now().Format("2006-01-02")
		path := filepath.Join(cfg.Dir, fmt.Sprintf("%s_%s.log", date, category))
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", path, err)
			return zap.NewNop()
		}
		files = append(files, file)
		c = zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(file),
			level,
		)
	}

	l := zap.New(c).Named(string(category))
	loggers[category] = l
	return l
}

// UseCore routes every category to c with debug mode on, returning a restore func.
// Intended for tests that observe log output.
func UseCore(c zapcore.Core) (restore func()) {
	mu.Lock()
	prevCfg, prevCore := cfg, core
	closeLocked()
	cfg = config.LoggingConfig{DebugMode: true, Level: "debug"}
	core = c
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		closeLocked()
		cfg, core = prevCfg, prevCore
	}
}

// Sync flushes and closes all category loggers.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	for _, l := range loggers {
		_ = l.Sync()
	}
	for _, f := range files {
		_ = f.Close()
	}
	loggers = make(map[Category]*zap.Logger)
	files = nil
}
