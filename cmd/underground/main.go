package main

import (
	"fmt"
	"os"
	"time"

	"underground/cmd/underground/app"
	"underground/cmd/underground/ui"
	"underground/internal/config"
	"underground/internal/logging"
	"underground/internal/tutor"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	timeout    time.Duration

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "underground",
	Short: "Electron Underground - orbital filling, punk edition",
	Long: `Electron Underground is a terminal teaching widget for electron configurations.

Fill the pit box by box or let Auto mode apply the Aufbau principle, Hund's rule
and the Pauli exclusion principle for elements H through Zn. Dom the tutor answers
questions when a Gemini API key is configured.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}
		if err := logging.Initialize(cfg.Logging); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}

		// Interactive mode owns the terminal; it logs to files only.
		if cmd == cmd.Root() {
			logger = zap.NewNop()
			return nil
		}

		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Tutor request timeout (default: tutor.timeout from config)")

	configCmd.Flags().BoolVar(&nobleGas, "noble", false, "Use the [Ar] noble gas shortcut for Z > 18")
	configCmd.Flags().BoolVar(&showBoxes, "boxes", true, "Print the box diagram")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(elementsCmd)
	rootCmd.AddCommand(blockmapCmd)
	rootCmd.AddCommand(askCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// tutorTimeout resolves --timeout against the config.
func tutorTimeout() time.Duration {
	if timeout > 0 {
		return timeout
	}
	return cfg.GetTutorTimeout()
}

// runInteractive starts the bubbletea program.
func runInteractive(cmd *cobra.Command) error {
	boot := logging.Get(logging.CategoryBoot)
	boot.Info("starting interactive session",
		zap.String("config", configPath),
		zap.String("model", cfg.Tutor.Model),
		zap.Bool("api_key", cfg.HasAPIKey()))

	m := app.New(app.Options{
		Styles:   ui.NewStyles(ui.DetectTheme(cfg.UI.Theme)),
		Tutor:    tutor.NewGemini(cmd.Context(), cfg.Tutor, tutorTimeout()),
		Start:    cfg.StartElement(),
		Shortcut: cfg.UI.NobleGasShortcut,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
