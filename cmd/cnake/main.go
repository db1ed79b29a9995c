// cnake is a grid Snake game for the terminal.
//
// Usage:
//
//	cnake list                 - List available variants
//	cnake play [variant]       - Play (default variant: snake)
//	cnake config               - Print the effective configuration
//	cnake simulate [variant]   - Run a scripted headless session
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible apples
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cnake/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/cnake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cnake",
	Short: "Cnake - grid Snake in your terminal",
	Long: `Cnake is a grid-based Snake game: steer the snake, eat apples to grow,
and avoid the walls and your own tail.

Available commands:
  list      - Show all available variants
  play      - Play a variant
  config    - Print the effective configuration
  simulate  - Run a scripted session without a terminal

Examples:
  cnake play
  cnake play snake_classic --fps 15
  cnake play --fit
  cnake simulate --ticks 40 --turns "3:down,9:left"`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, then time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the process logger. Without --log-file it writes to
// fallback, which play sets to io.Discard to keep the alt screen clean.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "cnake",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the configuration and applies the --seed override.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	logger.Debug("config loaded", "source", source, "grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height))
	return cfg, nil
}

// fail prints an error the way every subcommand reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
