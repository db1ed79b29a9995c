package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cnake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration cnake would use, after searching
--config, ~/.cnake/config.yaml, ./configs/snake.yaml and the embedded default.

Use --defaults to print the embedded default file as a starting point.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default YAML")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		//nolint:errcheck // Stdout write
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("configuration is invalid", "error", err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		fail("%v", err)
	}
	//nolint:errcheck // Stdout write
	os.Stdout.Write(data)
}
