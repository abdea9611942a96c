// submarines is a hot-seat 3D Submarines game for two players sharing one
// terminal. Each player hides a fleet in a three-layer grid (deep sea,
// surface, air) and takes turns firing at the other's.
//
// Usage:
//
//	submarines play            - Start a match
//	submarines list            - List available frontends
//	submarines config          - Show the resolved match configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible fleet placement
//	--config <path>      - Use a custom match YAML file
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/submarines3d/internal/platform/line"
	_ "github.com/vovakirdan/submarines3d/internal/platform/tui"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

// logger is set up by the root command before any subcommand runs.
var (
	logger  = log.New(io.Discard)
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "submarines",
	Short: "3D Submarines - hot-seat naval battle across three layers",
	Long: `3D Submarines is a two-player game played on one terminal.

Each player's fleet is placed at random over three layers:
  Level 0  Deep sea   submarines
  Level 1  Surface    destroyers
  Level 2  Air        jets
The General hides on any layer.

Players take turns firing at 'depth,row,column' coordinates. A hit
keeps the turn, a miss passes it. Killing the enemy General or sinking
every other vessel wins.

Available commands:
  play     - Start a match
  list     - Show available frontends
  config   - Show the resolved match configuration

Examples:
  submarines play
  submarines play --preset large
  submarines play --ui line --seed 42
  submarines config --config ./match.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: stderr)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogger() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = f
		logSink = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "submarines",
		Level:           level,
	})
	return nil
}
