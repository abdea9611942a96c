package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/submarines3d/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved match configuration",
	Long: `Resolves the match configuration the same way 'play' does and prints
where it came from, the board and fleet, and whether it is valid.

Search order:
  --config <path>
  ~/.submarines/match.yaml
  ./configs/match.yaml
  built-in defaults

Environment overrides use the SUBMARINES_ prefix, for example
SUBMARINES_ROWS=8 or SUBMARINES_FLEET_JETS=2.

Use --defaults to print the built-in match file as a starting point.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in match YAML and exit")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	fmt.Printf("Source: %s\n\n", config.Source(flagConfig))
	fmt.Println(cfg.Summary())
	fmt.Println(cfg.ShapeLegend())

	if err := cfg.Validate(); err != nil {
		return err
	}
	fmt.Println("Valid.")
	return nil
}
