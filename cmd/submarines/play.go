package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/submarines3d/internal/config"
	"github.com/vovakirdan/submarines3d/internal/core"
	"github.com/vovakirdan/submarines3d/internal/games/submarines"
	"github.com/vovakirdan/submarines3d/internal/registry"
)

var (
	flagUI         string
	flagPreset     string
	flagRows       int
	flagCols       int
	flagSubmarines int
	flagDestroyers int
	flagJets       int
	flagFirst      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a hot-seat match",
	Long: `Place both fleets at random and start a match.

Input (both frontends):
  z,y,x   - Fire at depth z, row y, column x (all zero-based)
  show    - Reveal your own board
  help    - Show input help
  quit    - Abort the match

Full-screen controls:
  Enter   - Fire
  Tab     - Show/hide your fleet
  Esc     - Quit

Presets:
  small     4x4 layers, 2 submarines, 1 destroyer
  standard  5x5 layers, 2 submarines, 1 destroyer, 1 jet
  large     10x10 layers, 4 submarines, 3 destroyers, 2 jets

Flags override the config file, which overrides the built-in defaults.

Examples:
  submarines play
  submarines play --preset small --first 2
  submarines play --rows 8 --cols 8 --jets 2
  submarines play --ui line < moves.txt`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagUI, "ui", "", "Frontend: tui or line (default: tui on a terminal, line otherwise)")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset: small, standard, large")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Rows per layer")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Columns per layer")
	playCmd.Flags().IntVar(&flagSubmarines, "submarines", 0, "Submarines per fleet")
	playCmd.Flags().IntVar(&flagDestroyers, "destroyers", 0, "Destroyers per fleet")
	playCmd.Flags().IntVar(&flagJets, "jets", 0, "Jets per fleet")
	playCmd.Flags().IntVar(&flagFirst, "first", 0, "Player who fires first (1 or 2)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveMatchConfig(cmd)
	if err != nil {
		return err
	}

	ui := flagUI
	if ui == "" {
		ui = defaultUI()
	}
	if !registry.Exists(ui) {
		return fmt.Errorf("unknown frontend %q (run 'submarines list' to see frontends)", ui)
	}
	frontend, err := registry.Create(ui)
	if err != nil {
		return err
	}

	// Log lines on stderr would tear the alternate screen.
	if ui == "tui" && flagLogFile == "" {
		logger = log.New(io.Discard)
	}

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	runtime.Seed = core.RuntimeConfig{Seed: flagSeed}.ResolveSeed()

	fmt.Println(cfg.Summary())
	logger.Info("starting match", "ui", ui, "seed", runtime.Seed, "config", config.Source(flagConfig))

	sess, err := submarines.NewSession(cfg, rand.New(rand.NewSource(runtime.Seed)), logger)
	if err != nil {
		return err
	}

	return frontend.Run(sess, registry.Env{
		In:      os.Stdin,
		Out:     os.Stdout,
		Runtime: runtime,
		Logger:  logger,
	})
}

// resolveMatchConfig loads the config file and applies the preset and
// explicitly set flags on top.
func resolveMatchConfig(cmd *cobra.Command) (config.MatchConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	overrides := []struct {
		name string
		dst  *int
		val  int
	}{
		{"rows", &cfg.Rows, flagRows},
		{"cols", &cfg.Cols, flagCols},
		{"submarines", &cfg.Fleet.Submarines, flagSubmarines},
		{"destroyers", &cfg.Fleet.Destroyers, flagDestroyers},
		{"jets", &cfg.Fleet.Jets, flagJets},
		{"first", &cfg.FirstPlayer, flagFirst},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			*o.dst = o.val
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// defaultUI picks the full-screen frontend only when both ends are a terminal.
func defaultUI() string {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return "tui"
	}
	return "line"
}
