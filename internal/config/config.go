// Package config provides YAML-based match configuration loading, presets and
// validation for 3D Submarines.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vovakirdan/submarines3d/internal/games/submarines/core"
)

// Depth is the number of layers on every board.
const Depth = 3

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid match config")

// MatchConfig contains everything needed to set up one match.
type MatchConfig struct {
	Rows        int         `yaml:"rows" env:"ROWS"`
	Cols        int         `yaml:"cols" env:"COLS"`
	Fleet       FleetConfig `yaml:"fleet" envPrefix:"FLEET_"`
	FirstPlayer int         `yaml:"first_player" env:"FIRST_PLAYER"` // 1 or 2
}

// FleetConfig holds the number of each vessel per player. Every fleet also
// carries exactly one General, which is not configurable.
type FleetConfig struct {
	Submarines int `yaml:"submarines" env:"SUBMARINES"`
	Destroyers int `yaml:"destroyers" env:"DESTROYERS"`
	Jets       int `yaml:"jets" env:"JETS"`
}

// Preset is a named board size and fleet.
type Preset string

const (
	PresetSmall    Preset = "small"
	PresetStandard Preset = "standard"
	PresetLarge    Preset = "large"
)

// Presets lists the known presets in display order.
var Presets = []Preset{PresetSmall, PresetStandard, PresetLarge}

// ApplyPreset overwrites board size and fleet with a preset.
// FirstPlayer is left untouched.
func ApplyPreset(cfg *MatchConfig, preset Preset) error {
	switch preset {
	case PresetSmall:
		cfg.Rows, cfg.Cols = 4, 4
		cfg.Fleet = FleetConfig{Submarines: 2, Destroyers: 1, Jets: 0}
	case PresetStandard:
		cfg.Rows, cfg.Cols = 5, 5
		cfg.Fleet = FleetConfig{Submarines: 2, Destroyers: 1, Jets: 1}
	case PresetLarge:
		cfg.Rows, cfg.Cols = 10, 10
		cfg.Fleet = FleetConfig{Submarines: 4, Destroyers: 3, Jets: 2}
	default:
		return fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, preset)
	}
	return nil
}

// Dims returns the board dimensions described by the config.
func (c MatchConfig) Dims() core.Dims {
	return core.Dims{Depth: Depth, Rows: c.Rows, Cols: c.Cols}
}

// Counts converts the fleet into the engine's count table, adding the General.
func (c MatchConfig) Counts() core.Fleet {
	return core.Fleet{
		core.Submarine: c.Fleet.Submarines,
		core.Destroyer: c.Fleet.Destroyers,
		core.Jet:       c.Fleet.Jets,
		core.General:   1,
	}
}

// First returns the starting player. Zero, an unset first_player, means
// Player 1.
func (c MatchConfig) First() core.Player {
	if c.FirstPlayer == 2 {
		return core.Player2
	}
	return core.Player1
}

// Validate checks the board size rules, the first player and that the
// fleet fits on its layers.
func (c MatchConfig) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: rows and cols must be positive, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if min(c.Rows, c.Cols) < 3 || max(c.Rows, c.Cols) < 4 {
		return fmt.Errorf("%w: board must be at least 3x4, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if c.Fleet.Submarines < 0 || c.Fleet.Destroyers < 0 || c.Fleet.Jets < 0 {
		return fmt.Errorf("%w: vessel counts must be non-negative", ErrInvalidConfig)
	}
	if c.FirstPlayer < 0 || c.FirstPlayer > 2 {
		return fmt.Errorf("%w: first player must be 1 or 2, got %d", ErrInvalidConfig, c.FirstPlayer)
	}
	if err := core.CheckFleet(c.Dims(), c.Counts()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Summary renders the configuration the way it is shown before a match.
func (c MatchConfig) Summary() string {
	title := cases.Title(language.English)
	counts := c.Counts()

	var sb strings.Builder
	sb.WriteString("Configuration summary:\n")
	fmt.Fprintf(&sb, "  Depth layers: %d\n", Depth)
	fmt.Fprintf(&sb, "  Board size:   %dx%d (rows x cols per layer)\n", c.Rows, c.Cols)
	for _, t := range core.PieceTypes {
		fmt.Fprintf(&sb, "  %-10s: %d\n", title.String(t.String()), counts[t])
	}
	fmt.Fprintf(&sb, "  First player: %d\n", c.First())
	return sb.String()
}

// ShapeLegend draws the footprint of every vessel type in the fleet.
func (c MatchConfig) ShapeLegend() string {
	title := cases.Title(language.English)
	counts := c.Counts()

	var sb strings.Builder
	sb.WriteString("Vessel shapes:\n")
	for _, t := range core.PieceTypes {
		if counts[t] == 0 {
			continue
		}
		fmt.Fprintf(&sb, "  %s (level %s, %s):\n", title.String(t.String()), layerLabel(t), english.Plural(core.CellCount(t), "cell", ""))
		for _, row := range strings.Split(strings.TrimSuffix(core.RenderShape(core.Variants(t)[0]), "\n"), "\n") {
			fmt.Fprintf(&sb, "    %s\n", row)
		}
	}
	return sb.String()
}

func layerLabel(t core.PieceType) string {
	spec, _ := core.SpecFor(t)
	if spec.Layer == core.AnyLayer {
		return "any"
	}
	return fmt.Sprint(spec.Layer)
}
