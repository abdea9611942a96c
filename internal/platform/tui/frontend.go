// Package tui provides the full-screen Bubble Tea frontend.
package tui

import (
	"fmt"
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/submarines3d/internal/games/submarines"
	"github.com/vovakirdan/submarines3d/internal/registry"
)

// Frontend runs a match in the alternate screen.
type Frontend struct{}

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// ID returns "tui".
func (Frontend) ID() string { return "tui" }

// Title returns the display name.
func (Frontend) Title() string { return "Full-screen terminal UI" }

// Run starts the Bubble Tea program and blocks until the players quit.
func (Frontend) Run(sess *submarines.Session, env registry.Env) error {
	// Rematch fleets come from their own stream so they differ from the first match.
	rng := rand.New(rand.NewSource(env.Runtime.ResolveSeed() + 1))
	model := NewModel(sess, env.Runtime, rng, env.Logger)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if env.In != nil {
		opts = append(opts, tea.WithInput(env.In))
	}
	if env.Out != nil {
		opts = append(opts, tea.WithOutput(env.Out))
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	if m, ok := final.(Model); ok && env.Logger != nil {
		env.Logger.Debug("tui frontend finished", "match", m.Session().ID(), "aborted", m.Session().Aborted())
	}
	return nil
}
