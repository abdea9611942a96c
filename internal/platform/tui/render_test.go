package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/submarines3d/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorDefault)
	s.DrawTextColored(1, 1, "cd", core.ColorDefault)

	if got, want := RenderScreen(s), "ab  \n cd "; got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.SetColored(0, 0, 'X', core.ColorYellow)
	s.SetColored(1, 0, '!', core.ColorBrightRed)
	s.SetColored(2, 0, 'O', core.ColorBlue)
	s.SetColored(3, 0, 'O', core.ColorBlue)
	s.SetColored(4, 0, '?', core.Color(200))

	got := RenderScreen(s)
	for _, want := range []string{"X", "!", "OO", "?"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderScreen() = %q, missing %q", got, want)
		}
	}
	if strings.Count(got, "\n") != 0 {
		t.Errorf("single row rendered with newlines: %q", got)
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel()
	if m.Selected() != ChoiceNone {
		t.Fatalf("Selected() = %v, want none", m.Selected())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != ChoiceRematch {
		t.Errorf("cursor should stay on the first entry, got %v", m.Selected())
	}

	m = NewMenuModel()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != ChoiceQuit {
		t.Errorf("Selected() = %v, want Quit", m.Selected())
	}

	m = NewMenuModel()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if m.Selected() != ChoiceQuit {
		t.Errorf("q should select Quit, got %v", m.Selected())
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 4 {
		t.Errorf("ShortHelp has %d bindings, want 4", len(keys.ShortHelp()))
	}
	var full int
	for _, group := range keys.FullHelp() {
		full += len(group)
	}
	if full != 4 {
		t.Errorf("FullHelp has %d bindings, want 4", full)
	}
}
