package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MenuChoice is an entry of the end-of-match menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceRematch
	ChoiceQuit
)

func (c MenuChoice) String() string {
	switch c {
	case ChoiceRematch:
		return "Rematch (new fleets)"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

// MenuModel is the end-of-match menu. It is embedded in the match model and
// reports the selection instead of quitting the program itself.
type MenuModel struct {
	items    []MenuChoice
	cursor   int
	keys     MenuKeyMap
	help     help.Model
	selected MenuChoice
}

// NewMenuModel creates the menu with the cursor on Rematch.
func NewMenuModel() MenuModel {
	return MenuModel{
		items: []MenuChoice{ChoiceRematch, ChoiceQuit},
		keys:  DefaultMenuKeyMap(),
		help:  help.New(),
	}
}

// Update moves the cursor or records a selection.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.selected = ChoiceQuit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		m.selected = m.items[m.cursor]
	}
	return m, nil
}

// Selected returns the chosen entry, or ChoiceNone while the menu is open.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// View renders the menu entries with a cursor.
func (m MenuModel) View() string {
	var b strings.Builder
	for i, item := range m.items {
		cursor := "  "
		style := dimStyle
		if i == m.cursor {
			cursor = "> "
			style = turnStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s", cursor, item)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}
