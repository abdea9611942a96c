package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/submarines3d/internal/core"
	"github.com/vovakirdan/submarines3d/internal/games/submarines"
	subcore "github.com/vovakirdan/submarines3d/internal/games/submarines/core"
)

var readyKeys = key.NewBinding(
	key.WithKeys("enter", " "),
	key.WithHelp("enter", "ready"),
)

// Model is the Bubble Tea model for a hot-seat match.
type Model struct {
	sess   *submarines.Session
	screen *core.Screen
	input  textinput.Model
	keys   KeyMap
	help   help.Model
	menu   MenuModel
	rng    subcore.Rand
	logger *log.Logger

	status     string
	statusKind submarines.ReplyKind
	outcome    subcore.Outcome
	reveal     bool // Draw the active player's own fleet below the target view
	handoff    bool // Turn passed; boards stay hidden until the next player is ready
	quitting   bool
}

// NewModel creates the match model. rng is used for rematches only.
func NewModel(sess *submarines.Session, cfg core.RuntimeConfig, rng subcore.Rand, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := textinput.New()
	input.Placeholder = "z,y,x"
	input.Prompt = "> "
	input.CharLimit = 16
	input.Width = 16
	input.Focus()

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sess:       sess,
		screen:     core.NewScreen(0, 0),
		input:      input,
		keys:       DefaultKeyMap(),
		help:       h,
		menu:       NewMenuModel(),
		rng:        rng,
		logger:     logger,
		status:     submarines.MsgWelcome,
		statusKind: submarines.ReplyHelp,
	}
}

// Session returns the match currently shown.
func (m Model) Session() *submarines.Session {
	return m.sess
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sess.Done() {
		return m.handleMenu(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		reply := m.sess.Handle("quit")
		m.status = reply.Text
		m.quitting = true
		return m, tea.Quit

	case m.handoff:
		if key.Matches(msg, readyKeys) {
			m.handoff = false
			m.reveal = false
		}
		return m, nil

	case key.Matches(msg, m.keys.Reveal):
		m.reveal = !m.reveal
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Fire):
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if text == "" {
		return m, nil
	}

	reply := m.sess.Handle(text)
	m.status = reply.Text
	m.statusKind = reply.Kind
	m.outcome = reply.Outcome

	switch reply.Kind {
	case submarines.ReplyReveal:
		// The fleet is drawn graphically; the text dump is not needed.
		m.reveal = true
		m.status = "Showing your fleet. Press tab to hide it."
	case submarines.ReplyAborted:
		m.quitting = true
		return m, tea.Quit
	case submarines.ReplyShot:
		if reply.Outcome.Next != reply.Outcome.Shooter {
			m.handoff = true
		}
	case submarines.ReplyOver:
		m.reveal = false
		m.menu = NewMenuModel()
	}
	return m, nil
}

func (m Model) handleMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)

	switch m.menu.Selected() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case ChoiceRematch:
		next, err := m.sess.Rematch(m.rng)
		if err != nil {
			m.logger.Error("rematch failed", "err", err)
			m.status = fmt.Sprintf("Rematch failed: %v", err)
			m.statusKind = submarines.ReplyInvalid
			m.menu = NewMenuModel()
			return m, nil
		}
		m.sess = next
		m.menu = NewMenuModel()
		m.status = submarines.MsgWelcome
		m.statusKind = submarines.ReplyHelp
		m.outcome = subcore.Outcome{}
		m.reveal = false
		m.handoff = false
		m.input.Reset()
	}
	return m, cmd
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return m.status + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("3D SUBMARINES"))
	b.WriteString("  ")
	b.WriteString(m.turnLine())
	b.WriteString("\n\n")

	if m.handoff {
		b.WriteString(m.handoffView())
		return b.String()
	}

	b.WriteString(m.boardView())
	b.WriteString("\n\n")
	b.WriteString(m.statusStyle().Render(m.status))
	b.WriteString("\n\n")

	if m.sess.Done() {
		b.WriteString(m.menu.View())
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) turnLine() string {
	if winner, _, ok := m.sess.Engine().Winner(); ok {
		return turnStyle.Render(fmt.Sprintf("%s won", winner))
	}
	p := m.sess.Active()
	engine := m.sess.Engine()
	return turnStyle.Render(fmt.Sprintf("%s to fire", p)) +
		dimStyle.Render(fmt.Sprintf("  shots: %d  enemy vessels afloat: %d", engine.Shots(p), engine.Target(p).Remaining()))
}

func (m Model) handoffView() string {
	text := fmt.Sprintf("%s\n\n%s, take the keyboard.\n\n%s",
		m.statusStyle().Render(m.status),
		m.sess.Active(),
		dimStyle.Render("Press enter when ready."),
	)
	return panelStyle.Render(text)
}

// boardView draws the target board of the active player and, when revealed,
// their own fleet underneath.
func (m Model) boardView() string {
	engine := m.sess.Engine()
	p := m.sess.Active()
	d := m.sess.Config().Dims()

	w, h := submarines.BoardSize(d)
	total := h + 1
	if m.reveal {
		total += h + 2
	}
	m.screen.Resize(w, total)
	m.screen.Clear()

	m.screen.DrawTextColored(0, 0, "Enemy waters", core.ColorBrightWhite)
	submarines.DrawBoard(m.screen, core.NewRect(0, 1, w, h), engine.Target(p), false)

	if m.reveal {
		top := h + 2
		m.screen.DrawTextColored(0, top, "Your fleet", core.ColorBrightWhite)
		submarines.DrawBoard(m.screen, core.NewRect(0, top+1, w, h), engine.Board(p), true)
	}
	return RenderScreen(m.screen)
}

func (m Model) statusStyle() lipgloss.Style {
	switch m.statusKind {
	case submarines.ReplyInvalid:
		return errorStyle
	case submarines.ReplyOver:
		return killStyle
	case submarines.ReplyShot, submarines.ReplyRepeat:
		switch m.outcome.Signal {
		case subcore.Hit:
			return hitStyle
		case subcore.Kill:
			return killStyle
		default:
			return missStyle
		}
	default:
		return dimStyle
	}
}
