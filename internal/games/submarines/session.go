// Package submarines runs a hot-seat 3D Submarines match on top of the core
// engine: it parses player input, drives turns and produces the text every
// frontend shows.
package submarines

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/vovakirdan/submarines3d/internal/config"
	"github.com/vovakirdan/submarines3d/internal/games/submarines/core"
)

// Player-facing messages.
const (
	MsgMiss       = "Miss!"
	MsgHit        = "Hit!"
	MsgKill       = "Kill!"
	MsgRepeat     = "Already fired at that coordinate."
	MsgAborted    = "Game aborted."
	MsgGameOver   = "The game is over."
	MsgWelcome    = "Starting 3D Submarines Game!"
	MsgHelp       = "Enter 'depth,row,column' (z,y,x) to fire, 'show' to reveal your board, 'quit' to abort."
	msgOutOfRange = "Coordinate out of range. Levels 0..%d, rows 0..%d, columns 0..%d."
)

// ReplyKind classifies the result of handling one input line.
type ReplyKind int

const (
	ReplyShot    ReplyKind = iota // A new shot was resolved
	ReplyRepeat                   // The coordinate was already fired at
	ReplyInvalid                  // Input could not be used; nothing changed
	ReplyReveal                   // Own board shown
	ReplyHelp
	ReplyAborted
	ReplyOver // A shot ended the match
)

// Reply is what a frontend shows after one input line.
type Reply struct {
	Kind    ReplyKind
	Text    string       // Message lines, newline separated
	Outcome core.Outcome // Set for ReplyShot, ReplyRepeat and ReplyOver
	Done    bool         // The session accepts no more input
}

// Session is one hot-seat match between two players sharing a terminal.
type Session struct {
	id      string
	cfg     config.MatchConfig
	engine  *core.Engine
	base    *log.Logger
	logger  *log.Logger
	aborted bool
}

// NewSession validates cfg, places both fleets from rng and returns a
// session ready for the first player's shot. A nil logger discards output.
func NewSession(cfg config.MatchConfig, rng core.Rand, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engine, err := core.NewMatch(cfg.Dims(), cfg.Counts(), rng, cfg.First())
	if err != nil {
		return nil, fmt.Errorf("set up match: %w", err)
	}

	s := &Session{
		id:     uuid.NewString(),
		cfg:    cfg,
		engine: engine,
		base:   logger,
	}
	s.logger = logger.With("match", s.id)
	s.logger.Info("match started",
		"dims", cfg.Dims(),
		"pieces", cfg.Counts().Total(),
		"first", cfg.First(),
	)
	return s, nil
}

// Rematch starts a new match with the same configuration and fresh fleets.
func (s *Session) Rematch(rng core.Rand) (*Session, error) {
	return NewSession(s.cfg, rng, s.base)
}

// ID returns the match identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Config returns the configuration the match was built from.
func (s *Session) Config() config.MatchConfig {
	return s.cfg
}

// Engine exposes the turn engine for read-only display.
func (s *Session) Engine() *core.Engine {
	return s.engine
}

// Active returns the player whose turn it is.
func (s *Session) Active() core.Player {
	return s.engine.Active()
}

// Done reports whether the match ended or was aborted.
func (s *Session) Done() bool {
	return s.aborted || s.engine.Over()
}

// Aborted reports whether a player quit.
func (s *Session) Aborted() bool {
	return s.aborted
}

// Prompt returns the input prompt for the active player.
func (s *Session) Prompt() string {
	return fmt.Sprintf("Player %d, enter 'depth,row,column' ('z,y,x'), or 'show', or 'quit': ", s.Active())
}

// View renders what the active player knows about the opponent's board.
func (s *Session) View() string {
	p := s.Active()
	return fmt.Sprintf("%s's view (levels 0..%d):\n%s", p, config.Depth-1, core.RenderTargetASCII(s.engine.Target(p)))
}

// Reveal renders the full layout of p's own board.
func (s *Session) Reveal(p core.Player) string {
	return fmt.Sprintf("--- %s Board Reveal ---\n%s", p, core.RenderFleetASCII(s.engine.Board(p)))
}

// Handle processes one line of input from the active player.
func (s *Session) Handle(line string) Reply {
	if s.Done() {
		return Reply{Kind: ReplyInvalid, Text: MsgGameOver, Done: true}
	}

	cmd, err := ParseCommand(line)
	if err != nil {
		return Reply{Kind: ReplyInvalid, Text: "Invalid format. Use 'depth,row,column' (z,y,x)."}
	}

	switch cmd.Kind {
	case CmdQuit:
		s.aborted = true
		s.logger.Info("match aborted", "by", s.Active())
		return Reply{Kind: ReplyAborted, Text: MsgAborted, Done: true}
	case CmdShow:
		return Reply{Kind: ReplyReveal, Text: s.Reveal(s.Active())}
	case CmdHelp:
		return Reply{Kind: ReplyHelp, Text: MsgHelp}
	}

	return s.fire(cmd.Coord)
}

func (s *Session) fire(c core.Coord) Reply {
	out, err := s.engine.Submit(c)
	switch {
	case errors.Is(err, core.ErrOutOfBounds):
		d := s.cfg.Dims()
		return Reply{Kind: ReplyInvalid, Text: fmt.Sprintf(msgOutOfRange, d.Depth-1, d.Rows-1, d.Cols-1)}
	case errors.Is(err, core.ErrInvalidState):
		return Reply{Kind: ReplyInvalid, Text: MsgGameOver, Done: true}
	case err != nil:
		s.logger.Error("shot failed", "coord", c, "err", err)
		return Reply{Kind: ReplyInvalid, Text: err.Error()}
	}

	if out.Repeat {
		return Reply{Kind: ReplyRepeat, Text: MsgRepeat, Outcome: out}
	}

	s.logger.Debug("shot",
		"player", out.Shooter,
		"coord", out.Coord,
		"signal", out.Signal,
		"next", out.Next,
	)

	lines := []string{SignalMessage(out.Signal)}
	if !out.Over {
		return Reply{Kind: ReplyShot, Text: lines[0], Outcome: out}
	}

	shots := s.engine.Shots(out.Winner)
	s.logger.Info("match over",
		"winner", out.Winner,
		"reason", out.Reason,
		"shots", shots,
	)
	lines = append(lines,
		Banner(out.Winner, out.Reason),
		fmt.Sprintf("Decided on the %s shot.", humanize.Ordinal(shots)),
	)
	return Reply{Kind: ReplyOver, Text: strings.Join(lines, "\n"), Outcome: out, Done: true}
}

// SignalMessage returns the feedback printed for a resolved shot.
func SignalMessage(sig core.Signal) string {
	switch sig {
	case core.Hit:
		return MsgHit
	case core.Kill:
		return MsgKill
	default:
		return MsgMiss
	}
}

// Banner returns the game-over line for a winner.
func Banner(winner core.Player, reason core.WinReason) string {
	return fmt.Sprintf("%s wins (%s)!", winner, reason)
}
