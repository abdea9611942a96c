package core

import "fmt"

// Phase is the state of the turn engine.
type Phase uint8

const (
	AwaitingShot Phase = iota
	GameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case AwaitingShot:
		return "AwaitingShot"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// WinReason describes how a game ended.
type WinReason uint8

const (
	ReasonNone WinReason = iota
	ReasonGeneralDown
	ReasonFleetDestroyed
)

// String returns a human-readable reason.
func (r WinReason) String() string {
	switch r {
	case ReasonGeneralDown:
		return "General down"
	case ReasonFleetDestroyed:
		return "all non-General sunk"
	default:
		return "none"
	}
}

// Outcome describes one resolved shot and the engine state after it.
type Outcome struct {
	Shooter Player
	Coord   Coord
	Signal  Signal
	Piece   PieceType // PieceNone on a miss
	Repeat  bool      // Coord was already fired at; turn state unchanged
	Next    Player    // Player to fire next (the winner once the game is over)
	Over    bool
	Winner  Player
	Reason  WinReason
}

// Engine drives alternating play between two boards.
// Each player's board is the one their opponent fires at.
type Engine struct {
	boards [2]*Board
	active Player
	phase  Phase
	winner Player
	reason WinReason
}

// NewEngine creates an engine in AwaitingShot(first).
// An invalid first player defaults to Player1.
func NewEngine(own1, own2 *Board, first Player) *Engine {
	if !first.Valid() {
		first = Player1
	}
	return &Engine{
		boards: [2]*Board{own1, own2},
		active: first,
		phase:  AwaitingShot,
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Active returns the player whose turn it is.
func (e *Engine) Active() Player {
	return e.active
}

// Over reports whether the game has ended.
func (e *Engine) Over() bool {
	return e.Phase() == GameOver
}

// Winner returns the winner and the reason once the game is over.
func (e *Engine) Winner() (Player, WinReason, bool) {
	if e.phase != GameOver {
		return 0, ReasonNone, false
	}
	return e.winner, e.reason, true
}

// Board returns the board owned by p.
func (e *Engine) Board(p Player) *Board {
	if !p.Valid() {
		return nil
	}
	return e.boards[p.index()]
}

// Target returns the board p fires at.
func (e *Engine) Target(p Player) *Board {
	return e.Board(p.Opponent())
}

// Shots returns how many distinct shots p has fired.
func (e *Engine) Shots(p Player) int {
	if !p.Valid() {
		return 0
	}
	return e.Target(p).ShotCount()
}

// Submit fires the active player's shot at c on the opponent's board.
//
// A miss passes the turn; a hit or a kill that does not end the game keeps
// it. Killing the General, or a kill that leaves every other piece sunk,
// ends the game.
// Firing at an already resolved cell replays the recorded signal and leaves
// the turn where it was.
func (e *Engine) Submit(c Coord) (Outcome, error) {
	if e.phase == GameOver {
		return Outcome{}, fmt.Errorf("submit %v: %w", c, ErrInvalidState)
	}

	shooter := e.active
	target := e.Target(shooter)
	_, repeat := target.Shot(c)

	sig, err := target.Resolve(c)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{
		Shooter: shooter,
		Coord:   c,
		Signal:  sig,
		Repeat:  repeat,
	}
	if p, ok := target.PieceAt(c); ok {
		out.Piece = p.Type()
	}

	if repeat {
		out.Next = e.active
		return out, nil
	}

	switch {
	case sig == Kill && out.Piece == General:
		e.finish(shooter, ReasonGeneralDown)
	case sig == Kill && target.FleetSunk():
		e.finish(shooter, ReasonFleetDestroyed)
	case sig == Miss:
		e.active = shooter.Opponent()
	}

	out.Next = e.active
	out.Over = e.phase == GameOver
	out.Winner = e.winner
	out.Reason = e.reason
	return out, nil
}

func (e *Engine) finish(winner Player, reason WinReason) {
	e.phase = GameOver
	e.winner = winner
	e.reason = reason
}

// NewMatch validates the fleet, builds both boards, places both fleets from
// rng and returns an engine starting with first.
func NewMatch(dims Dims, fleet Fleet, rng Rand, first Player) (*Engine, error) {
	if err := CheckFleet(dims, fleet); err != nil {
		return nil, err
	}

	var boards [2]*Board
	for i := range boards {
		boards[i] = NewBoard(dims)
		if err := boards[i].PlaceFleet(fleet, rng); err != nil {
			return nil, fmt.Errorf("player %d fleet: %w", i+1, err)
		}
	}
	return NewEngine(boards[0], boards[1], first), nil
}
