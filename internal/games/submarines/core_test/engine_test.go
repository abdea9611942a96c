package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/submarines3d/internal/games/submarines/core"
)

// smallBoard builds a 3x3x3 board holding one submarine along row 0 of the
// deep layer and a General at the given cell.
func smallBoard(t *testing.T, general core.Coord) *core.Board {
	t.Helper()
	b := core.NewBoard(core.Dims{Depth: 3, Rows: 3, Cols: 3})
	if _, err := b.Place(core.Submarine, []core.Coord{core.C(0, 0, 0), core.C(1, 0, 0), core.C(2, 0, 0)}); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Place(core.General, []core.Coord{general}); err != nil {
		t.Fatal(err)
	}
	return b
}

func newTestEngine(t *testing.T) *core.Engine {
	t.Helper()
	return core.NewEngine(
		smallBoard(t, core.C(2, 2, 2)),
		smallBoard(t, core.C(0, 0, 1)),
		core.Player1,
	)
}

func TestEndToEndScenario(t *testing.T) {
	e := newTestEngine(t)

	if e.Phase() != core.AwaitingShot || e.Active() != core.Player1 {
		t.Fatalf("expected AwaitingShot(Player 1), got %v(%v)", e.Phase(), e.Active())
	}

	out, err := e.Submit(core.C(1, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if out.Signal != core.Kill {
		t.Errorf("expected Kill on submarine, got %v", out.Signal)
	}
	if out.Piece != core.Submarine {
		t.Errorf("expected submarine, got %v", out.Piece)
	}
	if out.Over {
		t.Fatal("game should continue while submarine cells remain")
	}
	if out.Next != core.Player1 || e.Active() != core.Player1 {
		t.Errorf("expected shooter to keep the turn, next is %v", out.Next)
	}

	out, err = e.Submit(core.C(0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if out.Signal != core.Kill || out.Piece != core.General {
		t.Errorf("expected Kill on general, got %v on %v", out.Signal, out.Piece)
	}
	if !out.Over || !e.Over() {
		t.Fatal("expected game over after general kill")
	}

	winner, reason, ok := e.Winner()
	if !ok || winner != core.Player1 {
		t.Errorf("expected Player 1 to win, got %v (ok=%v)", winner, ok)
	}
	if reason != core.ReasonGeneralDown {
		t.Errorf("expected reason %v, got %v", core.ReasonGeneralDown, reason)
	}

	_, err = e.Submit(core.C(2, 2, 2))
	if !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState after game over, got %v", err)
	}
}

func TestMissPassesTurn(t *testing.T) {
	e := newTestEngine(t)

	out, err := e.Submit(core.C(1, 1, 0))
	if err != nil {
		t.Fatal(err)
	}
	if out.Signal != core.Miss {
		t.Errorf("expected Miss, got %v", out.Signal)
	}
	if out.Next != core.Player2 || e.Active() != core.Player2 {
		t.Errorf("expected Player 2 to move next, got %v", e.Active())
	}

	out, _ = e.Submit(core.C(1, 1, 0))
	if out.Shooter != core.Player2 {
		t.Errorf("expected Player 2 to fire, got %v", out.Shooter)
	}
	if out.Repeat {
		t.Error("Player 2's first shot at a cell is not a repeat")
	}
	if e.Active() != core.Player1 {
		t.Errorf("expected turn back to Player 1, got %v", e.Active())
	}
}

func TestTurnPersistsUntilMiss(t *testing.T) {
	own := core.NewBoard(core.Dims{Depth: 3, Rows: 5, Cols: 5})
	own.Place(core.General, []core.Coord{core.C(4, 4, 2)})
	target := core.NewBoard(core.Dims{Depth: 3, Rows: 5, Cols: 5})
	target.Place(core.Destroyer, []core.Coord{core.C(0, 0, 1), core.C(1, 0, 1), core.C(2, 0, 1), core.C(3, 0, 1)})
	target.Place(core.General, []core.Coord{core.C(4, 4, 2)})
	e := core.NewEngine(own, target, core.Player1)

	tests := []struct {
		coord  core.Coord
		signal core.Signal
		next   core.Player
	}{
		{core.C(0, 0, 1), core.Hit, core.Player1},
		{core.C(1, 0, 1), core.Hit, core.Player1},
		{core.C(0, 4, 0), core.Miss, core.Player2},
	}
	for _, tc := range tests {
		out, err := e.Submit(tc.coord)
		if err != nil {
			t.Fatal(err)
		}
		if out.Shooter != core.Player1 {
			t.Fatalf("%v: fired by %v, want Player 1", tc.coord, out.Shooter)
		}
		if out.Signal != tc.signal {
			t.Errorf("%v: signal %v, want %v", tc.coord, out.Signal, tc.signal)
		}
		if e.Active() != tc.next {
			t.Errorf("%v: active %v, want %v", tc.coord, e.Active(), tc.next)
		}
	}
	if got := e.Shots(core.Player1); got != 3 {
		t.Errorf("Player 1 fired %d shots, want 3", got)
	}
}

func TestHitKeepsTurn(t *testing.T) {
	own := core.NewBoard(core.Dims{Depth: 3, Rows: 5, Cols: 5})
	own.Place(core.General, []core.Coord{core.C(4, 4, 2)})
	target := core.NewBoard(core.Dims{Depth: 3, Rows: 5, Cols: 5})
	target.Place(core.Destroyer, []core.Coord{core.C(0, 0, 1), core.C(1, 0, 1), core.C(2, 0, 1), core.C(3, 0, 1)})
	target.Place(core.General, []core.Coord{core.C(4, 4, 2)})

	e := core.NewEngine(own, target, core.Player1)
	for x := range 3 {
		out, err := e.Submit(core.C(x, 0, 1))
		if err != nil {
			t.Fatal(err)
		}
		if out.Signal != core.Hit {
			t.Errorf("shot %d: expected Hit, got %v", x, out.Signal)
		}
		if e.Active() != core.Player1 {
			t.Fatalf("shot %d: expected Player 1 to keep the turn", x)
		}
	}

	out, _ := e.Submit(core.C(3, 0, 1))
	if out.Signal != core.Kill {
		t.Errorf("expected Kill on last destroyer cell, got %v", out.Signal)
	}
	if !out.Over || out.Reason != core.ReasonFleetDestroyed {
		t.Errorf("expected fleet elimination win, got over=%v reason=%v", out.Over, out.Reason)
	}
	if e.Shots(core.Player1) != 4 {
		t.Errorf("expected 4 shots, got %d", e.Shots(core.Player1))
	}
}

func TestFleetEliminationNeedsEveryCell(t *testing.T) {
	e := newTestEngine(t)

	for x := range 2 {
		out, _ := e.Submit(core.C(x, 0, 0))
		if out.Over {
			t.Fatalf("game ended after %d submarine cells", x+1)
		}
	}

	out, err := e.Submit(core.C(2, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !out.Over {
		t.Fatal("expected game over once every submarine cell is hit")
	}
	if out.Winner != core.Player1 || out.Reason != core.ReasonFleetDestroyed {
		t.Errorf("expected Player 1 by fleet elimination, got %v by %v", out.Winner, out.Reason)
	}
}

func TestRepeatShotLeavesTurn(t *testing.T) {
	e := newTestEngine(t)

	e.Submit(core.C(0, 0, 0))
	shots := e.Shots(core.Player1)

	out, err := e.Submit(core.C(0, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !out.Repeat {
		t.Error("expected Repeat on second shot at the same cell")
	}
	if out.Signal != core.Kill {
		t.Errorf("expected replayed Kill, got %v", out.Signal)
	}
	if e.Active() != core.Player1 {
		t.Errorf("expected Player 1 to keep the turn, got %v", e.Active())
	}
	if e.Shots(core.Player1) != shots {
		t.Errorf("repeat shot was counted")
	}

	// A repeated miss does not pass the turn either.
	e.Submit(core.C(2, 2, 0))
	if e.Active() != core.Player2 {
		t.Fatalf("expected miss to pass the turn")
	}
	e.Submit(core.C(2, 1, 0))
	if e.Active() != core.Player1 {
		t.Fatalf("expected miss to pass the turn back")
	}
	out, _ = e.Submit(core.C(2, 2, 0))
	if !out.Repeat || out.Signal != core.Miss {
		t.Errorf("expected repeated Miss, got %v repeat=%v", out.Signal, out.Repeat)
	}
	if e.Active() != core.Player1 {
		t.Errorf("repeated miss passed the turn")
	}
}

func TestOutOfBoundsShotChangesNothing(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Submit(core.C(5, 5, 5))
	if !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if e.Active() != core.Player1 || e.Over() {
		t.Error("out-of-bounds shot changed engine state")
	}
	if e.Shots(core.Player1) != 0 {
		t.Error("out-of-bounds shot was counted")
	}
}

func TestNewEngineDefaultsFirstPlayer(t *testing.T) {
	e := core.NewEngine(core.NewBoard(standardDims()), core.NewBoard(standardDims()), core.Player(9))
	if e.Active() != core.Player1 {
		t.Errorf("expected Player 1, got %v", e.Active())
	}
	if _, _, ok := e.Winner(); ok {
		t.Error("new engine should have no winner")
	}
	if e.Target(core.Player1) != e.Board(core.Player2) {
		t.Error("Player 1 should target Player 2's board")
	}
}

func TestNewMatch(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	e, err := core.NewMatch(standardDims(), standardFleet(), rng, core.Player2)
	if err != nil {
		t.Fatal(err)
	}
	if e.Active() != core.Player2 {
		t.Errorf("expected Player 2 first, got %v", e.Active())
	}
	for _, p := range []core.Player{core.Player1, core.Player2} {
		if got := len(e.Board(p).Pieces()); got != standardFleet().Total() {
			t.Errorf("%v: expected %d pieces, got %d", p, standardFleet().Total(), got)
		}
	}
}

func TestNewMatchRejectsBadFleet(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := core.NewMatch(standardDims(), core.Fleet{core.Submarine: 1}, rng, core.Player1)
	if !errors.Is(err, core.ErrGeneralCount) {
		t.Errorf("expected ErrGeneralCount, got %v", err)
	}

	_, err = core.NewMatch(standardDims(), core.Fleet{core.Submarine: 40, core.General: 1}, rng, core.Player1)
	if !errors.Is(err, core.ErrFleetTooLarge) {
		t.Errorf("expected ErrFleetTooLarge, got %v", err)
	}
}
