package core

import (
	"errors"
	"fmt"
)

var (
	// ErrPlacementExhausted means a piece found no free spot within MaxPlacementAttempts.
	ErrPlacementExhausted = errors.New("placement exhausted")
	// ErrOutOfBounds means a coordinate lies outside the board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidState means a shot was submitted after the game ended.
	ErrInvalidState = errors.New("game is over")
	// ErrOverlap means a piece would share a cell with an already placed piece.
	ErrOverlap = errors.New("cell already occupied")
	// ErrWrongLayer means a piece was placed off its forced layer.
	ErrWrongLayer = errors.New("piece not on its layer")
	// ErrFleetTooLarge means more pieces of a type were requested than a layer holds.
	ErrFleetTooLarge = errors.New("fleet too large for board")
	// ErrGeneralCount means the fleet does not contain exactly one General.
	ErrGeneralCount = errors.New("exactly one general required")
)

// PlacementError reports which piece could not be placed.
type PlacementError struct {
	Type     PieceType
	Attempts int
	Dims     Dims
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("cannot place %s on %s board after %d attempts", e.Type, e.Dims, e.Attempts)
}

func (e *PlacementError) Unwrap() error {
	return ErrPlacementExhausted
}

// FleetError reports a piece count that cannot fit on a single layer.
type FleetError struct {
	Type  PieceType
	Count int
	Max   int
	Rows  int
	Cols  int
}

func (e *FleetError) Error() string {
	return fmt.Sprintf("cannot place %d %ss on a %dx%d layer; maximum is %d",
		e.Count, e.Type, e.Rows, e.Cols, e.Max)
}

func (e *FleetError) Unwrap() error {
	return ErrFleetTooLarge
}
