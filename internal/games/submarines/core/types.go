// Package core provides the board geometry and game resolution engine for
// 3D Submarines. It is UI-agnostic and deterministic for a given random source.
package core

// PieceType identifies a kind of vessel.
type PieceType uint8

const (
	PieceNone PieceType = iota
	Submarine
	Destroyer
	Jet
	General
)

// PieceTypes lists every placeable type in fleet placement order.
var PieceTypes = []PieceType{Submarine, Destroyer, Jet, General}

// String returns the lower-case name of the piece type.
func (t PieceType) String() string {
	switch t {
	case Submarine:
		return "submarine"
	case Destroyer:
		return "destroyer"
	case Jet:
		return "jet"
	case General:
		return "general"
	default:
		return "none"
	}
}

// Valid reports whether t is one of the placeable types.
func (t PieceType) Valid() bool {
	return t >= Submarine && t <= General
}

// KillRule decides when a piece counts as destroyed.
type KillRule uint8

const (
	// KillSingleHit destroys the piece on its first hit.
	KillSingleHit KillRule = iota
	// KillFullCoverage destroys the piece once every cell is hit.
	KillFullCoverage
)

// AnyLayer marks a piece type that may be placed on any depth layer.
const AnyLayer = -1

// Signal is the outcome of a single shot.
type Signal uint8

const (
	Miss Signal = iota
	Hit
	Kill
)

// String returns the signal name.
func (s Signal) String() string {
	switch s {
	case Miss:
		return "Miss"
	case Hit:
		return "Hit"
	case Kill:
		return "Kill"
	default:
		return "Unknown"
	}
}

// Symbol returns the character used for this signal on a player's view.
func (s Signal) Symbol() rune {
	switch s {
	case Hit:
		return 'X'
	case Kill:
		return '!'
	default:
		return 'O'
	}
}

// Player identifies one of the two players.
type Player uint8

const (
	Player1 Player = iota + 1
	Player2
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Valid reports whether p is Player1 or Player2.
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// String returns "Player 1" or "Player 2".
func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Nobody"
	}
}

// index maps a player to its slot in per-player arrays.
func (p Player) index() int {
	return int(p) - 1
}
