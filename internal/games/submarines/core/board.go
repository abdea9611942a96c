package core

import "fmt"

// MaxPlacementAttempts bounds the random search for a single piece.
const MaxPlacementAttempts = 1000

// Rand is the random source used for placement.
// *math/rand.Rand satisfies it; tests may supply a scripted source.
type Rand interface {
	Intn(n int) int
}

// Fleet maps each piece type to how many of it a board holds.
type Fleet map[PieceType]int

// Total returns the number of pieces in the fleet.
func (f Fleet) Total() int {
	total := 0
	for _, t := range PieceTypes {
		total += f[t]
	}
	return total
}

// Board owns one player's pieces, the occupancy index and the shot history.
type Board struct {
	dims     Dims
	pieces   []*Piece
	occupied map[Coord]*Piece
	shots    map[Coord]struct{}
}

// NewBoard creates an empty board.
func NewBoard(dims Dims) *Board {
	return &Board{
		dims:     dims,
		occupied: make(map[Coord]*Piece),
		shots:    make(map[Coord]struct{}),
	}
}

// Dims returns the board dimensions.
func (b *Board) Dims() Dims {
	return b.dims
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return b.dims.Contains(c)
}

// Pieces returns the placed pieces in placement order.
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

// PieceAt returns the piece occupying c, if any.
func (b *Board) PieceAt(c Coord) (*Piece, bool) {
	p, ok := b.occupied[c]
	return p, ok
}

// Place puts a piece of type t on the given cells after checking bounds,
// layer and overlap. Used for hand-built boards; PlaceFleet uses it too.
func (b *Board) Place(t PieceType, cells []Coord) (*Piece, error) {
	spec, ok := specs[t]
	if !ok {
		return nil, fmt.Errorf("place: unknown piece type %d", t)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("place %s: no cells", t)
	}

	seen := make(map[Coord]bool, len(cells))
	for _, c := range cells {
		if !b.dims.Contains(c) {
			return nil, fmt.Errorf("place %s at %v: %w", t, c, ErrOutOfBounds)
		}
		if spec.Layer != AnyLayer && c.Z != spec.Layer {
			return nil, fmt.Errorf("place %s at %v: %w", t, c, ErrWrongLayer)
		}
		if c.Z != cells[0].Z {
			return nil, fmt.Errorf("place %s at %v: %w", t, c, ErrWrongLayer)
		}
		if _, taken := b.occupied[c]; taken || seen[c] {
			return nil, fmt.Errorf("place %s at %v: %w", t, c, ErrOverlap)
		}
		seen[c] = true
	}

	p := newPiece(t, cells)
	b.add(p)
	return p, nil
}

// PlaceFleet places every requested piece at random. Types are placed in
// PieceTypes order. On failure the pieces placed by this call are removed
// and the returned error wraps ErrPlacementExhausted.
func (b *Board) PlaceFleet(fleet Fleet, rng Rand) error {
	placed := len(b.pieces)
	for _, t := range PieceTypes {
		for range fleet[t] {
			if err := b.placeRandom(t, rng); err != nil {
				b.truncate(placed)
				return err
			}
		}
	}
	return nil
}

// placeRandom runs the bounded rejection-sampling search for one piece.
func (b *Board) placeRandom(t PieceType, rng Rand) error {
	spec := specs[t]
	fail := &PlacementError{Type: t, Dims: b.dims}

	if spec.Layer != AnyLayer && spec.Layer >= b.dims.Depth {
		return fail
	}

	// Only rotations that fit inside a layer can ever be accepted.
	var variants []Shape
	for _, s := range library[t] {
		maxX, maxY := s.Bounds()
		if maxX < b.dims.Cols && maxY < b.dims.Rows {
			variants = append(variants, s)
		}
	}
	if len(variants) == 0 {
		return fail
	}

	cells := make([]Coord, 0, len(variants[0]))
	for attempt := 1; attempt <= MaxPlacementAttempts; attempt++ {
		shape := variants[rng.Intn(len(variants))]

		z := spec.Layer
		if z == AnyLayer {
			// Redrawn every attempt so one crowded layer cannot exhaust them all.
			z = rng.Intn(b.dims.Depth)
		}

		maxX, maxY := shape.Bounds()
		ox := rng.Intn(b.dims.Cols - maxX)
		oy := rng.Intn(b.dims.Rows - maxY)

		cells = cells[:0]
		free := true
		for _, o := range shape {
			c := o.At(ox, oy, z)
			if !b.dims.Contains(c) {
				free = false
				break
			}
			if _, taken := b.occupied[c]; taken {
				free = false
				break
			}
			cells = append(cells, c)
		}
		if !free {
			continue
		}

		b.add(newPiece(t, cells))
		return nil
	}

	fail.Attempts = MaxPlacementAttempts
	return fail
}

func (b *Board) add(p *Piece) {
	b.pieces = append(b.pieces, p)
	for _, c := range p.cells {
		b.occupied[c] = p
	}
}

// truncate drops pieces placed after the first n.
func (b *Board) truncate(n int) {
	for _, p := range b.pieces[n:] {
		for _, c := range p.cells {
			delete(b.occupied, c)
		}
	}
	b.pieces = b.pieces[:n]
}

// Resolve fires at c. Out-of-bounds shots fail with ErrOutOfBounds and
// change nothing. A cell that was already shot reports the current state of
// whatever it holds without touching hit counts.
func (b *Board) Resolve(c Coord) (Signal, error) {
	if !b.InBounds(c) {
		return Miss, fmt.Errorf("resolve %v on %s board: %w", c, b.dims, ErrOutOfBounds)
	}

	if _, ok := b.shots[c]; !ok {
		b.shots[c] = struct{}{}
		if p, ok := b.occupied[c]; ok {
			p.registerHit(c)
		}
	}
	return b.signalAt(c), nil
}

// Shot returns the signal c reports now and whether c has been shot at.
// A hit cell turns into Kill once its piece is destroyed.
func (b *Board) Shot(c Coord) (Signal, bool) {
	if _, ok := b.shots[c]; !ok {
		return Miss, false
	}
	return b.signalAt(c), true
}

func (b *Board) signalAt(c Coord) Signal {
	if p, ok := b.occupied[c]; ok {
		return p.signal()
	}
	return Miss
}

// ShotCount returns the number of distinct cells fired at.
func (b *Board) ShotCount() int {
	return len(b.shots)
}

// FleetSunk reports whether every cell of every non-General piece has been
// hit. A single-hit piece reports Kill on its first hit but still has to be
// sunk completely before it counts here.
func (b *Board) FleetSunk() bool {
	for _, p := range b.pieces {
		if p.kind == General {
			continue
		}
		if !p.Sunk() {
			return false
		}
	}
	return true
}

// Remaining returns how many non-General pieces are not yet sunk.
func (b *Board) Remaining() int {
	n := 0
	for _, p := range b.pieces {
		if p.kind != General && !p.Sunk() {
			n++
		}
	}
	return n
}

// CellView is a read-only snapshot of one cell for display layers.
type CellView struct {
	Coord     Coord
	Occupied  bool
	Type      PieceType
	Shot      bool
	Hit       bool
	Destroyed bool
}

// Cell returns the display snapshot for c. Out-of-bounds cells are empty.
func (b *Board) Cell(c Coord) CellView {
	v := CellView{Coord: c}
	if _, ok := b.shots[c]; ok {
		v.Shot = true
	}
	if p, ok := b.occupied[c]; ok {
		v.Occupied = true
		v.Type = p.kind
		v.Hit = p.IsHit(c)
		v.Destroyed = p.signal() == Kill && p.HitCount() > 0
	}
	return v
}

// TargetSymbol returns the cell as the attacking player sees it:
// '.' unknown, 'O' miss, 'X' hit, '!' kill.
func (v CellView) TargetSymbol() rune {
	switch {
	case !v.Shot:
		return '.'
	case !v.Occupied:
		return 'O'
	case v.Destroyed:
		return '!'
	default:
		return 'X'
	}
}

// OwnerSymbol returns the cell as its owner sees it: '#' marks an intact
// vessel cell, hits and misses use the target symbols.
func (v CellView) OwnerSymbol() rune {
	switch {
	case v.Occupied && v.Hit && v.Destroyed:
		return '!'
	case v.Occupied && v.Hit:
		return 'X'
	case v.Occupied:
		return '#'
	case v.Shot:
		return 'O'
	default:
		return '.'
	}
}
