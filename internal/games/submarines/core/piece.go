package core

// Piece is one placed vessel. Its cells are fixed at placement; only the
// owning Board records hits against it.
type Piece struct {
	kind  PieceType
	rule  KillRule
	cells []Coord
	index map[Coord]bool
	hits  map[Coord]bool
}

func newPiece(t PieceType, cells []Coord) *Piece {
	spec := specs[t]
	p := &Piece{
		kind:  t,
		rule:  spec.Rule,
		cells: make([]Coord, len(cells)),
		index: make(map[Coord]bool, len(cells)),
		hits:  make(map[Coord]bool, len(cells)),
	}
	copy(p.cells, cells)
	for _, c := range cells {
		p.index[c] = true
	}
	return p
}

// Type returns the vessel type.
func (p *Piece) Type() PieceType {
	return p.kind
}

// Cells returns a copy of the occupied coordinates.
func (p *Piece) Cells() []Coord {
	out := make([]Coord, len(p.cells))
	copy(out, p.cells)
	return out
}

// Size returns the number of cells the piece occupies.
func (p *Piece) Size() int {
	return len(p.cells)
}

// Occupies reports whether c is one of the piece's cells.
func (p *Piece) Occupies(c Coord) bool {
	return p.index[c]
}

// HitCount returns how many distinct cells have been hit.
func (p *Piece) HitCount() int {
	return len(p.hits)
}

// IsHit reports whether the cell c of this piece has been hit.
func (p *Piece) IsHit(c Coord) bool {
	return p.hits[c]
}

// Destroyed applies the piece's kill rule.
func (p *Piece) Destroyed() bool {
	switch p.rule {
	case KillSingleHit:
		return len(p.hits) >= 1
	default:
		return len(p.hits) == len(p.cells)
	}
}

// Sunk reports whether every cell of the piece has been hit.
func (p *Piece) Sunk() bool {
	return len(p.hits) == len(p.cells)
}

// registerHit records a hit on c. Cells outside the piece are ignored and
// repeated hits are not counted twice.
func (p *Piece) registerHit(c Coord) {
	if !p.Occupies(c) {
		return
	}
	p.hits[c] = true
}

// signal returns the outcome a shot on this piece reports.
func (p *Piece) signal() Signal {
	if p.kind == General || p.Destroyed() {
		return Kill
	}
	return Hit
}
