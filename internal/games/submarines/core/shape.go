package core

import "sort"

// Shape is a set of 2D offsets describing a vessel footprint.
// Normalized shapes are sorted by (Y, X) so equal sets compare equal slice-wise.
type Shape []Offset

// Equal returns true if both shapes hold the same offsets in the same order.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Bounds returns the largest X and Y offsets of the shape.
func (s Shape) Bounds() (maxX, maxY int) {
	for i, o := range s {
		if i == 0 || o.X > maxX {
			maxX = o.X
		}
		if i == 0 || o.Y > maxY {
			maxY = o.Y
		}
	}
	return maxX, maxY
}

// Width returns the number of columns the shape spans.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	minX, maxX := s[0].X, s[0].X
	for _, o := range s {
		minX = min(minX, o.X)
		maxX = max(maxX, o.X)
	}
	return maxX - minX + 1
}

// Height returns the number of rows the shape spans.
func (s Shape) Height() int {
	if len(s) == 0 {
		return 0
	}
	minY, maxY := s[0].Y, s[0].Y
	for _, o := range s {
		minY = min(minY, o.Y)
		maxY = max(maxY, o.Y)
	}
	return maxY - minY + 1
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Normalize translates offsets so the minimum X and Y are both zero.
// Duplicate offsets collapse into one. Panics on an empty shape.
func Normalize(offsets []Offset) Shape {
	if len(offsets) == 0 {
		panic("core: normalize of empty shape")
	}

	minX, minY := offsets[0].X, offsets[0].Y
	for _, o := range offsets[1:] {
		minX = min(minX, o.X)
		minY = min(minY, o.Y)
	}

	seen := make(map[Offset]bool, len(offsets))
	out := make(Shape, 0, len(offsets))
	for _, o := range offsets {
		n := Offset{X: o.X - minX, Y: o.Y - minY}
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Rotate turns every offset 90 degrees about the origin without normalizing.
func Rotate(offsets []Offset) []Offset {
	out := make([]Offset, len(offsets))
	for i, o := range offsets {
		out[i] = o.rotate()
	}
	return out
}

// Rotations returns the distinct normalized 90-degree rotations of base,
// in the order they are first produced (0, 90, 180, 270 degrees).
func Rotations(base []Offset) []Shape {
	variants := make([]Shape, 0, 4)
	current := base
	for range 4 {
		norm := Normalize(current)
		if !containsShape(variants, norm) {
			variants = append(variants, norm)
		}
		current = Rotate(current)
	}
	return variants
}

func containsShape(list []Shape, s Shape) bool {
	for _, existing := range list {
		if existing.Equal(s) {
			return true
		}
	}
	return false
}

// Spec is the constant data record carried by each piece type.
type Spec struct {
	Type      PieceType
	Layer     int   // Forced depth layer, or AnyLayer
	Footprint Shape // Canonical footprint before normalization
	Rule      KillRule
	Decisive  bool // Destroying this piece wins the game outright
}

var specs = map[PieceType]Spec{
	Submarine: {
		Type:      Submarine,
		Layer:     0,
		Footprint: Shape{O(0, 0), O(1, 0), O(2, 0)},
		Rule:      KillSingleHit,
	},
	Destroyer: {
		Type:      Destroyer,
		Layer:     1,
		Footprint: Shape{O(0, 0), O(1, 0), O(2, 0), O(3, 0)},
		Rule:      KillFullCoverage,
	},
	Jet: {
		Type:      Jet,
		Layer:     2,
		Footprint: Shape{O(-1, 0), O(0, 0), O(1, 0), O(0, -1), O(0, 1), O(0, 2)},
		Rule:      KillSingleHit,
	},
	General: {
		Type:      General,
		Layer:     AnyLayer,
		Footprint: Shape{O(0, 0)},
		Rule:      KillSingleHit,
		Decisive:  true,
	},
}

// library holds the rotation set of every piece type. Built once, never mutated.
var library = buildLibrary()

func buildLibrary() map[PieceType][]Shape {
	lib := make(map[PieceType][]Shape, len(specs))
	for t, spec := range specs {
		if t == General {
			lib[t] = []Shape{Normalize(spec.Footprint)}
			continue
		}
		lib[t] = Rotations(spec.Footprint)
	}
	return lib
}

// SpecFor returns the constant record for a piece type.
func SpecFor(t PieceType) (Spec, bool) {
	spec, ok := specs[t]
	if !ok {
		return Spec{}, false
	}
	spec.Footprint = spec.Footprint.Clone()
	return spec, true
}

// Variants returns copies of the distinct rotations for a piece type.
func Variants(t PieceType) []Shape {
	shapes := library[t]
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = s.Clone()
	}
	return out
}

// CellCount returns the number of cells a piece of type t occupies.
func CellCount(t PieceType) int {
	shapes := library[t]
	if len(shapes) == 0 {
		return 0
	}
	return len(shapes[0])
}
