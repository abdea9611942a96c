package core

import "fmt"

// Coord represents one cell of the 3D board.
// X is the column, Y the row and Z the depth layer (0 is the deep sea).
type Coord struct {
	X int
	Y int
	Z int
}

// C is a convenience constructor for Coord.
func C(x, y, z int) Coord {
	return Coord{X: x, Y: y, Z: z}
}

// FromZYX builds a Coord from the (depth, row, column) order players type.
func FromZYX(z, y, x int) Coord {
	return Coord{X: x, Y: y, Z: z}
}

// String returns the coordinate in the z,y,x order used for input.
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d,%d", c.Z, c.Y, c.X)
}

// Offset is a 2D cell offset inside a shape footprint.
type Offset struct {
	X int
	Y int
}

// O is a convenience constructor for Offset.
func O(x, y int) Offset {
	return Offset{X: x, Y: y}
}

// rotate turns the offset 90 degrees about the origin: (x,y) -> (y,-x).
func (o Offset) rotate() Offset {
	return Offset{X: o.Y, Y: -o.X}
}

// At places the offset on layer z after translating it by (ox, oy).
func (o Offset) At(ox, oy, z int) Coord {
	return Coord{X: o.X + ox, Y: o.Y + oy, Z: z}
}

// Dims describes the size of a board.
type Dims struct {
	Depth int
	Rows  int
	Cols  int
}

// Contains reports whether c lies inside [0,Depth) x [0,Rows) x [0,Cols).
func (d Dims) Contains(c Coord) bool {
	return c.Z >= 0 && c.Z < d.Depth &&
		c.Y >= 0 && c.Y < d.Rows &&
		c.X >= 0 && c.X < d.Cols
}

// String returns the dimensions as depth x rows x cols.
func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d", d.Depth, d.Rows, d.Cols)
}
