package core

import "fmt"

// CheckFleet rejects fleets that cannot be placed on a board of the given
// size before any random search is attempted. It requires exactly one
// General and, for every other type, no more pieces than a single layer can
// hold in its best axis-aligned packing.
func CheckFleet(dims Dims, fleet Fleet) error {
	if dims.Depth < 1 || dims.Rows < 1 || dims.Cols < 1 {
		return fmt.Errorf("invalid board %s: %w", dims, ErrOutOfBounds)
	}
	if fleet[General] != 1 {
		return fmt.Errorf("fleet has %d generals: %w", fleet[General], ErrGeneralCount)
	}

	for _, t := range PieceTypes {
		count := fleet[t]
		if t == General {
			continue
		}
		if count < 0 {
			return fmt.Errorf("negative %s count %d", t, count)
		}
		if count == 0 {
			continue
		}

		limit := LayerCapacity(t, dims.Rows, dims.Cols)
		if specs[t].Layer >= dims.Depth {
			limit = 0
		}
		if count > limit {
			return &FleetError{Type: t, Count: count, Max: limit, Rows: dims.Rows, Cols: dims.Cols}
		}
	}
	return nil
}

// LayerCapacity estimates how many pieces of type t fit on a rows x cols
// layer when all are laid out in the same orientation as the base rotation
// or its 90-degree turn.
func LayerCapacity(t PieceType, rows, cols int) int {
	shapes := library[t]
	if len(shapes) == 0 {
		return 0
	}
	base := shapes[0]
	w, h := base.Width(), base.Height()

	horizontal := (rows / h) * (cols / w)
	vertical := (rows / w) * (cols / h)
	return max(horizontal, vertical)
}
