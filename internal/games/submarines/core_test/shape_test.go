package core_test

import (
	"testing"

	"github.com/vovakirdan/submarines3d/internal/games/submarines/core"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name string
		in   []core.Offset
		want core.Shape
	}{
		{
			name: "translate to origin and sort",
			in:   []core.Offset{core.O(2, 5), core.O(3, 7), core.O(4, 5)},
			want: core.Shape{core.O(0, 0), core.O(2, 0), core.O(1, 2)},
		},
		{
			name: "negative offsets",
			in:   []core.Offset{core.O(-1, 0), core.O(0, -1), core.O(0, 0)},
			want: core.Shape{core.O(1, 0), core.O(0, 1), core.O(1, 1)},
		},
		{
			name: "duplicates collapse",
			in:   []core.Offset{core.O(1, 1), core.O(1, 1), core.O(2, 1)},
			want: core.Shape{core.O(0, 0), core.O(1, 0)},
		},
		{
			name: "single cell",
			in:   []core.Offset{core.O(7, -3)},
			want: core.Shape{core.O(0, 0)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := core.Normalize(tc.in)
			if !got.Equal(tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestNormalizeEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty shape")
		}
	}()
	core.Normalize(nil)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, pt := range core.PieceTypes {
		for _, s := range core.Variants(pt) {
			again := core.Normalize(s)
			if !again.Equal(s) {
				t.Errorf("%s: normalize not idempotent: %v -> %v", pt, s, again)
			}
		}
	}
}

func TestRotationsOfLine(t *testing.T) {
	rots := core.Rotations([]core.Offset{core.O(0, 0), core.O(1, 0)})
	if len(rots) != 2 {
		t.Fatalf("expected 2 rotations, got %d: %v", len(rots), rots)
	}
	horizontal := core.Shape{core.O(0, 0), core.O(1, 0)}
	vertical := core.Shape{core.O(0, 0), core.O(0, 1)}
	if !rots[0].Equal(horizontal) {
		t.Errorf("expected first rotation %v, got %v", horizontal, rots[0])
	}
	if !rots[1].Equal(vertical) {
		t.Errorf("expected second rotation %v, got %v", vertical, rots[1])
	}
}

func TestVariantCounts(t *testing.T) {
	testCases := []struct {
		pt    core.PieceType
		count int
		cells int
	}{
		{core.Submarine, 2, 3},
		{core.Destroyer, 2, 4},
		{core.Jet, 4, 6},
		{core.General, 1, 1},
	}

	for _, tc := range testCases {
		vs := core.Variants(tc.pt)
		if len(vs) != tc.count {
			t.Errorf("%s: expected %d variants, got %d", tc.pt, tc.count, len(vs))
		}
		if got := core.CellCount(tc.pt); got != tc.cells {
			t.Errorf("%s: expected %d cells, got %d", tc.pt, tc.cells, got)
		}
		for _, v := range vs {
			if len(v) != tc.cells {
				t.Errorf("%s: variant %v has %d cells, want %d", tc.pt, v, len(v), tc.cells)
			}
		}
	}
}

// Every stored rotation, turned once more, must land back in the set, and the
// set must hold no duplicates.
func TestRotationClosure(t *testing.T) {
	for _, pt := range core.PieceTypes {
		vs := core.Variants(pt)
		for i, v := range vs {
			turned := core.Normalize(core.Rotate(v))
			found := false
			for _, other := range vs {
				if other.Equal(turned) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s: rotation of %v is %v, not in set", pt, v, turned)
			}
			for j := i + 1; j < len(vs); j++ {
				if vs[j].Equal(v) {
					t.Errorf("%s: duplicate variant %v", pt, v)
				}
			}
		}
	}
}

func TestFourRotationsReturnBase(t *testing.T) {
	for _, pt := range core.PieceTypes {
		spec, ok := core.SpecFor(pt)
		if !ok {
			t.Fatalf("%s: missing spec", pt)
		}
		base := core.Normalize(spec.Footprint)

		turned := []core.Offset(spec.Footprint)
		for range 4 {
			turned = core.Rotate(turned)
		}
		if got := core.Normalize(turned); !got.Equal(base) {
			t.Errorf("%s: four rotations gave %v, want %v", pt, got, base)
		}
	}
}

func TestVariantsAreNormalized(t *testing.T) {
	for _, pt := range core.PieceTypes {
		for _, v := range core.Variants(pt) {
			minX, minY := v[0].X, v[0].Y
			for _, o := range v {
				minX = min(minX, o.X)
				minY = min(minY, o.Y)
			}
			if minX != 0 || minY != 0 {
				t.Errorf("%s: variant %v not anchored at origin", pt, v)
			}
		}
	}
}

func TestVariantsReturnsCopies(t *testing.T) {
	vs := core.Variants(core.Submarine)
	vs[0][0] = core.O(9, 9)

	fresh := core.Variants(core.Submarine)
	if fresh[0][0] == core.O(9, 9) {
		t.Error("mutating a returned variant changed the library")
	}
}

func TestSpecFor(t *testing.T) {
	testCases := []struct {
		pt       core.PieceType
		layer    int
		rule     core.KillRule
		decisive bool
	}{
		{core.Submarine, 0, core.KillSingleHit, false},
		{core.Destroyer, 1, core.KillFullCoverage, false},
		{core.Jet, 2, core.KillSingleHit, false},
		{core.General, core.AnyLayer, core.KillSingleHit, true},
	}

	for _, tc := range testCases {
		spec, ok := core.SpecFor(tc.pt)
		if !ok {
			t.Errorf("%s: missing spec", tc.pt)
			continue
		}
		if spec.Layer != tc.layer {
			t.Errorf("%s: expected layer %d, got %d", tc.pt, tc.layer, spec.Layer)
		}
		if spec.Rule != tc.rule {
			t.Errorf("%s: expected rule %d, got %d", tc.pt, tc.rule, spec.Rule)
		}
		if spec.Decisive != tc.decisive {
			t.Errorf("%s: expected decisive=%v, got %v", tc.pt, tc.decisive, spec.Decisive)
		}
	}

	if _, ok := core.SpecFor(core.PieceNone); ok {
		t.Error("expected no spec for PieceNone")
	}
}
