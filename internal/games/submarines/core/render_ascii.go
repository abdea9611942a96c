package core

import (
	"fmt"
	"strings"
)

// RenderTargetASCII renders what an attacker knows about board b, one block
// per depth layer. Used for debugging, tests and the plain line frontend.
//
// Symbols: '.' unknown, 'O' miss, 'X' hit, '!' kill.
func RenderTargetASCII(b *Board) string {
	return renderLayers(b, CellView.TargetSymbol)
}

// RenderFleetASCII renders board b as its owner sees it ('#' marks intact
// vessel cells).
func RenderFleetASCII(b *Board) string {
	return renderLayers(b, CellView.OwnerSymbol)
}

func renderLayers(b *Board, symbol func(CellView) rune) string {
	var sb strings.Builder
	d := b.Dims()
	for z := 0; z < d.Depth; z++ {
		sb.WriteString(fmt.Sprintf(" Level %d:\n", z))
		for y := 0; y < d.Rows; y++ {
			for x := 0; x < d.Cols; x++ {
				if x > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteRune(symbol(b.Cell(C(x, y, z))))
			}
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderShape draws a normalized shape as a small grid of '#' and '.'.
func RenderShape(s Shape) string {
	maxX, maxY := s.Bounds()
	cells := make(map[Offset]bool, len(s))
	for _, o := range s {
		cells[o] = true
	}

	var sb strings.Builder
	for y := 0; y <= maxY; y++ {
		for x := 0; x <= maxX; x++ {
			if cells[O(x, y)] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
