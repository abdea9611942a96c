package submarines

import (
	"fmt"

	platformcore "github.com/vovakirdan/submarines3d/internal/core"
	"github.com/vovakirdan/submarines3d/internal/games/submarines/core"
)

// Layer panel geometry: each cell is drawn as "s " inside a box with a
// title line above it.
const (
	panelGap   = 2
	titleLines = 1
)

var layerNames = [...]string{"Deep sea", "Surface", "Air"}

// symbolColors maps view symbols to screen colors.
var symbolColors = map[rune]platformcore.Color{
	'.': platformcore.ColorGray,
	'O': platformcore.ColorBlue,
	'X': platformcore.ColorYellow,
	'!': platformcore.ColorBrightRed,
	'#': platformcore.ColorGreen,
}

// PanelSize returns the width and height of one layer panel for dims.
func PanelSize(d core.Dims) (w, h int) {
	return d.Cols*2 + 3, d.Rows + 2 + titleLines
}

// BoardSize returns the area needed to draw every layer side by side.
func BoardSize(d core.Dims) (w, h int) {
	pw, ph := PanelSize(d)
	return d.Depth*pw + (d.Depth-1)*panelGap, ph
}

// LayerName returns the display name of depth layer z.
func LayerName(z int) string {
	if z >= 0 && z < len(layerNames) {
		return layerNames[z]
	}
	return fmt.Sprintf("Layer %d", z)
}

// DrawBoard draws every layer of b side by side into area, starting at its
// top-left corner. With owner set, intact vessel cells are shown. It returns
// the number of layers that fit.
func DrawBoard(dst *platformcore.Screen, area platformcore.Rect, b *core.Board, owner bool) int {
	d := b.Dims()
	pw, _ := PanelSize(d)

	panels := area.Columns(d.Depth, pw, panelGap)
	for z, panel := range panels {
		drawLayer(dst, panel, b, z, owner)
	}
	return len(panels)
}

func drawLayer(dst *platformcore.Screen, panel platformcore.Rect, b *core.Board, z int, owner bool) {
	d := b.Dims()
	title := fmt.Sprintf("Level %d %s", z, LayerName(z))
	if len(title) > panel.W {
		title = fmt.Sprintf("Level %d", z)
	}
	dst.DrawTextCentered(panel, panel.Y, title, platformcore.ColorCyan)

	box := platformcore.NewRect(panel.X, panel.Y+titleLines, panel.W, d.Rows+2)
	dst.DrawBox(box, platformcore.ColorGray)
	inner := box.Inset(1)

	for y := range d.Rows {
		for x := range d.Cols {
			v := b.Cell(core.C(x, y, z))
			sym := v.TargetSymbol()
			if owner {
				sym = v.OwnerSymbol()
			}
			dst.SetColored(inner.X+1+x*2, inner.Y+y, sym, symbolColors[sym])
		}
	}
}
