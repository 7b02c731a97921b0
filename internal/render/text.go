package render

import (
	"fmt"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

const (
	// CellWidth is the number of screen columns per grid cell.
	CellWidth = 2
	hudRows   = 2
)

// MinScreenSize returns the terminal size needed to show a w×h board
// with its fence and HUD.
func MinScreenSize(w, h int) (cols, rows int) {
	return w*CellWidth + 2, h + 2 + hudRows
}

// HUD is the information shown above the board that is not part of a snapshot.
type HUD struct {
	Variant string
	Best    int
}

// TextRenderer draws snapshots into a character screen, two columns per cell.
// Pixel cell size has no meaning here and is ignored.
type TextRenderer struct {
	dst    *core.Screen
	assets *AssetTable
}

// NewTextRenderer returns a renderer that draws into dst.
func NewTextRenderer(dst *core.Screen, assets *AssetTable) *TextRenderer {
	if assets == nil {
		assets = DefaultAssets()
	}
	return &TextRenderer{dst: dst, assets: assets}
}

// Screen returns the target buffer.
func (r *TextRenderer) Screen() *core.Screen {
	return r.dst
}

// Draw clears the screen and draws a complete frame with HUD and overlay.
func (r *TextRenderer) Draw(snap snake.Snapshot, hud HUD) {
	r.dst.Clear()

	cols, rows := MinScreenSize(snap.Width, snap.Height)
	if r.dst.Width() < cols || r.dst.Height() < rows {
		r.DrawTooSmall(cols, rows)
		return
	}

	r.DrawHUD(snap, hud)
	Frame(r, snap)
	r.DrawOverlay(snap)
}

// fence returns the screen rect of the board including its border.
func (r *TextRenderer) fence(snap snake.Snapshot) core.Rect {
	w := snap.Width*CellWidth + 2
	h := snap.Height + 2
	x := (r.dst.Width() - w) / 2
	y := hudRows + max(0, (r.dst.Height()-hudRows-h)/2)
	return core.NewRect(x, y, w, h)
}

// cellOrigin returns the screen position of grid cell p.
func (r *TextRenderer) cellOrigin(snap snake.Snapshot, p snake.Point) (int, int) {
	f := r.fence(snap)
	return f.X + 1 + p.X*CellWidth, f.Y + 1 + p.Y
}

func (r *TextRenderer) inBoard(snap snake.Snapshot, p snake.Point) bool {
	return p.X >= 0 && p.X < snap.Width && p.Y >= 0 && p.Y < snap.Height
}

// DrawBoard draws the fence around the grid.
func (r *TextRenderer) DrawBoard(snap snake.Snapshot) {
	r.dst.DrawBox(r.fence(snap), r.assets.FenceColor)
}

// DrawFood fills the food footprint. Food parked off the board is skipped.
func (r *TextRenderer) DrawFood(snap snake.Snapshot) {
	f := snap.Food
	if f.Pos.X < 0 || f.Pos.Y < 0 {
		return
	}

	if f.Size == 1 {
		x, y := r.cellOrigin(snap, f.Pos)
		r.dst.SetColored(x, y, r.assets.Food, r.assets.FoodColor)
		return
	}

	x, y := r.cellOrigin(snap, f.Pos)
	// The last spacer column stays empty so the block does not touch a neighbour.
	r.dst.FillRect(core.NewRect(x, y, f.Size*CellWidth-1, f.Size), r.assets.FoodFill, r.assets.FoodColor)
}

// DrawSnake draws tail, interior segments and head with orientation glyphs.
func (r *TextRenderer) DrawSnake(snap snake.Snapshot) {
	body := snap.Body
	n := len(body)
	if n == 0 {
		return
	}

	for i := 0; i < n-1; i++ {
		next := mustDirection(body[i], body[i+1])
		linked := next == snake.DirRight

		var glyph rune
		if i == 0 {
			glyph = r.assets.TailGlyph(next)
		} else {
			in := mustDirection(body[i-1], body[i])
			glyph = r.assets.BodyGlyph(in, next)
			linked = linked || in == snake.DirLeft
		}
		r.drawCell(snap, body[i], glyph, linked, r.assets.BodyColor)
	}

	headColor := r.assets.HeadColor
	if snap.State == snake.StateGameOver && !snap.Outcome.IsWin() {
		headColor = r.assets.DeadColor
	}
	// The neck sits opposite the direction of travel.
	linked := n > 1 && snap.Direction == snake.DirLeft
	r.drawCell(snap, body[n-1], r.assets.HeadGlyph(snap.Direction), linked, headColor)
}

// drawCell writes one grid cell; linked fills the spacer column with a joint.
func (r *TextRenderer) drawCell(snap snake.Snapshot, p snake.Point, glyph rune, linked bool, c core.Color) {
	if !r.inBoard(snap, p) {
		return
	}
	x, y := r.cellOrigin(snap, p)
	r.dst.SetColored(x, y, glyph, c)
	spacer := ' '
	if linked {
		spacer = r.assets.Link
	}
	r.dst.SetColored(x+1, y, spacer, c)
}

func mustDirection(from, to snake.Point) snake.Direction {
	d, ok := snake.DirectionBetween(from, to)
	if !ok {
		panic(fmt.Sprintf("render: segments %v and %v are not adjacent", from, to))
	}
	return d
}
