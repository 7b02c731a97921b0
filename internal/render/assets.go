package render

import (
	"fmt"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

// SegmentKey identifies an interior body segment by the direction from the
// previous segment into it and the direction from it to the next one.
type SegmentKey struct {
	In  snake.Direction
	Out snake.Direction
}

// AssetTable holds the glyphs and colours for one visual theme.
// Lookups panic on keys a valid snake cannot produce.
type AssetTable struct {
	Head map[snake.Direction]rune
	Tail map[snake.Direction]rune // keyed by direction from tail to its neighbour
	Body map[SegmentKey]rune

	Link     rune // fills the spacer column between horizontally joined cells
	Food     rune // single-cell food
	FoodFill rune // larger footprints

	HeadColor  core.Color
	DeadColor  core.Color
	BodyColor  core.Color
	FoodColor  core.Color
	FenceColor core.Color
}

// DefaultAssets returns the box-drawing theme.
func DefaultAssets() *AssetTable {
	return &AssetTable{
		Head: map[snake.Direction]rune{
			snake.DirRight: '▶',
			snake.DirLeft:  '◀',
			snake.DirUp:    '▲',
			snake.DirDown:  '▼',
		},
		Tail: map[snake.Direction]rune{
			snake.DirRight: '╶',
			snake.DirLeft:  '╴',
			snake.DirUp:    '╵',
			snake.DirDown:  '╷',
		},
		Body: map[SegmentKey]rune{
			{snake.DirRight, snake.DirRight}: '═',
			{snake.DirLeft, snake.DirLeft}:   '═',
			{snake.DirUp, snake.DirUp}:       '║',
			{snake.DirDown, snake.DirDown}:   '║',

			{snake.DirRight, snake.DirUp}:   '╝',
			{snake.DirRight, snake.DirDown}: '╗',
			{snake.DirLeft, snake.DirUp}:    '╚',
			{snake.DirLeft, snake.DirDown}:  '╔',
			{snake.DirUp, snake.DirRight}:   '╔',
			{snake.DirUp, snake.DirLeft}:    '╗',
			{snake.DirDown, snake.DirRight}: '╚',
			{snake.DirDown, snake.DirLeft}:  '╝',
		},
		Link:     '═',
		Food:     '●',
		FoodFill: '▓',

		HeadColor:  core.ColorBrightGreen,
		DeadColor:  core.ColorBrightRed,
		BodyColor:  core.ColorGreen,
		FoodColor:  core.ColorBrightYellow,
		FenceColor: core.ColorGray,
	}
}

// HeadGlyph returns the head glyph for the last completed move.
func (a *AssetTable) HeadGlyph(d snake.Direction) rune {
	r, ok := a.Head[d]
	if !ok {
		panic(fmt.Sprintf("render: no head glyph for direction %v", d))
	}
	return r
}

// TailGlyph returns the tail glyph pointing at its neighbour.
func (a *AssetTable) TailGlyph(d snake.Direction) rune {
	r, ok := a.Tail[d]
	if !ok {
		panic(fmt.Sprintf("render: no tail glyph for direction %v", d))
	}
	return r
}

// BodyGlyph returns the glyph for an interior segment.
func (a *AssetTable) BodyGlyph(in, out snake.Direction) rune {
	r, ok := a.Body[SegmentKey{In: in, Out: out}]
	if !ok {
		panic(fmt.Sprintf("render: no body glyph for segment %v->%v", in, out))
	}
	return r
}
