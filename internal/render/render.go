// Package render draws snake snapshots into a core.Screen.
//
// The simulation carries no drawing code. A Renderer receives read-only
// snapshots and an AssetTable decides which glyph each segment gets.
package render

import "github.com/vovakirdan/snake-arcade/internal/games/snake"

// Renderer is the drawing capability set a frontend must provide.
type Renderer interface {
	DrawBoard(snap snake.Snapshot)
	DrawFood(snap snake.Snapshot)
	DrawSnake(snap snake.Snapshot)
}

// Frame draws the board, then food, then the snake so the head ends up on top.
func Frame(r Renderer, snap snake.Snapshot) {
	r.DrawBoard(snap)
	r.DrawFood(snap)
	r.DrawSnake(snap)
}
