package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

// DrawHUD draws the status line and separator.
func (r *TextRenderer) DrawHUD(snap snake.Snapshot, hud HUD) {
	title := " Snake"
	if hud.Variant != "" {
		title += " · " + hud.Variant
	}
	line := fmt.Sprintf("%s   Score: %d  Best: %d  Length: %d", title, snap.Score, max(hud.Best, snap.Score), len(snap.Body))
	r.dst.DrawTextColored(0, 0, line, core.ColorWhite)

	for x := range r.dst.Width() {
		r.dst.SetColored(x, 1, '─', r.assets.FenceColor)
	}
}

// OverlayLines returns the message shown over the board for the snapshot's
// state, or nil while the game is running.
func OverlayLines(snap snake.Snapshot) []string {
	switch snap.State {
	case snake.StateNotStarted:
		return []string{"Snake", "Press Enter to start"}
	case snake.StatePaused:
		return []string{"Paused", "Press P to continue"}
	case snake.StateGameOver:
		restart := "Press R to restart"
		switch snap.Outcome {
		case snake.OutcomeWin:
			return []string{"You Win!", fmt.Sprintf("Final Score: %d", snap.Score), restart}
		case snake.OutcomeHitSelf:
			return []string{"Game Over", "You ran into yourself", restart}
		case snake.OutcomeHitWall:
			return []string{"Game Over", "You hit the wall", restart}
		case snake.OutcomeFoodExhausted:
			return []string{"Board Full", "No room left for food", restart}
		case snake.OutcomeNone:
		}
		return []string{"Game Over", restart}
	case snake.StateRunning:
	}
	return nil
}

// DrawOverlay draws a centered box with the state message, if any.
func (r *TextRenderer) DrawOverlay(snap snake.Snapshot) {
	lines := OverlayLines(snap)
	if len(lines) == 0 {
		return
	}
	r.drawMessage(lines, core.ColorWhite)
}

// DrawTooSmall replaces the frame with a resize hint.
func (r *TextRenderer) DrawTooSmall(cols, rows int) {
	r.drawMessage([]string{
		"Window too small",
		fmt.Sprintf("Need %dx%d", cols, rows),
	}, core.ColorYellow)
}

func (r *TextRenderer) drawMessage(lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = (r.dst.Width() - box.W) / 2
	box.Y = (r.dst.Height() - box.H) / 2

	r.dst.FillRect(box, ' ', core.ColorDefault)
	r.dst.DrawBox(box, c)
	for i, l := range lines {
		r.dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}

// plainCols keeps the HUD readable on small boards.
const plainCols = 56

// Plain renders a snapshot to a plain text frame just large enough for the
// board and HUD. Used for screenshots.
func Plain(snap snake.Snapshot, hud HUD) string {
	cols, rows := MinScreenSize(snap.Width, snap.Height)
	scr := core.NewScreen(max(cols, plainCols), rows)
	NewTextRenderer(scr, nil).Draw(snap, hud)

	out := strings.Split(scr.String(), "\n")
	for i := range out {
		out[i] = strings.TrimRight(out[i], " ")
	}
	return strings.Join(out, "\n")
}
