package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

func runningSnapshot(body []snake.Point, dir snake.Direction, food snake.Food) snake.Snapshot {
	return snake.Snapshot{
		State:     snake.StateRunning,
		Body:      body,
		Direction: dir,
		Food:      food,
		Width:     10,
		Height:    10,
		Score:     len(body) - snake.InitialLength,
	}
}

// newBoardScreen returns a screen that fits a 10×10 board exactly, so cell
// (0,0) lands at screen (1,3).
func newBoardScreen() (*core.Screen, *TextRenderer) {
	cols, rows := MinScreenSize(10, 10)
	scr := core.NewScreen(cols, rows)
	return scr, NewTextRenderer(scr, nil)
}

var offBoard = snake.Food{Pos: snake.Point{X: -1, Y: -1}, Size: 1}

func TestBodyGlyphsAreTotal(t *testing.T) {
	a := DefaultAssets()
	count := 0
	for _, in := range snake.Directions {
		for _, out := range snake.Directions {
			if out == in.Opposite() {
				continue
			}
			count++
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("BodyGlyph(%v, %v) panicked: %v", in, out, r)
					}
				}()
				a.BodyGlyph(in, out)
			}()
		}
		a.HeadGlyph(in)
		a.TailGlyph(in)
	}
	if count != 12 || len(a.Body) != 12 {
		t.Errorf("expected 12 segment keys, walked %d, table has %d", count, len(a.Body))
	}
}

func TestUnmappedSegmentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a reversed segment")
		}
	}()
	DefaultAssets().BodyGlyph(snake.DirRight, snake.DirLeft)
}

func TestNonAdjacentBodyPanics(t *testing.T) {
	_, r := newBoardScreen()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a broken body")
		}
	}()
	r.DrawSnake(runningSnapshot([]snake.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, snake.DirRight, offBoard))
}

func TestDrawSnakeOrientation(t *testing.T) {
	tests := []struct {
		name     string
		body     []snake.Point
		dir      snake.Direction
		expected map[int]string // screen row -> prefix
	}{
		{
			name:     "straight right",
			body:     []snake.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
			dir:      snake.DirRight,
			expected: map[int]string{3: "│╶═══▶ "},
		},
		{
			name:     "straight left",
			body:     []snake.Point{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}},
			dir:      snake.DirLeft,
			expected: map[int]string{3: "│  ◀═══╴ "},
		},
		{
			name: "turn down",
			body: []snake.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
			dir:  snake.DirDown,
			expected: map[int]string{
				3: "│╶═╗ ",
				4: "│  ▼ ",
			},
		},
		{
			name: "turn up then right",
			body: []snake.Point{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 1}},
			dir:  snake.DirRight,
			expected: map[int]string{
				4: "│╔═▶ ",
				5: "│╵ ",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scr, r := newBoardScreen()
			r.DrawBoard(runningSnapshot(tc.body, tc.dir, offBoard))
			r.DrawSnake(runningSnapshot(tc.body, tc.dir, offBoard))

			for y, prefix := range tc.expected {
				if row := scr.Row(y); !strings.HasPrefix(row, prefix) {
					t.Errorf("row %d = %q, expected prefix %q", y, row, prefix)
				}
			}
		})
	}
}

func TestDrawFood(t *testing.T) {
	scr, r := newBoardScreen()
	r.DrawFood(runningSnapshot(nil, snake.DirRight, snake.Food{Pos: snake.Point{X: 5, Y: 5}, Size: 1}))
	if got := scr.Get(11, 8); got != '●' {
		t.Errorf("food glyph = %q, expected '●'", got)
	}

	scr, r = newBoardScreen()
	r.DrawFood(runningSnapshot(nil, snake.DirRight, snake.Food{Pos: snake.Point{X: 2, Y: 2}, Size: 2}))
	for y := 5; y <= 6; y++ {
		for x := 5; x <= 7; x++ {
			if scr.Get(x, y) != '▓' {
				t.Errorf("(%d,%d) = %q, expected food fill", x, y, scr.Get(x, y))
			}
		}
	}
	if scr.Get(8, 5) != ' ' {
		t.Errorf("spacer after food = %q, expected blank", scr.Get(8, 5))
	}

	scr, r = newBoardScreen()
	r.DrawFood(runningSnapshot(nil, snake.DirRight, offBoard))
	if strings.TrimSpace(scr.String()) != "" {
		t.Error("parked food should not be drawn")
	}
}

func TestDeadHeadColor(t *testing.T) {
	scr, r := newBoardScreen()
	snap := runningSnapshot([]snake.Point{{X: 6, Y: 4}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 5, Y: 5}, {X: 6, Y: 5}}, snake.DirRight, offBoard)
	snap.State = snake.StateGameOver
	snap.Outcome = snake.OutcomeHitSelf

	r.DrawSnake(snap)

	if c := scr.GetCell(13, 8).Color; c != DefaultAssets().DeadColor {
		t.Errorf("head color = %v, expected dead color", c)
	}
}

func TestOverlayLines(t *testing.T) {
	tests := []struct {
		state    snake.State
		outcome  snake.Outcome
		contains string
	}{
		{snake.StateNotStarted, snake.OutcomeNone, "Press Enter to start"},
		{snake.StatePaused, snake.OutcomeNone, "Paused"},
		{snake.StateGameOver, snake.OutcomeWin, "You Win!"},
		{snake.StateGameOver, snake.OutcomeHitWall, "You hit the wall"},
		{snake.StateGameOver, snake.OutcomeHitSelf, "You ran into yourself"},
		{snake.StateGameOver, snake.OutcomeFoodExhausted, "No room left for food"},
	}

	for _, tc := range tests {
		t.Run(tc.contains, func(t *testing.T) {
			snap := runningSnapshot([]snake.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, snake.DirRight, offBoard)
			snap.State = tc.state
			snap.Outcome = tc.outcome

			if out := Plain(snap, HUD{Variant: "classic"}); !strings.Contains(out, tc.contains) {
				t.Errorf("frame missing %q:\n%s", tc.contains, out)
			}
		})
	}

	if lines := OverlayLines(runningSnapshot(nil, snake.DirRight, offBoard)); lines != nil {
		t.Errorf("running game should have no overlay, got %v", lines)
	}
}

func TestDrawHUD(t *testing.T) {
	snap := runningSnapshot([]snake.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, snake.DirRight, offBoard)
	out := Plain(snap, HUD{Variant: "wide", Best: 7})
	first := strings.SplitN(out, "\n", 2)[0]

	for _, want := range []string{"wide", "Score: 1", "Best: 7", "Length: 4"} {
		if !strings.Contains(first, want) {
			t.Errorf("HUD %q missing %q", first, want)
		}
	}
}

func TestDrawTooSmall(t *testing.T) {
	scr := core.NewScreen(30, 8)
	r := NewTextRenderer(scr, nil)
	snap := runningSnapshot([]snake.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, snake.DirRight, offBoard)
	snap.Width, snap.Height = 20, 20

	r.Draw(snap, HUD{})

	out := scr.String()
	if !strings.Contains(out, "Window too small") || !strings.Contains(out, "Need 42x24") {
		t.Errorf("expected resize hint, got:\n%s", out)
	}
}
