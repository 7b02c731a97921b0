package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// MaxPlacementAttempts bounds the random sampling in PlaceFood.
const MaxPlacementAttempts = 100

// ErrNoFoodPosition is returned when PlaceFood gives up; the board is
// effectively saturated.
var ErrNoFoodPosition = errors.New("snake: no free position for food")

// Food is a Size×Size square anchored at its top-left cell Pos.
type Food struct {
	Pos  Point
	Size int
}

// Footprint returns the cells covered by the food.
func (f Food) Footprint() core.Rect {
	return core.Square(f.Pos.X, f.Pos.Y, f.Size)
}

// Covers reports whether cell p lies inside the footprint.
func (f Food) Covers(p Point) bool {
	return f.Footprint().Contains(p.X, p.Y)
}

// PlaceFood samples top-left cells uniformly from [0, width-size]×[0, height-size]
// until the footprint avoids every body cell. After MaxPlacementAttempts
// failures it returns ErrNoFoodPosition.
func PlaceFood(rng *rand.Rand, body []Point, size, width, height int) (Food, error) {
	if size < 1 || size > width || size > height {
		return Food{}, fmt.Errorf("snake: food size %d does not fit %dx%d: %w", size, width, height, ErrNoFoodPosition)
	}

	for range MaxPlacementAttempts {
		f := Food{
			Pos:  Point{X: rng.Intn(width - size + 1), Y: rng.Intn(height - size + 1)},
			Size: size,
		}
		if !f.overlapsAny(body) {
			return f, nil
		}
	}
	return Food{}, ErrNoFoodPosition
}

func (f Food) overlapsAny(cells []Point) bool {
	for _, c := range cells {
		if f.Covers(c) {
			return true
		}
	}
	return false
}
