package snake

import (
	"errors"
	"math/rand"
	"testing"
)

func TestFoodCoversHalfOpen(t *testing.T) {
	f := Food{Pos: Point{2, 2}, Size: 2}

	tests := []struct {
		p        Point
		expected bool
	}{
		{Point{2, 2}, true},
		{Point{3, 3}, true},
		{Point{4, 2}, false},
		{Point{2, 4}, false},
		{Point{1, 2}, false},
	}
	for _, tc := range tests {
		if got := f.Covers(tc.p); got != tc.expected {
			t.Errorf("Covers(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestPlaceFoodAvoidsBody(t *testing.T) {
	const w, h = 10, 10

	// Fill the top half of the board.
	var body []Point
	for y := 0; y < 5; y++ {
		for x := 0; x < w; x++ {
			body = append(body, Point{x, y})
		}
	}

	for _, size := range []int{1, 2, 3} {
		rng := rand.New(rand.NewSource(int64(size)))
		for i := 0; i < 200; i++ {
			f, err := PlaceFood(rng, body, size, w, h)
			if err != nil {
				t.Fatalf("size %d: PlaceFood() failed: %v", size, err)
			}
			if f.Size != size {
				t.Fatalf("Size = %d, expected %d", f.Size, size)
			}
			if f.Pos.X < 0 || f.Pos.X > w-size || f.Pos.Y < 0 || f.Pos.Y > h-size {
				t.Fatalf("size %d: position %v out of range", size, f.Pos)
			}
			for _, c := range body {
				if f.Covers(c) {
					t.Fatalf("size %d: food at %v overlaps body cell %v", size, f.Pos, c)
				}
			}
		}
	}
}

func TestPlaceFoodExhausted(t *testing.T) {
	var body []Point
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			body = append(body, Point{x, y})
		}
	}

	_, err := PlaceFood(rand.New(rand.NewSource(1)), body, 1, 4, 4)
	if !errors.Is(err, ErrNoFoodPosition) {
		t.Errorf("PlaceFood() error = %v, expected ErrNoFoodPosition", err)
	}
}

func TestPlaceFoodSizeTooLarge(t *testing.T) {
	_, err := PlaceFood(rand.New(rand.NewSource(1)), nil, 5, 4, 4)
	if !errors.Is(err, ErrNoFoodPosition) {
		t.Errorf("PlaceFood() error = %v, expected ErrNoFoodPosition", err)
	}
}

func TestPlaceFoodDeterministic(t *testing.T) {
	body := NewSnake().Body()
	a, errA := PlaceFood(rand.New(rand.NewSource(99)), body, 1, 10, 10)
	b, errB := PlaceFood(rand.New(rand.NewSource(99)), body, 1, 10, 10)

	if errA != nil || errB != nil {
		t.Fatalf("PlaceFood() failed: %v, %v", errA, errB)
	}
	if a != b {
		t.Errorf("same seed produced %v and %v", a, b)
	}
}
