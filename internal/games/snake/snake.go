package snake

// InitialLength is the body length of a freshly started snake.
const InitialLength = 3

// Snake owns an ordered body of cells and a facing direction.
// Body index 0 is the tail, the last index is the head.
type Snake struct {
	body          *body
	current       Direction // direction used by the last completed move
	intended      Direction // latched steering, applied at the next tick
	pendingGrowth bool
}

// NewSnake returns the canonical starting snake: three cells along the top
// row, tail at the origin, facing right.
func NewSnake() *Snake {
	return newSnakeFrom([]Point{{0, 0}, {1, 0}, {2, 0}}, DirRight)
}

// newSnakeFrom builds a snake from an explicit tail-to-head body.
func newSnakeFrom(cells []Point, dir Direction) *Snake {
	return &Snake{
		body:     newBody(cells...),
		current:  dir,
		intended: dir,
	}
}

// Move advances the snake one cell in direction d. With growth pending the
// tail stays and the body becomes one cell longer; otherwise the tail is
// dropped so the length is unchanged. Collisions are not checked here.
func (s *Snake) Move(d Direction) {
	newHead := s.body.back().Add(d)
	if s.pendingGrowth {
		s.pendingGrowth = false
	} else {
		s.body.popFront()
	}
	s.body.pushBack(newHead)
	s.current = d
}

// RequestGrowth makes the next Move keep the tail. Idempotent.
func (s *Snake) RequestGrowth() {
	s.pendingGrowth = true
}

// GrowthPending reports whether the next Move will grow the snake.
func (s *Snake) GrowthPending() bool {
	return s.pendingGrowth
}

// Head returns the head cell.
func (s *Snake) Head() Point {
	return s.body.back()
}

// Tail returns the tail cell.
func (s *Snake) Tail() Point {
	return s.body.front()
}

// Body returns a tail-to-head copy of the body.
func (s *Snake) Body() []Point {
	return s.body.slice()
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return s.body.len()
}

// Direction returns the direction of the last completed move.
func (s *Snake) Direction() Direction {
	return s.current
}

// Intended returns the direction that the next move will use.
func (s *Snake) Intended() Direction {
	return s.intended
}

// Occupies reports whether any body cell is p.
func (s *Snake) Occupies(p Point) bool {
	for i := 0; i < s.body.len(); i++ {
		if s.body.at(i) == p {
			return true
		}
	}
	return false
}

// headOnBody reports whether the head shares a cell with any other segment.
func (s *Snake) headOnBody() bool {
	head := s.body.back()
	for i := 0; i < s.body.len()-1; i++ {
		if s.body.at(i) == head {
			return true
		}
	}
	return false
}
