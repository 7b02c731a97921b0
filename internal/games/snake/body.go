package snake

// body is a growable ring buffer of cells ordered tail (front) to head (back).
// move() only ever pushes at the back and pops at the front, both O(1).
type body struct {
	cells []Point
	start int // index of the tail in cells
	n     int
}

func newBody(cells ...Point) *body {
	capacity := 8
	for capacity < len(cells) {
		capacity *= 2
	}
	b := &body{cells: make([]Point, capacity)}
	for _, c := range cells {
		b.pushBack(c)
	}
	return b
}

func (b *body) len() int {
	return b.n
}

// at returns the i-th cell counting from the tail.
func (b *body) at(i int) Point {
	if i < 0 || i >= b.n {
		panic("snake: body index out of range")
	}
	return b.cells[(b.start+i)%len(b.cells)]
}

func (b *body) front() Point {
	return b.at(0)
}

func (b *body) back() Point {
	return b.at(b.n - 1)
}

func (b *body) pushBack(p Point) {
	if b.n == len(b.cells) {
		b.grow()
	}
	b.cells[(b.start+b.n)%len(b.cells)] = p
	b.n++
}

func (b *body) popFront() Point {
	if b.n == 0 {
		panic("snake: pop from empty body")
	}
	p := b.cells[b.start]
	b.start = (b.start + 1) % len(b.cells)
	b.n--
	return p
}

// grow doubles capacity, unrolling the ring so the tail sits at index 0.
func (b *body) grow() {
	next := make([]Point, len(b.cells)*2)
	for i := 0; i < b.n; i++ {
		next[i] = b.at(i)
	}
	b.cells = next
	b.start = 0
}

// slice returns a fresh tail-to-head copy.
func (b *body) slice() []Point {
	out := make([]Point, b.n)
	for i := range out {
		out[i] = b.at(i)
	}
	return out
}
