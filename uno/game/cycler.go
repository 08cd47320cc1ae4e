package game

const (
	left  = -1
	right = 1
)

// Cycler walks seat indexes around the table in the current direction.
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) SetCurrent(seat int) {
	c.current = c.wrap(seat)
}

func (c *Cycler) Direction() int {
	return c.direction
}

// Peek returns the seat steps ahead without moving.
func (c *Cycler) Peek(steps int) int {
	return c.wrap(c.current + steps*c.direction)
}

func (c *Cycler) Next() int {
	return c.Advance(1)
}

func (c *Cycler) Advance(steps int) int {
	c.current = c.Peek(steps)
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

func (c *Cycler) Reset(current int) {
	c.direction = right
	c.SetCurrent(current)
}

func (c *Cycler) wrap(seat int) int {
	return ((seat % c.size) + c.size) % c.size
}
