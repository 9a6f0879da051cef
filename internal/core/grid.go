package core

// Position is a cell on the square play grid.
type Position struct {
	X, Y int
}

// Nowhere marks a position that is not on the grid (e.g. food waiting to be placed).
var Nowhere = Position{X: -1, Y: -1}

// Direction is one of the four grid directions.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists all directions in a fixed order, used for random picks.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name ("up", "down", "left", "right") to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return DirRight, false
}

// Opposite returns the 180° reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Step returns p shifted one cell along d, without wrapping.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// StepWrapped returns p shifted one cell along d, wrapping modulo size on both axes.
func (p Position) StepWrapped(d Direction, size int) Position {
	n := p.Step(d)
	return Position{X: wrap(n.X, size), Y: wrap(n.Y, size)}
}

func wrap(v, size int) int {
	return ((v % size) + size) % size
}

// InBounds reports whether p lies on a size×size grid.
func (p Position) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Rand is the random source used for placement and obstacle directions.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// RandomDirection picks one of the four directions uniformly.
func RandomDirection(rng Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

// Occupied reports whether any of the given cell sets contains p.
func Occupied(p Position, sets ...[]Position) bool {
	for _, cells := range sets {
		for _, c := range cells {
			if c == p {
				return true
			}
		}
	}
	return false
}

// RandomEmptyCell enumerates every cell of a size×size grid, drops those in
// any of the occupied sets and picks one of the rest uniformly.
// Returns false when the grid is full.
func RandomEmptyCell(size int, rng Rand, occupied ...[]Position) (Position, bool) {
	free := make([]Position, 0, size*size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			p := Position{X: x, Y: y}
			if !Occupied(p, occupied...) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return Nowhere, false
	}
	return free[rng.Intn(len(free))], true
}
