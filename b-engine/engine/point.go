package engine

import "fmt"

// Direction is one of the four cardinal directions a robot can slide in,
// plus None for "no motion" / "could not be classified as cardinal".
// The ordinals are load-bearing: they index CardinalPoints and the move
// cache, and they are the wire values for the boundary operations.
type Direction int

const (
	Left Direction = iota
	Up
	Right
	Down
	None
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case None:
		return "None"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four cardinal directions
// (Left, Up, Right, Down). None is a valid Direction value but never a
// valid move direction, so it is excluded here.
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

// CardinalPoints maps each cardinal Direction ordinal to its unit Point.
// Down is +y because board rows increase downward (row-major, y grows
// toward the last row), matching Point.DirectionOf below.
var CardinalPoints = [4]Point{
	Left:  {X: -1, Y: 0},
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
}

// PointFromDirection returns the unit Point for a cardinal direction, or
// the zero Point for any other value (including None).
func PointFromDirection(d Direction) Point {
	if d.Valid() {
		return CardinalPoints[d]
	}
	return Point{}
}

// Point is a 2-D integer vector: a board coordinate or a displacement.
type Point struct {
	X int
	Y int
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Equals reports whether p and other denote the same coordinate.
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// DirectionOf classifies p as a cardinal Direction iff exactly one of
// its coordinates is nonzero: positive X is Right, negative X is Left,
// positive Y is Down, negative Y is Up. Anything else (the zero vector,
// or a diagonal) is None.
func (p Point) DirectionOf() Direction {
	if p.X == 0 {
		if p.Y > 0 {
			return Down
		}
		if p.Y < 0 {
			return Up
		}
	} else if p.Y == 0 {
		if p.X > 0 {
			return Right
		}
		if p.X < 0 {
			return Left
		}
	}
	return None
}

// DirectPathTo returns the Direction from other toward p, i.e. the
// cardinal classification of (p - other). Used to test "is another
// robot sitting somewhere along my ray" without computing the full path.
func (p Point) DirectPathTo(other Point) Direction {
	return p.Sub(other).DirectionOf()
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
