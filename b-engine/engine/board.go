package engine

const (
	// NumRobots bounds both the robot roster and the move cache's robot
	// axis. Four colors, four robots (spec.md §3).
	NumRobots = 4
	// NumDirections bounds the move cache's direction axis to the four
	// cardinal directions (None is never cached).
	NumDirections = 4
)

// Board is a width×height grid of Cells plus the move simulator's cache.
// Cells are stored row-major in a flat slice, matching the original's
// std::vector<Cell*> layout and the teacher's dense-array-of-cells
// idiom (librobot_warehouse.go's gridyx).
type Board struct {
	width  int
	height int
	cells  []Cell

	// cache[cellIndex][robotIdx][direction] holds the resting Point for
	// a robot of robotIdx starting at cellIndex and sliding in direction,
	// assuming no interference from other robots and no deflection by a
	// bumper along the way. nil means "not yet computed". Invalidated wholesale by
	// NewBoard/NewBoardFromString (spec.md §3 "Cache invalidation").
	cache [][NumRobots][NumDirections]*Point
}

// NewBoard creates an empty width×height board (no bumpers, goals, or
// fences) with a freshly invalidated move cache.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		cache:  make([][NumRobots][NumDirections]*Point, width*height),
	}
	return b
}

// NewBoardFromString decodes a board from the row-major concatenation of
// each cell's two-character codec (spec.md §6 loadBoard). text must be
// exactly 2*width*height characters.
func NewBoardFromString(text string, width, height int) (*Board, error) {
	if len(text) != 2*width*height {
		return nil, ErrBoardTextLength
	}
	b := NewBoard(width, height)
	for i := 0; i < width*height; i++ {
		b.cells[i] = NewCellFromString(text[i*2], text[i*2+1])
	}
	return b, nil
}

// Width returns the board's width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board's height in cells.
func (b *Board) Height() int { return b.height }

// Cell returns the cell at p and whether p is on the board.
func (b *Board) Cell(p Point) (Cell, bool) {
	if !b.ContainsPoint(p) {
		return Cell{}, false
	}
	return b.cells[b.indexify(p)], true
}

// SetCell overwrites the cell at p. Used by callers constructing a board
// programmatically (e.g. from a structured BoardRecord rather than the
// text codec). No-op if p is off-board.
func (b *Board) SetCell(p Point, c Cell) {
	if !b.ContainsPoint(p) {
		return
	}
	b.cells[b.indexify(p)] = c
}

// cellAt returns the cell at p without a bounds check; callers must have
// already established p is on the board.
func (b *Board) cellAt(p Point) Cell {
	return b.cells[b.indexify(p)]
}

// ContainsPoint reports whether p lies within the board's borders.
func (b *Board) ContainsPoint(p Point) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// hasFenceBetween reports whether a robot cannot cross directly between
// two adjacent points: either point is off-board, or either cell has a
// fence on the side facing the other (spec.md §4.3 "Fence-between
// predicate"). Callers only ever invoke this with adjacent points.
func (b *Board) hasFenceBetween(p0, p1 Point) bool {
	if !b.ContainsPoint(p0) || !b.ContainsPoint(p1) {
		return true
	}

	dirTo1 := p1.Sub(p0).DirectionOf()
	dirTo0 := p0.Sub(p1).DirectionOf()

	if b.cellAt(p0).Fence(dirTo1) {
		return true
	}
	if b.cellAt(p1).Fence(dirTo0) {
		return true
	}
	return false
}

// isMoveBlocked reports whether a robot cannot step from p0 to p1.
func (b *Board) isMoveBlocked(p0, p1 Point) bool {
	return !b.ContainsPoint(p0) || !b.ContainsPoint(p1) || b.hasFenceBetween(p0, p1)
}

// indexify computes the row-major array index of p. Undefined if p is
// off-board; callers must check ContainsPoint first where that matters.
func (b *Board) indexify(p Point) int {
	return p.Y*b.width + p.X
}

// deindexify is indexify's inverse: (i%width, i/width). The original
// source computes i/height here, which is wrong whenever width != height
// (spec.md §9); this implementation uses the corrected i/width.
func (b *Board) deindexify(i int) Point {
	return Point{X: i % b.width, Y: i / b.width}
}

// FindGoal returns the position of the first cell (row-major order)
// whose goal matches target's color and symbol, or (-1,-1) if none do.
func (b *Board) FindGoal(target Goal) Point {
	for i, c := range b.cells {
		if c.GoalEquals(target) {
			return b.deindexify(i)
		}
	}
	return Point{X: -1, Y: -1}
}

// doMove slides the robot at robots[robotIdx] in moveDir until it comes
// to rest, per spec.md §4.3. It does not mutate robots; it returns the
// resting Point. allowInvalidEndpoint, when false, discards a motion
// that would end on a bumper cell and returns the robot's original
// position instead.
func (b *Board) doMove(robots []Point, robotIdx int, moveDir Direction, allowInvalidEndpoint bool) Point {
	origin := robots[robotIdx]
	if moveDir == None {
		return origin
	}

	startIndex := b.indexify(origin)
	origDir := moveDir
	delta := PointFromDirection(moveDir)

	// Cache fast path: a cached resting point is valid unless some other
	// robot now sits on the ray from origin toward delta, in which case
	// we must re-simulate (and must not overwrite the cache below).
	cached := b.cache[startIndex][robotIdx][moveDir]
	if cached != nil {
		collision := false
		for i, other := range robots {
			if i == robotIdx {
				continue
			}
			dir := other.DirectPathTo(origin)
			if dir != None && PointFromDirection(dir) == delta {
				collision = true
				break
			}
		}
		if !collision {
			return *cached
		}
	}

	pos := origin
	isCacheable := true
	for {
		next := pos.Add(delta)

		blocked := b.isMoveBlocked(pos, next)
		if !blocked {
			for i, other := range robots {
				if next.Equals(other) {
					blocked = true
					if i != robotIdx {
						isCacheable = false
					}
					break
				}
			}
		}

		if blocked {
			if cell, ok := b.Cell(pos); ok && cell.HasBumper() && !allowInvalidEndpoint {
				pos = origin
			}
			break
		}

		pos = next
		cell := b.cellAt(pos)
		if cell.HasBumper() && cell.Bumper.Color != Color(robotIdx) {
			isCacheable = false
			moveDir = bounce(moveDir, cell.Bumper.Slant)
			delta = PointFromDirection(moveDir)
		}
	}

	if isCacheable && cached == nil {
		p := pos
		b.cache[startIndex][robotIdx][origDir] = &p
	}

	return pos
}

// bounce applies the deflection table (spec.md §4.3) to a robot hitting
// a bumper of a different color. Directions other than the four
// cardinals pass through unchanged.
func bounce(incoming Direction, slant bool) Direction {
	if slant {
		switch incoming {
		case Up:
			return Right
		case Right:
			return Up
		case Down:
			return Left
		case Left:
			return Down
		default:
			return incoming
		}
	}
	switch incoming {
	case Up:
		return Left
	case Right:
		return Down
	case Down:
		return Right
	case Left:
		return Up
	default:
		return incoming
	}
}

// String re-encodes the board into its row-major two-character-per-cell
// codec, one row per line.
func (b *Board) String() string {
	out := make([]byte, 0, b.width*b.height*2+b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			out = append(out, b.cellAt(Point{X: x, Y: y}).String()...)
		}
		out = append(out, '\n')
	}
	return string(out)
}
