package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blankBoardText(width, height int) string {
	return strings.Repeat("__", width*height)
}

func TestNewBoardFromStringRejectsWrongLength(t *testing.T) {
	_, err := NewBoardFromString("__", 16, 16)
	require.ErrorIs(t, err, ErrBoardTextLength)
}

func TestBoardCodecRoundTrip(t *testing.T) {
	b := NewBoard(2, 2)
	b.SetCell(Point{X: 0, Y: 0}, NewCellFromString('W', ' '))
	b.SetCell(Point{X: 1, Y: 0}, NewCellFromString('r', '5'))
	b.SetCell(Point{X: 0, Y: 1}, NewCellFromString('Y', ' '))

	text := strings.ReplaceAll(b.String(), "\n", "")
	reparsed, err := NewBoardFromString(text, 2, 2)
	require.NoError(t, err)

	require.Equal(t, b.String(), reparsed.String())
}

func TestDoMoveNeverLeavesBoard(t *testing.T) {
	b := NewBoard(16, 16)
	robots := []Point{{X: 0, Y: 0}}
	rested := b.doMove(robots, 0, Left, false)
	assert.True(t, b.ContainsPoint(rested))
	assert.Equal(t, Point{X: 0, Y: 0}, rested)
}

func TestDoMoveOnEmptyBoardSlidesToEdge(t *testing.T) {
	b := NewBoard(16, 16)
	robots := []Point{{X: 0, Y: 0}}
	rested := b.doMove(robots, 0, Right, false)
	assert.Equal(t, Point{X: 15, Y: 0}, rested)
}

func TestDoMoveStopsAtFence(t *testing.T) {
	// Boundary scenario 3: fence on the west side of (5,0).
	b := NewBoard(16, 16)
	c := b.cellAt(Point{X: 5, Y: 0})
	c.Fences[Left] = true
	b.SetCell(Point{X: 5, Y: 0}, c)

	robots := []Point{{X: 0, Y: 0}}
	rested := b.doMove(robots, 0, Right, false)
	assert.Equal(t, Point{X: 4, Y: 0}, rested)
}

func TestDoMoveBumperDeflection(t *testing.T) {
	// Boundary scenario 4: slant=true Red bumper at (5,5).
	b := NewBoard(16, 16)
	b.SetCell(Point{X: 5, Y: 5}, Cell{Bumper: &Bumper{Color: Red, Slant: true}})

	// Blue is robotIdx 3: the bumper's color differs, so it deflects Up.
	blue := []Point{{}, {}, {}, {X: 0, Y: 5}}
	rested := b.doMove(blue, 3, Right, false)
	assert.Equal(t, Point{X: 5, Y: 0}, rested)

	// Red is robotIdx 2: same color as the bumper, so it passes through.
	red := []Point{{}, {}, {X: 0, Y: 5}, {}}
	rested = b.doMove(red, 2, Right, false)
	assert.Equal(t, Point{X: 15, Y: 5}, rested)
}

func TestDoMoveCollisionStop(t *testing.T) {
	// Boundary scenario 5.
	b := NewBoard(16, 16)
	robots := []Point{{X: 0, Y: 0}, {X: 5, Y: 0}}
	rested := b.doMove(robots, 0, Right, false)
	assert.Equal(t, Point{X: 4, Y: 0}, rested)
}

func TestDoMoveStopWithBumperDiscardsMotion(t *testing.T) {
	b := NewBoard(16, 16)
	b.SetCell(Point{X: 0, Y: 0}, Cell{Bumper: &Bumper{Color: Green, Slant: false}})
	robots := []Point{{X: 0, Y: 0}}
	rested := b.doMove(robots, 0, Left, false)
	assert.Equal(t, Point{X: 0, Y: 0}, rested)
}

func TestDoMoveStopWithBumperDiscardsMotionAfterTravel(t *testing.T) {
	// The robot travels several cells, passing transparently through its
	// own-color bumper, then a collision halts it on that bumper cell;
	// the whole motion is discarded, not just the last step.
	b := NewBoard(16, 16)
	b.SetCell(Point{X: 4, Y: 0}, Cell{Bumper: &Bumper{Color: Yellow, Slant: false}})
	robots := []Point{{X: 0, Y: 0}, {X: 5, Y: 0}}
	rested := b.doMove(robots, 0, Right, false)
	assert.Equal(t, Point{X: 0, Y: 0}, rested)
}

func TestDoMoveAllowInvalidEndpointKeepsBumperStop(t *testing.T) {
	b := NewBoard(16, 16)
	b.SetCell(Point{X: 4, Y: 0}, Cell{Bumper: &Bumper{Color: Yellow, Slant: false}})
	robots := []Point{{X: 0, Y: 0}, {X: 5, Y: 0}}
	rested := b.doMove(robots, 0, Right, true)
	assert.Equal(t, Point{X: 4, Y: 0}, rested)
}

func TestDoMoveCacheCoherenceAcrossCollision(t *testing.T) {
	b := NewBoard(16, 16)
	robots := []Point{{X: 0, Y: 0}}
	// Populate the cache with an uncontested slide.
	first := b.doMove(robots, 0, Right, false)
	require.Equal(t, Point{X: 15, Y: 0}, first)

	// Now another robot sits in the ray: the cache fast path must detect
	// the collision and re-simulate rather than trust the stale entry.
	withBlocker := []Point{{X: 0, Y: 0}, {X: 5, Y: 0}}
	second := b.doMove(withBlocker, 0, Right, false)
	assert.Equal(t, Point{X: 4, Y: 0}, second)

	// And once the blocker is gone again, the cached value (still valid)
	// should be returned.
	third := b.doMove(robots, 0, Right, false)
	assert.Equal(t, Point{X: 15, Y: 0}, third)
}

func TestFindGoal(t *testing.T) {
	b := NewBoard(4, 4)
	b.SetCell(Point{X: 2, Y: 3}, Cell{Goal: &Goal{Color: Blue, Symbol: Gear}})
	found := b.FindGoal(Goal{Color: Blue, Symbol: Gear})
	assert.Equal(t, Point{X: 2, Y: 3}, found)
}

func TestFindGoalAbsent(t *testing.T) {
	b := NewBoard(4, 4)
	found := b.FindGoal(Goal{Color: Blue, Symbol: Gear})
	assert.Equal(t, Point{X: -1, Y: -1}, found)
}

func TestDeindexifyInverseOfIndexify(t *testing.T) {
	b := NewBoard(7, 3) // non-square: exercises the §9 deindexify fix.
	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			p := Point{X: x, Y: y}
			require.Equal(t, p, b.deindexify(b.indexify(p)))
		}
	}
}
