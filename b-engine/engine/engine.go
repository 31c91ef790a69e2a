package engine

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BoardSize is the fixed board dimension assumed throughout the engine
// (spec.md §6 "loadBoard... Dimensions are fixed at 16×16") and required
// by the 32-bit Fingerprint packing (spec.md §9).
const BoardSize = 16

// CellRecord is one cell of a BoardRecord: the structured counterpart of
// a Cell's two-character codec, used by the solve boundary operation
// (spec.md §6) rather than the text codec used by loadBoard.
type CellRecord struct {
	Fences [4]bool
	Goal   *Goal
	Bumper *Bumper
}

// BoardRecord is the solve boundary's board argument: width, height, and
// a row-major list of CellRecords (spec.md §6).
type BoardRecord struct {
	Width  int
	Height int
	Points []CellRecord
}

// buildBoard materializes a Board from a BoardRecord.
func buildBoard(rec BoardRecord) (*Board, error) {
	if len(rec.Points) != rec.Width*rec.Height {
		return nil, ErrBoardTextLength
	}
	b := NewBoard(rec.Width, rec.Height)
	for i, cr := range rec.Points {
		b.cells[i] = Cell{Bumper: cr.Bumper, Goal: cr.Goal, Fences: cr.Fences}
	}
	return b, nil
}

// Engine is the library's single entry point: it owns the currently
// loaded Board (for LoadBoard/DoMove) and exposes Solve as a one-shot
// operation over a caller-supplied BoardRecord, matching spec.md §6's
// three boundary operations exactly. The zero value is usable; Logger
// defaults to a no-op so embedding the engine never forces logging
// configuration on a caller.
type Engine struct {
	board  *Board
	Logger *zap.Logger
}

// New returns an Engine with no board loaded and a no-op logger.
func New() *Engine {
	return &Engine{Logger: zap.NewNop()}
}

func (e *Engine) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// LoadBoard resets the engine's board from a row-major cell-codec
// string, exactly 2*BoardSize*BoardSize characters, and invalidates the
// move cache (spec.md §6 "loadBoard").
func (e *Engine) LoadBoard(text string) error {
	b, err := NewBoardFromString(text, BoardSize, BoardSize)
	if err != nil {
		return errors.Wrap(err, "engine: load board")
	}
	e.board = b
	e.logger().Info("board loaded", zap.Int("width", BoardSize), zap.Int("height", BoardSize))
	return nil
}

// DoMove performs one simulator call against the currently loaded board
// (spec.md §6 "doMove"). outList is accepted and ignored, matching
// spec.md §6's explicit instruction for the reserved parameter.
func (e *Engine) DoMove(robots []Point, robotIdx int, direction Direction, outList any, allowInvalidEndpoint bool) (Point, error) {
	_ = outList

	if e.board == nil {
		return Point{}, errors.New("engine: no board loaded")
	}
	if len(robots) > NumRobots {
		return Point{}, ErrTooManyRobots
	}
	if robotIdx < 0 || robotIdx >= len(robots) {
		return Point{}, errors.Wrapf(ErrRobotIndexOutOfRange, "robot index %d", robotIdx)
	}
	if !direction.Valid() {
		if direction == None {
			return Point{}, errors.Wrap(ErrNoneDirection, "engine: do move")
		}
		return Point{}, errors.Wrapf(ErrDirectionOutOfRange, "direction %d", int(direction))
	}

	rested := e.board.doMove(robots, robotIdx, direction, allowInvalidEndpoint)
	e.logger().Debug("move simulated",
		zap.Int("robot", robotIdx),
		zap.Stringer("direction", direction),
		zap.Stringer("rest", rested),
	)
	return rested, nil
}

// BoardText renders the currently loaded board back into its row-major
// cell-codec string, or an error if no board has been loaded.
func (e *Engine) BoardText() (string, error) {
	if e.board == nil {
		return "", errors.New("engine: no board loaded")
	}
	return e.board.String(), nil
}

// CurrentBoardRecord snapshots the currently loaded board into a
// BoardRecord, for callers that need to feed it back into Solve. Returns
// the zero BoardRecord if no board is loaded.
func (e *Engine) CurrentBoardRecord() BoardRecord {
	if e.board == nil {
		return BoardRecord{}
	}
	rec := BoardRecord{Width: e.board.Width(), Height: e.board.Height()}
	rec.Points = make([]CellRecord, len(e.board.cells))
	for i, c := range e.board.cells {
		rec.Points[i] = CellRecord{Fences: c.Fences, Goal: c.Goal, Bumper: c.Bumper}
	}
	return rec
}

// Solve builds a fresh Board from board and runs a breadth-first search
// for the shortest move sequence satisfying goal (spec.md §6 "solve").
// It does not touch the Board loaded by LoadBoard; the solve boundary
// carries its own board description independently.
func (e *Engine) Solve(board BoardRecord, goal Goal, robots []Point, earlyOut int) ([]RobotMove, error) {
	if !goal.Color.Valid() && goal.Symbol != Warp {
		return nil, errors.Wrap(ErrColorOutOfRange, "engine: solve")
	}
	if len(robots) > NumRobots {
		return nil, ErrTooManyRobots
	}

	b, err := buildBoard(board)
	if err != nil {
		return nil, errors.Wrap(err, "engine: solve")
	}

	e.logger().Info("solve started",
		zap.Int("robots", len(robots)),
		zap.Stringer("goalColor", goal.Color),
		zap.Stringer("goalSymbol", goal.Symbol),
		zap.Int("earlyOut", earlyOut),
	)

	moves := Solve(b, goal, robots, earlyOut)

	e.logger().Info("solve finished", zap.Int("moves", len(moves)))
	return moves, nil
}
