package engine

import "errors"

// Sentinel errors for malformed input (spec.md §7 "Malformed input").
// Callers unwrap with pkgerrors.Cause (or errors.Is, since pkg/errors
// results satisfy the stdlib errors.Unwrap contract) to recover these.
var (
	// ErrBoardTextLength indicates loadBoard's text argument was not
	// exactly 2*width*height characters long, or a BoardRecord's Points
	// list did not hold exactly Width*Height cells.
	ErrBoardTextLength = errors.New("board text has the wrong length for the board dimensions")
	// ErrDirectionOutOfRange indicates a Direction ordinal outside {Left,
	// Up, Right, Down, None}.
	ErrDirectionOutOfRange = errors.New("direction ordinal out of range")
	// ErrColorOutOfRange indicates a Color ordinal outside {Yellow,
	// Green, Red, Blue}.
	ErrColorOutOfRange = errors.New("color ordinal out of range")
	// ErrTooManyRobots indicates more than four robots were supplied.
	ErrTooManyRobots = errors.New("more than four robots supplied")
	// ErrRobotIndexOutOfRange indicates a robot index outside the
	// supplied robot list.
	ErrRobotIndexOutOfRange = errors.New("robot index out of range")
	// ErrNoneDirection indicates a move was requested with Direction
	// None, which is not a cardinal slide.
	ErrNoneDirection = errors.New("direction None is not a valid move direction")
)
