package engine

import (
	"strconv"
	"unicode"
)

// Color is one of the four robot colors. The ordinal doubles as the
// robot's index within a RobotState.
type Color int

const (
	Yellow Color = iota
	Green
	Red
	Blue
)

func (c Color) String() string {
	switch c {
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	default:
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
}

// Valid reports whether c is one of the four closed-enumeration colors.
func (c Color) Valid() bool {
	return c >= Yellow && c <= Blue
}

// Symbol is the goal shape painted on a target cell. Warp is a
// wildcard: any robot touching a Warp goal satisfies it, regardless of
// color.
type Symbol int

const (
	Star Symbol = iota
	Moon
	Gear
	Saturn
	Warp
)

func (s Symbol) String() string {
	switch s {
	case Star:
		return "Star"
	case Moon:
		return "Moon"
	case Gear:
		return "Gear"
	case Saturn:
		return "Saturn"
	case Warp:
		return "Warp"
	default:
		return "Symbol(" + strconv.Itoa(int(s)) + ")"
	}
}

// Bumper is a diagonal deflector. Slant true is the "/" orientation,
// slant false is "\". A bumper is transparent to a robot of its own
// color.
type Bumper struct {
	Color Color
	Slant bool
}

// Goal is a (color, symbol) target. A Goal with Symbol == Warp is
// satisfied by a robot of any color (see RobotState.CheckGoal); Cell.GoalEquals
// still compares Color when locating it on the board.
type Goal struct {
	Color  Color
	Symbol Symbol
}

// Cell is one board square: an optional Bumper, an optional Goal, and a
// 4-bit fence mask indexed by Direction ordinal. A cell never carries
// both a bumper and a goal.
type Cell struct {
	Bumper *Bumper
	Goal   *Goal
	Fences [4]bool
}

const blankSigil = '_'

// NewCellFromString decodes a cell from its two-character codec: the
// first character encodes goal-or-bumper, the second the fence mask.
// See spec.md §4.1 for the full grammar.
func NewCellFromString(a1, a2 byte) Cell {
	var c Cell
	c.extractGoal(a1)
	c.extractBumper(a1)
	c.extractFence(a2)
	return c
}

func (c *Cell) extractGoal(s byte) {
	if s == ' ' {
		return
	}
	if s == 'W' {
		c.Goal = &Goal{Symbol: Warp}
		return
	}
	isHexDigitOrUpper := (s >= '0' && s <= '9') || (s >= 'A' && s <= 'F')
	if !isHexDigitOrUpper {
		return
	}
	goalInt, err := strconv.ParseInt(string(rune(s)), 16, 32)
	if err != nil {
		return
	}
	if goalInt == 0 && s != '0' {
		return
	}
	c.Goal = &Goal{
		Color:  Color(goalInt % 4),
		Symbol: Symbol(goalInt / 4),
	}
}

func (c *Cell) extractBumper(s byte) {
	var color Color
	switch unicode.ToLower(rune(s)) {
	case 'y':
		color = Yellow
	case 'g':
		color = Green
	case 'r':
		color = Red
	case 'u':
		color = Blue
	default:
		return
	}
	c.Bumper = &Bumper{Color: color, Slant: unicode.IsUpper(rune(s))}
}

func (c *Cell) extractFence(s byte) {
	if s == ' ' {
		return
	}
	fence, err := strconv.ParseInt(string(rune(s)), 16, 32)
	if err != nil {
		return
	}
	for i := 0; i < 4; i++ {
		c.Fences[i] = fence&(1<<uint(i)) != 0
	}
}

// HasBumper reports whether the cell carries a bumper.
func (c Cell) HasBumper() bool {
	return c.Bumper != nil
}

// HasGoal reports whether the cell carries a goal.
func (c Cell) HasGoal() bool {
	return c.Goal != nil
}

// GoalEquals reports whether the cell's goal matches target on both
// color and symbol (Warp goals match only other Warp goals here; the
// wildcard behavior lives in RobotState.CheckGoal, not here).
func (c Cell) GoalEquals(target Goal) bool {
	return c.HasGoal() && c.Goal.Symbol == target.Symbol && c.Goal.Color == target.Color
}

// Fence reports whether the cell has a fence on side d.
func (c Cell) Fence(d Direction) bool {
	if !d.Valid() {
		return false
	}
	return c.Fences[d]
}

// String encodes the cell back into its two-character codec.
func (c Cell) String() string {
	out := make([]byte, 2)

	switch {
	case c.HasGoal():
		if c.Goal.Symbol == Warp {
			out[0] = 'W'
		} else {
			out[0] = upperHexDigit(int(c.Goal.Symbol)*4 + int(c.Goal.Color))
		}
	case c.HasBumper():
		var letter byte
		switch c.Bumper.Color {
		case Yellow:
			letter = 'y'
		case Green:
			letter = 'g'
		case Red:
			letter = 'r'
		case Blue:
			letter = 'u'
		}
		if c.Bumper.Slant {
			letter = byte(unicode.ToUpper(rune(letter)))
		}
		out[0] = letter
	default:
		out[0] = blankSigil
	}

	fenceInt := 0
	for i := 0; i < 4; i++ {
		if c.Fences[i] {
			fenceInt |= 1 << uint(i)
		}
	}
	if fenceInt == 0 {
		out[1] = blankSigil
	} else {
		out[1] = lowerHexDigit(fenceInt)
	}

	return string(out)
}

func upperHexDigit(v int) byte {
	return byte(unicode.ToUpper(rune(lowerHexDigit(v))))
}

func lowerHexDigit(v int) byte {
	return strconv.FormatInt(int64(v), 16)[0]
}
