package engine

// RobotState is an immutable snapshot of a multi-robot configuration: the
// position of each robot (robot i's color is i), whether the active goal
// is a Warp goal, and the number of moves taken to reach this state from
// the search's start state.
type RobotState struct {
	Robots []Point
	Warp   bool
	Depth  int
}

// Fingerprint packs the state into a 32-bit integer: each robot's x
// occupies the low 4 bits of its 8-bit lane, y the high 4 bits, robot i
// occupying bits [8i, 8i+8). Two states collide iff their robot lists
// agree position-by-position and index-by-index; Depth and Warp do not
// participate (spec.md §4.4). Board dimensions must not exceed 16 in
// either axis for this encoding to be unambiguous.
func (s RobotState) Fingerprint() uint32 {
	var fp uint32
	for i, r := range s.Robots {
		fp |= uint32(r.X&0x0F) << uint(8*i)
		fp |= uint32(r.Y&0x0F) << uint(8*i+4)
	}
	return fp
}

// CheckGoal reports whether some robot in the state sits on goalCell and
// is eligible to satisfy goal: either goal is a Warp goal (any robot
// qualifies) or the robot's index equals goal.Color.
func (s RobotState) CheckGoal(goalCell Point, goal Goal) bool {
	for i, r := range s.Robots {
		if r.Equals(goalCell) && (goal.Symbol == Warp || goal.Color == Color(i)) {
			return true
		}
	}
	return false
}

// clone returns an independent copy of the robot position slice, so
// successor states never alias their parent's.
func (s RobotState) clone() []Point {
	out := make([]Point, len(s.Robots))
	copy(out, s.Robots)
	return out
}
