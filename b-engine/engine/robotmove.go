package engine

// RobotMove is the visited map's back-pointer record: it describes the
// single slide that produced a state, plus the predecessor state it was
// produced from. The start state's entry has Previous == nil, the
// sentinel for "no predecessor" (spec.md §3 "Visited map").
type RobotMove struct {
	Position  Point
	Direction Direction
	Color     Color
	Previous  *RobotState
}
