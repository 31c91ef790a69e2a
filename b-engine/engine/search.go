package engine

// MaxSolutionDepth bounds how deep the frontier is allowed to expand.
// Not required for correctness on a 16x16 board (the fingerprint space
// is finite and BFS dedup guarantees termination regardless), but it
// caps pathological cases the way the source's MAX_MOVE constant did
// (spec.md §4.5 "Bound"), without reviving the disabled rook-board
// heuristic that constant was otherwise tangled up with.
const MaxSolutionDepth = 25

// slideDirections are the four directions Search tries per robot per
// state; None is never attempted as a move.
var slideDirections = [4]Direction{Left, Up, Right, Down}

// Solve performs a breadth-first search for the shortest sequence of
// slides that brings some eligible robot onto the cell matching goal,
// per spec.md §4.5. It returns the ordered move list, or an empty slice
// if the state space is exhausted without finding a goal state.
func Solve(board *Board, goal Goal, robots []Point, earlyOut int) []RobotMove {
	warp := goal.Symbol == Warp
	goalCell := board.FindGoal(goal)

	start := RobotState{Robots: append([]Point(nil), robots...), Warp: warp, Depth: 0}

	if earlyOut == -1 && start.CheckGoal(goalCell, goal) {
		i := satisfyingRobot(start, goalCell, goal)
		moves := []RobotMove{{Position: robots[i], Direction: None, Color: Color(i)}}
		return replayColors(robots, moves, board)
	}

	visited := make(map[uint32]RobotMove)
	startFP := start.Fingerprint()
	visited[startFP] = RobotMove{Previous: nil}

	frontier := []RobotState{start}
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		if current.Depth >= MaxSolutionDepth {
			continue
		}

		for r := range current.Robots {
			for _, d := range slideDirections {
				rested := board.doMove(current.Robots, r, d, false)
				if rested.Equals(current.Robots[r]) {
					continue
				}

				nextRobots := current.clone()
				nextRobots[r] = rested
				next := RobotState{Robots: nextRobots, Warp: warp, Depth: current.Depth + 1}

				fp := next.Fingerprint()
				if _, seen := visited[fp]; seen {
					continue
				}

				parent := current
				move := RobotMove{
					Position:  current.Robots[r],
					Direction: d,
					Color:     Color(r),
					Previous:  &parent,
				}
				visited[fp] = move

				isGoal := (warp || Color(r) == goal.Color) && rested.Equals(goalCell)
				filtered := earlyOut >= 0 && next.Depth <= earlyOut
				if isGoal && !filtered {
					return replayColors(robots, reconstruct(visited, fp), board)
				}

				frontier = append(frontier, next)
			}
		}
	}

	return []RobotMove{}
}

// satisfyingRobot returns the index of the first robot in s that
// already sits on goalCell and qualifies for goal.
func satisfyingRobot(s RobotState, goalCell Point, goal Goal) int {
	for i, r := range s.Robots {
		if r.Equals(goalCell) && (goal.Symbol == Warp || goal.Color == Color(i)) {
			return i
		}
	}
	return -1
}

// reconstruct walks the visited map's back-pointers from the terminal
// state's fingerprint up to the start state's sentinel entry, returning
// the moves in forward (start-to-terminal) order.
func reconstruct(visited map[uint32]RobotMove, terminalFP uint32) []RobotMove {
	var moves []RobotMove
	fp := terminalFP
	for {
		move, ok := visited[fp]
		if !ok || move.Previous == nil {
			break
		}
		moves = append(moves, move)
		fp = move.Previous.Fingerprint()
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

// replayColors re-derives each move's Color by replaying the sequence
// from the original robot positions: for move i, find the robot whose
// current position equals move[i].Position, stamp its index as Color,
// then advance it with the simulator (spec.md §4.5 "Reconstruction",
// second pass).
func replayColors(original []Point, moves []RobotMove, board *Board) []RobotMove {
	robots := append([]Point(nil), original...)
	for i := range moves {
		for j, p := range robots {
			if p.Equals(moves[i].Position) {
				moves[i].Color = Color(j)
				robots[j] = board.doMove(robots, j, moves[i].Direction, false)
				break
			}
		}
	}
	return moves
}
