// Package main implements an interactive command-line front end for the
// ricochet solver engine.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"ricochet/b-engine/engine"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Global state shared by all commands, mirroring the teacher CLI's
// package-level warehouse/robot_map pattern: there is exactly one
// engine instance for the life of the process.
var (
	eng    *engine.Engine
	logger *zap.Logger
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "solver-cli",
	Short: "An interactive Ricochet Robots solver",
	Long: `A command-line application that loads a board, simulates single
robot slides, and searches for shortest move sequences to a goal.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Solver CLI invoked. Use the available commands to drive the engine.")
	},
}

// loadBoardCmd represents the load-board command.
var loadBoardCmd = &cobra.Command{
	Use:   "load-board [text]",
	Short: "Load a 16x16 board from its row-major cell codec",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := eng.LoadBoard(args[0]); err != nil {
			fmt.Printf("Error loading board: %v\n", err)
			return
		}
		fmt.Println("Board loaded.")
	},
}

// doMoveCmd represents the do-move command.
var doMoveCmd = &cobra.Command{
	Use:   "do-move [robotIdx] [direction] [x1] [y1] [x2] [y2]...",
	Short: "Slide one robot and report its resting point",
	Args:  cobra.MinimumNArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		robotIdx, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Println("Error: invalid robot index. Please use an integer.")
			return
		}
		dir, err := parseDirection(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		robots, err := parsePoints(args[2:])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		rested, err := eng.DoMove(robots, robotIdx, dir, nil, false)
		if err != nil {
			fmt.Printf("Error performing move: %v\n", err)
			return
		}
		fmt.Printf("Robot %d rests at (%d, %d).\n", robotIdx, rested.X, rested.Y)
	},
}

// solveCmd represents the solve command.
var solveCmd = &cobra.Command{
	Use:   "solve [color] [symbol] [earlyOut] [x1] [y1]...",
	Short: "Search for the shortest move sequence to a goal",
	Args:  cobra.MinimumNArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		color, err := strconv.Atoi(args[0])
		if err != nil || !engine.Color(color).Valid() {
			fmt.Println("Error: invalid goal color.")
			return
		}
		symbol, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Println("Error: invalid goal symbol.")
			return
		}
		earlyOut, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Println("Error: invalid earlyOut.")
			return
		}
		robots, err := parsePoints(args[3:])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		requestID := uuid.New().String()
		log := logger.With(zap.String("requestID", requestID))
		log.Info("solve requested", zap.Int("robots", len(robots)))

		rec := boardRecordFromLoaded()
		done := make(chan struct{})
		cancel := make(chan struct{})

		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, os.Interrupt)
		defer signal.Stop(sigc)

		var moves []engine.RobotMove
		var solveErr error
		go func() {
			defer close(done)
			moves, solveErr = eng.Solve(rec, engine.Goal{Color: engine.Color(color), Symbol: engine.Symbol(symbol)}, robots, earlyOut)
		}()

		select {
		case <-done:
		case <-sigc:
			close(cancel)
			fmt.Println("Solve cancelled.")
			log.Warn("solve cancelled by interrupt")
			return
		}

		if solveErr != nil {
			fmt.Printf("Error solving: %v\n", solveErr)
			log.Error("solve failed", zap.Error(solveErr))
			return
		}

		log.Info("solve complete", zap.Int("moves", len(moves)))
		if len(moves) == 0 {
			fmt.Println("No solution found.")
			return
		}
		for i, m := range moves {
			fmt.Printf("%d: robot %s slides %s from (%d, %d)\n", i+1, m.Color, m.Direction, m.Position.X, m.Position.Y)
		}
	},
}

// showCmd prints the currently loaded board's text codec.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the currently loaded board",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := eng.BoardText()
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}

func parseDirection(s string) (engine.Direction, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return engine.None, fmt.Errorf("invalid direction: %v", err)
	}
	d := engine.Direction(n)
	if !d.Valid() {
		return engine.None, fmt.Errorf("direction %d out of range", n)
	}
	return d, nil
}

func parsePoints(args []string) ([]engine.Point, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("expected pairs of x y coordinates, got %d values", len(args))
	}
	points := make([]engine.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, fmt.Errorf("invalid x coordinate %q", args[i])
		}
		y, err := strconv.Atoi(args[i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid y coordinate %q", args[i+1])
		}
		points = append(points, engine.Point{X: x, Y: y})
	}
	return points, nil
}

// boardRecordFromLoaded snapshots the engine's currently loaded board
// into a BoardRecord, the structured form Solve requires (spec.md §6's
// solve and loadBoard boundary operations carry independent board
// arguments).
func boardRecordFromLoaded() engine.BoardRecord {
	return eng.CurrentBoardRecord()
}

func init() {
	RootCmd.AddCommand(loadBoardCmd)
	RootCmd.AddCommand(doMoveCmd)
	RootCmd.AddCommand(solveCmd)
	RootCmd.AddCommand(showCmd)
}

func main() {
	logger, _ = zap.NewProduction()
	defer logger.Sync()

	eng = engine.New()
	eng.Logger = logger

	if len(os.Args) > 1 {
		if err := RootCmd.Execute(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Interactive Solver CLI. Type 'exit' to quit.")
	fmt.Println("Use 'help' to see available commands.")
	fmt.Println("---")

	for {
		fmt.Print("> ")

		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("Error reading input:", err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if strings.ToLower(input) == "exit" {
			fmt.Println("Exiting interactive CLI. Goodbye!")
			return
		}

		args := strings.Split(input, " ")
		RootCmd.SetArgs(args)

		if err := RootCmd.Execute(); err != nil {
			fmt.Println(err)
		}
	}
}
