package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cnake/internal/core"
	"github.com/vovakirdan/cnake/internal/games/snake"
	"github.com/vovakirdan/cnake/internal/registry"
)

var (
	flagTicks int
	flagTurns string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Run a scripted session without a terminal",
	Long: `Runs the game headless for a number of ticks, applying scripted turns,
then prints the final frame and a YAML snapshot of the state.

Turns are "tick:direction" pairs; the turn is requested just before that tick.
Directions are up, down, left, right (or u, d, l, r). The menu is confirmed
before the first tick, so every variant starts playing.

Examples:
  cnake simulate --seed 7 --ticks 30
  cnake simulate --ticks 40 --turns "3:down,9:left,12:up"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 50, "Number of ticks to run")
	simulateCmd.Flags().StringVar(&flagTurns, "turns", "", "Scripted turns, e.g. \"3:down,7:left\"")
}

// snapshotter is implemented by games that can report their full state.
type snapshotter interface {
	Snapshot() snake.Snapshot
}

func runSimulate(cmd *cobra.Command, args []string) {
	variant := snake.IDClassic
	if len(args) > 0 {
		variant = args[0]
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	turns, err := parseTurns(flagTurns)
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("scripted turns", "ticks", sortedTicks(turns))

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}
	game, err := registry.Create(variant, cfg)
	if err != nil {
		fail("%v", err)
	}

	if game.Phase() == core.PhaseMenu {
		game.Confirm()
	}

	ticks := runScript(game, turns, flagTicks)
	logger.Info("simulation finished", "ticks", ticks, "phase", game.Phase(), "score", game.Score())

	fmt.Println(renderFrame(game))
	if s, ok := game.(snapshotter); ok {
		data, err := yaml.Marshal(s.Snapshot())
		if err != nil {
			fail("cannot encode snapshot: %v", err)
		}
		//nolint:errcheck // Stdout write
		os.Stdout.Write(data)
	}
}

// runScript ticks game up to n times, requesting turns[i] before tick i.
// It stops early when the round ends and returns the ticks run.
func runScript(game registry.Game, turns map[int]core.Direction, n int) int {
	for i := 1; i <= n; i++ {
		if d, ok := turns[i]; ok {
			game.SetDirectionIntent(d)
		}
		game.Tick()
		if game.Phase() == core.PhaseGameOver {
			return i
		}
	}
	return n
}

// parseTurns parses "tick:direction" pairs separated by commas.
func parseTurns(script string) (map[int]core.Direction, error) {
	turns := make(map[int]core.Direction)
	if strings.TrimSpace(script) == "" {
		return turns, nil
	}

	for _, part := range strings.Split(script, ",") {
		tickStr, dirStr, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("invalid turn %q: want tick:direction", part)
		}
		tick, err := strconv.Atoi(tickStr)
		if err != nil || tick < 1 {
			return nil, fmt.Errorf("invalid turn %q: tick must be a positive integer", part)
		}
		dir, ok := core.ParseDirection(dirStr)
		if !ok {
			return nil, fmt.Errorf("invalid turn %q: unknown direction %q", part, dirStr)
		}
		if _, dup := turns[tick]; dup {
			return nil, fmt.Errorf("invalid turn %q: tick %d already has a turn", part, tick)
		}
		turns[tick] = dir
	}
	return turns, nil
}

const hudWidth = 48

// renderFrame rasterizes the current frame without colors.
func renderFrame(game registry.Game) string {
	cols, rows, unit := game.Dimensions()
	w, h := core.MinScreenSize(cols, rows)
	vp, _ := core.NewViewport(cols, rows, unit, w, h)
	// Wider than the board so the HUD line is not clipped.
	screen := core.NewScreen(max(w, hudWidth), h)
	core.Rasterize(screen, game.Render(), vp)

	lines := strings.Split(screen.String(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines, "\n")
}

// sortedTicks lists scripted ticks in order, for logging.
func sortedTicks(turns map[int]core.Direction) []int {
	ticks := make([]int, 0, len(turns))
	for t := range turns {
		ticks = append(ticks, t)
	}
	sort.Ints(ticks)
	return ticks
}
