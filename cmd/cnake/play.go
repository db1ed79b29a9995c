package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cnake/internal/config"
	"github.com/vovakirdan/cnake/internal/core"
	"github.com/vovakirdan/cnake/internal/games/snake"
	"github.com/vovakirdan/cnake/internal/platform/tui"
	"github.com/vovakirdan/cnake/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
	flagFPS    int
	flagFit    bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: snake).

Controls:
  Arrows/WASD  - Steer
  P            - Pause / resume
  Enter        - Start / resume / restart
  Space        - Pause while playing, otherwise start
  Q/Esc        - Quit (from menu, pause or game over)
  Ctrl+C       - Quit immediately

Examples:
  cnake play
  cnake play snake_classic
  cnake play --width 20 --height 15 --fps 8
  cnake play --fit
  cnake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells (overrides config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells (overrides config)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Ticks per second (overrides config)")
	playCmd.Flags().BoolVar(&flagFit, "fit", false, "Size the board to fill the terminal")
}

func runPlay(cmd *cobra.Command, args []string) {
	variant := snake.IDDefault
	if len(args) > 0 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'cnake list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	applyBoardFlags(&cfg, width, height)

	game, err := registry.Create(variant, cfg)
	if err != nil {
		fail("%v", err)
	}

	runErr := tui.Run(game, tui.Options{
		TickRate: cfg.Tick.Rate,
		Width:    width,
		Height:   height,
		Logger:   logger,
	})
	if runErr != nil {
		logger.Error("program exited", "error", runErr)
		fail("running game: %v", runErr)
	}
}

// applyBoardFlags applies --fit, --width, --height and --fps to cfg.
// Explicit sizes win over --fit.
func applyBoardFlags(cfg *config.Config, termW, termH int) {
	if flagFit {
		cols, rows := fitBoard(termW, termH)
		cfg.Grid.Width = max(cols, cfg.Snake.InitialLength+1)
		cfg.Grid.Height = max(rows, 1)
	}
	if flagWidth > 0 {
		cfg.Grid.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Grid.Height = flagHeight
	}
	if flagFPS > 0 {
		cfg.Tick.Rate = flagFPS
	}
	cfg.Snake.StartRow = min(cfg.Snake.StartRow, max(cfg.Grid.Height-1, 0))
}

// fitBoard returns the largest board that fits a termW x termH terminal with
// the help footer.
func fitBoard(termW, termH int) (cols, rows int) {
	w, h := core.MinScreenSize(0, 0)
	return (termW - w) / core.CellWidth, termH - h - 1
}
