// This defines a command-line tool that generates random boards, solves them
// and shows the result as text, a terminal animation or a PNG image.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/board"
	"github.com/pdrpinto/gridastar/internal/config"
	"github.com/pdrpinto/gridastar/render"
)

type options struct {
	cfg       config.Config
	boardFile string
	color     bool
	animate   bool
	pngFile   string
	cellSize  int
	bench     int
}

func parseFlags(args []string, stderr io.Writer, cfg config.Config) (options, error) {
	opts := options{cfg: cfg}
	fs := flag.NewFlagSet("astar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.cfg.Height, "height", cfg.Height, "Board height in cells, 0 for random.")
	fs.IntVar(&opts.cfg.Width, "width", cfg.Width, "Board width in cells, 0 for random.")
	fs.Float64Var(&opts.cfg.BlockadeRatio, "ratio", cfg.BlockadeRatio, "Chance that a cell is blocked.")
	fs.Int64Var(&opts.cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for time based.")
	fs.IntVar(&opts.cfg.MaxExpansions, "max-expansions", cfg.MaxExpansions, "Abort after this many expansions, 0 for no limit.")
	fs.BoolVar(&opts.cfg.UnitSteps, "unit-steps", cfg.UnitSteps, "Count every move as 1 instead of its octile cost.")
	fs.BoolVar(&opts.cfg.Verbose, "verbose", cfg.Verbose, "Log every expansion.")
	fs.IntVar(&opts.cfg.Workers, "workers", cfg.Workers, "Concurrent searches for -bench, 0 for one per CPU.")
	fs.DurationVar(&opts.cfg.FrameDelay, "delay", cfg.FrameDelay, "Delay between frames for -animate.")
	fs.StringVar(&opts.boardFile, "board", "", "Read the board from this file instead of generating one.")
	fs.BoolVar(&opts.color, "color", true, "Use ANSI colors in text output.")
	fs.BoolVar(&opts.animate, "animate", false, "Animate the search in the terminal.")
	fs.StringVar(&opts.pngFile, "png", "", "Also write the solved board to this .png file.")
	fs.IntVar(&opts.cellSize, "cell-size", 16, "Pixels per cell for -png.")
	fs.IntVar(&opts.bench, "bench", 0, "Solve this many random boards and print a summary.")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if err := opts.cfg.Validate(); err != nil {
		return options{}, err
	}
	return opts, nil
}

func searchOptions(cfg config.Config, logger *slog.Logger) ([]astar.Option, error) {
	model, err := astar.NewCostModel(cfg.BaseCost, cfg.DiagonalBonus)
	if err != nil {
		return nil, err
	}
	stepCost := astar.StepOctile
	if cfg.UnitSteps {
		stepCost = astar.StepUnit
	}
	return []astar.Option{
		astar.WithCostModel(model),
		astar.WithStepCost(stepCost),
		astar.WithMaxExpansions(cfg.MaxExpansions),
		astar.WithLogger(logger),
		astar.WithVerbose(cfg.Verbose),
	}, nil
}

func loadBoard(opts options) (*astar.Grid, error) {
	if opts.boardFile != "" {
		content, err := os.ReadFile(opts.boardFile)
		if err != nil {
			return nil, fmt.Errorf("read board: %w", err)
		}
		return astar.ParseGrid(string(content))
	}
	b, err := board.New(board.Config{
		Height:        opts.cfg.Height,
		Width:         opts.cfg.Width,
		BlockadeRatio: opts.cfg.BlockadeRatio,
		Seed:          opts.cfg.Seed,
	})
	if err != nil {
		return nil, err
	}
	return b.Grid, nil
}

func solveOne(ctx context.Context, opts options, logger *slog.Logger, stdout io.Writer) error {
	grid, err := loadBoard(opts)
	if err != nil {
		return err
	}
	searchOpts, err := searchOptions(opts.cfg, logger)
	if err != nil {
		return err
	}
	height, width := grid.Dimensions()
	logger.Info("board ready", "height", height, "width", width, "seed", opts.cfg.Seed)

	var result astar.Result
	if opts.animate {
		result, err = animate(ctx, grid, opts.cfg.FrameDelay, searchOpts)
	} else {
		result, err = astar.Solve(ctx, grid, searchOpts...)
	}
	if err != nil {
		return err
	}

	fmt.Fprint(stdout, render.Text(grid, render.TextOptions{
		Color:   opts.color,
		Overlay: render.PathOverlay(result.Path),
	}))
	fmt.Fprintln(stdout, render.Legend(opts.color))
	if result.Found {
		fmt.Fprintf(stdout, "path: %d nodes, cost %d, %d expansions\n", len(result.Path), result.Cost, result.Expanded)
	} else {
		fmt.Fprintf(stdout, "no path, %d expansions\n", result.Expanded)
	}

	if opts.pngFile != "" {
		if err := writePNG(opts.pngFile, grid, result, opts.cellSize); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "image %s written\n", opts.pngFile)
	}
	return nil
}

func writePNG(path string, grid *astar.Grid, result astar.Result, cellSize int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := render.PNG(f, grid, render.PathOverlay(result.Path), cellSize); err != nil {
		return err
	}
	return f.Close()
}

func animate(ctx context.Context, grid *astar.Grid, delay time.Duration, searchOpts []astar.Option) (astar.Result, error) {
	start, err := grid.Start()
	if err != nil {
		return astar.Result{}, err
	}
	end, _ := grid.End()
	stepper, err := astar.NewStepper(grid, start, end, searchOpts...)
	if err != nil {
		return astar.Result{}, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return astar.Result{}, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return astar.Result{}, fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go render.WatchQuit(screen, cancel)

	result, err := render.NewTerminal(screen).Animate(ctx, grid, stepper, delay)
	if err != nil {
		return astar.Result{}, err
	}
	// hold the last frame until the user quits
	<-ctx.Done()
	return result, nil
}

func bench(ctx context.Context, opts options, logger *slog.Logger, stdout io.Writer) error {
	searchOpts, err := searchOptions(opts.cfg, logger)
	if err != nil {
		return err
	}
	jobs := make([]astar.Job, opts.bench)
	for i := range jobs {
		seed := opts.cfg.Seed
		if seed != 0 {
			seed += int64(i)
		}
		b, err := board.New(board.Config{
			Height:        opts.cfg.Height,
			Width:         opts.cfg.Width,
			BlockadeRatio: opts.cfg.BlockadeRatio,
			Seed:          seed,
		})
		if err != nil {
			return err
		}
		jobs[i] = astar.Job{Grid: b.Grid}
	}

	began := time.Now()
	results, err := astar.SolveAll(ctx, jobs, opts.cfg.Workers, searchOpts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(began)

	var found, failed, expanded int
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			logger.Warn("board failed", "id", r.ID, "error", r.Err)
		case r.Result.Found:
			found++
		}
		expanded += r.Result.Expanded
	}
	fmt.Fprintf(stdout, "boards: %d  solved: %d  unreachable: %d  failed: %d\n",
		len(results), found, len(results)-found-failed, failed)
	fmt.Fprintf(stdout, "expansions: %d  elapsed: %v\n", expanded, elapsed.Round(time.Microsecond))
	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %s\n", err)
		return 1
	}
	opts, err := parseFlags(args, stderr, cfg)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Invalid argument: %s\n", err)
		return 1
	}
	logger := opts.cfg.Logger()

	if opts.bench > 0 {
		err = bench(ctx, opts, logger, stdout)
	} else {
		err = solveOne(ctx, opts, logger, stdout)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
