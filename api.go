package astar

import (
	"context"
	"fmt"
	"log/slog"
)

// StepCost selects how the accumulated cost g grows per move.
type StepCost int

const (
	// StepOctile charges each move its octile price (orthogonal Base,
	// diagonal DiagonalUnit), the same units the heuristic uses.
	StepOctile StepCost = iota
	// StepUnit charges every move 1 regardless of direction. The heuristic
	// stays in octile units, so the search leans greedy and the path is not
	// guaranteed to be the shortest one.
	StepUnit
)

func (c StepCost) String() string {
	switch c {
	case StepOctile:
		return "octile"
	case StepUnit:
		return "unit"
	}
	return fmt.Sprintf("StepCost(%d)", int(c))
}

// Observer receives a snapshot after every node expansion. Snapshots are
// copies; an observer cannot influence the search.
type Observer func(Snapshot)

// Result contains the outcome of a search. Found is false when the end is
// unreachable; Path is then nil.
type Result struct {
	Path     []Node
	Cost     int
	Expanded int
	Found    bool
}

// Options defines parameters for the search.
type Options struct {
	CostModel     CostModel
	StepCost      StepCost
	Observer      Observer
	MaxExpansions int
	Logger        *slog.Logger
	Verbose       bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithCostModel replaces the default base 10 / diagonal 1.4 model.
func WithCostModel(model CostModel) Option {
	return func(options *Options) { options.CostModel = model }
}

// WithStepCost chooses how g accumulates along a path.
func WithStepCost(stepCost StepCost) Option {
	return func(options *Options) { options.StepCost = stepCost }
}

// WithObserver registers a callback invoked after each expansion.
func WithObserver(observer Observer) Option {
	return func(options *Options) { options.Observer = observer }
}

// WithMaxExpansions aborts the search with ErrExpansionLimit after n
// expansions. Zero means no limit.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithVerbose logs every expansion at debug level.
func WithVerbose(verbose bool) Option {
	return func(options *Options) { options.Verbose = verbose }
}

func buildOptions(options []Option) Options {
	searchOptions := Options{
		CostModel: DefaultCostModel(),
		StepCost:  StepOctile,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.CostModel.Base() == 0 {
		searchOptions.CostModel = DefaultCostModel()
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.DiscardHandler)
	}
	return searchOptions
}

// Search runs A* from start to end on grid. The grid does not need Start
// or End markers; the given nodes must be distinct traversable cells.
func Search(
	ctx context.Context,
	grid *Grid,
	start Node,
	end Node,
	options ...Option,
) (Result, error) {
	stepper, err := NewStepper(grid, start, end, options...)
	if err != nil {
		return Result{}, err
	}
	for !stepper.Done() {
		if _, err := stepper.advance(ctx); err != nil {
			stepper.options.Logger.Warn("search aborted",
				"start", start, "end", end, "expanded", stepper.visited.Len(), "error", err)
			return Result{}, err
		}
	}
	result := stepper.Result()
	stepper.options.Logger.Info("search finished",
		"start", start, "end", end, "found", result.Found,
		"cost", result.Cost, "expanded", result.Expanded, "length", len(result.Path))
	return result, nil
}

// Solve runs A* between the grid's Start and End cells.
func Solve(ctx context.Context, grid *Grid, options ...Option) (Result, error) {
	if grid == nil {
		return Result{}, invalidGrid("nil grid")
	}
	if err := grid.Validate(); err != nil {
		return Result{}, err
	}
	start, _ := grid.Start()
	end, _ := grid.End()
	return Search(ctx, grid, start, end, options...)
}
