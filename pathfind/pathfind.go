package pathfind

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/gridgraph"
)

const tracerName = "github.com/katalvlaran/gridroute/pathfind"

// Locate returns the node IDs of the single start and goal markers.
func Locate(grid *gridgraph.Grid, m Markers) (start, goal int, err error) {
	if grid == nil {
		return 0, 0, ErrGridNil
	}
	if start, err = locateOne(grid, m.Start, ErrNoStart); err != nil {
		return 0, 0, err
	}
	if goal, err = locateOne(grid, m.Goal, ErrNoGoal); err != nil {
		return 0, 0, err
	}

	return start, goal, nil
}

func locateOne(grid *gridgraph.Grid, c byte, missing error) (int, error) {
	ids := grid.Find(c)
	switch len(ids) {
	case 0:
		return 0, fmt.Errorf("%w: %q", missing, c)
	case 1:
		return ids[0], nil
	}

	return 0, fmt.Errorf("%w: %q at %d cells", ErrDuplicateMarker, c, len(ids))
}

// Action returns the move from one cell to an adjacent one: 'R' when x grows,
// 'L' when it shrinks, then 'D' and 'U' for y. Identical cells yield '.'.
func Action(grid *gridgraph.Grid, from, to int) byte {
	fx, fy := grid.Coordinate(from)
	tx, ty := grid.Coordinate(to)
	switch {
	case fx < tx:
		return 'R'
	case fx > tx:
		return 'L'
	case fy < ty:
		return 'D'
	case fy > ty:
		return 'U'
	}

	return '.'
}

// Actions maps every consecutive pair of path to its Action.
// Paths shorter than two nodes yield "".
func Actions(grid *gridgraph.Grid, path []int) string {
	if len(path) < 2 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(path) - 1)
	for i := 1; i < len(path); i++ {
		sb.WriteByte(Action(grid, path[i-1], path[i]))
	}

	return sb.String()
}

// Solve finds a shortest route from the start marker to the goal marker,
// moving 4-connected through cells that are not walls.
func Solve(ctx context.Context, grid *gridgraph.Grid, m Markers, opts ...Option) (Plan, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Plan{}, cfg.err
	}
	if grid == nil {
		return Plan{}, ErrGridNil
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	ctx, span := tp.Tracer(tracerName).Start(ctx, "pathfind.Solve",
		trace.WithAttributes(
			attribute.Int("grid.width", grid.Width),
			attribute.Int("grid.height", grid.Height),
		),
	)
	defer span.End()

	began := time.Now()
	start, goal, err := Locate(grid, m)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "markers")
		return Plan{}, err
	}
	span.SetAttributes(attribute.Int("start", start), attribute.Int("goal", goal))

	g := grid.Graph(gridgraph.NotWall(m.Wall))
	res, err := astar.Search(g, astar.Manhattan{Width: grid.Width}, start, goal,
		astar.WithMaxExpansions(cfg.MaxExpansions))
	if err != nil {
		span.SetAttributes(attribute.Int("expanded", res.Expanded))
		span.RecordError(err)
		span.SetStatus(codes.Error, "search")
		return Plan{Expanded: res.Expanded}, err
	}

	plan := Plan{
		Path:     res.Path,
		Actions:  Actions(grid, res.Path),
		Expanded: res.Expanded,
		Found:    res.Found,
	}
	elapsed := time.Since(began)
	cfg.Recorder.ObserveSearch(plan.Found, plan.Expanded, len(plan.Actions), elapsed)

	span.SetAttributes(
		attribute.Bool("found", plan.Found),
		attribute.Int("expanded", plan.Expanded),
		attribute.Int("steps", len(plan.Actions)),
	)
	span.SetStatus(codes.Ok, "")
	cfg.Logger.DebugContext(ctx, "path search finished",
		"width", grid.Width,
		"height", grid.Height,
		"start", start,
		"goal", goal,
		"found", plan.Found,
		"expanded", plan.Expanded,
		"steps", len(plan.Actions),
		"elapsed", elapsed,
	)

	return plan, nil
}
