package floodfill

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/bfs"
	"github.com/katalvlaran/gridroute/gridgraph"
)

const tracerName = "github.com/katalvlaran/gridroute/floodfill"

// DecodeRequest reads a grid, then the seed row, column and fill character.
func DecodeRequest(r io.Reader) (*gridgraph.Grid, Seed, error) {
	dec := gridgraph.NewDecoder(r)
	grid, err := dec.Grid()
	if err != nil {
		return nil, Seed{}, err
	}
	var seed Seed
	if seed.Row, err = dec.Int(); err != nil {
		return nil, Seed{}, fmt.Errorf("%w: row: %w", ErrBadSeed, err)
	}
	if seed.Col, err = dec.Int(); err != nil {
		return nil, Seed{}, fmt.Errorf("%w: column: %w", ErrBadSeed, err)
	}
	if seed.Color, err = dec.Byte(); err != nil {
		return nil, Seed{}, fmt.Errorf("%w: color: %w", ErrBadSeed, err)
	}

	return grid, seed, nil
}

// Fill paints seed.Color over the region of cells connected to the seed
// through equal characters. grid is modified in place.
// Filling with the seed's current character changes nothing but still
// reports the region size.
func Fill(ctx context.Context, grid *gridgraph.Grid, seed Seed, opts ...Option) (Report, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Report{}, cfg.err
	}
	if grid == nil {
		return Report{}, ErrGridNil
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	ctx, span := tp.Tracer(tracerName).Start(ctx, "floodfill.Fill",
		trace.WithAttributes(
			attribute.Int("grid.width", grid.Width),
			attribute.Int("grid.height", grid.Height),
			attribute.Int("seed.row", seed.Row),
			attribute.Int("seed.col", seed.Col),
		),
	)
	defer span.End()

	began := time.Now()
	original, ok := grid.At(seed.Col, seed.Row)
	if !ok {
		err := fmt.Errorf("%w: (%d,%d) in %d×%d", ErrSeedOutOfRange, seed.Row, seed.Col, grid.Height, grid.Width)
		span.RecordError(err)
		span.SetStatus(codes.Error, "seed")
		return Report{}, err
	}

	g := grid.Graph(gridgraph.SameValue())
	paint := bfs.VisitFunc(func(id int) {
		x, y := grid.Coordinate(id)
		grid.Set(x, y, seed.Color)
	})
	res, err := bfs.Traverse(g, grid.ID(seed.Col, seed.Row), paint, bfs.WithMaxDepth(cfg.MaxDepth))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "traverse")
		return Report{}, err
	}

	rep := Report{Filled: len(res.Order), Original: original}
	elapsed := time.Since(began)
	cfg.Recorder.ObserveFill(rep.Filled, elapsed)

	span.SetAttributes(attribute.Int("filled", rep.Filled))
	span.SetStatus(codes.Ok, "")
	cfg.Logger.DebugContext(ctx, "flood fill finished",
		"width", grid.Width,
		"height", grid.Height,
		"row", seed.Row,
		"col", seed.Col,
		"original", string(original),
		"color", string(seed.Color),
		"filled", rep.Filled,
		"elapsed", elapsed,
	)

	return rep, nil
}
