package floodfill_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/gridroute/floodfill"
	"github.com/katalvlaran/gridroute/gridgraph"
)

// BenchmarkFill_Open fills a uniform 128×128 grid, alternating colors so
// every iteration repaints the whole region.
func BenchmarkFill_Open(b *testing.B) {
	rows := make([]string, 128)
	for i := range rows {
		rows[i] = strings.Repeat("a", 128)
	}
	gr, err := gridgraph.New(rows)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	colors := [2]byte{'b', 'a'}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := floodfill.Fill(ctx, gr, floodfill.Seed{Color: colors[i%2]}); err != nil {
			b.Fatal(err)
		}
	}
}
