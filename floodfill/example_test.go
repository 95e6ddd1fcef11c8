package floodfill_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/gridroute/floodfill"
)

// ExampleFill decodes a request, fills it and re-encodes the grid.
func ExampleFill() {
	gr, seed, err := floodfill.DecodeRequest(strings.NewReader("2\nAAB\nABB\n0 0 X\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := floodfill.Fill(context.Background(), gr, seed); err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = gr.Encode(os.Stdout)
	// Output:
	// 2
	// XXB
	// XBB
}
