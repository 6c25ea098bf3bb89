package layout_test

import (
	"fmt"

	"github.com/matzehuels/blockgraph/pkg/block"
	"github.com/matzehuels/blockgraph/pkg/graph"
	"github.com/matzehuels/blockgraph/pkg/graph/transform"
	"github.com/matzehuels/blockgraph/pkg/layout"
)

func ExampleCompute() {
	g, _ := graph.Build([]block.Block{
		{ID: "a", Title: block.Title{DE: "A", EN: "A"}},
		{ID: "b", Title: block.Title{DE: "B", EN: "B"}, Prerequisites: []string{"a"}},
		{ID: "c", Title: block.Title{DE: "C", EN: "C"}, Prerequisites: []string{"a"}},
	})
	levels := transform.AssignLevels(g)

	positions := layout.Compute(g, levels, layout.DefaultConfig())
	for _, p := range layout.Pair(g, levels, positions, layout.TopToBottom) {
		fmt.Printf("%s level=%d x=%.0f y=%.0f\n", p.Block.ID, p.Level, p.Position.X, p.Position.Y)
	}
	// Output:
	// a level=0 x=0 y=0
	// b level=1 x=-120 y=140
	// c level=1 x=120 y=140
}

func ExampleDistribute() {
	// Three 100-wide siblings with 20 between them, centred on x=0.
	fmt.Println(layout.Distribute(3, 100, 20, 0))
	// Output:
	// [-170 -50 70]
}

func ExampleConnectionPoints() {
	from := layout.Position{X: 0, Y: 0, Width: 200, Height: 60}
	to := layout.Position{X: 0, Y: 140, Width: 200, Height: 60}
	fmt.Printf("%+v\n", layout.ConnectionPoints(from, to, layout.TopToBottom))
	// Output:
	// {X1:100 Y1:60 X2:100 Y2:140}
}
