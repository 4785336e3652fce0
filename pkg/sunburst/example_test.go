package sunburst_test

import (
	"fmt"
	"math"
	"time"

	"github.com/matzehuels/toolverse/pkg/sunburst"
	"github.com/matzehuels/toolverse/pkg/tree"
)

func Example() {
	engine, err := sunburst.NewFromTree(&tree.Node{
		Name: "AI Tools",
		Children: []*tree.Node{
			{ID: "a", Name: "A", Children: []*tree.Node{{Name: "T1", Value: tree.Value(100)}}},
			{ID: "b", Name: "B", Children: []*tree.Node{{Name: "T2", Value: tree.Value(50)}}},
		},
	})
	if err != nil {
		panic(err)
	}
	engine.Subscribe(func(ev sunburst.Event) {
		if f, ok := ev.(sunburst.CategoryFocused); ok {
			fmt.Println("focused", f.CategoryID)
		}
	})

	// Arcs are indexed by node id; the arena is depth-first, so the
	// categories are looked up rather than sliced.
	share := func() {
		arcs := engine.Current()
		for _, id := range engine.Hierarchy().Categories() {
			fmt.Printf("%.2f ", arcs[id].Width()/(2*math.Pi))
		}
		fmt.Println()
	}
	share()
	engine.FocusCategory("a")
	engine.Tick(375 * time.Millisecond)
	share()
	engine.Tick(750 * time.Millisecond)
	share()
	fmt.Println(engine.FocusTool("nothing"), engine.State())
	// Output:
	// 0.67 0.33
	// focused a
	// 0.83 0.17
	// 1.00 0.00
	// NotFound FocusedOnCategory
}
