package catalog_test

import (
	"fmt"

	"github.com/matzehuels/toolverse/pkg/catalog"
)

func ExampleCatalog_Search() {
	c := catalog.Builtin()
	for _, r := range c.Search("image") {
		fmt.Printf("%s %s\n", r.Type, r.Name)
	}
	// Output:
	// category Image Generation
	// tool DALL·E
	// tool Stable Diffusion
}

func ExampleRating() {
	for _, p := range []float64{95, 70, 40} {
		fmt.Printf("%.0f -> %d stars\n", p, catalog.Rating(p))
	}
	// Output:
	// 95 -> 5 stars
	// 70 -> 4 stars
	// 40 -> 3 stars
}
