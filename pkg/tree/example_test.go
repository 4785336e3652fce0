package tree_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/toolverse/pkg/tree"
)

func ExampleWriteTree() {
	root := &tree.Node{
		Name: tree.RootName,
		Children: []*tree.Node{
			{ID: "code", Name: "Code Generation", Children: []*tree.Node{
				{ID: "copilot", Name: "GitHub Copilot", Value: tree.Value(90)},
			}},
		},
	}
	if err := tree.WriteTree(root, os.Stdout); err != nil {
		fmt.Println("Error:", err)
	}
	// Output:
	// {
	//   "name": "AI Tools",
	//   "children": [
	//     {
	//       "id": "code",
	//       "name": "Code Generation",
	//       "children": [
	//         {
	//           "id": "copilot",
	//           "name": "GitHub Copilot",
	//           "value": 90
	//         }
	//       ]
	//     }
	//   ]
	// }
}
