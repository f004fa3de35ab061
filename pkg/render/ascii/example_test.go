package ascii_test

import (
	"fmt"

	"github.com/matzehuels/newick/pkg/newick"
	"github.com/matzehuels/newick/pkg/render/ascii"
)

func ExampleRender() {
	root, _ := newick.Parse("((A,B)C,D)R;")
	fmt.Println(ascii.Render(root, ascii.Options{Strict: true}))
	// Output:
	//         /-A
	//     /-C-|
	// --R-|   \-B
	//     \-D
}
