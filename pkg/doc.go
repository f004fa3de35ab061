// Package pkg provides the libraries behind the newick command.
//
// # Overview
//
// The pkg directory is organized into these areas:
//
//  1. [tree] - The rooted tree model, traversal and queries
//  2. [tree/transform] - Pruning, polytomy resolution, collapsing
//  3. [newick] - Parsing and formatting the Newick notation
//  4. [render] - Text art and Graphviz diagrams
//  5. [io] - Encoding-aware files and JSON interchange
//
// # Architecture
//
// The typical data flow:
//
//	Newick text / JSON
//	         ↓
//	    [newick] or [io] (parse into a tree.Forest)
//	         ↓
//	    [tree/transform] (reshape in place)
//	         ↓
//	    [newick], [io] or [render] (write or draw)
//
// # Quick Start
//
//	root, err := newick.Parse("((A:1,B:2)C:0.5,D:3)R;")
//	if err != nil {
//	    return err
//	}
//	transform.PruneByNames(root, []string{"B"}, false)
//	transform.RemoveRedundantNodes(root, true)
//	fmt.Println(newick.Format(root))          // (A:1.5,D:3)R
//	fmt.Println(ascii.Render(root, ascii.Options{}))
//
// # Supporting Packages
//
// [errors] defines coded errors with input offsets and the [errors.Warning]
// value reported for text left after a terminating ';'.
//
// [observability] lets a binary register hooks for parse, transform and
// render events.
//
// [buildinfo] carries the version injected at build time.
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/newick/...    # Specific package
//	go test -run Example        # Examples only
//
// [tree]: https://pkg.go.dev/github.com/matzehuels/newick/pkg/tree
// [tree/transform]: https://pkg.go.dev/github.com/matzehuels/newick/pkg/tree/transform
// [newick]: https://pkg.go.dev/github.com/matzehuels/newick/pkg/newick
// [render]: https://pkg.go.dev/github.com/matzehuels/newick/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/newick/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/newick/pkg/errors
// [errors.Warning]: https://pkg.go.dev/github.com/matzehuels/newick/pkg/errors#Warning
// [observability]: https://pkg.go.dev/github.com/matzehuels/newick/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/newick/pkg/buildinfo
package pkg
