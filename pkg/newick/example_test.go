package newick_test

import (
	"fmt"

	"github.com/matzehuels/newick/pkg/newick"
)

func ExampleParse() {
	root, err := newick.Parse("(A:1,B:2)C;")
	if err != nil {
		panic(err)
	}

	fmt.Println("root:", root.Name)
	for _, c := range root.Children() {
		l, _ := c.Length()
		fmt.Printf("child: %s (%g)\n", c.Name, l)
	}
	// Output:
	// root: C
	// child: A (1)
	// child: B (2)
}

func ExampleFormatForest() {
	forest, _ := newick.ParseForest("(A, B)C;  (D:0.50,E)F;")
	fmt.Println(newick.FormatForest(forest))
	// Output:
	// (A,B)C;
	// (D:0.5,E)F;
}

func ExampleParser_Warnings() {
	p := newick.NewParser(newick.Options{})
	_, _ = p.Parse("(A,B);extra")
	for _, w := range p.Warnings() {
		fmt.Println(w)
	}
	// Output:
	// 5 chars unread from input: "extra"
}
