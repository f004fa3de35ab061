package newick

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/newick/pkg/errors"
	"github.com/matzehuels/newick/pkg/tree"
)

func childNames(n *tree.Node) []string {
	var out []string
	for _, c := range n.Children() {
		out = append(out, c.Name)
	}
	return out
}

func TestParseBasic(t *testing.T) {
	root, err := Parse("(A:1,B:2)C;")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if root.Name != "C" {
		t.Errorf("root name = %q, want C", root.Name)
	}
	if !root.IsRoot() || root.HasLength() {
		t.Error("root should have no parent and no length")
	}
	if got := childNames(root); !slices.Equal(got, []string{"A", "B"}) {
		t.Fatalf("children = %v, want [A B]", got)
	}
	for i, want := range []float64{1, 2} {
		c := root.Child(i)
		if l, ok := c.Length(); !ok || l != want {
			t.Errorf("%s length = %v, %v, want %v", c, l, ok, want)
		}
		if c.Parent() != root {
			t.Errorf("%s parent = %v, want C", c, c.Parent())
		}
	}
}

func TestParseStructure(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantRoot  string
		wantLeafs []string
		wantCount int
	}{
		{name: "single leaf", input: "A;", wantRoot: "A", wantLeafs: []string{"A"}, wantCount: 1},
		{name: "no terminator", input: "(A,B)C", wantRoot: "C", wantLeafs: []string{"A", "B"}, wantCount: 3},
		{name: "unnamed leaves", input: "(,);", wantRoot: "", wantLeafs: []string{"", ""}, wantCount: 3},
		{name: "nested", input: "((A,B)C,((D,E)F,G,H)I)J;", wantRoot: "J", wantLeafs: []string{"A", "B", "D", "E", "G", "H"}, wantCount: 10},
		{name: "whitespace", input: " ( A :1 ,\n\tB ) C ; ", wantRoot: "C", wantLeafs: []string{"A", "B"}, wantCount: 3},
		{name: "spaces inside names", input: "(Homo sapiens,Pan troglodytes)Hominini;", wantRoot: "Hominini", wantLeafs: []string{"Homo sapiens", "Pan troglodytes"}, wantCount: 3},
		{name: "unicode", input: "(Äpfel,Bär)Wurzel;", wantRoot: "Wurzel", wantLeafs: []string{"Äpfel", "Bär"}, wantCount: 3},
		{name: "blank name is absent", input: "(A,   )R;", wantRoot: "R", wantLeafs: []string{"A", ""}, wantCount: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if root.Name != tt.wantRoot {
				t.Errorf("root = %q, want %q", root.Name, tt.wantRoot)
			}
			if got := root.LeafNames(); !slices.Equal(got, tt.wantLeafs) {
				t.Errorf("leaves = %q, want %q", got, tt.wantLeafs)
			}
			if got := root.Count(); got != tt.wantCount {
				t.Errorf("Count() = %d, want %d", got, tt.wantCount)
			}
			if err := tree.Validate(root); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestParseLengths(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "A:0;", want: 0},
		{input: "A:12;", want: 12},
		{input: "A:0.25;", want: 0.25},
		{input: "A:.5;", want: 0.5},
		{input: "A:3.;", want: 3},
		{input: "A :7;", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			root, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if l, ok := root.Length(); !ok || l != tt.want {
				t.Errorf("Length() = %v, %v, want %v", l, ok, tt.want)
			}
		})
	}
}

func TestParseComments(t *testing.T) {
	root, err := Parse("(A[x=1]:0.5,B:1[y])C[root];")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		node    string
		comment string
	}{
		{node: "A", comment: "x=1"},
		{node: "B", comment: "y"},
		{node: "C", comment: "root"},
	}
	for _, tt := range tests {
		n := root.Find(tt.node)
		if n == nil {
			t.Fatalf("node %s not found", tt.node)
		}
		if n.Comment != tt.comment {
			t.Errorf("%s comment = %q, want %q", tt.node, n.Comment, tt.comment)
		}
	}
	if l, _ := root.Find("A").Length(); l != 0.5 {
		t.Errorf("A length = %v, want 0.5", l)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		code       errs.Code
		offset     int
		contextHas string
	}{
		{name: "missing separator", input: "(A,B[x]C)", code: errs.ErrCodeSyntax, offset: 7, contextHas: "C)"},
		{name: "unclosed list", input: "(A,B", code: errs.ErrCodeSyntax, offset: 4},
		{name: "unterminated comment", input: "A[note", code: errs.ErrCodeSyntax, offset: 1, contextHas: "[note"},
		{name: "extra close", input: "(A,B)C)", code: errs.ErrCodeInvalidFormat, offset: 6, contextHas: ")"},
		{name: "empty length", input: "A:;", code: errs.ErrCodeInvalidFormat, offset: 1},
		{name: "lone dot", input: "A:.;", code: errs.ErrCodeInvalidFormat, offset: 1},
		{name: "signed length", input: "A:-1;", code: errs.ErrCodeInvalidFormat, offset: 1},
		{name: "exponent", input: "A:1e5;", code: errs.ErrCodeInvalidFormat, offset: 3, contextHas: "e5"},
		{name: "second dot", input: "A:1.2.3;", code: errs.ErrCodeInvalidFormat, offset: 5},
		{name: "rune offset", input: "(É:1 B)", code: errs.ErrCodeSyntax, offset: 5, contextHas: "B)"},
		{name: "empty", input: "", code: errs.ErrCodeInvalidInput, offset: -1},
		{name: "blank", input: " \n ", code: errs.ErrCodeInvalidInput, offset: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want %s", tt.input, tt.code)
			}
			if !errs.Is(err, tt.code) {
				t.Fatalf("Parse(%q) error = %v, want code %s", tt.input, err, tt.code)
			}
			var e *errs.Error
			e, _ = err.(*errs.Error)
			if e.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d", e.Offset, tt.offset)
			}
			if !strings.Contains(e.Context, tt.contextHas) {
				t.Errorf("Context = %q, want it to contain %q", e.Context, tt.contextHas)
			}
		})
	}
}

func TestParseErrorContextIsBounded(t *testing.T) {
	input := "(A[c]" + strings.Repeat("x", 500) + ")"
	_, err := Parse(input)
	e, ok := err.(*errs.Error)
	if !ok {
		t.Fatalf("error = %v, want *errors.Error", err)
	}
	if got := len([]rune(e.Context)); got != errs.ContextWindow {
		t.Errorf("context length = %d, want %d", got, errs.ContextWindow)
	}
}

func TestParseTrailingText(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	p := NewParser(Options{Logger: logger})

	root, err := p.Parse("(A,B)C; xyz")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if root.Name != "C" {
		t.Errorf("root = %q, want C", root.Name)
	}

	ws := p.Warnings()
	if len(ws) != 1 {
		t.Fatalf("warnings = %v, want 1", ws)
	}
	if ws[0].Unread != 3 || ws[0].Text != "xyz" || ws[0].Offset != 8 {
		t.Errorf("warning = %+v", ws[0])
	}
	if !strings.Contains(buf.String(), "3 chars unread") {
		t.Errorf("log output = %q, want warning", buf.String())
	}
}

func TestParseTrailingTextStrict(t *testing.T) {
	p := NewParser(Options{Strict: true})
	_, err := p.Parse("(A,B)C; xyz")
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("Parse() error = %v, want INVALID_FORMAT", err)
	}
	if len(p.Warnings()) != 0 {
		t.Errorf("warnings = %v, want none", p.Warnings())
	}
}

func TestParseTerminatorWhitespace(t *testing.T) {
	p := NewParser(Options{})
	if _, err := p.Parse("(A,B)C ;  \n"); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(p.Warnings()) != 0 {
		t.Errorf("warnings = %v, want none", p.Warnings())
	}
}

func TestParseForest(t *testing.T) {
	forest, err := ParseForest("(A,B)C;\n(D,E)F;\n\n  ;G;")
	if err != nil {
		t.Fatalf("ParseForest() error = %v", err)
	}

	var roots []string
	for _, r := range forest {
		roots = append(roots, r.Name)
	}
	if want := []string{"C", "F", "G"}; !slices.Equal(roots, want) {
		t.Errorf("roots = %v, want %v", roots, want)
	}
	for _, r := range forest {
		if !r.IsRoot() {
			t.Errorf("%s has a parent", r)
		}
	}
}

func TestParseForestErrors(t *testing.T) {
	_, err := ParseForest(" ; ;\n")
	if !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("blank forest error = %v, want INVALID_INPUT", err)
	}

	_, err = ParseForest("A;\n(B,C")
	var e *errs.Error
	e, _ = err.(*errs.Error)
	if e == nil || e.Code != errs.ErrCodeSyntax {
		t.Fatalf("error = %v, want SYNTAX_ERROR", err)
	}
	if e.Offset != 7 {
		t.Errorf("Offset = %d, want 7 (absolute)", e.Offset)
	}
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 50000
	input := strings.Repeat("(", depth) + "A" + strings.Repeat(")", depth) + ";"

	root, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := root.Depth(); got != depth {
		t.Errorf("Depth() = %d, want %d", got, depth)
	}
	if got := Format(root) + ";"; got != input {
		t.Error("Format() did not reproduce the deep input")
	}
}
