package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/emirpasic/gods/stacks/arraystack"

	errs "github.com/matzehuels/newick/pkg/errors"
	"github.com/matzehuels/newick/pkg/tree"
)

type node struct {
	Name     string   `json:"name,omitempty"`
	Length   *float64 `json:"length,omitempty"`
	Comment  string   `json:"comment,omitempty"`
	Children []*node  `json:"children,omitempty"`
}

// WriteJSON encodes a forest as an indented JSON array and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(f tree.Forest, w io.Writer) error {
	out := make([]*node, len(f))
	for i, root := range f {
		out[i] = toJSON(root)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a forest to a JSON file at path.
func ExportJSON(f tree.Forest, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()
	return WriteJSON(f, file)
}

// ReadJSON decodes a forest from r. The input is either an array of trees or
// a single tree object. Every decoded tree is checked with [tree.Validate].
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (tree.Forest, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var data []*node
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '{' {
		var single node
		err = json.Unmarshal(trimmed, &single)
		data = []*node{&single}
	} else {
		err = json.Unmarshal(raw, &data)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode JSON")
	}

	var forest tree.Forest
	for i, n := range data {
		if n == nil {
			return nil, errs.New(errs.ErrCodeInvalidInput, "tree %d: null", i)
		}
		root, err := fromJSON(n)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		if err := tree.Validate(root); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		forest = append(forest, root)
	}
	if len(forest) == 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "no tree found in input")
	}
	return forest, nil
}

// ImportJSON reads a JSON file at path and returns the decoded forest.
func ImportJSON(path string) (tree.Forest, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

func toJSON(root *tree.Node) *node {
	out := make(map[*tree.Node]*node)
	for n := range root.Walk(tree.PreOrder) {
		j := &node{Name: n.Name, Comment: n.Comment}
		if l, ok := n.Length(); ok {
			j.Length = &l
		}
		out[n] = j
		if p := n.Parent(); p != nil && n != root {
			out[p].Children = append(out[p].Children, j)
		}
	}
	return out[root]
}

type jsonFrame struct {
	src *node
	dst *tree.Node
}

func fromJSON(root *node) (*tree.Node, error) {
	top := newNode(root)
	stack := arraystack.New()
	stack.Push(jsonFrame{root, top})
	for !stack.Empty() {
		v, _ := stack.Pop()
		f := v.(jsonFrame)
		for _, c := range f.src.Children {
			if c == nil {
				return nil, errs.New(errs.ErrCodeInvalidInput, "null child of node %q", f.src.Name)
			}
			child := newNode(c)
			f.dst.AddChild(child)
			stack.Push(jsonFrame{c, child})
		}
	}
	return top, nil
}

func newNode(j *node) *tree.Node {
	n := tree.New(j.Name)
	n.Comment = j.Comment
	if j.Length != nil {
		n.SetLength(*j.Length)
	}
	return n
}
