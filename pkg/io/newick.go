package io

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	errs "github.com/matzehuels/newick/pkg/errors"
	"github.com/matzehuels/newick/pkg/newick"
	"github.com/matzehuels/newick/pkg/tree"
)

// DefaultEncoding is used when [Options.Encoding] is empty.
const DefaultEncoding = "utf-8"

// Options configures reading and writing Newick text.
type Options struct {
	// Encoding names the text encoding of the file or stream.
	Encoding string

	// Parser parses the decoded text. Nil uses a parser with default options.
	// Pass a parser to collect its warnings after reading.
	Parser *newick.Parser

	// Single parses the whole text as one tree. Text after its ';' is
	// reported as a parser warning instead of being read as further trees.
	Single bool
}

// ReadNewick decodes r with the configured encoding and parses every tree in
// it, or exactly one when [Options.Single] is set. ReadNewick does not close r.
func ReadNewick(r io.Reader, opts Options) (tree.Forest, error) {
	enc, name, err := lookup(opts.Encoding)
	if err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if enc == unicode.UTF8 && !hasUTF16BOM(raw) && !utf8.Valid(bytes.TrimPrefix(raw, utf8BOM)) {
		return nil, errs.New(errs.ErrCodeInvalidEncoding, "input is not valid %s", name)
	}

	text, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), raw)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidEncoding, err, "decode %s", name)
	}

	p := opts.Parser
	if p == nil {
		p = newick.NewParser(newick.Options{})
	}
	if !opts.Single {
		return p.ParseForest(string(text))
	}
	root, err := p.Parse(string(text))
	if err != nil {
		return nil, err
	}
	return tree.Forest{root}, nil
}

// ImportNewick reads the Newick file at path. See [ReadNewick].
func ImportNewick(path string, opts Options) (tree.Forest, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadNewick(f, opts)
}

// WriteNewick serializes the forest with [newick.FormatForest], appends a
// newline and writes the result to w in the configured encoding.
func WriteNewick(f tree.Forest, w io.Writer, opts Options) error {
	enc, name, err := lookup(opts.Encoding)
	if err != nil {
		return err
	}

	out, _, err := transform.String(enc.NewEncoder(), newick.FormatForest(f)+"\n")
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidEncoding, err, "encode %s", name)
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportNewick writes the forest to a file at path. The file is not created
// when the forest cannot be encoded.
func ExportNewick(f tree.Forest, path string, opts Options) error {
	var buf bytes.Buffer
	if err := WriteNewick(f, &buf, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return nil
}

// Peek returns up to n leading bytes of the file at path. Callers use it to
// tell Newick from JSON before importing the file.
func Peek(path string, n int) ([]byte, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	m, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf[:m], nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func hasUTF16BOM(b []byte) bool {
	return bytes.HasPrefix(b, []byte{0xFE, 0xFF}) || bytes.HasPrefix(b, []byte{0xFF, 0xFE})
}

func lookup(name string) (encoding.Encoding, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultEncoding
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, name, errs.Wrap(errs.ErrCodeInvalidEncoding, err, "unknown encoding %q", name)
	}
	return enc, name, nil
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
