package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/newick/pkg/errors"
	pkgio "github.com/matzehuels/newick/pkg/io"
	"github.com/matzehuels/newick/pkg/newick"
	"github.com/matzehuels/newick/pkg/observability"
	"github.com/matzehuels/newick/pkg/tree"
)

// Input formats.
const (
	formatAuto   = "auto"
	formatNewick = "newick"
	formatJSON   = "json"
)

// readOpts selects how an input argument is read.
type readOpts struct {
	format string // auto, newick or json
	single bool   // one tree, trailing text is a warning
	strict bool   // one tree, trailing text is an error
}

// addReadFlags registers the input flags shared by every command that reads
// trees, along with their shell completions.
func addReadFlags(cmd *cobra.Command, opts *readOpts) {
	cmd.Flags().StringVarP(&opts.format, "from", "f", formatAuto, "input format: auto, newick, json")
	cmd.Flags().BoolVar(&opts.single, "single", false, "read exactly one tree; text after its ';' is reported")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "read exactly one tree; text after its ';' is an error")
	registerInputCompletion(cmd)
}

// applyParseConfig merges the [parse] config section into opts. Strict
// reading implies single-tree reading, since a forest is split on ';' and
// has no trailing text to reject.
func (c *CLI) applyParseConfig(opts *readOpts) {
	opts.strict = opts.strict || c.Config.Parse.Strict
	opts.single = opts.single || opts.strict
}

// source is an input argument with its format resolved. Stdin is read up
// front; files are left to pkg/io.
type source struct {
	path   string
	format string
	stdin  []byte
}

// sniffLen is how many leading bytes of a file are read to detect its format.
const sniffLen = 512

// openSource resolves the input format of path. Auto detection looks at the
// file extension and the first bytes of the input.
func (c *CLI) openSource(path, format string) (*source, error) {
	src := &source{path: path, format: format}
	auto := format == "" || format == formatAuto

	var head []byte
	switch {
	case isStdin(path):
		data, err := io.ReadAll(c.In)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		src.stdin, head = data, data
	case auto:
		var err error
		if head, err = pkgio.Peek(path, sniffLen); err != nil {
			return nil, err
		}
	}
	if auto {
		src.format = detectFormat(path, head)
	}
	return src, nil
}

// readForest reads the trees named by path ("-" or empty for stdin).
// Parser warnings are logged and summarized in a status line.
func (c *CLI) readForest(ctx context.Context, path string, opts readOpts) (tree.Forest, error) {
	src, err := c.openSource(path, opts.format)
	if err != nil {
		return nil, err
	}
	return c.decodeForest(ctx, src, opts)
}

// decodeForest parses an opened source.
func (c *CLI) decodeForest(ctx context.Context, src *source, opts readOpts) (tree.Forest, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, displayPath(src.path))

	forest, err := c.parseSource(src, opts, logger)
	hooks.OnParseComplete(ctx, displayPath(src.path), len(forest), time.Since(prog.start), err)
	if err != nil {
		return nil, err
	}

	prog.done(fmt.Sprintf("Read %d %s from %s", len(forest), plural(len(forest), "tree"), displayPath(src.path)))
	return forest, nil
}

func (c *CLI) parseSource(src *source, opts readOpts, logger *log.Logger) (tree.Forest, error) {
	switch src.format {
	case formatJSON:
		if isStdin(src.path) {
			return pkgio.ReadJSON(bytes.NewReader(src.stdin))
		}
		return pkgio.ImportJSON(src.path)
	case formatNewick:
		p := newick.NewParser(newick.Options{Strict: opts.strict, Logger: logger})
		nopts := pkgio.Options{Encoding: c.textEncoding(), Parser: p, Single: opts.single}

		var forest tree.Forest
		var err error
		if isStdin(src.path) {
			forest, err = pkgio.ReadNewick(bytes.NewReader(src.stdin), nopts)
		} else {
			forest, err = pkgio.ImportNewick(src.path, nopts)
		}
		if n := len(p.Warnings()); n > 0 {
			printWarning(c.Err, "%d parser %s, input was not read completely", n, plural(n, "warning"))
		}
		return forest, err
	default:
		return nil, errs.New(errs.ErrCodeInvalidOption, "unknown input format %q (must be auto, newick or json)", src.format)
	}
}

// writeOutput writes data to path, or to Out when path is empty or "-".
func (c *CLI) writeOutput(path string, data []byte) error {
	if isStdin(path) {
		_, err := c.Out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	c.reportWritten(path)
	return nil
}

// writeForest writes the forest as Newick or JSON to path, or to Out when
// path is empty or "-".
func (c *CLI) writeForest(path string, f tree.Forest, format string) error {
	if isStdin(path) {
		out, err := c.encodeForest(f, format)
		if err != nil {
			return err
		}
		_, err = c.Out.Write(out)
		return err
	}

	var err error
	switch format {
	case formatJSON:
		err = pkgio.ExportJSON(f, path)
	case formatNewick, "":
		err = pkgio.ExportNewick(f, path, pkgio.Options{Encoding: c.textEncoding()})
	default:
		return errOutputFormat(format)
	}
	if err != nil {
		return err
	}
	c.reportWritten(path)
	return nil
}

func (c *CLI) reportWritten(path string) {
	printSuccess(c.Err, "Wrote %s", filepath.Base(path))
	printFile(c.Err, path)
}

// encodeForest serializes the forest as Newick text in the configured
// encoding, or as JSON.
func (c *CLI) encodeForest(f tree.Forest, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case formatJSON:
		if err := pkgio.WriteJSON(f, &buf); err != nil {
			return nil, err
		}
	case formatNewick, "":
		if err := pkgio.WriteNewick(f, &buf, pkgio.Options{Encoding: c.textEncoding()}); err != nil {
			return nil, err
		}
	default:
		return nil, errOutputFormat(format)
	}
	return buf.Bytes(), nil
}

func errOutputFormat(format string) error {
	return errs.New(errs.ErrCodeInvalidOption, "unknown output format %q (must be newick or json)", format)
}

// detectFormat picks json for .json files and for input that starts with
// '[' or '{', and newick otherwise.
func detectFormat(path string, raw []byte) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return formatJSON
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return formatJSON
	}
	return formatNewick
}

func isStdin(path string) bool { return path == "" || path == stdinPath }

func displayPath(path string) string {
	if isStdin(path) {
		return "stdin"
	}
	return path
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
