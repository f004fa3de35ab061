package cli

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/newick/internal/config"
	errs "github.com/matzehuels/newick/pkg/errors"
	"github.com/matzehuels/newick/pkg/observability"
	"github.com/matzehuels/newick/pkg/render/ascii"
	"github.com/matzehuels/newick/pkg/render/nodelink"
	"github.com/matzehuels/newick/pkg/tree"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	read         readOpts
	output       string // output file path (stdout if empty)
	format       string // text, dot or svg
	index        int    // tree to render, -1 for all
	strictASCII  bool   // plain-character glyphs for text output
	showInternal bool   // draw internal node names in text output
	lengths      bool   // label edges with branch lengths (dot, svg)
	detailed     bool   // add comments and lengths to node labels (dot, svg)
}

// renderCommand creates the render command for drawing trees.
//
// Defaults come from the [render] section of the config file:
//   - format: text
//   - show_internal: true
//   - strict_ascii: false
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{index: -1}

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Draw trees as text art, Graphviz DOT or SVG",
		Long: `Draw trees as box-drawing text art, Graphviz DOT source or SVG.

Text and DOT output include every tree unless --index selects one.
SVG output holds a single tree.

Examples:
  newick render tree.nwk
  newick render --strict-ascii --hide-internal tree.nwk
  newick render --format svg --lengths -o tree.svg tree.nwk`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyRenderConfig(cmd, &opts)
			if err := validateRenderFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), inputArg(args), opts)
		},
	}

	addReadFlags(cmd, &opts.read)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "t", "", "output format: text (default), dot, svg")
	cmd.Flags().IntVarP(&opts.index, "index", "i", opts.index, "render only the tree at this position")
	cmd.Flags().BoolVar(&opts.strictASCII, "strict-ascii", false, "use plain ASCII characters instead of box drawing")
	cmd.Flags().BoolVar(&opts.showInternal, "show-internal", true, "draw names of internal nodes")
	cmd.Flags().Bool("hide-internal", false, "do not draw names of internal nodes")
	cmd.Flags().BoolVar(&opts.lengths, "lengths", false, "label edges with branch lengths (dot, svg)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show comments and lengths in node labels (dot, svg)")

	return cmd
}

// applyRenderConfig fills options whose flags were not given from the config.
func (c *CLI) applyRenderConfig(cmd *cobra.Command, opts *renderOpts) {
	cfg := c.Config.Render
	if opts.format == "" {
		opts.format = cfg.Format
	}
	if !cmd.Flags().Changed("strict-ascii") {
		opts.strictASCII = cfg.StrictASCII
	}
	if !cmd.Flags().Changed("show-internal") {
		opts.showInternal = cfg.ShowInternal
	}
	if hide, _ := cmd.Flags().GetBool("hide-internal"); hide {
		opts.showInternal = false
	}
	c.applyParseConfig(&opts.read)
}

func validateRenderFormat(f string) error {
	if !slices.Contains(config.Formats, f) {
		return errs.New(errs.ErrCodeInvalidOption, "invalid format: %s (must be %s)", f, strings.Join(config.Formats, ", "))
	}
	return nil
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	forest, err := c.readForest(ctx, path, opts.read)
	if err != nil {
		return err
	}

	trees, err := selectTrees(forest, opts.index)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.format, len(trees))

	out, err := renderTrees(ctx, trees, opts)
	hooks.OnRenderComplete(ctx, opts.format, len(out), time.Since(prog.start), err)
	if err != nil {
		return err
	}

	prog.done("Rendered " + opts.format)
	return c.writeOutput(opts.output, out)
}

func renderTrees(ctx context.Context, trees tree.Forest, opts renderOpts) ([]byte, error) {
	switch opts.format {
	case config.FormatText:
		return []byte(renderText(trees, ascii.Options{Strict: opts.strictASCII, HideInternal: !opts.showInternal})), nil
	case config.FormatDOT:
		return []byte(renderDOT(trees, nodelink.Options{Lengths: opts.lengths, Detailed: opts.detailed})), nil
	case config.FormatSVG:
		if len(trees) != 1 {
			return nil, errs.New(errs.ErrCodeInvalidOption, "svg output holds one tree, input has %d (select one with --index)", len(trees))
		}
		dot := nodelink.ToDOT(trees[0], nodelink.Options{Lengths: opts.lengths, Detailed: opts.detailed})
		svg, err := nodelink.RenderSVG(ctx, dot)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "render svg")
		}
		return svg, nil
	}
	return nil, validateRenderFormat(opts.format)
}

func selectTrees(f tree.Forest, index int) (tree.Forest, error) {
	if index < 0 {
		return f, nil
	}
	if index >= len(f) {
		return nil, errs.New(errs.ErrCodeInvalidOption, "--index %d out of range (input has %d %s)", index, len(f), plural(len(f), "tree"))
	}
	return tree.Forest{f[index]}, nil
}

// renderText draws every tree and separates them with a blank line.
func renderText(f tree.Forest, opts ascii.Options) string {
	parts := make([]string, len(f))
	for i, root := range f {
		parts[i] = ascii.Render(root, opts)
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// renderDOT concatenates one digraph per tree.
func renderDOT(f tree.Forest, opts nodelink.Options) string {
	var b strings.Builder
	for _, root := range f {
		b.WriteString(nodelink.ToDOT(root, opts))
	}
	return b.String()
}
