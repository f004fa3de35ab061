package cli

import (
	"context"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/newick/pkg/errors"
	"github.com/matzehuels/newick/pkg/observability"
	"github.com/matzehuels/newick/pkg/tree"
	"github.com/matzehuels/newick/pkg/tree/transform"
)

// transformOpts holds the command-line flags for the transform command.
type transformOpts struct {
	read               readOpts
	output             string   // output file path (stdout if empty)
	to                 string   // output format: newick or json
	prune              []string // remove nodes with these names
	keep               []string // remove every node whose name is not listed
	resolve            bool     // split polytomies into binary nodes
	collapse           bool     // remove single-child nodes
	noPreserveLengths  bool     // drop the lengths of collapsed nodes
	normalize          bool     // collapse, then resolve
	clearNames         bool
	clearInternalNames bool
	clearLeafNames     bool
	clearLengths       bool
	clearComments      bool
}

// transformCommand creates the transform command, which reshapes trees and
// writes them back out.
//
// Steps run in a fixed order: prune or keep, normalize, resolve polytomies,
// collapse redundant nodes, clear labels.
func (c *CLI) transformCommand() *cobra.Command {
	var opts transformOpts

	cmd := &cobra.Command{
		Use:   "transform [file|-]",
		Short: "Prune, resolve, collapse and relabel trees",
		Long: `Reshape trees and write them as Newick or JSON.

Steps run in this order: --prune/--keep, --normalize, --resolve, --collapse, --clear-*.
The root is never removed.

Examples:
  newick transform --prune A,B tree.nwk
  newick transform --keep A,C,D --collapse tree.nwk
  newick transform --normalize --clear-internal-names -o out.nwk tree.nwk`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(opts.prune) > 0 && len(opts.keep) > 0 {
				return errs.New(errs.ErrCodeInvalidOption, "--prune and --keep are mutually exclusive")
			}
			c.applyParseConfig(&opts.read)
			return c.runTransform(cmd.Context(), inputArg(args), opts)
		},
	}

	addReadFlags(cmd, &opts.read)
	cmd.Flags().StringVarP(&opts.to, "to", "t", formatNewick, "output format: newick, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringSliceVar(&opts.prune, "prune", nil, "remove nodes with these names (comma-separated)")
	cmd.Flags().StringSliceVar(&opts.keep, "keep", nil, "remove every node whose name is not listed (comma-separated)")
	cmd.Flags().BoolVar(&opts.resolve, "resolve", false, "resolve polytomies into binary nodes")
	cmd.Flags().BoolVar(&opts.collapse, "collapse", false, "remove nodes with a single child")
	cmd.Flags().BoolVar(&opts.noPreserveLengths, "no-preserve-lengths", false, "do not add lengths of collapsed nodes to their child")
	cmd.Flags().BoolVar(&opts.normalize, "normalize", false, "collapse redundant nodes, then resolve polytomies")
	cmd.Flags().BoolVar(&opts.clearNames, "clear-names", false, "remove all names")
	cmd.Flags().BoolVar(&opts.clearInternalNames, "clear-internal-names", false, "remove names of internal nodes")
	cmd.Flags().BoolVar(&opts.clearLeafNames, "clear-leaf-names", false, "remove names of leaves")
	cmd.Flags().BoolVar(&opts.clearLengths, "clear-lengths", false, "remove all branch lengths")
	cmd.Flags().BoolVar(&opts.clearComments, "clear-comments", false, "remove all comments")

	return cmd
}

func (c *CLI) runTransform(ctx context.Context, path string, opts transformOpts) error {
	forest, err := c.readForest(ctx, path, opts.read)
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	var pruned, resolved, collapsed int
	for i, root := range forest {
		forest[i], pruned, resolved, collapsed = applyTransforms(root, opts, pruned, resolved, collapsed)
		logger.Debug("transformed tree", "index", i, "nodes", forest[i].Count())
	}

	if err := c.writeForest(opts.output, forest, opts.to); err != nil {
		return err
	}

	hooks := observability.Pipeline()
	hooks.OnTransform(ctx, "prune", pruned)
	hooks.OnTransform(ctx, "resolve", resolved)
	hooks.OnTransform(ctx, "collapse", collapsed)

	printSuccess(c.Err, "Transformed %d %s", len(forest), plural(len(forest), "tree"))
	printStats(c.Err, stat{pruned, "pruned"}, stat{resolved, "resolved"}, stat{collapsed, "collapsed"})
	return nil
}

// applyTransforms runs the requested steps on one tree and adds to the
// running counters.
func applyTransforms(root *tree.Node, opts transformOpts, pruned, resolved, collapsed int) (*tree.Node, int, int, int) {
	switch {
	case len(opts.prune) > 0:
		pruned += transform.PruneByNames(root, opts.prune, false)
	case len(opts.keep) > 0:
		pruned += transform.PruneByNames(root, opts.keep, true)
	}

	if opts.normalize {
		root = transform.Normalize(root)
	}
	if opts.resolve {
		resolved += transform.ResolvePolytomies(root)
	}
	if opts.collapse {
		collapsed += transform.RemoveRedundantNodes(root, !opts.noPreserveLengths)
	}

	switch {
	case opts.clearNames:
		root.ClearNames()
	case opts.clearInternalNames && opts.clearLeafNames:
		root.ClearNames()
	case opts.clearInternalNames:
		root.ClearInternalNames()
	case opts.clearLeafNames:
		root.ClearLeafNames()
	}
	if opts.clearLengths {
		root.ClearLengths()
	}
	if opts.clearComments {
		root.ClearComments()
	}
	return root, pruned, resolved, collapsed
}
