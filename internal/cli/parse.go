package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/newick/pkg/tree"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	read   readOpts
	leaves bool // list leaf names below the summary
}

// parseCommand creates the parse command, which reads trees and reports on
// their shape.
func (c *CLI) parseCommand() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse trees and print a summary of each",
		Long: `Parse one or more trees and print their root, size, depth and whether they are binary.

Examples:
  newick parse trees.nwk
  echo "((A,B),C);" | newick parse
  newick parse --strict tree.nwk`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyParseConfig(&opts.read)
			return c.runParse(cmd.Context(), inputArg(args), opts)
		},
	}

	addReadFlags(cmd, &opts.read)
	cmd.Flags().BoolVar(&opts.leaves, "leaves", false, "list leaf names of every tree")

	return cmd
}

func (c *CLI) runParse(ctx context.Context, path string, opts parseOpts) error {
	forest, err := c.readForest(ctx, path, opts.read)
	if err != nil {
		return err
	}

	rows := make([][]string, len(forest))
	leaves := 0
	for i, root := range forest {
		if err := tree.Validate(root); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
		rows[i] = summaryRow(i, root)
		leaves += len(root.Leaves())
	}

	fmt.Fprintln(c.Out, renderTable([]string{"#", "Root", "Nodes", "Leaves", "Depth", "Binary"}, rows))
	if opts.leaves {
		for i, root := range forest {
			fmt.Fprintf(c.Out, "%d: %s\n", i, strings.Join(root.LeafNames(), ", "))
		}
	}

	printSuccess(c.Err, "Parsed %d %s", len(forest), plural(len(forest), "tree"))
	printStats(c.Err, stat{forest.Count(), "nodes"}, stat{leaves, "leaves"})
	return nil
}

func summaryRow(i int, root *tree.Node) []string {
	name := root.Name
	if name == "" {
		name = "-"
	}
	binary := "no"
	if root.IsBinary() {
		binary = "yes"
	}
	return []string{
		strconv.Itoa(i),
		name,
		strconv.Itoa(root.Count()),
		strconv.Itoa(len(root.Leaves())),
		strconv.Itoa(root.Depth()),
		binary,
	}
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return stdinPath
	}
	return args[0]
}
