package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	read   readOpts
	to     string // newick or json
	output string // output file path (stdout if empty)
}

// convertCommand creates the convert command, which translates between
// Newick text and the JSON interchange format.
func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Convert trees between Newick and JSON",
		Long: `Convert trees between Newick text and nested JSON.

The input format is detected from the file extension or the first
character unless --from is given. The output defaults to the other format.

Examples:
  newick convert tree.nwk > tree.json
  newick convert tree.json -o tree.nwk
  newick convert --encoding latin1 --to newick legacy.nwk -o utf8.nwk`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyParseConfig(&opts.read)
			return c.runConvert(cmd.Context(), inputArg(args), opts)
		},
	}

	addReadFlags(cmd, &opts.read)
	cmd.Flags().StringVarP(&opts.to, "to", "t", "", "output format: newick, json (default: the other one)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func (c *CLI) runConvert(ctx context.Context, path string, opts convertOpts) error {
	src, err := c.openSource(path, opts.read.format)
	if err != nil {
		return err
	}
	if opts.to == "" {
		opts.to = formatJSON
		if src.format == formatJSON {
			opts.to = formatNewick
		}
	}

	forest, err := c.decodeForest(ctx, src, opts.read)
	if err != nil {
		return err
	}
	return c.writeForest(opts.output, forest, opts.to)
}
