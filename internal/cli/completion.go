package cli

import "github.com/spf13/cobra"

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for newick.

To load completions:

Bash:
  $ source <(newick completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ newick completion bash > /etc/bash_completion.d/newick
  # macOS:
  $ newick completion bash > $(brew --prefix)/etc/bash_completion.d/newick

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ newick completion zsh > "${fpath[1]}/_newick"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ newick completion fish | source

  # To load completions for each session, execute once:
  $ newick completion fish > ~/.config/fish/completions/newick.fish

PowerShell:
  PS> newick completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> newick completion powershell > newick.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(c.Out)
			case "zsh":
				return cmd.Root().GenZshCompletion(c.Out)
			case "fish":
				return cmd.Root().GenFishCompletion(c.Out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(c.Out)
			}
			return nil
		},
	}

	return cmd
}

// treeFileExts are the file extensions offered when completing an input
// argument.
var treeFileExts = []string{"nwk", "newick", "tre", "tree", "json"}

// registerInputCompletion completes the single input argument with tree
// files and the --from flag with the known input formats.
func registerInputCompletion(cmd *cobra.Command) {
	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return treeFileExts, cobra.ShellCompDirectiveFilterFileExt
	}
	_ = cmd.RegisterFlagCompletionFunc("from", cobra.FixedCompletions(
		[]string{formatAuto, formatNewick, formatJSON}, cobra.ShellCompDirectiveNoFileComp))
}
