// Package cli implements the newick command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/newick/internal/config"
	"github.com/matzehuels/newick/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "newick"

	// stdinPath selects standard input or output instead of a file.
	stdinPath = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	// In is read when the input argument is "-" or missing.
	In io.Reader
	// Out receives command results (trees, renderings, summaries).
	Out io.Writer
	// Err receives status lines.
	Err io.Writer

	configPath string
	encoding   string
}

// New creates a new CLI instance with a default logger writing to w.
// Results go to stdout and status lines to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		In:     os.Stdin,
		Out:    os.Stdout,
		Err:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Read, transform and draw phylogenetic trees in Newick format",
		Long:         `newick parses trees written in the Newick notation, reports on their shape, prunes and reshapes them, converts them to JSON and draws them as text art or Graphviz diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.SetErr(c.Err)

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/newick/config.toml)")
	root.PersistentFlags().StringVar(&c.encoding, "encoding", "", "text encoding of input and output files (default from config, utf-8)")

	root.AddCommand(c.parseCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.transformCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and applies its log level. Flags read
// later override the loaded values.
func (c *CLI) loadConfig() error {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.Load(c.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	c.Config = cfg
	c.SetLogLevel(level)
	c.Logger.Debug("config loaded", "path", c.configPath, "encoding", cfg.General.Encoding)
	return nil
}

// textEncoding returns the encoding flag, falling back to the config.
func (c *CLI) textEncoding() string {
	if c.encoding != "" {
		return c.encoding
	}
	return c.Config.General.Encoding
}
