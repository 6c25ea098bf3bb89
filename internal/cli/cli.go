// Package cli implements the blockgraph command-line interface.
//
// This package provides commands for laying out block files, rendering them
// as node-link diagrams, checking them for structural problems and browsing
// their parent hierarchy interactively. The CLI is built using cobra and logs
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Compute block positions and write a layout JSON document
//   - render: Draw the layout as SVG or Graphviz DOT
//   - check: Report duplicate ids, cycles and a topological order
//   - browse: Drill through the parent hierarchy in the terminal
//
// # Configuration
//
// Settings are read from blockgraph.toml in the working directory, or from
// the file named by --config. The --orientation, --reduce and --select flags
// override file values.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// also attached to the command context for helpers that only see a
// context.Context.
package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blockgraph/pkg/block"
	"github.com/matzehuels/blockgraph/pkg/buildinfo"
	"github.com/matzehuels/blockgraph/pkg/cache"
	"github.com/matzehuels/blockgraph/pkg/config"
	blockio "github.com/matzehuels/blockgraph/pkg/io"
	"github.com/matzehuels/blockgraph/pkg/layout"
	"github.com/matzehuels/blockgraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completion scripts.
const appName = "blockgraph"

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

	flags globalFlags
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath  string
	orientation string
	selected    string
	reduce      bool
	noCache     bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetVerbose switches between info and debug logging.
func (c *CLI) SetVerbose(verbose bool) {
	c.SetLogLevel(levelFor(verbose))
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Blockgraph lays out prerequisite and parent graphs of blocks",
		Long:         `Blockgraph is a CLI tool for arranging blocks connected by prerequisite and parent relationships into levelled diagrams, and for exploring their hierarchy one level at a time.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "config file (default: ./"+config.DefaultFileName+" when present)")
	pf.StringVar(&c.flags.orientation, "orientation", "", "layout direction: ttb, btt, ltr, rtl")
	pf.StringVarP(&c.flags.selected, "select", "s", "", "block id to drill into")
	pf.BoolVar(&c.flags.reduce, "reduce", false, "remove transitive prerequisite edges")
	pf.BoolVar(&c.flags.noCache, "no-cache", false, "disable the in-process layout cache")

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Settings
// =============================================================================

// loadConfig reads the config file and applies flag overrides.
func (c *CLI) loadConfig(cmd *cobra.Command) (config.File, error) {
	var (
		f   config.File
		err error
	)
	if c.flags.configPath != "" {
		f, err = config.Load(c.flags.configPath)
	} else {
		f, err = config.LoadOptional(config.DefaultFileName)
	}
	if err != nil {
		return config.File{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("orientation") {
		o, err := layout.ParseOrientation(c.flags.orientation)
		if err != nil {
			return config.File{}, err
		}
		f.Layout.Orientation = o
	}
	if flags.Changed("reduce") {
		f.Render.Reduce = c.flags.reduce
	}
	return f, nil
}

// pipelineOptions converts resolved settings into pipeline options.
func (c *CLI) pipelineOptions(f config.File) pipeline.Options {
	return pipeline.Options{
		Layout:   f.Layout,
		Reduce:   f.Render.Reduce,
		Selected: c.flags.selected,
		Logger:   c.Logger,
	}
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Cache keys are scoped to
// the input file so several files can share one runner.
func (c *CLI) newRunner(input string) *pipeline.Runner {
	var store cache.Cache = cache.NewMemoryCache()
	if c.flags.noCache {
		store = cache.NewNullCache()
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "file:"+input+":")
	return pipeline.NewRunner(store, keyer, c.Logger)
}

// loadBlocks reads and validates a block file.
func loadBlocks(path string) ([]block.Block, error) {
	return blockio.ImportBlocks(path)
}

// =============================================================================
// Paths
// =============================================================================

// defaultOutput derives an output path from the input file by replacing its
// extension with suffix.
func defaultOutput(input, suffix string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
}
