package cli

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockgraph/pkg/config"
	"github.com/matzehuels/blockgraph/pkg/render/nodelink"
)

// Output formats of the render command.
const (
	formatSVG = "svg"
	formatDOT = "dot"
)

var validFormats = []string{formatSVG, formatDOT}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path
	format   string // "svg" or "dot"
	detailed bool   // add id, level and extensions to labels
	dimColor string // fill for dimmed blocks
	language string // title language
}

// renderCommand creates the render command for drawing node-link diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [blocks.json|blocks.yaml]",
		Short: "Render blocks as a node-link diagram",
		Long: `Render blocks as a node-link diagram.

Blocks are drawn at their computed positions. With --select, blocks outside
the drill-down view are hidden and top-level blocks around it are dimmed.
The diagram is written as SVG (default) or as Graphviz DOT with pinned node
positions for use with "neato -n".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			applyRenderFlags(cmd, &cfg, opts)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSVG, "output format: svg, dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show id, level and extension fields in labels")
	cmd.Flags().StringVar(&opts.dimColor, "dim-color", "", "fill color for dimmed blocks (default from config)")
	cmd.Flags().StringVar(&opts.language, "lang", "", "title language: de, en (default from config)")

	return cmd
}

// validateFormat checks that format is a supported output format.
func validateFormat(format string) error {
	if !slices.Contains(validFormats, format) {
		return fmt.Errorf("invalid format: %s (must be 'svg' or 'dot')", format)
	}
	return nil
}

// applyRenderFlags overrides config values with explicitly set flags.
func applyRenderFlags(cmd *cobra.Command, cfg *config.File, opts renderOpts) {
	flags := cmd.Flags()
	if flags.Changed("detailed") {
		cfg.Render.Detailed = opts.detailed
	}
	if flags.Changed("dim-color") {
		cfg.Render.DimColor = opts.dimColor
	}
	if flags.Changed("lang") {
		cfg.Render.Language = opts.language
	}
}

// runRender lays out the blocks and writes the diagram.
func (c *CLI) runRender(cmd *cobra.Command, input string, cfg config.File, opts renderOpts) error {
	ctx := cmd.Context()
	blocks, err := loadBlocks(input)
	if err != nil {
		return fmt.Errorf("load blocks %s: %w", input, err)
	}

	runner := c.newRunner(input)
	defer runner.Close()

	result, err := runner.Layout(ctx, blocks, c.pipelineOptions(cfg))
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	dot := nodelink.ToDOT(result.Document(), nodelink.Options{
		Detailed: cfg.Render.Detailed,
		DimColor: cfg.Render.DimColor,
		Language: cfg.Render.Language,
	})

	data, err := renderFormat(ctx, dot, opts.format)
	if err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = defaultOutput(input, "."+opts.format)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Rendered %s", opts.format)
	printFile(outputPath)
	printStats(result.Stats.BlockCount, result.Stats.EdgeCount, result.Stats.LevelCount, result.CacheHit)
	printCycles(result.Diagnostics.Cycles)
	return nil
}

// renderFormat converts DOT source into the requested format.
func renderFormat(ctx context.Context, dot, format string) ([]byte, error) {
	if format == formatDOT {
		return []byte(dot), nil
	}

	spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
	spinner.Start()
	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		spinner.StopWithError("Render failed")
		return nil, fmt.Errorf("render svg: %w", err)
	}
	spinner.Stop()
	return svg, nil
}
