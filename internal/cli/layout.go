package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	blockio "github.com/matzehuels/blockgraph/pkg/io"
)

// layoutCommand creates the layout command for computing block positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "layout [blocks.json|blocks.yaml]",
		Short: "Compute block positions and write a layout document",
		Long: `Compute block positions and write a layout document.

The layout command reads a block file, assigns every block a level, positions
it on a grid of levels and writes a JSON document with positioned blocks,
edges with connection lines, visibility for the --select drill-down state and
diagnostics (cycles, topological order).

Prerequisite cycles do not fail the command; they are reported as warnings
and listed in the document's diagnostics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json, - for stdout)")

	return cmd
}

// runLayout loads the blocks, computes the layout, and writes output.
func (c *CLI) runLayout(cmd *cobra.Command, input, output string) error {
	ctx := cmd.Context()
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	blocks, err := loadBlocks(input)
	if err != nil {
		return fmt.Errorf("load blocks %s: %w", input, err)
	}

	runner := c.newRunner(input)
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	result, err := runner.Layout(ctx, blocks, c.pipelineOptions(cfg))
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	prog.done(fmt.Sprintf("Laid out %s", plural(result.Stats.BlockCount, "block")))

	doc := result.Document()
	if output == "-" {
		return blockio.WriteLayout(cmd.OutOrStdout(), doc)
	}

	outputPath := output
	if outputPath == "" {
		outputPath = defaultOutput(input, ".layout.json")
	}
	if err := blockio.ExportLayout(outputPath, doc); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(result.Stats.BlockCount, result.Stats.EdgeCount, result.Stats.LevelCount, result.CacheHit)
	printCycles(result.Diagnostics.Cycles)
	printNewline()
	printNextStep("Render", appName+" render "+input)

	return nil
}
