package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockgraph/pkg/errors"
	"github.com/matzehuels/blockgraph/pkg/graph"
	"github.com/matzehuels/blockgraph/pkg/graph/transform"
	"github.com/matzehuels/blockgraph/pkg/navigation"
)

// checkReport summarises the structure of a block file.
type checkReport struct {
	Blocks        int
	Edges         int
	Dangling      int
	Levels        int
	Sources       []string
	SkippedRoot   string
	Cycles        [][]string
	Order         []string
	DuplicateIDs  []string
	SelfLoopError error
}

// checkCommand creates the check command for structural validation.
func (c *CLI) checkCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [blocks.json|blocks.yaml]",
		Short: "Report duplicate ids, prerequisite cycles and a topological order",
		Long: `Report structural problems of a block file.

Duplicate block ids and blocks that list themselves as prerequisites always
fail. Prerequisite cycles are reported as warnings; with --strict they fail
too. For acyclic files the topological order of the blocks is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := loadBlocks(args[0])
			if err != nil {
				return fmt.Errorf("load blocks %s: %w", args[0], err)
			}
			report, err := buildReport(graph.Build(blocks))
			printReport(report)
			if err != nil {
				return err
			}
			if strict && len(report.Cycles) > 0 {
				return errors.New(errors.ErrCodeInvalidInput, "%s in prerequisites", plural(len(report.Cycles), "cycle"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when prerequisite cycles exist")

	return cmd
}

// buildReport inspects g, or records why it could not be built.
func buildReport(g *graph.BlockGraph, err error) (checkReport, error) {
	if err != nil {
		return checkReport{DuplicateIDs: errors.DuplicateIDs(err), SelfLoopError: selfLoop(err)}, err
	}

	r := checkReport{
		Blocks:  g.Len(),
		Edges:   len(g.Edges()),
		Levels:  transform.MaxLevel(transform.AssignLevels(g)) + 1,
		Sources: g.Sources(),
		Cycles:  g.Index().DetectCycles(),
		Order:   g.Index().TopologicalOrder(),
	}
	for _, e := range g.Edges() {
		if !g.Has(e.From) {
			r.Dangling++
		}
	}
	if id, ok := navigation.AutoSkippedRoot(g); ok {
		r.SkippedRoot = id
	}
	return r, nil
}

func selfLoop(err error) error {
	if errors.Is(err, errors.ErrCodeSelfLoop) {
		return err
	}
	return nil
}

func printReport(r checkReport) {
	if len(r.DuplicateIDs) > 0 {
		printError("Duplicate block ids")
		for _, id := range r.DuplicateIDs {
			printDetail("%s", id)
		}
		return
	}
	if r.SelfLoopError != nil {
		printError("%s", errors.UserMessage(r.SelfLoopError))
		return
	}

	printSuccess("Read %s", plural(r.Blocks, "block"))
	printKeyValue("edges", strconv.Itoa(r.Edges))
	printKeyValue("dangling", strconv.Itoa(r.Dangling))
	printKeyValue("levels", strconv.Itoa(r.Levels))
	printKeyValue("sources", strings.Join(r.Sources, ", "))
	if r.SkippedRoot != "" {
		printKeyValue("root", r.SkippedRoot)
	}

	if len(r.Cycles) > 0 {
		printCycles(r.Cycles)
		return
	}
	printInfo("Topological order")
	printDetail("%s", strings.Join(r.Order, " "+iconArrow+" "))
}
