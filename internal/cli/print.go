package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treekit/pkg/render"
	"github.com/matzehuels/treekit/pkg/tree"
)

// newPrintCmd creates the print command for box-drawing tree diagrams.
func newPrintCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "print [file]",
		Short: "Print a tree as a box-drawing diagram",
		Long:  `Print reads a tree document (JSON) and writes it to stdout as a box-drawing diagram, one node per line with children in order. Use "-" to read from stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			logger := loggerFromContext(cmd.Context())

			t, err := loadTree(args[0], cfg)
			if err != nil {
				return err
			}
			logger.Debug("loaded tree", "nodes", t.Size(), "height", t.Height())

			fmt.Print(render.Text(t.Root(), render.TextOptions[string]{
				Color: cfg.Output.Color && !noColor,
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

// newStatsCmd creates the stats command for tree summary figures.
func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Show tree size, height, and leaf count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())

			t, err := loadTree(args[0], cfg)
			if err != nil {
				return err
			}

			root := "(empty)"
			if id, ok := t.Root().Identity(); ok {
				root = id
			}

			printKeyValue("root", root)
			printKeyValue("nodes", StyleNumber.Render(fmt.Sprintf("%d", t.Size())))
			printKeyValue("height", StyleNumber.Render(fmt.Sprintf("%d", t.Height())))
			printKeyValue("leaves", StyleNumber.Render(fmt.Sprintf("%d", len(t.Leaves()))))
			printKeyValue("branches", StyleNumber.Render(fmt.Sprintf("%d", countBranches(t))))
			return nil
		},
	}
	return cmd
}

// countBranches counts nodes with at least one child.
func countBranches(t *tree.Tree[string]) int {
	count := 0
	for n := range t.Traverse(nil, tree.PreOrder) {
		if n.IsBranch() {
			count++
		}
	}
	return count
}
