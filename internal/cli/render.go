package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treekit/pkg/render"
)

// Output formats for the render command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPNG: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; derived from input when empty
	format   string // output format: "dot", "svg", "png"
	detailed bool   // include depth and child count in node labels
}

// newRenderCmd creates the render command for Graphviz diagrams.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a tree as a Graphviz diagram",
		Long:  `Render reads a tree document (JSON) and writes a node-link diagram in DOT, SVG, or PNG format. The output path defaults to the input path with the format's extension.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input path with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSVG, "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include depth and child count in node labels")
	return cmd
}

// validateFormat checks that the requested format is supported.
func validateFormat(f string) error {
	if !validFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", f)
	}
	return nil
}

// outputPath derives the output file path from the flags and input path.
func outputPath(output, input, format string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

// runRender loads the tree from input and writes the diagram.
func runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	cfg := configFromContext(cmd.Context())
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	t, err := loadTree(input, cfg)
	if err != nil {
		return err
	}
	logger.Debug("loaded tree", "nodes", t.Size(), "height", t.Height())

	dot := render.ToDOT(t.Root(), render.DOTOptions[string]{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		if data, err = render.RenderSVG(dot); err != nil {
			return err
		}
	case formatPNG:
		if data, err = render.RenderPNG(dot); err != nil {
			return err
		}
	}

	out := outputPath(opts.output, input, opts.format)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	prog.done(fmt.Sprintf("Rendered %d nodes", t.Size()))
	printSuccess("Wrote %s diagram", strings.ToUpper(opts.format))
	printFile(out)
	return nil
}
