package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shuffle/pkg/errors"
	"github.com/matzehuels/shuffle/pkg/surface"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// diagramOpts holds the command-line flags for the diagram command.
type diagramOpts struct {
	format string // "dot" or "svg"
	output string // output file, stdout when empty
}

// diagramCommand creates the diagram command for exporting the surface
// state machine.
func (c *CLI) diagramCommand() *cobra.Command {
	opts := diagramOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Export the gesture state machine as DOT or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagram(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runDiagram(cmd *cobra.Command, opts diagramOpts) error {
	logger := loggerFromContext(cmd.Context())

	data, err := renderDiagram(cmd.Context(), opts.format)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := errors.ValidatePath(opts.output); err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}
	logger.Debugf("Wrote %d bytes", len(data))
	printFile(cmd.ErrOrStderr(), opts.output)
	return nil
}

func renderDiagram(ctx context.Context, format string) ([]byte, error) {
	dot := surface.ToDOT()
	switch format {
	case formatDOT:
		return []byte(dot), nil
	case formatSVG:
		svg, err := surface.RenderSVG(ctx, dot)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render diagram")
		}
		return svg, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (use %s or %s)", format, formatDOT, formatSVG)
	}
}
