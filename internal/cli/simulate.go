package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shuffle/pkg/errors"
	"github.com/matzehuels/shuffle/pkg/geom"
	"github.com/matzehuels/shuffle/pkg/observability"
	"github.com/matzehuels/shuffle/pkg/script"
	"github.com/matzehuels/shuffle/pkg/surface"
)

// simulateOpts holds the command-line flags for the simulate command.
type simulateOpts struct {
	ramp  string // built-in scenario name, instead of a script file
	trace string // write the replay trace as TOML to this path
}

// simulateCommand creates the simulate command for headless gesture replay.
func (c *CLI) simulateCommand() *cobra.Command {
	var opts simulateOpts

	cmd := &cobra.Command{
		Use:   "simulate [script.toml]",
		Short: "Replay a gesture script without a terminal",
		Long: `Replay pointer events against a headless surface and report the outcome.

Events come from a TOML script, or from a built-in scenario with --ramp
(` + strings.Join(script.ScenarioNames(), ", ") + `).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return c.runSimulate(cmd, path, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ramp, "ramp", "", "run a built-in scenario: "+strings.Join(script.ScenarioNames(), ", "))
	cmd.Flags().StringVar(&opts.trace, "trace", "", "write the replay trace to this TOML file")

	return cmd
}

func (c *CLI) runSimulate(cmd *cobra.Command, path string, opts simulateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	frame := cardFrame(cfg)
	surfOpts := cfg.Options()
	surfOpts.Logger = logger

	s, err := selectScript(path, opts.ramp, frame, surfOpts)
	if err != nil {
		return err
	}
	logger.Debugf("Replaying %s", s)

	counts := &gestureCounts{}
	observability.SetGestureHooks(counts)
	defer observability.Reset()

	prog := newProgress(logger)
	tr := script.Run(ctx, *s, frame, surfOpts)
	prog.done(fmt.Sprintf("Replayed %s", s.Name))

	printSuccess(out, "Replayed %s", s)
	printKeyValue(out, "top", tr.Top)
	printKeyValue(out, "swaps", fmt.Sprint(tr.Swaps))
	printKeyValue(out, "gestures", fmt.Sprint(counts.gestures))
	printKeyValue(out, "crossings", fmt.Sprint(counts.crossings))
	printKeyValue(out, "ignored", fmt.Sprint(counts.ignored))

	if opts.trace == "" {
		return nil
	}
	if err := writeTrace(opts.trace, tr); err != nil {
		return err
	}
	printFile(out, opts.trace)
	return nil
}

// selectScript loads the script at path or builds the named scenario.
// Exactly one of them must be given.
func selectScript(path, ramp string, frame geom.Rect, opts surface.Options) (*script.Script, error) {
	switch {
	case path != "" && ramp != "":
		return nil, errors.New(errors.ErrCodeInvalidInput, "use either a script file or --ramp, not both")
	case path != "":
		return script.Load(path)
	case ramp != "":
		s, ok := script.Scenarios(frame, opts)[ramp]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown scenario %q (available: %s)",
				ramp, strings.Join(script.ScenarioNames(), ", "))
		}
		return &s, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "a script file or --ramp is required")
	}
}

func writeTrace(path string, tr script.Trace) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create trace %s", path)
	}
	if err := tr.Encode(f); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "encode trace")
	}
	return f.Close()
}
