package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shuffle/pkg/config"
)

// configCommand creates the config command that prints the effective
// configuration after defaults, file and environment are merged.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			printConfig(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
}

func printConfig(w io.Writer, cfg config.Config) {
	source := cfg.File
	if source == "" {
		source = "defaults"
	}
	printInfo(w, "Configuration from %s", source)

	g := cfg.Gesture
	printSection(w, "gesture")
	printKeyValue(w, "inner", fmt.Sprintf("%g px", g.Inner))
	printKeyValue(w, "outer", fmt.Sprintf("%g px", g.Outer))
	printKeyValue(w, "tension", fmt.Sprintf("%g", g.Tension))
	printKeyValue(w, "affordance", fmt.Sprintf("%g px", g.Affordance))

	a := cfg.Animation
	printSection(w, "animation")
	printKeyValue(w, "settle", fmt.Sprintf("%d ms", a.SettleMS))
	printKeyValue(w, "preview", fmt.Sprintf("%d ms", a.PreviewMS))

	k := cfg.Cards
	printSection(w, "cards")
	printKeyValue(w, "size", fmt.Sprintf("%gx%g px", k.Width, k.Height))
	printKeyValue(w, "offset", fmt.Sprintf("%g px", k.Offset))
	printKeyValue(w, "depths", fmt.Sprintf("%g / %g / %g", k.DepthLow, k.DepthMid, k.DepthHigh))

	t := cfg.Terminal
	printSection(w, "terminal")
	printKeyValue(w, "cell", fmt.Sprintf("%gx%g px", t.CellWidth, t.CellHeight))
}
