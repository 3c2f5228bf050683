// Package cli implements the shuffle command-line interface.
//
// # Commands
//
//   - play: drag the two cards around in the terminal with the mouse
//   - simulate: replay a gesture script (or a built-in scenario) headlessly
//   - diagram: export the surface state machine as DOT or SVG
//   - config: print the effective configuration
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, see withLogger and loggerFromContext.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shuffle/pkg/buildinfo"
	"github.com/matzehuels/shuffle/pkg/config"
	"github.com/matzehuels/shuffle/pkg/geom"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "shuffle"
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

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Shuffle swaps two stacked cards with a drag gesture",
		Long:         `Shuffle is a playground for a two-card swap gesture: drag the top card past a tension threshold and release to send it to the back.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/shuffle/config.toml)")

	root.AddCommand(c.playCommand())
	root.AddCommand(c.simulateCommand())
	root.AddCommand(c.diagramCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration Helpers
// =============================================================================

// loadConfig loads the configuration named by --config, falling back to the
// environment and the default location.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cfg.File != "" {
		c.Logger.Debugf("Loaded config from %s", cfg.File)
	}
	return cfg, nil
}

// cardFrame is the top card's frame for a configuration, placed so the
// bottom card rests at the origin.
func cardFrame(cfg config.Config) geom.Rect {
	off := cfg.Cards.Offset
	return geom.RectXYWH(off, off, cfg.Cards.Width, cfg.Cards.Height)
}
