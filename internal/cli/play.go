package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shuffle/pkg/config"
	"github.com/matzehuels/shuffle/pkg/errors"
	"github.com/matzehuels/shuffle/pkg/geom"
	"github.com/matzehuels/shuffle/pkg/observability"
	"github.com/matzehuels/shuffle/pkg/surface"
	"github.com/matzehuels/shuffle/pkg/swap"
	"github.com/matzehuels/shuffle/pkg/tween"
)

// frameInterval drives tween stepping at roughly 60 fps.
const frameInterval = time.Second / 60

// statusLines is the number of rows reserved below the card area.
const statusLines = 2

// playCommand creates the play command, an interactive terminal host for
// the swap gesture.
func (c *CLI) playCommand() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Drag the cards with the mouse in the terminal",
		Long: `Show two stacked cards and swap them with the mouse.

Press on the top card and drag it away. Once the drag reaches the outer
radius the cards preview the swap; release to commit it. Release before
that and the card springs back. Press q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			// The terminal belongs to the UI, so logs go to a file or nowhere.
			logger := log.New(io.Discard)
			if logFile != "" {
				if err := errors.ValidatePath(logFile); err != nil {
					return err
				}
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "open log file")
				}
				defer f.Close()
				logger = newLogger(f, c.Logger.GetLevel())
			}

			hooks := logHooks{logger: logger}
			observability.SetGestureHooks(hooks)
			observability.SetAnimationHooks(hooks)
			defer observability.Reset()

			m := newPlayModel(cmd.Context(), cfg, logger)
			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithReportFocus(),
			)
			if _, err := p.Run(); err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), "Top card: %s", m.surface.Top())
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write gesture logs to this file")

	return cmd
}

// =============================================================================
// playModel - bubbletea host for the surface
// =============================================================================

// frameMsg advances running animations.
type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// playModel adapts terminal mouse events to the surface. One terminal cell
// covers cfg.Terminal.CellWidth by CellHeight surface pixels.
type playModel struct {
	cfg     config.Config
	surface *surface.Surface
	sched   *tween.Scheduler
	cards   [2]*surface.Handle

	width, height int
}

func newPlayModel(ctx context.Context, cfg config.Config, logger *log.Logger) *playModel {
	opts := cfg.Options()
	opts.Logger = logger

	m := &playModel{
		cfg:   cfg,
		sched: tween.NewScheduler(),
		cards: [2]*surface.Handle{{}, {}},
	}
	m.surface = surface.New(ctx, m.cards[swap.CardA], m.cards[swap.CardB], m.sched, opts)
	m.surface.SetLayout(cardFrame(cfg))
	return m
}

func (m *playModel) Init() tea.Cmd {
	return tick()
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.surface.SetLayout(m.centredFrame())
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.BlurMsg:
		m.surface.Cancel()
	case frameMsg:
		m.sched.Step()
		return m, tick()
	}
	return m, nil
}

func (m *playModel) handleMouse(msg tea.MouseMsg) {
	p := m.toSurface(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.surface.Down(p)
		}
	case tea.MouseActionMotion:
		if m.surface.State() == surface.Dragging {
			m.surface.Move(p)
		}
	case tea.MouseActionRelease:
		m.surface.Up()
	}
}

// toSurface maps a terminal cell to the surface point at its centre.
func (m *playModel) toSurface(x, y int) geom.Point {
	cw, ch := m.cfg.Terminal.CellWidth, m.cfg.Terminal.CellHeight
	return geom.Pt((float64(x)+0.5)*cw, (float64(y)+0.5)*ch)
}

// toCell maps a surface point to the cell containing it.
func (m *playModel) toCell(p geom.Point) (int, int) {
	cw, ch := m.cfg.Terminal.CellWidth, m.cfg.Terminal.CellHeight
	return int(math.Floor(p.X / cw)), int(math.Floor(p.Y / ch))
}

// centredFrame is the top card's frame centred in the card area.
func (m *playModel) centredFrame() geom.Rect {
	cw, ch := m.cfg.Terminal.CellWidth, m.cfg.Terminal.CellHeight
	w, h := m.cfg.Cards.Width, m.cfg.Cards.Height
	cx := float64(m.width) * cw / 2
	cy := float64(m.height-statusLines) * ch / 2
	return geom.RectXYWH(cx-w/2, cy-h/2, w, h)
}

func (m *playModel) View() string {
	if m.width == 0 || m.height <= statusLines {
		return ""
	}
	cv := newCanvas(m.width, m.height-statusLines)

	// Lower depth first so the highest card ends up on top. The logical top
	// card wins ties.
	order := []swap.Card{m.surface.Top().Other(), m.surface.Top()}
	sort.SliceStable(order, func(i, j int) bool {
		return m.cards[order[i]].Z < m.cards[order[j]].Z
	})

	cw, ch := m.cfg.Terminal.CellWidth, m.cfg.Terminal.CellHeight
	w := max(int(math.Round(m.cfg.Cards.Width/cw)), 3)
	h := max(int(math.Round(m.cfg.Cards.Height/ch)), 3)
	for _, c := range order {
		card := m.cards[c]
		x, y := m.toCell(card.Pos)
		dragged := c == m.surface.Top() && m.surface.State() == surface.Dragging
		label := fmt.Sprintf("%s · z%.0f", c, card.Z)
		cv.box(x, y, w, h, label, cardStyle(c, dragged))
	}

	return cv.String() + "\n\n" + m.status()
}

// status renders the one-line summary below the cards.
func (m *playModel) status() string {
	parts := []string{
		"state " + StyleValue.Render(m.surface.State().String()),
		"top " + cardStyle(m.surface.Top(), false).Render(m.surface.Top().String()),
	}
	if d, ok := m.surface.Sample().Distance(); ok {
		parts = append(parts, "drag "+StyleNumber.Render(fmt.Sprintf("%.0f", d))+"/"+fmt.Sprintf("%.0f", m.cfg.Gesture.Outer))
	}
	if m.surface.Crossed() {
		parts = append(parts, StyleWarning.Render("release to swap"))
	}
	parts = append(parts, StyleDim.Render("q quit"))
	return strings.Join(parts, StyleDim.Render(" · "))
}
