package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/phanxgames/liquid"
)

func newInspectCmd() *cobra.Command {
	var opts recordOpts

	cmd := &cobra.Command{
		Use:   "inspect [scene.toml]",
		Short: "Step through a recorded cycle in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, err := opts.record(cmd.Context(), sceneArg(args))
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewTimelineModel(frames), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	opts.addFlags(cmd)
	return cmd
}

// =============================================================================
// TimelineModel - Interactive frame stepping
// =============================================================================

// TimelineModel is the bubbletea model for stepping through recorded frames.
type TimelineModel struct {
	Frames []liquid.Frame
	Cursor int
	Width  int
}

// NewTimelineModel creates a model positioned on the first frame.
func NewTimelineModel(frames []liquid.Frame) TimelineModel {
	return TimelineModel{Frames: frames, Width: 80}
}

func (m TimelineModel) Init() tea.Cmd {
	return nil
}

func (m TimelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.Cursor = max(m.Cursor-1, 0)
		case "right", "l":
			m.Cursor = min(m.Cursor+1, len(m.Frames)-1)
		case "pgup", "H":
			m.Cursor = max(m.Cursor-10, 0)
		case "pgdown", "L":
			m.Cursor = min(m.Cursor+10, len(m.Frames)-1)
		case "n":
			m.Cursor = m.nextEvent(1)
		case "p":
			m.Cursor = m.nextEvent(-1)
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = max(len(m.Frames)-1, 0)
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
	}
	return m, nil
}

// nextEvent returns the index of the next frame in direction dir that
// carries events, or the current index when there is none.
func (m TimelineModel) nextEvent(dir int) int {
	for i := m.Cursor + dir; i >= 0 && i < len(m.Frames); i += dir {
		if len(m.Frames[i].Events) > 0 {
			return i
		}
	}
	return m.Cursor
}

func (m TimelineModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Cascade Timeline"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ step  pgup/pgdn ×10  n/p next event  g/G ends  q quit"))
	b.WriteString("\n\n")

	if len(m.Frames) == 0 {
		b.WriteString(StyleDim.Render("No frames recorded."))
		return b.String()
	}

	f := m.Frames[m.Cursor]
	b.WriteString(m.renderHeader(f))
	b.WriteString("\n\n")
	b.WriteString(renderCells(f))
	b.WriteString("\n")
	if len(f.Events) > 0 {
		b.WriteString(StyleLabel.Render("events ") + StyleValue.Render(formatEvents(f.Events)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderScrubber())
	return b.String()
}

func (m TimelineModel) renderHeader(f liquid.Frame) string {
	o := f.ActiveOutline()
	fields := []string{
		StyleLabel.Render("tick ") + StyleValue.Render(fmt.Sprintf("%d/%d", f.Tick, m.Frames[len(m.Frames)-1].Tick)),
		StyleLabel.Render("t ") + StyleValue.Render(fmt.Sprintf("%.3fs", f.Time)),
		StyleLabel.Render("state ") + StyleState(f.State).Render(f.State.String()),
		StyleLabel.Render("active ") + StyleValue.Render(fmt.Sprint(f.Active)),
		StyleLabel.Render("distance ") + StyleValue.Render(fmt.Sprintf("%.2f", f.Distance())),
		StyleLabel.Render("outline ") + StyleValue.Render(fmt.Sprintf("%s %.3f", o.Kind, o.Ratio)),
	}
	return strings.Join(fields, StyleDim.Render("  │  "))
}

var (
	cellHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellActiveStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	cellRowStyle    = lipgloss.NewStyle().Foreground(colorWhite)
)

// renderCells lists every cell of the frame, root first.
func renderCells(f liquid.Frame) string {
	var lines []string
	lines = append(lines, cellHeaderStyle.Render(fmt.Sprintf("%-3s %-10s %16s %7s %6s %-7s", "#", "name", "center", "radius", "icon", "outline")))
	for _, c := range f.Cells {
		row := fmt.Sprintf("%-3d %-10s %16s %7.1f %6.2f %-7s",
			c.Index, truncate(c.Name, 10),
			fmt.Sprintf("(%.1f, %.1f)", c.Circle.Center.X, c.Circle.Center.Y),
			c.Circle.Radius, c.IconAlpha, c.Outline.Kind)
		if c.Index == f.Active {
			lines = append(lines, cellActiveStyle.Render(row))
		} else {
			lines = append(lines, cellRowStyle.Render(row))
		}
	}
	return strings.Join(lines, "\n")
}

// renderScrubber draws a position bar with event ticks.
func (m TimelineModel) renderScrubber() string {
	width := max(m.Width-4, 10)
	n := len(m.Frames)
	cells := make([]string, width)
	for i := range cells {
		cells[i] = StyleDim.Render("─")
	}
	for i, f := range m.Frames {
		if len(f.Events) > 0 {
			cells[i*(width-1)/max(n-1, 1)] = StyleLabel.Render("┼")
		}
	}
	cells[m.Cursor*(width-1)/max(n-1, 1)] = StyleTitle.Render("●")
	return strings.Join(cells, "")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
