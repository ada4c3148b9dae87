package drawer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/askiada/go-autodraw/pkg/autodraw/layout"
)

var classMarks = map[layout.ColorClass]string{
	layout.ClassPast:     "✓",
	layout.ClassCurrent:  "▶",
	layout.ClassUpcoming: "·",
}

// TerminalDrawer prints the status board to a terminal, styled per colour class. Workflow
// geometry is summarised, debug boxes are only printed on request.
type TerminalDrawer struct {
	out       io.Writer
	renderer  *lipgloss.Renderer
	palette   Palette
	withDebug bool
}

// TerminalOption configures a TerminalDrawer.
type TerminalOption func(d *TerminalDrawer)

func TerminalPalette(p Palette) TerminalOption {
	return func(d *TerminalDrawer) {
		if p != nil {
			d.palette = p
		}
	}
}

// TerminalDebug also prints the content of the debug boxes.
func TerminalDebug(enabled bool) TerminalOption {
	return func(d *TerminalDrawer) {
		d.withDebug = enabled
	}
}

// NewTerminalDrawer creates a drawer printing to out. Colours are dropped when out is not
// a terminal.
func NewTerminalDrawer(out io.Writer, opts ...TerminalOption) *TerminalDrawer {
	d := &TerminalDrawer{
		out:      out,
		renderer: lipgloss.NewRenderer(out),
		palette:  DefaultPalette(),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *TerminalDrawer) style(colour string) lipgloss.Style {
	return d.renderer.NewStyle().Foreground(lipgloss.Color(colour))
}

// Draw prints one line per status board text.
func (d *TerminalDrawer) Draw(ctx context.Context, cmds []layout.DrawCommand) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "terminal drawer")
	}

	var sb strings.Builder

	boardX, boxes, lines := 0.0, 0, 0

	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case layout.Text:
			switch c.Class {
			case layout.ClassHeader:
				boardX = c.Position.X
				sb.WriteString(d.style(d.palette.Colour(c.Class)).Bold(true).Render(c.Content))
				sb.WriteString("\n")
			case layout.ClassPast, layout.ClassCurrent, layout.ClassUpcoming:
				sb.WriteString(d.boardLine(c, c.Position.X > boardX))
				sb.WriteString("\n")
			case layout.ClassDebug:
				if d.withDebug {
					sb.WriteString(d.style(d.palette.Colour(c.Class)).Render(c.Content))
					sb.WriteString("\n")
				}
			}
		case layout.Rect:
			if c.Class == layout.ClassBox || c.Class == layout.ClassBoxActive {
				boxes++
			}
		case layout.Line:
			lines++
		}
	}

	summary := fmt.Sprintf("%d boxes, %d lines", boxes, lines)
	sb.WriteString(d.style(d.palette.Colour(layout.ClassUpcoming)).Render(summary))
	sb.WriteString("\n")

	_, err := io.WriteString(d.out, sb.String())
	if err != nil {
		return errors.Wrap(err, "unable to write status board")
	}

	return nil
}

func (d *TerminalDrawer) boardLine(t layout.Text, substep bool) string {
	if substep {
		style := d.style(d.palette.TextColour(t))
		if t.Active {
			style = style.Bold(true)
		}

		return "    " + style.Render(strings.TrimLeft(t.Content, " "))
	}

	mark := classMarks[t.Class]

	return d.style(d.palette.TextColour(t)).Render(mark + " " + t.Content)
}

var _ Drawer = (*TerminalDrawer)(nil)
