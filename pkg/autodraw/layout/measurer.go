package layout

import (
	"math"
	"strings"
	"unicode/utf8"
)

// TextMeasurer returns the extents of a text rendered at the given height.
type TextMeasurer interface {
	Measure(content string, height float64) (w, h float64)
}

// Monospace estimates extents assuming every rune has the same advance.
type Monospace struct {
	// Advance is the width of a rune relative to the text height.
	Advance float64
	// LineSpacing is the distance between baselines relative to the text height.
	LineSpacing float64
}

// DefaultMeasurer is used when no measurer is configured.
var DefaultMeasurer = Monospace{Advance: 0.6, LineSpacing: 1.5}

func (m Monospace) Measure(content string, height float64) (float64, float64) {
	if content == "" {
		return 0, 0
	}

	lines := strings.Split(content, "\n")

	longest := 0
	for _, line := range lines {
		longest = max(longest, utf8.RuneCountInString(line))
	}

	width := float64(longest) * height * m.Advance
	extent := height + float64(len(lines)-1)*height*m.LineSpacing

	return width, extent
}

// Bounds returns the smallest rectangle holding every command, false when cmds is empty.
func Bounds(cmds []DrawCommand, measurer TextMeasurer) (Point, Point, bool) {
	if measurer == nil {
		measurer = DefaultMeasurer
	}

	minP := Point{X: math.Inf(1), Y: math.Inf(1)}
	maxP := Point{X: math.Inf(-1), Y: math.Inf(-1)}

	grow := func(p Point) {
		minP.X = math.Min(minP.X, p.X)
		minP.Y = math.Min(minP.Y, p.Y)
		maxP.X = math.Max(maxP.X, p.X)
		maxP.Y = math.Max(maxP.Y, p.Y)
	}

	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case Text:
			w, h := measurer.Measure(c.Content, c.Height)
			grow(c.Position)
			grow(Point{X: c.Position.X + w, Y: c.Position.Y - h})
		case Rect:
			grow(c.Min)
			grow(c.Max)
		case Line:
			grow(c.Start)
			grow(c.End)
		}
	}

	if len(cmds) == 0 || math.IsInf(minP.X, 1) {
		return Point{}, Point{}, false
	}

	return minP, maxP, true
}
