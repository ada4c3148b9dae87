package drawer

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/askiada/go-autodraw/pkg/autodraw/layout"
)

const (
	defaultStrokeWidth = 40.0
	defaultLineWidth   = 20.0
	defaultMargin      = 1000.0
	defaultLineColour  = "#1f77b4"
	textLineSpacing    = 1.5
)

// SVGDrawer writes the commands to an SVG file. World Y grows upwards, so every Y is
// flipped.
type SVGDrawer struct {
	svgFileName string
	palette     Palette
	measurer    layout.TextMeasurer
	margin      float64
}

// SVGOption configures an SVGDrawer.
type SVGOption func(d *SVGDrawer)

func SVGPalette(p Palette) SVGOption {
	return func(d *SVGDrawer) {
		if p != nil {
			d.palette = p
		}
	}
}

// SVGMeasurer sets the measurer used to size the view box around texts.
func SVGMeasurer(m layout.TextMeasurer) SVGOption {
	return func(d *SVGDrawer) {
		if m != nil {
			d.measurer = m
		}
	}
}

func SVGMargin(margin float64) SVGOption {
	return func(d *SVGDrawer) {
		d.margin = margin
	}
}

// NewSVGDrawer creates a new SVG drawer.
func NewSVGDrawer(svgFileName string, opts ...SVGOption) *SVGDrawer {
	d := &SVGDrawer{
		svgFileName: svgFileName,
		palette:     DefaultPalette(),
		measurer:    layout.DefaultMeasurer,
		margin:      defaultMargin,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Draw creates the SVG file. The file is only created once the document is rendered.
func (d *SVGDrawer) Draw(ctx context.Context, cmds []layout.DrawCommand) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "svg drawer")
	}

	var sb strings.Builder

	err := d.Render(&sb, cmds)
	if err != nil {
		return err
	}

	err = os.WriteFile(d.svgFileName, []byte(sb.String()), 0o600)
	if err != nil {
		return errors.Wrapf(err, "unable to write file %s", d.svgFileName)
	}

	return nil
}

// Render writes the SVG document to wrt.
func (d *SVGDrawer) Render(wrt io.Writer, cmds []layout.DrawCommand) error {
	doc := d.document(cmds)

	tpl, err := template.New("svgTemplate").Funcs(template.FuncMap{"num": formatNumber}).Parse(svgTemplate)
	if err != nil {
		return errors.Wrap(err, "unable to parse template")
	}

	err = tpl.Execute(wrt, doc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

//nolint:lll //this is a template
const svgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="{{num .MinX}} {{num .MinY}} {{num .Width}} {{num .Height}}">
{{- range .Elements}}
{{- if eq .Kind "rect"}}
	<rect x="{{num .X}}" y="{{num .Y}}" width="{{num .Width}}" height="{{num .Height}}" fill="none" stroke="{{.Colour}}" stroke-width="{{num .StrokeWidth}}" class="{{.Class}}"/>
{{- else if eq .Kind "line"}}
	<line x1="{{num .X}}" y1="{{num .Y}}" x2="{{num .X2}}" y2="{{num .Y2}}" stroke="{{.Colour}}" stroke-width="{{num .StrokeWidth}}" data-layer="{{html .Layer}}"/>
{{- else}}
{{- $x := .X}}{{$dy := .LineHeight}}
	<text x="{{num .X}}" y="{{num .Y}}" font-size="{{num .FontSize}}" font-family="monospace" fill="{{.Colour}}" class="{{.Class}}"{{if .Active}} data-active="true"{{end}} xml:space="preserve">
	{{- range $i, $l := .Lines}}<tspan x="{{num $x}}" dy="{{if $i}}{{num $dy}}{{else}}0{{end}}">{{html $l}}</tspan>{{end -}}
	</text>
{{- end}}
{{- end}}
</svg>
`

type svgDocument struct {
	MinX, MinY    float64
	Width, Height float64
	Elements      []svgElement
}

type svgElement struct {
	Kind          string
	X, Y, X2, Y2  float64
	Width, Height float64
	FontSize      float64
	LineHeight    float64
	StrokeWidth   float64
	Colour        string
	Class         layout.ColorClass
	Layer         string
	Active        bool
	Lines         []string
}

func (d *SVGDrawer) document(cmds []layout.DrawCommand) svgDocument {
	doc := svgDocument{Elements: make([]svgElement, 0, len(cmds))}

	minP, maxP, ok := layout.Bounds(cmds, d.measurer)
	if ok {
		doc.MinX = minP.X - d.margin
		doc.MinY = -maxP.Y - d.margin
		doc.Width = maxP.X - minP.X + 2*d.margin
		doc.Height = maxP.Y - minP.Y + 2*d.margin
	}

	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case layout.Rect:
			stroke := c.StrokeWeight
			if stroke <= 0 {
				stroke = defaultStrokeWidth
			}

			doc.Elements = append(doc.Elements, svgElement{
				Kind:        "rect",
				X:           c.Min.X,
				Y:           -c.Max.Y,
				Width:       c.Max.X - c.Min.X,
				Height:      c.Max.Y - c.Min.Y,
				StrokeWidth: stroke,
				Colour:      d.palette.Colour(c.Class),
				Class:       c.Class,
			})
		case layout.Line:
			doc.Elements = append(doc.Elements, svgElement{
				Kind:        "line",
				X:           c.Start.X,
				Y:           -c.Start.Y,
				X2:          c.End.X,
				Y2:          -c.End.Y,
				StrokeWidth: defaultLineWidth,
				Colour:      defaultLineColour,
				Layer:       c.Layer,
			})
		case layout.Text:
			doc.Elements = append(doc.Elements, svgElement{
				Kind: "text",
				X:    c.Position.X,
				// the anchor is the top left corner, svg anchors on the baseline
				Y:          -c.Position.Y + c.Height,
				FontSize:   c.Height,
				LineHeight: c.Height * textLineSpacing,
				Colour:     d.palette.TextColour(c),
				Class:      c.Class,
				Active:     c.Active,
				Lines:      strings.Split(c.Content, "\n"),
			})
		}
	}

	return doc
}

func formatNumber(v float64) string {
	if v == 0 {
		// no negative zero
		v = 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

var _ Drawer = (*SVGDrawer)(nil)
