package drawer

import (
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-autodraw/pkg/autodraw/layout"
)

// Palette maps colour classes to hex colours.
type Palette map[layout.ColorClass]string

// fallbackColour is used for classes missing from a palette.
const fallbackColour = "#000000"

var defaultColours = map[layout.ColorClass][3]uint8{
	layout.ClassPast:      {0, 160, 0},
	layout.ClassCurrent:   {20, 20, 20},
	layout.ClassUpcoming:  {150, 150, 150},
	layout.ClassActive:    {220, 0, 0},
	layout.ClassHeader:    {0, 160, 0},
	layout.ClassLabel:     {20, 20, 20},
	layout.ClassBox:       {150, 150, 150},
	layout.ClassBoxActive: {0, 160, 0},
	layout.ClassDebug:     {60, 90, 200},
}

// DefaultPalette returns the palette used when none is configured.
func DefaultPalette() Palette {
	p := make(Palette, len(defaultColours))

	for class, rgb := range defaultColours {
		c, err := colors.RGB(rgb[0], rgb[1], rgb[2])
		if err != nil {
			continue
		}

		p[class] = c.ToHEX().String()
	}

	return p
}

// ParsePalette builds a palette from any colour notation understood by colors.Parse, such
// as "#ff0000" or "rgb(255,0,0)". Classes not given keep their default colour.
func ParsePalette(values map[string]string) (Palette, error) {
	p := DefaultPalette()

	for class, value := range values {
		c, err := colors.Parse(value)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse colour %q for class %s", value, class)
		}

		p[layout.ColorClass(class)] = c.ToHEX().String()
	}

	return p, nil
}

// Colour returns the colour of class.
func (p Palette) Colour(class layout.ColorClass) string {
	if c, ok := p[class]; ok {
		return c
	}

	return fallbackColour
}

// TextColour returns the colour of a text command.
func (p Palette) TextColour(t layout.Text) string {
	if t.Active {
		return p.Colour(layout.ClassActive)
	}

	return p.Colour(t.Class)
}
