package layout

import "fmt"

// Point is a world coordinate. Y grows upwards.
type Point struct {
	X float64
	Y float64
}

// Add returns the translation of p by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// ColorClass is the abstract colour of a command. The drawer decides the actual colour.
type ColorClass string

const (
	ClassPast      ColorClass = "past"
	ClassCurrent   ColorClass = "current"
	ClassUpcoming  ColorClass = "upcoming"
	ClassActive    ColorClass = "active"
	ClassHeader    ColorClass = "header"
	ClassLabel     ColorClass = "label"
	ClassBox       ColorClass = "box"
	ClassBoxActive ColorClass = "box-active"
	ClassDebug     ColorClass = "debug"
)

// StepClass classifies step i against the current step. Out of range cursors are not
// clamped: a cursor past the last step makes every step past.
func StepClass(i, current int) ColorClass {
	switch {
	case i < current:
		return ClassPast
	case i == current:
		return ClassCurrent
	default:
		return ClassUpcoming
	}
}

// DrawCommand is one abstract drawing instruction. It is implemented by Text, Rect and
// Line only.
type DrawCommand interface {
	isDrawCommand()
}

// Text is anchored at its top left corner. Content may span several lines.
type Text struct {
	Position Point
	Height   float64
	Content  string
	Class    ColorClass
	// Active marks the substep the cursor points at.
	Active bool
}

// Rect is an axis aligned outline.
type Rect struct {
	Min          Point
	Max          Point
	Class        ColorClass
	StrokeWeight float64
}

// Line is a segment of project geometry. Layer is the ad_layer of the source item.
type Line struct {
	Start Point
	End   Point
	Layer string
}

func (Text) isDrawCommand() {}
func (Rect) isDrawCommand() {}
func (Line) isDrawCommand() {}
