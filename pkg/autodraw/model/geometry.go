package model

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// TypeGeoLine is the discriminator of line items, the only type with typed attributes.
const TypeGeoLine = "geo_line"

// Vector is a 2 or 3 component coordinate as sent by the backend.
type Vector []float64

// Valid reports whether v has 2 or 3 components.
func (v Vector) Valid() bool {
	return len(v) == 2 || len(v) == 3
}

// X returns the first component.
func (v Vector) X() float64 { return v.at(0) }

// Y returns the second component.
func (v Vector) Y() float64 { return v.at(1) }

// Z returns the third component, 0 for planar vectors.
func (v Vector) Z() float64 { return v.at(2) }

func (v Vector) at(i int) float64 {
	if i >= len(v) {
		return 0
	}

	return v[i]
}

// Shape holds the typed attributes of a geometry item. It is implemented by Line and
// Unknown only.
type Shape interface {
	isShape()
}

// Line is the shape of a "geo_line" item.
type Line struct {
	Start Vector `json:"start"`
	End   Vector `json:"end"`
}

// Unknown keeps the attributes of an item whose type is not recognised.
type Unknown struct {
	Attributes json.RawMessage
}

func (Line) isShape()    {}
func (Unknown) isShape() {}

// GeometryItem is a tagged, typed unit of drawable data.
//
// Shape is a Line for valid "geo_line" items, an Unknown for any other type and nil for
// a "geo_line" item whose attributes are absent or malformed.
type GeometryItem struct {
	ID           string
	Key          string
	ADLayer      string
	ProductIndex int
	Tags         []string
	Type         string
	Shape        Shape
}

type wireGeometryItem struct {
	ID           string          `json:"id"`
	Key          string          `json:"key"`
	ADLayer      string          `json:"ad_layer"`
	ProductIndex int             `json:"product_index"`
	Tags         []string        `json:"tags"`
	Type         string          `json:"type"`
	Attributes   json.RawMessage `json:"attributes,omitempty"`
}

// UnmarshalJSON decodes the base record and dispatches the attributes on the type
// discriminator. Unrecognised types and bad line attributes degrade, they never fail.
func (g *GeometryItem) UnmarshalJSON(data []byte) error {
	var wire wireGeometryItem
	if err := json.Unmarshal(data, &wire); err != nil {
		return errors.Wrap(err, "unable to decode geometry item")
	}

	*g = GeometryItem{
		ID:           wire.ID,
		Key:          wire.Key,
		ADLayer:      wire.ADLayer,
		ProductIndex: wire.ProductIndex,
		Tags:         wire.Tags,
		Type:         wire.Type,
		Shape:        decodeShape(wire.Type, wire.Attributes),
	}

	return nil
}

func decodeShape(typ string, attrs json.RawMessage) Shape {
	if typ != TypeGeoLine {
		return Unknown{Attributes: attrs}
	}

	if len(attrs) == 0 || bytes.Equal(bytes.TrimSpace(attrs), []byte("null")) {
		return nil
	}

	var line Line
	if err := json.Unmarshal(attrs, &line); err != nil {
		return nil
	}

	if !line.Start.Valid() || !line.End.Valid() {
		return nil
	}

	return line
}

// MarshalJSON writes the item back in its wire shape.
func (g GeometryItem) MarshalJSON() ([]byte, error) {
	wire := wireGeometryItem{
		ID:           g.ID,
		Key:          g.Key,
		ADLayer:      g.ADLayer,
		ProductIndex: g.ProductIndex,
		Tags:         g.Tags,
		Type:         g.Type,
	}

	switch shape := g.Shape.(type) {
	case Line:
		attrs, err := json.Marshal(shape)
		if err != nil {
			return nil, errors.Wrap(err, "unable to encode line attributes")
		}

		wire.Attributes = attrs
	case Unknown:
		wire.Attributes = shape.Attributes
	}

	return json.Marshal(wire)
}

// Clone returns a deep copy of the item.
func (g GeometryItem) Clone() GeometryItem {
	out := g
	out.Tags = cloneSlice(g.Tags)

	switch shape := g.Shape.(type) {
	case Line:
		out.Shape = Line{Start: cloneSlice(shape.Start), End: cloneSlice(shape.End)}
	case Unknown:
		out.Shape = Unknown{Attributes: cloneSlice(shape.Attributes)}
	}

	return out
}

// GeometryRecord is the flat collection of geometry items of a project. Slice order is
// rendering order: later items draw over earlier ones.
type GeometryRecord struct {
	CreatedAt string         `json:"created_at"`
	Geometry  []GeometryItem `json:"geometry"`
}

// Clone returns a deep copy of the record.
func (r GeometryRecord) Clone() GeometryRecord {
	out := GeometryRecord{CreatedAt: r.CreatedAt}
	if r.Geometry == nil {
		return out
	}

	out.Geometry = make([]GeometryItem, len(r.Geometry))
	for i, item := range r.Geometry {
		out.Geometry[i] = item.Clone()
	}

	return out
}
