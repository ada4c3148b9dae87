package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-autodraw/pkg/autodraw/model"
)

func TestGeometryItemUnmarshal(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input     string
		wantShape model.Shape
	}{
		"planar line": {
			input:     `{"id":"a","ad_layer":"AD_STRUCTURE","type":"geo_line","attributes":{"start":[0,0],"end":[10,0]}}`,
			wantShape: model.Line{Start: model.Vector{0, 0}, End: model.Vector{10, 0}},
		},
		"3d line": {
			input:     `{"id":"a","type":"geo_line","attributes":{"start":[0,0,1],"end":[10,0,2]}}`,
			wantShape: model.Line{Start: model.Vector{0, 0, 1}, End: model.Vector{10, 0, 2}},
		},
		"line without attributes": {
			input:     `{"id":"a","type":"geo_line"}`,
			wantShape: nil,
		},
		"line with null attributes": {
			input:     `{"id":"a","type":"geo_line","attributes":null}`,
			wantShape: nil,
		},
		"line missing end": {
			input:     `{"id":"a","type":"geo_line","attributes":{"start":[0,0]}}`,
			wantShape: nil,
		},
		"line with one component": {
			input:     `{"id":"a","type":"geo_line","attributes":{"start":[0],"end":[1,1]}}`,
			wantShape: nil,
		},
		"line with garbage attributes": {
			input:     `{"id":"a","type":"geo_line","attributes":"oops"}`,
			wantShape: nil,
		},
		"unknown type": {
			input:     `{"id":"a","type":"geo_circle","attributes":{"radius":5}}`,
			wantShape: model.Unknown{Attributes: json.RawMessage(`{"radius":5}`)},
		},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var got model.GeometryItem
			require.NoError(t, json.Unmarshal([]byte(tc.input), &got))
			assert.Equal(t, "a", got.ID)
			assert.Equal(t, tc.wantShape, got.Shape)
		})
	}
}

func TestGeometryItemBaseFields(t *testing.T) {
	t.Parallel()

	input := `{"id":"g1","key":"k","ad_layer":"AD_PANEL","product_index":3,"tags":["a","b"],"type":"geo_line",` +
		`"attributes":{"start":[1,2],"end":[3,4]}}`

	var got model.GeometryItem
	require.NoError(t, json.Unmarshal([]byte(input), &got))

	assert.Equal(t, model.GeometryItem{
		ID:           "g1",
		Key:          "k",
		ADLayer:      "AD_PANEL",
		ProductIndex: 3,
		Tags:         []string{"a", "b"},
		Type:         model.TypeGeoLine,
		Shape:        model.Line{Start: model.Vector{1, 2}, End: model.Vector{3, 4}},
	}, got)
}

func TestGeometryItemMarshalKeepsWireShape(t *testing.T) {
	t.Parallel()

	item := model.GeometryItem{
		ID:      "g1",
		ADLayer: "AD_PANEL",
		Type:    model.TypeGeoLine,
		Shape:   model.Line{Start: model.Vector{1, 2}, End: model.Vector{3, 4}},
	}

	raw, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":"g1","key":"","ad_layer":"AD_PANEL","product_index":0,"tags":null,"type":"geo_line","attributes":{"start":[1,2],"end":[3,4]}}`,
		string(raw))
}

func TestGeometryRecordDecodeNeverFailsOnItemType(t *testing.T) {
	t.Parallel()

	input := `{"created_at":"2024-01-01","geometry":[
		{"id":"1","type":"geo_line","attributes":{"start":[0,0],"end":[1,1]}},
		{"id":"2","type":"geo_circle"},
		{"id":"3","type":"geo_line"}
	]}`

	var got model.GeometryRecord
	require.NoError(t, json.Unmarshal([]byte(input), &got))
	require.Len(t, got.Geometry, 3)
	assert.IsType(t, model.Line{}, got.Geometry[0].Shape)
	assert.IsType(t, model.Unknown{}, got.Geometry[1].Shape)
	assert.Nil(t, got.Geometry[2].Shape)
}

func TestVectorComponents(t *testing.T) {
	t.Parallel()

	v := model.Vector{1, 2}
	assert.True(t, v.Valid())
	assert.Equal(t, 1.0, v.X())
	assert.Equal(t, 2.0, v.Y())
	assert.Equal(t, 0.0, v.Z())
	assert.False(t, model.Vector{1, 2, 3, 4}.Valid())
}
