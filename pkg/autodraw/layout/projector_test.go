package layout_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-autodraw/pkg/autodraw/layout"
	"github.com/askiada/go-autodraw/pkg/autodraw/model"
)

func structureLine(id string) model.GeometryItem {
	return model.GeometryItem{
		ID:      id,
		ADLayer: "AD_STRUCTURE",
		Type:    model.TypeGeoLine,
		Shape:   model.Line{Start: model.Vector{0, 0}, End: model.Vector{10, 0}},
	}
}

func twoSteps() model.WorkflowConfig {
	return model.WorkflowConfig{
		StepCount: 2,
		Steps: []model.StepConfig{
			{
				Key:   "structure",
				Label: "Structure",
				Show:  []model.ShowRule{{Query: model.QueryADLayer, Value: "AD_STRUCTURE"}},
				Substeps: []model.SubstepConfig{
					{Key: "posts", Label: "Posts"},
					{Key: "cables", Label: "Cables"},
				},
			},
			{
				Key:   "panels",
				Label: "Panels",
				Show:  []model.ShowRule{{Query: model.QueryADLayer, Value: "AD_PANEL"}},
			},
		},
	}
}

func texts(cmds []layout.DrawCommand) []layout.Text {
	var out []layout.Text

	for _, cmd := range cmds {
		if t, ok := cmd.(layout.Text); ok {
			out = append(out, t)
		}
	}

	return out
}

func rects(cmds []layout.DrawCommand, class layout.ColorClass) []layout.Rect {
	var out []layout.Rect

	for _, cmd := range cmds {
		if r, ok := cmd.(layout.Rect); ok && r.Class == class {
			out = append(out, r)
		}
	}

	return out
}

func lines(cmds []layout.DrawCommand) []layout.Line {
	var out []layout.Line

	for _, cmd := range cmds {
		if l, ok := cmd.(layout.Line); ok {
			out = append(out, l)
		}
	}

	return out
}

func TestStepClass(t *testing.T) {
	t.Parallel()

	assert.Equal(t, layout.ClassPast, layout.StepClass(0, 1))
	assert.Equal(t, layout.ClassCurrent, layout.StepClass(1, 1))
	assert.Equal(t, layout.ClassUpcoming, layout.StepClass(2, 1))
}

func TestStatusBoardPastAndCurrent(t *testing.T) {
	t.Parallel()

	state := model.ProjectState{
		Config:   model.WorkflowConfig{Steps: []model.StepConfig{{Label: "A"}, {Label: "B"}}},
		Progress: model.Progress{CurrentStep: 1, CurrentSubstep: 0},
	}

	res := layout.New(layout.WithDebugDump(false)).Project(state)

	board := texts(res.Commands)[:3]
	assert.Equal(t, []layout.Text{
		{Position: layout.Point{X: -15000, Y: 2000}, Height: 1200, Content: "Steps", Class: layout.ClassHeader},
		{Position: layout.Point{X: -15000, Y: 0}, Height: 800, Content: "Step 0: A", Class: layout.ClassPast},
		{Position: layout.Point{X: -15000, Y: -2700}, Height: 800, Content: "Step 1: B", Class: layout.ClassCurrent},
	}, board)
	assert.Empty(t, res.Warnings)
}

func TestStatusBoardMarksActiveSubstep(t *testing.T) {
	t.Parallel()

	state := model.ProjectState{
		Config:   twoSteps(),
		Progress: model.Progress{CurrentStep: 0, CurrentSubstep: 1},
	}

	board := texts(layout.New(layout.WithDebugDump(false)).Project(state).Commands)[:5]

	assert.Equal(t, layout.Text{
		Position: layout.Point{X: -14000, Y: -1200},
		Height:   500,
		Content:  "   Posts",
		Class:    layout.ClassCurrent,
	}, board[2])
	assert.Equal(t, layout.Text{
		Position: layout.Point{X: -14000, Y: -1950},
		Height:   500,
		Content:  ">> Cables",
		Class:    layout.ClassCurrent,
		Active:   true,
	}, board[3])
	assert.Equal(t, layout.Point{X: -15000, Y: -4200}, board[4].Position)
	assert.Equal(t, layout.ClassUpcoming, board[4].Class)
}

func TestOutOfRangeCursor(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		progress  model.Progress
		wantClass layout.ColorClass
	}{
		"past the end":     {progress: model.Progress{CurrentStep: 2}, wantClass: layout.ClassPast},
		"far past the end": {progress: model.Progress{CurrentStep: 9, CurrentSubstep: 1}, wantClass: layout.ClassPast},
		"negative":         {progress: model.Progress{CurrentStep: -1}, wantClass: layout.ClassUpcoming},
		"negative substep": {progress: model.Progress{CurrentStep: -1, CurrentSubstep: -3}, wantClass: layout.ClassUpcoming},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res := layout.New(layout.WithDebugDump(false)).Project(model.ProjectState{
				Config:   twoSteps(),
				Progress: tc.progress,
			})

			for _, txt := range texts(res.Commands) {
				assert.False(t, txt.Active, txt.Content)

				if txt.Class != layout.ClassLabel && txt.Class != layout.ClassHeader {
					assert.Equal(t, tc.wantClass, txt.Class, txt.Content)
				}
			}

			assert.Empty(t, rects(res.Commands, layout.ClassBoxActive))
		})
	}
}

func TestOutOfRangeSubstepMarksNothing(t *testing.T) {
	t.Parallel()

	res := layout.New(layout.WithDebugDump(false)).Project(model.ProjectState{
		Config:   twoSteps(),
		Progress: model.Progress{CurrentStep: 0, CurrentSubstep: 7},
	})

	for _, txt := range texts(res.Commands) {
		if txt.Class == layout.ClassCurrent {
			assert.False(t, txt.Active, txt.Content)
		}
	}
}

func TestWorkflowBoxes(t *testing.T) {
	t.Parallel()

	state := model.ProjectState{
		Config:   twoSteps(),
		Progress: model.Progress{CurrentStep: 1},
		Record: model.GeometryRecord{Geometry: []model.GeometryItem{
			structureLine("l1"),
			{
				ID:      "p1",
				ADLayer: "AD_PANEL",
				Type:    model.TypeGeoLine,
				Shape:   model.Line{Start: model.Vector{0, 0, 5}, End: model.Vector{0, 10, 5}},
			},
		}},
	}

	res := layout.New(layout.WithDebugDump(false)).Project(state)

	assert.Equal(t, []layout.Rect{
		{Min: layout.Point{X: 0, Y: -20000}, Max: layout.Point{X: 20000, Y: 0}, Class: layout.ClassBox},
	}, rects(res.Commands, layout.ClassBox))
	assert.Equal(t, []layout.Rect{
		{
			Min:          layout.Point{X: 0, Y: -40000},
			Max:          layout.Point{X: 20000, Y: -20000},
			Class:        layout.ClassBoxActive,
			StrokeWeight: 250,
		},
	}, rects(res.Commands, layout.ClassBoxActive))

	assert.Equal(t, []layout.Line{
		{Start: layout.Point{X: 2000, Y: -2000}, End: layout.Point{X: 2010, Y: -2000}, Layer: "AD_STRUCTURE"},
		{Start: layout.Point{X: 2000, Y: -22000}, End: layout.Point{X: 2000, Y: -21990}, Layer: "AD_PANEL"},
	}, lines(res.Commands))

	var titles []layout.Text
	for _, txt := range texts(res.Commands) {
		if txt.Class == layout.ClassLabel {
			titles = append(titles, txt)
		}
	}

	assert.Equal(t, []layout.Text{
		{Position: layout.Point{X: 500, Y: -500}, Height: 500, Content: "Step 0: Structure", Class: layout.ClassLabel},
		{
			Position: layout.Point{X: 500, Y: -20500},
			Height:   500,
			Content:  "Step 1: Panels",
			Class:    layout.ClassLabel,
			Active:   true,
		},
	}, titles)
}

func TestGeometryOffsetIsAppliedBeforeBoxOrigin(t *testing.T) {
	t.Parallel()

	p := layout.New(
		layout.WithDebugDump(false),
		layout.WithBoxOrigin(layout.Point{X: 100, Y: 50}),
		layout.WithBoxSize(1000),
		layout.WithGeometryOffset(layout.Point{X: 10, Y: -10}),
	)

	res := p.Project(model.ProjectState{
		Config: twoSteps(),
		Record: model.GeometryRecord{Geometry: []model.GeometryItem{structureLine("l1")}},
	})

	assert.Equal(t, []layout.Line{
		{Start: layout.Point{X: 110, Y: 40}, End: layout.Point{X: 120, Y: 40}, Layer: "AD_STRUCTURE"},
	}, lines(res.Commands))
	assert.Equal(t, layout.Point{X: 100, Y: -950}, rects(res.Commands, layout.ClassBoxActive)[0].Min)
}

func TestEmptyRulesDrawNothing(t *testing.T) {
	t.Parallel()

	res := layout.New(layout.WithDebugDump(false)).Project(model.ProjectState{
		Config: model.WorkflowConfig{Steps: []model.StepConfig{{Label: "Empty"}}},
		Record: model.GeometryRecord{Geometry: []model.GeometryItem{structureLine("l1")}},
	})

	assert.Empty(t, lines(res.Commands))
}

func TestUnsupportedItemIsSkippedWithOneWarning(t *testing.T) {
	t.Parallel()

	var circle model.GeometryItem
	err := json.Unmarshal(
		[]byte(`{"id":"c1","ad_layer":"AD_STRUCTURE","type":"geo_circle","attributes":{"radius":5}}`), &circle)
	require.NoError(t, err)

	res := layout.New(layout.WithDebugDump(false)).Project(model.ProjectState{
		Config: twoSteps(),
		Record: model.GeometryRecord{Geometry: []model.GeometryItem{circle, structureLine("l1")}},
	})

	assert.Equal(t, []layout.Warning{
		{Kind: layout.WarningUnsupportedType, Index: 0, ItemID: "c1", Type: "geo_circle"},
	}, res.Warnings)
	assert.Len(t, lines(res.Commands), 1)
	assert.Contains(t, res.Warnings[0].String(), "geo_circle")
}

func TestWarningsFollowRecordOrder(t *testing.T) {
	t.Parallel()

	broken := model.GeometryItem{ID: "b1", ADLayer: "AD_STRUCTURE", Type: model.TypeGeoLine}

	res := layout.New(layout.WithDebugDump(false)).Project(model.ProjectState{
		Config: twoSteps(),
		Record: model.GeometryRecord{Geometry: []model.GeometryItem{
			structureLine("l1"),
			broken,
			{ID: "x", Type: "geo_arc"},
			structureLine("l1"),
		}},
	})

	assert.Equal(t, []layout.Warning{
		{Kind: layout.WarningMissingAttributes, Index: 1, ItemID: "b1", Type: model.TypeGeoLine},
		{Kind: layout.WarningUnsupportedType, Index: 2, ItemID: "x", Type: "geo_arc"},
		{Kind: layout.WarningDuplicateID, Index: 3, ItemID: "l1", Type: model.TypeGeoLine},
	}, res.Warnings)

	// duplicates are still drawn
	assert.Len(t, lines(res.Commands), 2)
}

func TestProjectIsIdempotent(t *testing.T) {
	t.Parallel()

	state := model.ProjectState{
		ProjectID:         3,
		ProjectAttributes: json.RawMessage(`{"name":"Marina"}`),
		Config:            twoSteps(),
		Progress:          model.Progress{CurrentStep: 0, CurrentSubstep: 1},
		Record: model.GeometryRecord{Geometry: []model.GeometryItem{
			structureLine("l1"),
			{ID: "c1", Type: "geo_circle", Shape: model.Unknown{}},
		}},
	}

	p := layout.New()
	assert.Equal(t, p.Project(state), p.Project(state))
	assert.Equal(t, layout.Project(state), p.Project(state))
}

func TestCommandOrder(t *testing.T) {
	t.Parallel()

	res := layout.Project(model.ProjectState{Config: twoSteps()})

	header, ok := res.Commands[0].(layout.Text)
	require.True(t, ok)
	assert.Equal(t, "Steps", header.Content)

	firstDebug, firstBox := -1, -1

	for i, cmd := range res.Commands {
		if r, ok := cmd.(layout.Rect); ok {
			if r.Class == layout.ClassDebug && firstDebug < 0 {
				firstDebug = i
			}

			if r.Class == layout.ClassBox && firstBox < 0 {
				firstBox = i
			}
		}
	}

	require.GreaterOrEqual(t, firstDebug, 0)
	require.GreaterOrEqual(t, firstBox, 0)
	assert.Less(t, firstDebug, firstBox)
}
