package drawer

import (
	"fmt"
	"html"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-autodraw/pkg/autodraw/layout"
	"github.com/askiada/go-autodraw/pkg/autodraw/model"
	"github.com/askiada/go-autodraw/pkg/autodraw/rules"
)

const (
	startVertex    = "start"
	completeVertex = "complete"
)

// WorkflowGraph writes the step chain of a project as a DOT file. Every step is a vertex
// coloured by its class, chained from a start vertex to a complete vertex.
type WorkflowGraph struct {
	dotFileName string
	palette     Palette
}

// NewWorkflowGraph creates a graph exporter writing to dotFileName. A nil palette falls
// back to DefaultPalette.
func NewWorkflowGraph(dotFileName string, palette Palette) *WorkflowGraph {
	if palette == nil {
		palette = DefaultPalette()
	}

	return &WorkflowGraph{dotFileName: dotFileName, palette: palette}
}

// Export creates the DOT file for state.
func (w *WorkflowGraph) Export(state model.ProjectState) error {
	file, err := os.Create(w.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", w.dotFileName)
	}
	defer file.Close()

	err = w.Write(file, state)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", w.dotFileName)
	}

	return nil
}

// Write renders the DOT description of state to wrt.
func (w *WorkflowGraph) Write(wrt io.Writer, state model.ProjectState) error {
	gra, err := w.build(state)
	if err != nil {
		return err
	}

	return dot(gra, wrt, GraphAttribute("rankdir", "TB"))
}

func stepVertex(i int) string {
	return fmt.Sprintf("step_%d", i)
}

func (w *WorkflowGraph) build(state model.ProjectState) (graph.Graph[string, string], error) {
	gra := graph.New(graph.StringHash, graph.Directed())

	endColour := w.palette.Colour(layout.ClassUpcoming)
	if state.Progress.IsComplete {
		endColour = w.palette.Colour(layout.ClassPast)
	}

	err := gra.AddVertex(startVertex, graph.VertexAttributes(map[string]string{
		"label": startVertex, "shape": "circle", "color": w.palette.Colour(layout.ClassPast),
	}))
	if err != nil {
		return nil, errors.Wrap(err, "unable to add start vertex")
	}

	err = gra.AddVertex(completeVertex, graph.VertexAttributes(map[string]string{
		"label": completeVertex, "shape": "doublecircle", "color": endColour,
	}))
	if err != nil {
		return nil, errors.Wrap(err, "unable to add complete vertex")
	}

	previous := startVertex

	for i, step := range state.Config.Steps {
		class := layout.StepClass(i, state.Progress.CurrentStep)
		name := stepVertex(i)

		attrs := map[string]string{
			"label":  fmt.Sprintf("Step %d: %s", i, step.Label),
			"shape":  "box",
			"color":  w.palette.Colour(class),
			"xlabel": stepSummary(step, class, state.Progress, state.Record),
		}
		if class == layout.ClassCurrent {
			attrs["penwidth"] = "3"
		}

		err := gra.AddVertex(name, graph.VertexAttributes(attrs))
		if err != nil {
			return nil, errors.Wrapf(err, "unable to add vertex %s", name)
		}

		err = gra.AddEdge(previous, name)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to add edge from %s to %s", previous, name)
		}

		previous = name
	}

	err = gra.AddEdge(previous, completeVertex)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to add edge from %s to %s", previous, completeVertex)
	}

	return gra, nil
}

// stepSummary lists the substeps of a step, the active one marked, and how many lines the
// step selects.
func stepSummary(step model.StepConfig, class layout.ColorClass, progress model.Progress,
	record model.GeometryRecord,
) string {
	parts := make([]string, 0, len(step.Substeps)+1)

	for j, sub := range step.Substeps {
		if class == layout.ClassCurrent && j == progress.CurrentSubstep {
			parts = append(parts, "&gt;&gt; "+html.EscapeString(sub.Label))
			continue
		}

		parts = append(parts, html.EscapeString(sub.Label))
	}

	lines := 0

	for _, item := range rules.Select(record.Geometry, step.Show) {
		if _, ok := item.Shape.(model.Line); ok {
			lines++
		}
	}

	parts = append(parts, fmt.Sprintf("%d lines", lines))

	return strings.Join(parts, "<BR />")
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           string
	Target           string
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot(gra graph.Graph[string, string], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(gra, options...)
	if err != nil {
		return errors.Wrap(err, "failed to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute sets a graph level DOT attribute.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

// generateDOT describes gra with vertices and their edges in name order, so the output is
// stable across runs.
func generateDOT(gra graph.Graph[string, string], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for _, vertex := range sortedKeys(adjacencyMap) {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))
		for k, v := range sourceProperties.Attributes {
			sourceAttributes[k] = v
		}

		htmlAttributes := make(map[string]string)

		if xlabel, ok := sourceAttributes["xlabel"]; ok {
			label := html.EscapeString(sourceAttributes["label"])
			htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="10">%s</FONT>>`, label, xlabel)

			delete(sourceAttributes, "xlabel")
			delete(sourceAttributes, "label")
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		})

		adjacencies := adjacencyMap[vertex]
		for _, adjacency := range sortedKeys(adjacencies) {
			edge := adjacencies[adjacency]
			desc.Statements = append(desc.Statements, statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			})
		}
	}

	return desc, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}
