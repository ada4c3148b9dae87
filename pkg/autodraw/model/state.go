package model

import "encoding/json"

// Product is a passthrough entry of the project's product list.
type Product struct {
	ItemIndex  int             `json:"item_index"`
	Label      string          `json:"label"`
	Attributes json.RawMessage `json:"attributes,omitempty"`
}

// ProjectState aggregates everything known about one project.
//
// Config is set once by the start fetch. Every other field is server authoritative and
// replaced by each fetch.
type ProjectState struct {
	ProjectID         int
	ProjectAttributes json.RawMessage
	ProductAttributes json.RawMessage
	Products          []Product
	Config            WorkflowConfig
	Progress          Progress
	Record            GeometryRecord
}

// Clone returns a deep copy of the state so that callers never alias a cached value.
func (s ProjectState) Clone() ProjectState {
	out := ProjectState{
		ProjectID:         s.ProjectID,
		ProjectAttributes: cloneSlice(s.ProjectAttributes),
		ProductAttributes: cloneSlice(s.ProductAttributes),
		Config:            s.Config.Clone(),
		Progress:          s.Progress,
		Products:          cloneProducts(s.Products),
		Record:            s.Record.Clone(),
	}

	return out
}

func cloneProducts(in []Product) []Product {
	if in == nil {
		return nil
	}

	out := make([]Product, len(in))
	for i, p := range in {
		out[i] = Product{
			ItemIndex:  p.ItemIndex,
			Label:      p.Label,
			Attributes: cloneSlice(p.Attributes),
		}
	}

	return out
}

// PartialState is the payload of a continue fetch. Every field is optional and a nil field
// leaves the cached value alone. It has no configuration field: a continue fetch can never
// change the workflow configuration.
type PartialState struct {
	ProjectAttributes *json.RawMessage `json:"project_attributes"`
	ProductAttributes *json.RawMessage `json:"product_attributes"`
	Products          *[]Product       `json:"products"`
	Progress          *Progress        `json:"autodraw_meta"`
	Record            *GeometryRecord  `json:"autodraw_record"`
}

// Merge returns a copy of s with the fields present in p replaced. s is not modified.
func (s ProjectState) Merge(p PartialState) ProjectState {
	out := s.Clone()

	if p.ProjectAttributes != nil {
		out.ProjectAttributes = cloneSlice(*p.ProjectAttributes)
	}

	if p.ProductAttributes != nil {
		out.ProductAttributes = cloneSlice(*p.ProductAttributes)
	}

	if p.Products != nil {
		out.Products = cloneProducts(*p.Products)
	}

	if p.Progress != nil {
		out.Progress = *p.Progress
	}

	if p.Record != nil {
		out.Record = p.Record.Clone()
	}

	return out
}
