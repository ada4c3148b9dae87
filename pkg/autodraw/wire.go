package autodraw

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/askiada/go-autodraw/pkg/autodraw/model"
)

// wireProject is the payload of a start fetch.
type wireProject struct {
	ProjectAttributes json.RawMessage       `json:"project_attributes"`
	ProductAttributes json.RawMessage       `json:"product_attributes"`
	Products          []model.Product       `json:"products"`
	Config            *model.WorkflowConfig `json:"autodraw_config"`
	Meta              *model.Progress       `json:"autodraw_meta"`
	Record            *model.GeometryRecord `json:"autodraw_record"`
}

// continueEnvelope wraps the payload of a continue fetch.
type continueEnvelope struct {
	Data json.RawMessage `json:"data"`
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func decodeObject(raw []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	if fields == nil {
		return nil, errors.New("payload is null")
	}

	return fields, nil
}

// decodeStart builds a full state from a start payload. The payload may be wrapped in a
// {"data": ...} envelope.
func decodeStart(projectID int, raw []byte) (model.ProjectState, error) {
	fields, err := decodeObject(raw)
	if err != nil {
		return model.ProjectState{}, malformed("start payload is not a JSON object: %v", err)
	}

	if data, ok := fields["data"]; ok && fields["autodraw_config"] == nil {
		if isNull(data) {
			return model.ProjectState{}, malformed("start payload has an empty data field")
		}

		raw = data
	}

	var wire wireProject
	if err := json.Unmarshal(raw, &wire); err != nil {
		return model.ProjectState{}, malformed("unable to decode start payload: %v", err)
	}

	switch {
	case wire.Config == nil:
		return model.ProjectState{}, malformed("start payload lacks autodraw_config")
	case wire.Meta == nil:
		return model.ProjectState{}, malformed("start payload lacks autodraw_meta")
	case wire.Record == nil:
		return model.ProjectState{}, malformed("start payload lacks autodraw_record")
	}

	return model.ProjectState{
		ProjectID:         projectID,
		ProjectAttributes: nullToNil(wire.ProjectAttributes),
		ProductAttributes: nullToNil(wire.ProductAttributes),
		Products:          wire.Products,
		Config:            *wire.Config,
		Progress:          *wire.Meta,
		Record:            *wire.Record,
	}, nil
}

// decodeContinue unwraps the envelope of a continue payload into a partial update.
func decodeContinue(raw []byte) (model.PartialState, error) {
	var env continueEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return model.PartialState{}, malformed("continue payload is not a JSON object: %v", err)
	}

	if isNull(env.Data) {
		return model.PartialState{}, malformed("continue payload lacks data")
	}

	if _, err := decodeObject(env.Data); err != nil {
		return model.PartialState{}, malformed("continue data is not a JSON object: %v", err)
	}

	var partial model.PartialState
	if err := json.Unmarshal(env.Data, &partial); err != nil {
		return model.PartialState{}, malformed("unable to decode continue data: %v", err)
	}

	return partial, nil
}

func nullToNil(raw json.RawMessage) json.RawMessage {
	if isNull(raw) {
		return nil
	}

	return raw
}
