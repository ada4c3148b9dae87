package layout

import (
	"fmt"

	"github.com/askiada/go-autodraw/pkg/autodraw/model"
)

// WarningKind names why an item was reported.
type WarningKind string

const (
	WarningUnsupportedType   WarningKind = "unsupported_type"
	WarningMissingAttributes WarningKind = "missing_attributes"
	WarningDuplicateID       WarningKind = "duplicate_id"
)

// Warning is a non fatal diagnostic about one geometry item.
type Warning struct {
	Kind WarningKind
	// Index is the position of the item in the record.
	Index  int
	ItemID string
	Type   string
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningUnsupportedType:
		return fmt.Sprintf("item %q at %d skipped: unsupported type %q", w.ItemID, w.Index, w.Type)
	case WarningMissingAttributes:
		return fmt.Sprintf("item %q at %d skipped: missing or malformed line attributes", w.ItemID, w.Index)
	case WarningDuplicateID:
		return fmt.Sprintf("item %q at %d reuses an id already in the record", w.ItemID, w.Index)
	default:
		return fmt.Sprintf("item %q at %d: %s", w.ItemID, w.Index, w.Kind)
	}
}

// inspect reports every offending item of the record, in record order.
func inspect(items []model.GeometryItem) []Warning {
	var warnings []Warning

	seen := make(map[string]struct{}, len(items))

	for i, item := range items {
		switch {
		case item.Type != model.TypeGeoLine:
			warnings = append(warnings, Warning{Kind: WarningUnsupportedType, Index: i, ItemID: item.ID, Type: item.Type})
		case item.Shape == nil:
			warnings = append(warnings, Warning{Kind: WarningMissingAttributes, Index: i, ItemID: item.ID, Type: item.Type})
		}

		if item.ID == "" {
			continue
		}

		if _, ok := seen[item.ID]; ok {
			warnings = append(warnings, Warning{Kind: WarningDuplicateID, Index: i, ItemID: item.ID, Type: item.Type})
			continue
		}

		seen[item.ID] = struct{}{}
	}

	return warnings
}
