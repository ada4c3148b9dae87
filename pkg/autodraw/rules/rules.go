// Package rules evaluates the show rules that select the geometry items of a step.
package rules

import "github.com/askiada/go-autodraw/pkg/autodraw/model"

// Matches reports whether any rule selects item. An empty rule list selects nothing and
// rules with an unknown query never match.
func Matches(item model.GeometryItem, rules []model.ShowRule) bool {
	for _, rule := range rules {
		if matchRule(item, rule) {
			return true
		}
	}

	return false
}

func matchRule(item model.GeometryItem, rule model.ShowRule) bool {
	switch rule.Query {
	case model.QueryADLayer:
		return item.ADLayer == rule.Value
	default:
		return false
	}
}

// Select returns the items matched by rules, in record order.
func Select(items []model.GeometryItem, rules []model.ShowRule) []model.GeometryItem {
	var out []model.GeometryItem

	for _, item := range items {
		if Matches(item, rules) {
			out = append(out, item)
		}
	}

	return out
}
