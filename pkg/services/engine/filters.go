package engine

import (
	"strings"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
	"github.com/retail-tools/ledger-atlas/pkg/services/catalog"
)

// Match reports whether one enriched row passes every filter. Filters
// AND-compose; an empty list always passes. A malformed filter fails
// closed: the row is excluded rather than the report aborting.
func Match(reg catalog.Registry, row domain.Row, filters []domain.Filter) bool {
	for _, f := range filters {
		if !matchOne(reg, row, f) {
			return false
		}
	}
	return true
}

// Apply filters a row set in one pass, preserving order.
func Apply(reg catalog.Registry, rows []domain.Row, filters []domain.Filter) []domain.Row {
	if len(filters) == 0 {
		return rows
	}
	out := make([]domain.Row, 0, len(rows))
	for _, row := range rows {
		if Match(reg, row, filters) {
			out = append(out, row)
		}
	}
	return out
}

func matchOne(reg catalog.Registry, row domain.Row, f domain.Filter) bool {
	g := reg.Get(f.FieldID)

	switch f.Operator {
	case domain.OpEquals:
		return looseEqual(g.Raw(row), f.Value)
	case domain.OpContains:
		return strings.Contains(
			strings.ToLower(g.Text(row)),
			strings.ToLower(catalog.Text(f.Value)),
		)
	case domain.OpGt:
		return g.Num(row) > catalog.Number(f.Value)
	case domain.OpLt:
		return g.Num(row) < catalog.Number(f.Value)
	case domain.OpBetween:
		lo, hi, ok := asRange(f.Value)
		if !ok {
			return false
		}
		v := g.Num(row)
		return v >= lo && v <= hi
	case domain.OpIn:
		members, ok := asList(f.Value)
		if !ok {
			return false
		}
		v := g.Raw(row)
		for _, m := range members {
			if looseEqual(v, m) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// looseEqual compares two values the way the report builder expects:
// numerically when both sides coerce to numbers, as exact strings
// otherwise.
func looseEqual(a, b any) bool {
	if catalog.Numeric(a) && catalog.Numeric(b) {
		return catalog.Number(a) == catalog.Number(b)
	}
	return catalog.Text(a) == catalog.Text(b)
}

// asRange extracts the inclusive [min, max] pair of a between filter.
func asRange(v any) (float64, float64, bool) {
	switch pair := v.(type) {
	case []any:
		if len(pair) != 2 {
			return 0, 0, false
		}
		return catalog.Number(pair[0]), catalog.Number(pair[1]), true
	case []float64:
		if len(pair) != 2 {
			return 0, 0, false
		}
		return pair[0], pair[1], true
	case [2]float64:
		return pair[0], pair[1], true
	default:
		return 0, 0, false
	}
}

// asList normalizes the membership set of an in filter.
func asList(v any) ([]any, bool) {
	switch list := v.(type) {
	case []any:
		return list, true
	case []string:
		out := make([]any, len(list))
		for i, s := range list {
			out[i] = s
		}
		return out, true
	case []float64:
		out := make([]any, len(list))
		for i, f := range list {
			out[i] = f
		}
		return out, true
	case []int:
		out := make([]any, len(list))
		for i, n := range list {
			out[i] = n
		}
		return out, true
	default:
		return nil, false
	}
}
