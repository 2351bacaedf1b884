package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
)

// Getter is a typed accessor for one field of an enriched row,
// resolved ahead of filtering and aggregation so the hot loops never
// do generic property lookups.
type Getter struct {
	Field domain.Field
	Raw   func(domain.Row) any
	Num   func(domain.Row) float64
	Text  func(domain.Row) string
}

// Registry maps field id to its resolved getter for one data source.
type Registry map[string]Getter

// Accessors builds the getter registry for a source. Unknown sources
// yield an empty registry; callers fall back to zero values.
func Accessors(src domain.Source) Registry {
	fields := bySource[src]
	reg := make(Registry, len(fields))
	for _, f := range fields {
		id := f.ID
		reg[id] = Getter{
			Field: f,
			Raw:   func(r domain.Row) any { return r[id] },
			Num:   func(r domain.Row) float64 { return Number(r[id]) },
			Text:  func(r domain.Row) string { return Text(r[id]) },
		}
	}
	return reg
}

// Get resolves a getter, falling back to a direct row lookup for ids
// outside the declared catalog so ad hoc filters degrade instead of
// failing.
func (reg Registry) Get(id string) Getter {
	if g, ok := reg[id]; ok {
		return g
	}
	return Getter{
		Field: domain.Field{ID: id, Type: domain.FieldString},
		Raw:   func(r domain.Row) any { return r[id] },
		Num:   func(r domain.Row) float64 { return Number(r[id]) },
		Text:  func(r domain.Row) string { return Text(r[id]) },
	}
}

// Number coerces an arbitrary row value to float64. Nil, booleans and
// non-numeric strings coerce to zero.
func Number(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Text coerces an arbitrary row value to its string form. Nil becomes
// the empty string; floats drop a trailing ".0" so numeric keys group
// cleanly.
func Text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Numeric reports whether a value coerces to a number without loss,
// used by the loose-equality comparison in the filter evaluator.
func Numeric(v any) bool {
	switch n := v.(type) {
	case float64, float32, int, int32, int64, uint, uint64:
		return true
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return err == nil
	default:
		return false
	}
}
