package engine

import (
	"math"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
	"github.com/retail-tools/ledger-atlas/pkg/services/catalog"
)

type accumulator struct {
	agg   domain.Aggregation
	value float64
}

type bucket struct {
	key   string
	count int
	accs  map[string]*accumulator
}

// Group buckets rows by the stringified value of groupBy and reduces
// every field carrying an aggregation. Output order is insertion order
// of first-seen key; callers sort downstream if they need to. An empty
// groupBy is a no-op and returns the rows unchanged.
//
// The bucket size is emitted under the field id "count"; the id is
// reserved and no source catalog may declare a field with it.
func Group(reg catalog.Registry, rows []domain.Row, groupBy string, fields []domain.Field) []domain.Row {
	if groupBy == "" {
		return rows
	}

	aggFields := aggregated(fields, groupBy)
	keyGetter := reg.Get(groupBy)

	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	for _, row := range rows {
		key := keyGetter.Text(row)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{key: key, accs: make(map[string]*accumulator, len(aggFields))}
			for _, f := range aggFields {
				b.accs[f.ID] = newAccumulator(f.Aggregation)
			}
			buckets[key] = b
			order = append(order, key)
		}
		b.count++
		for _, f := range aggFields {
			b.accs[f.ID].fold(reg.Get(f.ID).Num(row))
		}
	}

	out := make([]domain.Row, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		row := domain.Row{groupBy: b.key, "count": b.count}
		for id, acc := range b.accs {
			row[id] = acc.finalize(b.count)
		}
		out = append(out, row)
	}
	return out
}

// aggregated selects the fields that survive grouping: everything with
// a declared operator except the group key itself.
func aggregated(fields []domain.Field, groupBy string) []domain.Field {
	out := make([]domain.Field, 0, len(fields))
	for _, f := range fields {
		if f.Aggregation != domain.AggNone && f.ID != groupBy {
			out = append(out, f)
		}
	}
	return out
}

func newAccumulator(agg domain.Aggregation) *accumulator {
	a := &accumulator{agg: agg}
	switch agg {
	case domain.AggMin:
		a.value = math.Inf(1)
	case domain.AggMax:
		a.value = math.Inf(-1)
	}
	return a
}

func (a *accumulator) fold(v float64) {
	switch a.agg {
	case domain.AggSum, domain.AggAvg:
		a.value += v
	case domain.AggMin:
		if v < a.value {
			a.value = v
		}
	case domain.AggMax:
		if v > a.value {
			a.value = v
		}
	case domain.AggCount:
		a.value++
	}
}

func (a *accumulator) finalize(count int) float64 {
	switch a.agg {
	case domain.AggAvg:
		if count == 0 {
			return 0
		}
		return a.value / float64(count)
	case domain.AggMin, domain.AggMax:
		if math.IsInf(a.value, 0) {
			return 0
		}
		return a.value
	default:
		return a.value
	}
}
