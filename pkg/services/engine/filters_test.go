package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
	"github.com/retail-tools/ledger-atlas/pkg/services/catalog"
)

func salesReg() catalog.Registry {
	return catalog.Accessors(domain.SourceSales)
}

func TestMatch_EmptyFilterListAlwaysPasses(t *testing.T) {
	row := domain.Row{"totalAmount": 100.0}
	assert.True(t, Match(salesReg(), row, nil))
}

func TestMatch_Equals(t *testing.T) {
	reg := salesReg()
	row := domain.Row{"totalAmount": 100.0, "customerName": "Asha Traders"}

	assert.True(t, Match(reg, row, []domain.Filter{
		{FieldID: "totalAmount", Operator: domain.OpEquals, Value: 100},
	}))
	// loose equality: numeric string matches number
	assert.True(t, Match(reg, row, []domain.Filter{
		{FieldID: "totalAmount", Operator: domain.OpEquals, Value: "100"},
	}))
	assert.True(t, Match(reg, row, []domain.Filter{
		{FieldID: "customerName", Operator: domain.OpEquals, Value: "Asha Traders"},
	}))
	assert.False(t, Match(reg, row, []domain.Filter{
		{FieldID: "customerName", Operator: domain.OpEquals, Value: "asha traders"},
	}))
}

func TestMatch_ContainsIsCaseInsensitive(t *testing.T) {
	reg := salesReg()
	row := domain.Row{"customerName": "Asha Traders"}

	assert.True(t, Match(reg, row, []domain.Filter{
		{FieldID: "customerName", Operator: domain.OpContains, Value: "TRADER"},
	}))
	assert.False(t, Match(reg, row, []domain.Filter{
		{FieldID: "customerName", Operator: domain.OpContains, Value: "wholesale"},
	}))
}

func TestMatch_GtLt(t *testing.T) {
	reg := salesReg()
	row := domain.Row{"totalAmount": 100.0}

	assert.True(t, Match(reg, row, []domain.Filter{
		{FieldID: "totalAmount", Operator: domain.OpGt, Value: 99},
	}))
	assert.False(t, Match(reg, row, []domain.Filter{
		{FieldID: "totalAmount", Operator: domain.OpGt, Value: 100},
	}))
	assert.True(t, Match(reg, row, []domain.Filter{
		{FieldID: "totalAmount", Operator: domain.OpLt, Value: "101"},
	}))
}

func TestMatch_BetweenIsInclusive(t *testing.T) {
	reg := salesReg()

	t0, t1 := int64(1_700_000_000_000), int64(1_700_086_400_000)
	between := []domain.Filter{
		{FieldID: "dateVal", Operator: domain.OpBetween, Value: []any{float64(t0), float64(t1)}},
	}

	assert.True(t, Match(reg, domain.Row{"dateVal": t0}, between))
	assert.True(t, Match(reg, domain.Row{"dateVal": t1}, between))
	// one millisecond outside either bound is excluded
	assert.False(t, Match(reg, domain.Row{"dateVal": t0 - 1}, between))
	assert.False(t, Match(reg, domain.Row{"dateVal": t1 + 1}, between))
}

func TestMatch_In(t *testing.T) {
	reg := salesReg()
	row := domain.Row{"paymentMethod": "UPI"}

	assert.True(t, Match(reg, row, []domain.Filter{
		{FieldID: "paymentMethod", Operator: domain.OpIn, Value: []any{"CASH", "UPI"}},
	}))
	assert.False(t, Match(reg, row, []domain.Filter{
		{FieldID: "paymentMethod", Operator: domain.OpIn, Value: []string{"CASH", "CARD"}},
	}))
}

func TestMatch_MalformedFiltersFailClosed(t *testing.T) {
	reg := salesReg()
	row := domain.Row{"totalAmount": 100.0}

	cases := []domain.Filter{
		{FieldID: "totalAmount", Operator: "startsWith", Value: "1"},
		{FieldID: "totalAmount", Operator: domain.OpBetween, Value: 50},
		{FieldID: "totalAmount", Operator: domain.OpBetween, Value: []any{1.0, 2.0, 3.0}},
		{FieldID: "totalAmount", Operator: domain.OpIn, Value: "CASH"},
	}
	for _, f := range cases {
		assert.False(t, Match(reg, row, []domain.Filter{f}), "operator %s", f.Operator)
	}
}

func TestApply_FiltersCompose_AndIsIdempotent(t *testing.T) {
	reg := salesReg()
	rows := []domain.Row{
		{"totalAmount": 50.0, "paymentMethod": "CASH"},
		{"totalAmount": 150.0, "paymentMethod": "CASH"},
		{"totalAmount": 150.0, "paymentMethod": "CREDIT"},
	}
	filters := []domain.Filter{
		{FieldID: "totalAmount", Operator: domain.OpGt, Value: 100},
		{FieldID: "paymentMethod", Operator: domain.OpEquals, Value: "CASH"},
	}

	once := Apply(reg, rows, filters)
	assert.Len(t, once, 1)
	assert.Equal(t, 150.0, once[0]["totalAmount"])

	twice := Apply(reg, once, filters)
	assert.Equal(t, once, twice)
}
