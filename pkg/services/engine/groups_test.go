package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
	"github.com/retail-tools/ledger-atlas/pkg/services/catalog"
)

func TestGroup_NoGroupByIsNoOp(t *testing.T) {
	rows := []domain.Row{{"totalAmount": 1.0}}
	out := Group(salesReg(), rows, "", catalog.Fields(domain.SourceSales))
	assert.Equal(t, rows, out)
}

func TestGroup_ByMonthWithSum(t *testing.T) {
	reg := salesReg()
	rows := []domain.Row{
		{"month": "2024-01", "totalAmount": 100.0},
		{"month": "2024-01", "totalAmount": 100.0},
		{"month": "2024-02", "totalAmount": 100.0},
	}
	fields := []domain.Field{
		{ID: "month", Label: "Month", Type: domain.FieldString},
		{ID: "totalAmount", Label: "Total", Type: domain.FieldCurrency, Aggregation: domain.AggSum},
	}

	out := Group(reg, rows, "month", fields)
	require.Len(t, out, 2)

	assert.Equal(t, domain.Row{"month": "2024-01", "count": 2, "totalAmount": 200.0}, out[0])
	assert.Equal(t, domain.Row{"month": "2024-02", "count": 1, "totalAmount": 100.0}, out[1])
}

func TestGroup_AvgEqualsSumOverCount(t *testing.T) {
	reg := salesReg()
	rows := []domain.Row{
		{"paymentMethod": "CASH", "totalAmount": 100.0},
		{"paymentMethod": "CASH", "totalAmount": 250.0},
		{"paymentMethod": "UPI", "totalAmount": 40.0},
	}
	fields := []domain.Field{
		{ID: "totalAmount", Aggregation: domain.AggAvg},
	}

	out := Group(reg, rows, "paymentMethod", fields)
	require.Len(t, out, 2)

	assert.Equal(t, 175.0, out[0]["totalAmount"]) // (100+250)/2
	assert.Equal(t, 40.0, out[1]["totalAmount"])

	// bucket counts add up to the record count
	total := 0
	for _, b := range out {
		total += b["count"].(int)
	}
	assert.Equal(t, len(rows), total)
}

func TestGroup_MinMaxCount(t *testing.T) {
	reg := salesReg()
	rows := []domain.Row{
		{"paymentMethod": "CASH", "totalAmount": 100.0},
		{"paymentMethod": "CASH", "totalAmount": 250.0},
	}
	fields := []domain.Field{
		{ID: "totalAmount", Aggregation: domain.AggMin},
		{ID: "gstAmount", Aggregation: domain.AggMax},
		{ID: "itemCount", Aggregation: domain.AggCount},
	}

	out := Group(reg, rows, "paymentMethod", fields)
	require.Len(t, out, 1)

	assert.Equal(t, 100.0, out[0]["totalAmount"])
	// gstAmount missing from every row coerces to zero
	assert.Equal(t, 0.0, out[0]["gstAmount"])
	assert.Equal(t, 2.0, out[0]["itemCount"])
}

func TestGroup_InsertionOrderIsStable(t *testing.T) {
	reg := salesReg()
	rows := []domain.Row{
		{"paymentMethod": "UPI"},
		{"paymentMethod": "CASH"},
		{"paymentMethod": "UPI"},
		{"paymentMethod": "CARD"},
	}

	out := Group(reg, rows, "paymentMethod", nil)
	require.Len(t, out, 3)
	assert.Equal(t, "UPI", out[0]["paymentMethod"])
	assert.Equal(t, "CASH", out[1]["paymentMethod"])
	assert.Equal(t, "CARD", out[2]["paymentMethod"])
}
