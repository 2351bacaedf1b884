package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
	"github.com/retail-tools/ledger-atlas/pkg/services/catalog"
)

func saleOn(id string, day time.Time, amount float64) domain.Sale {
	return domain.Sale{ID: id, Date: day, TotalAmount: amount}
}

func TestRun_GroupByMonth(t *testing.T) {
	c := domain.Collections{
		Sales: []domain.Sale{
			saleOn("s1", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 100),
			saleOn("s2", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), 100),
			saleOn("s3", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 100),
		},
	}
	cfg := domain.ReportConfig{
		ID:         "r1",
		Title:      "Monthly Sales",
		DataSource: domain.SourceSales,
		Fields: []domain.Field{
			{ID: "month", Label: "Month", Type: domain.FieldString},
			{ID: "totalAmount", Label: "Total", Type: domain.FieldCurrency, Aggregation: domain.AggSum},
		},
		GroupBy: "month",
	}

	rs, err := RunAt(c, cfg, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.True(t, rs.Grouped)
	require.Len(t, rs.Rows, 2)

	assert.Equal(t, "2024-01", rs.Rows[0]["month"])
	assert.Equal(t, 200.0, rs.Rows[0]["totalAmount"])
	assert.Equal(t, 2, rs.Rows[0]["count"])

	assert.Equal(t, "2024-02", rs.Rows[1]["month"])
	assert.Equal(t, 100.0, rs.Rows[1]["totalAmount"])
	assert.Equal(t, 1, rs.Rows[1]["count"])

	// grouped catalog: key, count, aggregated fields
	require.Len(t, rs.Fields, 3)
	assert.Equal(t, "month", rs.Fields[0].ID)
	assert.Equal(t, "count", rs.Fields[1].ID)
	assert.Equal(t, "totalAmount", rs.Fields[2].ID)
}

func TestRun_FilterThenPassThrough(t *testing.T) {
	c := domain.Collections{
		Sales: []domain.Sale{
			saleOn("s1", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 100),
			saleOn("s2", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), 900),
		},
	}
	cfg := domain.ReportConfig{
		DataSource: domain.SourceSales,
		Filters: []domain.Filter{
			{FieldID: "totalAmount", Operator: domain.OpGt, Value: 500},
		},
	}

	rs, err := Run(c, cfg)
	require.NoError(t, err)
	assert.False(t, rs.Grouped)
	require.Len(t, rs.Rows, 1)
	assert.Equal(t, "s2", rs.Rows[0]["id"])

	// no fields configured: full declared catalog is used
	assert.Equal(t, catalog.Fields(domain.SourceSales), rs.Fields)
}

func TestRun_UnknownSource(t *testing.T) {
	_, err := Run(domain.Collections{}, domain.ReportConfig{DataSource: "ledgers"})
	assert.Error(t, err)
}

func TestRun_EmptyResultIsNotAnError(t *testing.T) {
	cfg := domain.ReportConfig{
		DataSource: domain.SourceSales,
		GroupBy:    "month",
	}

	rs, err := Run(domain.Collections{}, cfg)
	require.NoError(t, err)
	assert.Empty(t, rs.Rows)
}
