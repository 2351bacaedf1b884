package templates

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
)

func TestList_StableUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, tpl := range List() {
		assert.NotEmpty(t, tpl.ID)
		assert.False(t, seen[tpl.ID], "duplicate template id %s", tpl.ID)
		seen[tpl.ID] = true
		assert.NotEmpty(t, tpl.Fields, "template %s has no fields", tpl.ID)
	}
}

func TestFind(t *testing.T) {
	tpl, ok := Find("tpl-sales-by-month")
	require.True(t, ok)
	assert.Equal(t, domain.SourceSales, tpl.DataSource)
	assert.Equal(t, "month", tpl.GroupBy)

	_, ok = Find("tpl-nonexistent")
	assert.False(t, ok)
}

func TestNew_MintsIdentity(t *testing.T) {
	fields := []domain.Field{{ID: "totalAmount", Type: domain.FieldCurrency, Aggregation: domain.AggSum}}
	cfg := New("Ad Hoc Revenue", domain.SourceSales, fields, nil, "month", domain.ChartBar)

	_, err := uuid.Parse(cfg.ID)
	require.NoError(t, err, "builder ids are uuids")
	assert.False(t, cfg.CreatedAt.IsZero())
	assert.Equal(t, "Ad Hoc Revenue", cfg.Title)
	assert.Equal(t, domain.SourceSales, cfg.DataSource)
	assert.Equal(t, fields, cfg.Fields)

	other := New("Ad Hoc Revenue", domain.SourceSales, fields, nil, "month", domain.ChartBar)
	assert.NotEqual(t, cfg.ID, other.ID)
}
