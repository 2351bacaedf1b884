package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
)

func TestFields_UniqueIDsPerSource(t *testing.T) {
	for _, src := range Sources() {
		fields := Fields(src)
		require.NotEmpty(t, fields, "source %s", src)

		seen := make(map[string]bool)
		for _, f := range fields {
			assert.False(t, seen[f.ID], "duplicate field %s in %s", f.ID, src)
			seen[f.ID] = true
		}
	}
}

func TestFields_CountIDReserved(t *testing.T) {
	// "count" is the bucket-size key emitted by grouping; a declared
	// field with that id would be overwritten in grouped output.
	for _, src := range Sources() {
		for _, f := range Fields(src) {
			assert.NotEqual(t, "count", f.ID, "source %s declares reserved field id", src)
		}
	}
}

func TestFields_UnknownSource(t *testing.T) {
	assert.Nil(t, Fields("ledgers"))
}

func TestFields_ReturnsACopy(t *testing.T) {
	fields := Fields(domain.SourceSales)
	fields[0].Label = "tampered"

	assert.NotEqual(t, "tampered", Fields(domain.SourceSales)[0].Label)
}

func TestLookup(t *testing.T) {
	f, ok := Lookup(domain.SourceSales, "netProfit")
	require.True(t, ok)
	assert.Equal(t, domain.FieldCurrency, f.Type)
	assert.Equal(t, domain.AggSum, f.Aggregation)

	_, ok = Lookup(domain.SourceSales, "stockValue")
	assert.False(t, ok)
}

func TestAccessors_TypedGetters(t *testing.T) {
	reg := Accessors(domain.SourceSales)
	row := domain.Row{"totalAmount": 780.0, "customerName": "Asha Traders"}

	g := reg.Get("totalAmount")
	assert.Equal(t, 780.0, g.Num(row))
	assert.Equal(t, "780", g.Text(row))

	assert.Equal(t, "Asha Traders", reg.Get("customerName").Text(row))
	// ids outside the catalog degrade to a direct lookup
	assert.Equal(t, 0.0, reg.Get("adhoc").Num(row))
}

func TestNumber_Coercions(t *testing.T) {
	assert.Equal(t, 0.0, Number(nil))
	assert.Equal(t, 12.5, Number(12.5))
	assert.Equal(t, 7.0, Number(7))
	assert.Equal(t, 42.0, Number(int64(42)))
	assert.Equal(t, 99.5, Number(" 99.5 "))
	// non-numeric input coerces to zero instead of failing
	assert.Equal(t, 0.0, Number("n/a"))
	assert.Equal(t, 0.0, Number(true))
}

func TestText_Coercions(t *testing.T) {
	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "Weekend", Text("Weekend"))
	assert.Equal(t, "2024", Text(2024))
	assert.Equal(t, "1.5", Text(1.5))
	assert.Equal(t, "100", Text(100.0))
}

func TestNumeric(t *testing.T) {
	assert.True(t, Numeric(5))
	assert.True(t, Numeric("5"))
	assert.False(t, Numeric("five"))
	assert.False(t, Numeric(nil))
}
