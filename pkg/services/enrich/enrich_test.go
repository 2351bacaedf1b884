package enrich

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
)

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func testCollections() domain.Collections {
	return domain.Collections{
		Customers: []domain.Customer{
			{ID: "c1", Name: "Asha Traders", Area: "Market Road"},
		},
		Products: []domain.Product{
			{ID: "p1", Name: "Rice 5kg", Category: "Grocery", Quantity: 40, PurchasePrice: 250, SalePrice: 320},
			{ID: "p2", Name: "Oil 1L", Category: "Grocery", Quantity: 12, PurchasePrice: 110, SalePrice: 140},
		},
		Sales: []domain.Sale{
			{
				ID:         "s1",
				CustomerID: "c1",
				Date:       time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC), // Saturday
				Items: []domain.LineItem{
					{ProductID: "p1", Quantity: 2, Price: 320},
					{ProductID: "p2", Quantity: 1, Price: 140},
				},
				Payments:    []domain.Payment{{ID: "pay1", Amount: 500, Method: "UPI"}},
				TotalAmount: 780,
				GSTAmount:   40,
			},
		},
	}
}

func TestEnrich_Sale(t *testing.T) {
	c := testCollections()
	row := NewAt(c, testNow).Sale(c.Sales[0])

	assert.Equal(t, "Asha Traders", row["customerName"])
	assert.Equal(t, "Market Road", row["customerArea"])
	assert.Equal(t, "UPI", row["paymentMethod"])

	// cogs = 2*250 + 1*110
	assert.Equal(t, 610.0, row["cogs"])
	assert.Equal(t, 780.0-40.0-610.0, row["netProfit"])

	assert.Equal(t, "2024-03", row["month"])
	assert.Equal(t, 2024, row["year"])
	assert.Equal(t, 9, row["day"])
	assert.Equal(t, 18, row["hour"])
	assert.Equal(t, "Weekend", row["isWeekend"])
	assert.Equal(t, c.Sales[0].Date.UnixMilli(), row["dateVal"])
}

func TestEnrich_SaleUnknownCustomer(t *testing.T) {
	c := testCollections()
	sale := c.Sales[0]
	sale.CustomerID = "deleted"

	row := NewAt(c, testNow).Sale(sale)

	assert.Equal(t, "Unknown", row["customerName"])
	assert.Equal(t, "Unknown", row["customerArea"])
	// the record is still produced and keeps its numbers
	assert.Equal(t, 610.0, row["cogs"])
}

func TestEnrich_SaleMissingProductContributesZeroCogs(t *testing.T) {
	c := testCollections()
	sale := c.Sales[0]
	sale.Items = []domain.LineItem{{ProductID: "gone", Quantity: 3, Price: 99}}

	row := NewAt(c, testNow).Sale(sale)

	assert.Equal(t, 0.0, row["cogs"])
	assert.Equal(t, sale.TotalAmount-sale.GSTAmount, row["netProfit"])
}

func TestEnrich_SaleNoPayments(t *testing.T) {
	c := testCollections()
	sale := c.Sales[0]
	sale.Payments = nil

	row := NewAt(c, testNow).Sale(sale)
	assert.Equal(t, "UNPAID", row["paymentMethod"])
}

func TestEnrich_Product(t *testing.T) {
	c := testCollections()
	row := NewAt(c, testNow).Product(c.Products[0])

	assert.Equal(t, 40.0*250.0, row["stockValue"])
	assert.Equal(t, 40.0*320.0, row["retailValue"])
	assert.Equal(t, 70.0, row["margin"])
	assert.InDelta(t, 28.0, row["marginPercent"].(float64), 0.001)
}

func TestEnrich_ProductZeroPurchasePrice(t *testing.T) {
	c := testCollections()
	p := c.Products[0]
	p.PurchasePrice = 0

	row := NewAt(c, testNow).Product(p)

	assert.Equal(t, 100.0, row["marginPercent"])
	assert.Equal(t, p.SalePrice, row["margin"])
}

func TestEnrich_Customer(t *testing.T) {
	c := testCollections()
	row := NewAt(c, testNow).Customer(c.Customers[0])

	assert.Equal(t, 780.0, row["totalSpent"])
	assert.Equal(t, 500.0, row["totalPaid"])
	assert.Equal(t, 280.0, row["dueAmount"])
	assert.Equal(t, 1, row["transactionCount"])
	// sale on Mar 9, reference time Mar 15
	assert.Equal(t, 5, row["lastPurchaseDays"])
}

func TestEnrich_CustomerWithoutSales(t *testing.T) {
	c := testCollections()
	row := NewAt(c, testNow).Customer(domain.Customer{ID: "c-new", Name: "New"})

	assert.Equal(t, 0.0, row["totalSpent"])
	assert.Equal(t, 0, row["transactionCount"])
	assert.Equal(t, 999, row["lastPurchaseDays"])
}

func TestEnrich_Purchase(t *testing.T) {
	c := testCollections()
	c.Suppliers = []domain.Supplier{{ID: "sup1", Name: "Mehta Wholesale"}}
	due := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	e := NewAt(c, testNow)

	row := e.Purchase(domain.Purchase{
		ID: "pu1", SupplierID: "sup1", TotalAmount: 5000,
		Date: testNow, DueDates: []time.Time{due},
	})
	assert.Equal(t, "Mehta Wholesale", row["supplierName"])
	assert.Equal(t, "2024-04-01", row["dueDate"])

	row = e.Purchase(domain.Purchase{ID: "pu2", SupplierID: "gone", Date: testNow})
	assert.Equal(t, "Unknown", row["supplierName"])
	assert.Equal(t, "N/A", row["dueDate"])
}

func TestEnrich_SourceDoesNotMutateInput(t *testing.T) {
	c := testCollections()
	before := c.Sales[0]

	rows := NewAt(c, testNow).Source(domain.SourceSales)
	require.Len(t, rows, 1)

	assert.Equal(t, before, c.Sales[0])
}
