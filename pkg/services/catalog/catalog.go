package catalog

import (
	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
)

// dateFields are derived by date decomposition on every source that
// carries a timestamp. dateVal is canonical epoch milliseconds; it is
// only formatted into a calendar date at the export boundary.
var dateFields = []domain.Field{
	{ID: "dateVal", Label: "Date", Type: domain.FieldDate},
	{ID: "year", Label: "Year", Type: domain.FieldNumber},
	{ID: "month", Label: "Month", Type: domain.FieldString},
	{ID: "day", Label: "Day", Type: domain.FieldNumber},
	{ID: "hour", Label: "Hour", Type: domain.FieldNumber},
	{ID: "isWeekend", Label: "Weekend/Weekday", Type: domain.FieldString},
}

var bySource = map[domain.Source][]domain.Field{
	domain.SourceSales: append([]domain.Field{
		{ID: "id", Label: "Invoice", Type: domain.FieldString},
		{ID: "customerName", Label: "Customer", Type: domain.FieldString},
		{ID: "customerArea", Label: "Area", Type: domain.FieldString},
		{ID: "paymentMethod", Label: "Payment Method", Type: domain.FieldString},
		{ID: "totalAmount", Label: "Total", Type: domain.FieldCurrency, Aggregation: domain.AggSum},
		{ID: "discount", Label: "Discount", Type: domain.FieldCurrency, Aggregation: domain.AggSum},
		{ID: "gstAmount", Label: "GST", Type: domain.FieldCurrency, Aggregation: domain.AggSum},
		{ID: "cogs", Label: "COGS", Type: domain.FieldCurrency, Aggregation: domain.AggSum},
		{ID: "netProfit", Label: "Net Profit", Type: domain.FieldCurrency, Aggregation: domain.AggSum},
		{ID: "itemCount", Label: "Items", Type: domain.FieldNumber, Aggregation: domain.AggSum},
	}, dateFields...),
	domain.SourcePurchases: append([]domain.Field{
		{ID: "id", Label: "Purchase", Type: domain.FieldString},
		{ID: "supplierName", Label: "Supplier", Type: domain.FieldString},
		{ID: "totalAmount", Label: "Total", Type: domain.FieldCurrency, Aggregation: domain.AggSum},
		{ID: "dueDate", Label: "Due Date", Type: domain.FieldString},
	}, dateFields...),
	domain.SourceInventory: append([]domain.Field{
		{ID: "name", Label: "Product", Type: domain.FieldString},
		{ID: "category", Label: "Category", Type: domain.FieldString},
		{ID: "quantity", Label: "Stock Qty", Type: domain.FieldNumber, Aggregation: domain.AggSum},
		{ID: "purchasePrice", Label: "Purchase Price", Type: domain.FieldCurrency, Aggregation: domain.AggAvg},
		{ID: "salePrice", Label: "Sale Price", Type: domain.FieldCurrency, Aggregation: domain.AggAvg},
		{ID: "stockValue", Label: "Stock Value", Type: domain.FieldCurrency, Aggregation: domain.AggSum},
		{ID: "retailValue", Label: "Retail Value", Type: domain.FieldCurrency, Aggregation: domain.AggSum},
		{ID: "margin", Label: "Margin", Type: domain.FieldCurrency, Aggregation: domain.AggAvg},
		{ID: "marginPercent", Label: "Margin %", Type: domain.FieldNumber, Aggregation: domain.AggAvg},
	}, dateFields...),
	domain.SourceCustomers: append([]domain.Field{
		{ID: "name", Label: "Customer", Type: domain.FieldString},
		{ID: "area", Label: "Area", Type: domain.FieldString},
		{ID: "totalSpent", Label: "Total Spent", Type: domain.FieldCurrency, Aggregation: domain.AggSum},
		{ID: "totalPaid", Label: "Total Paid", Type: domain.FieldCurrency, Aggregation: domain.AggSum},
		{ID: "dueAmount", Label: "Due", Type: domain.FieldCurrency, Aggregation: domain.AggSum},
		{ID: "transactionCount", Label: "Transactions", Type: domain.FieldNumber, Aggregation: domain.AggSum},
		{ID: "lastPurchaseDays", Label: "Days Since Purchase", Type: domain.FieldNumber, Aggregation: domain.AggAvg},
	}, dateFields...),
	domain.SourceExpenses: append([]domain.Field{
		{ID: "category", Label: "Category", Type: domain.FieldString},
		{ID: "note", Label: "Note", Type: domain.FieldString},
		{ID: "amount", Label: "Amount", Type: domain.FieldCurrency, Aggregation: domain.AggSum},
	}, dateFields...),
}

// Fields returns the declared field catalog for a source. The returned
// slice is a copy; catalogs are immutable.
func Fields(src domain.Source) []domain.Field {
	declared, ok := bySource[src]
	if !ok {
		return nil
	}
	out := make([]domain.Field, len(declared))
	copy(out, declared)
	return out
}

// Lookup resolves a single field by id within a source's catalog.
func Lookup(src domain.Source, id string) (domain.Field, bool) {
	for _, f := range bySource[src] {
		if f.ID == id {
			return f, true
		}
	}
	return domain.Field{}, false
}

// Sources lists every source that has a catalog, in presentation order.
func Sources() []domain.Source {
	return []domain.Source{
		domain.SourceSales,
		domain.SourcePurchases,
		domain.SourceInventory,
		domain.SourceCustomers,
		domain.SourceExpenses,
	}
}
