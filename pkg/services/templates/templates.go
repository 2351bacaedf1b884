package templates

import (
	"time"

	"github.com/google/uuid"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
	"github.com/retail-tools/ledger-atlas/pkg/services/catalog"
)

// List returns the prebuilt report configs the application ships.
// Template ids are stable so saved links and CLI invocations keep
// working across releases.
func List() []domain.ReportConfig {
	return []domain.ReportConfig{
		{
			ID:          "tpl-sales-by-month",
			Title:       "Monthly Sales",
			Description: "Revenue, GST and profit grouped by calendar month",
			DataSource:  domain.SourceSales,
			Fields: pick(domain.SourceSales,
				"month", "totalAmount", "gstAmount", "netProfit"),
			GroupBy:   "month",
			ChartType: domain.ChartBar,
		},
		{
			ID:          "tpl-profit-by-customer",
			Title:       "Profit by Customer",
			Description: "Net profit and revenue per customer",
			DataSource:  domain.SourceSales,
			Fields: pick(domain.SourceSales,
				"customerName", "totalAmount", "netProfit"),
			GroupBy:   "customerName",
			ChartType: domain.ChartTable,
		},
		{
			ID:          "tpl-payment-mix",
			Title:       "Payment Method Mix",
			Description: "Sales split by how customers pay",
			DataSource:  domain.SourceSales,
			Fields:      pick(domain.SourceSales, "paymentMethod", "totalAmount"),
			GroupBy:     "paymentMethod",
			ChartType:   domain.ChartPie,
		},
		{
			ID:          "tpl-stock-by-category",
			Title:       "Stock Value by Category",
			Description: "Inventory valuation grouped by product category",
			DataSource:  domain.SourceInventory,
			Fields: pick(domain.SourceInventory,
				"category", "quantity", "stockValue", "retailValue"),
			GroupBy:   "category",
			ChartType: domain.ChartTreemap,
		},
		{
			ID:          "tpl-expense-breakdown",
			Title:       "Expense Breakdown",
			Description: "Spending grouped by expense category",
			DataSource:  domain.SourceExpenses,
			Fields:      pick(domain.SourceExpenses, "category", "amount"),
			GroupBy:     "category",
			ChartType:   domain.ChartPie,
		},
		{
			ID:          "tpl-customer-dues",
			Title:       "Customer Dues",
			Description: "Customers with outstanding balances",
			DataSource:  domain.SourceCustomers,
			Fields: pick(domain.SourceCustomers,
				"name", "area", "totalSpent", "totalPaid", "dueAmount"),
			Filters: []domain.Filter{
				{FieldID: "dueAmount", Operator: domain.OpGt, Value: 0},
			},
			ChartType: domain.ChartTable,
		},
	}
}

// Find resolves a template by id.
func Find(id string) (domain.ReportConfig, bool) {
	for _, tpl := range List() {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return domain.ReportConfig{}, false
}

// New mints a builder-created config with a fresh id and timestamp.
func New(title string, src domain.Source, fields []domain.Field, filters []domain.Filter, groupBy string, chart domain.ChartType) domain.ReportConfig {
	return domain.ReportConfig{
		ID:         uuid.NewString(),
		Title:      title,
		DataSource: src,
		Fields:     fields,
		Filters:    filters,
		GroupBy:    groupBy,
		ChartType:  chart,
		CreatedAt:  time.Now(),
	}
}

func pick(src domain.Source, ids ...string) []domain.Field {
	fields := make([]domain.Field, 0, len(ids))
	for _, id := range ids {
		if f, ok := catalog.Lookup(src, id); ok {
			fields = append(fields, f)
		}
	}
	return fields
}
