package metrics

import (
	"time"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
)

// Summary computes the headline dashboard numbers from the live
// collections.
func Summary(c domain.Collections) domain.KPISummary {
	return SummaryAt(c, time.Now())
}

// SummaryAt computes the summary relative to a fixed reference time.
func SummaryAt(c domain.Collections, now time.Time) domain.KPISummary {
	today := civilDate(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	costByID := make(map[string]float64, len(c.Products))
	var stockValue float64
	for _, p := range c.Products {
		costByID[p.ID] = p.PurchasePrice
		stockValue += p.Quantity * p.PurchasePrice
	}

	kpi := domain.KPISummary{
		StockValue:    stockValue,
		CustomerCount: len(c.Customers),
	}

	for _, s := range c.Sales {
		var paid float64
		for _, p := range s.Payments {
			paid += p.Amount
		}
		kpi.OutstandingDue += s.TotalAmount - paid

		day := civilDate(s.Date)
		if day.Equal(today) {
			kpi.TodayRevenue += s.TotalAmount
		}
		if !day.Before(monthStart) && !day.After(today) {
			kpi.MonthRevenue += s.TotalAmount
			var cogs float64
			for _, item := range s.Items {
				cogs += costByID[item.ProductID] * item.Quantity
			}
			kpi.MonthProfit += s.TotalAmount - s.GSTAmount - cogs
		}
	}

	for _, x := range c.Expenses {
		day := civilDate(x.Date)
		if !day.Before(monthStart) && !day.After(today) {
			kpi.MonthExpenses += x.Amount
		}
	}

	return kpi
}
