package metrics

import (
	"time"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
)

// LifetimeValue estimates the average customer lifetime value from the
// sales history: average order value × purchase frequency × average
// active lifespan in years. Customers with a single order contribute
// no lifespan signal; when nobody has repeat orders the lifespan
// defaults to one year.
func LifetimeValue(sales []domain.Sale) domain.CustomerValue {
	if len(sales) == 0 {
		return domain.CustomerValue{AvgLifespanYears: 1}
	}

	var revenue float64
	type span struct {
		first, last time.Time
		orders      int
	}
	spans := make(map[string]*span)

	for _, s := range sales {
		revenue += s.TotalAmount
		sp, ok := spans[s.CustomerID]
		if !ok {
			sp = &span{first: s.Date, last: s.Date}
			spans[s.CustomerID] = sp
		}
		sp.orders++
		if s.Date.Before(sp.first) {
			sp.first = s.Date
		}
		if s.Date.After(sp.last) {
			sp.last = s.Date
		}
	}

	orders := len(sales)
	customers := len(spans)

	avgOrder := revenue / float64(orders)
	frequency := float64(orders) / float64(customers)

	var lifespanSum float64
	var repeaters int
	for _, sp := range spans {
		if sp.orders >= 2 {
			lifespanSum += sp.last.Sub(sp.first).Hours() / 24 / 365
			repeaters++
		}
	}
	lifespan := 1.0
	if repeaters > 0 {
		lifespan = lifespanSum / float64(repeaters)
	}

	return domain.CustomerValue{
		AvgOrderValue:     avgOrder,
		PurchaseFrequency: frequency,
		AvgLifespanYears:  lifespan,
		Value:             avgOrder * frequency * lifespan,
		Orders:            orders,
		Customers:         customers,
	}
}
