package enrich

import (
	"time"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
)

// lastPurchaseDays sentinel for customers with no sales history.
const neverPurchased = 999

// Enricher joins raw records against related collections and computes
// the derived attributes the report pipeline filters and groups on.
// It is built fresh for every run from the current collections and
// never mutates them.
type Enricher struct {
	collections domain.Collections
	customers   map[string]domain.Customer
	suppliers   map[string]domain.Supplier
	products    map[string]domain.Product
	salesByCust map[string][]domain.Sale
	now         time.Time
}

// NewAt builds an enricher over a collections snapshot, pinning the
// reference time used for relative attributes such as
// lastPurchaseDays.
func NewAt(c domain.Collections, now time.Time) *Enricher {
	e := &Enricher{
		collections: c,
		customers:   make(map[string]domain.Customer, len(c.Customers)),
		suppliers:   make(map[string]domain.Supplier, len(c.Suppliers)),
		products:    make(map[string]domain.Product, len(c.Products)),
		salesByCust: make(map[string][]domain.Sale),
		now:         now,
	}
	for _, cu := range c.Customers {
		e.customers[cu.ID] = cu
	}
	for _, s := range c.Suppliers {
		e.suppliers[s.ID] = s
	}
	for _, p := range c.Products {
		e.products[p.ID] = p
	}
	for _, s := range c.Sales {
		if s.CustomerID != "" {
			e.salesByCust[s.CustomerID] = append(e.salesByCust[s.CustomerID], s)
		}
	}
	return e
}

// Source enriches every record of one collection.
func (e *Enricher) Source(src domain.Source) []domain.Row {
	switch src {
	case domain.SourceSales:
		rows := make([]domain.Row, 0, len(e.collections.Sales))
		for _, s := range e.collections.Sales {
			rows = append(rows, e.Sale(s))
		}
		return rows
	case domain.SourcePurchases:
		rows := make([]domain.Row, 0, len(e.collections.Purchases))
		for _, p := range e.collections.Purchases {
			rows = append(rows, e.Purchase(p))
		}
		return rows
	case domain.SourceInventory:
		rows := make([]domain.Row, 0, len(e.collections.Products))
		for _, p := range e.collections.Products {
			rows = append(rows, e.Product(p))
		}
		return rows
	case domain.SourceCustomers:
		rows := make([]domain.Row, 0, len(e.collections.Customers))
		for _, c := range e.collections.Customers {
			rows = append(rows, e.Customer(c))
		}
		return rows
	case domain.SourceExpenses:
		rows := make([]domain.Row, 0, len(e.collections.Expenses))
		for _, x := range e.collections.Expenses {
			rows = append(rows, e.Expense(x))
		}
		return rows
	default:
		return nil
	}
}

// Sale resolves the customer, first payment method, cost of goods and
// net profit for one sale.
func (e *Enricher) Sale(s domain.Sale) domain.Row {
	row := domain.Row{
		"id":          s.ID,
		"customerId":  s.CustomerID,
		"totalAmount": s.TotalAmount,
		"discount":    s.Discount,
		"gstAmount":   s.GSTAmount,
		"itemCount":   len(s.Items),
	}
	decomposeDate(row, s.Date)

	if c, ok := e.customers[s.CustomerID]; ok {
		row["customerName"] = c.Name
		row["customerArea"] = c.Area
	} else {
		row["customerName"] = "Unknown"
		row["customerArea"] = "Unknown"
	}

	if len(s.Payments) > 0 {
		row["paymentMethod"] = s.Payments[0].Method
	} else {
		row["paymentMethod"] = "UNPAID"
	}

	var cogs float64
	for _, item := range s.Items {
		if p, ok := e.products[item.ProductID]; ok {
			cogs += p.PurchasePrice * item.Quantity
		}
	}
	row["cogs"] = cogs
	row["netProfit"] = s.TotalAmount - s.GSTAmount - cogs
	return row
}

// Purchase resolves the supplier and the first pending due date.
func (e *Enricher) Purchase(p domain.Purchase) domain.Row {
	row := domain.Row{
		"id":          p.ID,
		"supplierId":  p.SupplierID,
		"totalAmount": p.TotalAmount,
	}
	decomposeDate(row, p.Date)

	if s, ok := e.suppliers[p.SupplierID]; ok {
		row["supplierName"] = s.Name
	} else {
		row["supplierName"] = "Unknown"
	}

	if len(p.DueDates) > 0 {
		row["dueDate"] = p.DueDates[0].Format("2006-01-02")
	} else {
		row["dueDate"] = "N/A"
	}
	return row
}

// Product derives the stock valuation and margin attributes.
func (e *Enricher) Product(p domain.Product) domain.Row {
	row := domain.Row{
		"id":            p.ID,
		"name":          p.Name,
		"category":      p.Category,
		"quantity":      p.Quantity,
		"purchasePrice": p.PurchasePrice,
		"salePrice":     p.SalePrice,
	}
	decomposeDate(row, p.CreatedAt)

	row["stockValue"] = p.Quantity * p.PurchasePrice
	row["retailValue"] = p.Quantity * p.SalePrice
	margin := p.SalePrice - p.PurchasePrice
	row["margin"] = margin
	if p.PurchasePrice == 0 {
		// zero cost basis: flag rather than divide by zero
		row["marginPercent"] = float64(100)
	} else {
		row["marginPercent"] = margin / p.PurchasePrice * 100
	}
	return row
}

// Customer scans the sales history for spend, settlement and recency.
func (e *Enricher) Customer(c domain.Customer) domain.Row {
	row := domain.Row{
		"id":    c.ID,
		"name":  c.Name,
		"area":  c.Area,
		"phone": c.Phone,
	}
	decomposeDate(row, c.CreatedAt)

	var spent, paid float64
	var last time.Time
	sales := e.salesByCust[c.ID]
	for _, s := range sales {
		spent += s.TotalAmount
		for _, p := range s.Payments {
			paid += p.Amount
		}
		if s.Date.After(last) {
			last = s.Date
		}
	}
	row["totalSpent"] = spent
	row["totalPaid"] = paid
	row["dueAmount"] = spent - paid
	row["transactionCount"] = len(sales)
	if last.IsZero() {
		row["lastPurchaseDays"] = neverPurchased
	} else {
		row["lastPurchaseDays"] = int(e.now.Sub(last).Hours() / 24)
	}
	return row
}

// Expense passes through unchanged beyond date decomposition.
func (e *Enricher) Expense(x domain.Expense) domain.Row {
	row := domain.Row{
		"id":       x.ID,
		"category": x.Category,
		"amount":   x.Amount,
		"note":     x.Note,
	}
	decomposeDate(row, x.Date)
	return row
}

// decomposeDate derives the sortable and groupable calendar attributes
// from a record timestamp. dateVal is epoch milliseconds, the single
// canonical representation used for range filtering.
func decomposeDate(row domain.Row, t time.Time) {
	row["dateVal"] = t.UnixMilli()
	row["year"] = t.Year()
	row["month"] = t.Format("2006-01")
	row["day"] = t.Day()
	row["hour"] = t.Hour()
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		row["isWeekend"] = "Weekend"
	} else {
		row["isWeekend"] = "Weekday"
	}
}
