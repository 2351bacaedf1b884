package domain

import "time"

// LineItem is one product line on a sale or purchase.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
}

// Payment is a single settlement against a sale or purchase.
type Payment struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	Method string    `json:"method"` // CASH, UPI, CARD, CREDIT
	Date   time.Time `json:"date"`
}

type Sale struct {
	ID          string     `json:"id"`
	CustomerID  string     `json:"customerId"`
	Date        time.Time  `json:"date"`
	Items       []LineItem `json:"items"`
	Payments    []Payment  `json:"payments"`
	TotalAmount float64    `json:"totalAmount"`
	Discount    float64    `json:"discount"`
	GSTAmount   float64    `json:"gstAmount"`
}

type Purchase struct {
	ID          string      `json:"id"`
	SupplierID  string      `json:"supplierId"`
	Date        time.Time   `json:"date"`
	Items       []LineItem  `json:"items"`
	Payments    []Payment   `json:"payments"`
	DueDates    []time.Time `json:"dueDates"`
	TotalAmount float64     `json:"totalAmount"`
}

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Quantity      float64   `json:"quantity"`
	PurchasePrice float64   `json:"purchasePrice"`
	SalePrice     float64   `json:"salePrice"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Area      string    `json:"area"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

type Supplier struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Expense struct {
	ID       string    `json:"id"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
	Note     string    `json:"note"`
	Date     time.Time `json:"date"`
}

// Collections is a read-only snapshot of every record collection the
// engine can report over. It is owned by the caller; the engine never
// mutates it and re-reads it on every run.
type Collections struct {
	Sales     []Sale     `json:"sales"`
	Purchases []Purchase `json:"purchases"`
	Products  []Product  `json:"products"`
	Customers []Customer `json:"customers"`
	Suppliers []Supplier `json:"suppliers"`
	Expenses  []Expense  `json:"expenses"`
}
