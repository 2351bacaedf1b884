package domain

// Trend classifies the direction of a fitted revenue line.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Forecast is an ordinary-least-squares fit over daily revenue for a
// trailing window. Day indices run 0..Window-1; Predict extrapolates
// the fitted line to arbitrary future indices.
type Forecast struct {
	Slope      float64   `json:"slope"`
	Intercept  float64   `json:"intercept"`
	Trend      Trend     `json:"trend"`
	GrowthRate float64   `json:"growthRate"`
	Window     int       `json:"window"`
	Daily      []float64 `json:"daily"`
}

// Predict evaluates the fitted line at day index x.
func (f Forecast) Predict(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// CustomerValue is the average lifetime value of a customer derived
// from the sales history.
type CustomerValue struct {
	AvgOrderValue     float64 `json:"avgOrderValue"`
	PurchaseFrequency float64 `json:"purchaseFrequency"`
	AvgLifespanYears  float64 `json:"avgLifespanYears"`
	Value             float64 `json:"value"`
	Orders            int     `json:"orders"`
	Customers         int     `json:"customers"`
}

// Turnover describes how fast inventory converts into sales.
type Turnover struct {
	COGS           float64 `json:"cogs"`
	InventoryValue float64 `json:"inventoryValue"`
	Ratio          float64 `json:"ratio"`
	DaysToSell     float64 `json:"daysToSell"`
}

// KPISummary carries the headline dashboard numbers computed from the
// live collections.
type KPISummary struct {
	TodayRevenue   float64 `json:"todayRevenue"`
	MonthRevenue   float64 `json:"monthRevenue"`
	MonthProfit    float64 `json:"monthProfit"`
	MonthExpenses  float64 `json:"monthExpenses"`
	OutstandingDue float64 `json:"outstandingDue"`
	StockValue     float64 `json:"stockValue"`
	CustomerCount  int     `json:"customerCount"`
}
