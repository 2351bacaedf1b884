package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/retail-tools/ledger-atlas/pkg/export"
	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
)

// Reporter renders result sets and metric summaries as console text.
type Reporter struct {
	writer    io.Writer
	formatter *export.Formatter
}

func NewReporter(writer io.Writer, formatter *export.Formatter) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	if formatter == nil {
		formatter = export.NewFormatter("")
	}
	return &Reporter{writer: writer, formatter: formatter}
}

// Handle prints a result set as an aligned text table.
func (c *Reporter) Handle(rs domain.ResultSet) error {
	if _, err := fmt.Fprintf(c.writer, "\n%s\n", rs.Config.Title); err != nil {
		return err
	}
	if rs.Config.Description != "" {
		if _, err := fmt.Fprintf(c.writer, "%s\n", rs.Config.Description); err != nil {
			return err
		}
	}

	if len(rs.Rows) == 0 {
		_, err := fmt.Fprintln(c.writer, "\nNo data for the selected filters.")
		return err
	}

	// Column widths sized to the widest rendered cell.
	widths := make([]int, len(rs.Fields))
	cells := make([][]string, len(rs.Rows))
	for i, field := range rs.Fields {
		widths[i] = len(field.Label)
	}
	for r, row := range rs.Rows {
		cells[r] = make([]string, len(rs.Fields))
		for i, field := range rs.Fields {
			cell := c.formatter.Cell(field, row[field.ID])
			cells[r][i] = cell
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	separator := func() string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("-", w+2)
		}
		return "+" + strings.Join(parts, "+") + "+"
	}
	formatRow := func(values []string) string {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = fmt.Sprintf(" %-*s ", widths[i], v)
		}
		return "|" + strings.Join(parts, "|") + "|"
	}

	labels := make([]string, len(rs.Fields))
	for i, field := range rs.Fields {
		labels[i] = field.Label
	}

	lines := []string{"", separator(), formatRow(labels), separator()}
	for _, row := range cells {
		lines = append(lines, formatRow(row))
	}
	lines = append(lines, separator(), "")

	_, err := fmt.Fprint(c.writer, strings.Join(lines, "\n"))
	return err
}

// HandleForecast prints the fitted revenue trend.
func (c *Reporter) HandleForecast(f domain.Forecast) error {
	tmpl := `
Revenue Forecast ({{.Window}} days)

Trend: {{.Trend}}
Slope: {{printf "%.4f" .Slope}} per day
Growth over window: {{printf "%.1f" .GrowthPct}}%
Projected next day: {{printf "%.2f" .Next}}
Projected in 7 days: {{printf "%.2f" .Week}}
`
	data := struct {
		domain.Forecast
		GrowthPct float64
		Next      float64
		Week      float64
	}{
		Forecast:  f,
		GrowthPct: f.GrowthRate * 100,
		Next:      f.Predict(float64(f.Window)),
		Week:      f.Predict(float64(f.Window + 6)),
	}
	return c.render("forecast", tmpl, data)
}

// HandleLifetimeValue prints the CLV breakdown.
func (c *Reporter) HandleLifetimeValue(v domain.CustomerValue) error {
	tmpl := `
Customer Lifetime Value

Orders: {{.Orders}} across {{.Customers}} customers
Average order value: {{printf "%.2f" .AvgOrderValue}}
Purchase frequency: {{printf "%.2f" .PurchaseFrequency}}
Average lifespan: {{printf "%.2f" .AvgLifespanYears}} years
CLV: {{printf "%.2f" .Value}}
`
	return c.render("clv", tmpl, v)
}

// HandleTurnover prints the inventory turnover summary.
func (c *Reporter) HandleTurnover(t domain.Turnover) error {
	tmpl := `
Inventory Turnover

COGS: {{printf "%.2f" .COGS}}
Inventory value: {{printf "%.2f" .InventoryValue}}
Turnover ratio: {{printf "%.2f" .Ratio}}
Days to sell through: {{printf "%.0f" .DaysToSell}}
`
	return c.render("turnover", tmpl, t)
}

// HandleKPI prints the dashboard summary numbers.
func (c *Reporter) HandleKPI(k domain.KPISummary) error {
	tmpl := `
Business Summary

Today's revenue: {{printf "%.2f" .TodayRevenue}}
Month revenue: {{printf "%.2f" .MonthRevenue}}
Month profit: {{printf "%.2f" .MonthProfit}}
Month expenses: {{printf "%.2f" .MonthExpenses}}
Outstanding dues: {{printf "%.2f" .OutstandingDue}}
Stock value: {{printf "%.2f" .StockValue}}
Customers: {{.CustomerCount}}
`
	return c.render("kpi", tmpl, k)
}

func (c *Reporter) render(name, tmpl string, data any) error {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, data)
}
