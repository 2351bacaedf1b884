package domain

import "time"

// Source names one of the reportable record collections.
type Source string

const (
	SourceSales     Source = "sales"
	SourcePurchases Source = "purchases"
	SourceInventory Source = "inventory"
	SourceCustomers Source = "customers"
	SourceExpenses  Source = "expenses"
)

// FieldType describes how a field's values are rendered at the
// export boundary. The engine itself treats number and currency alike.
type FieldType string

const (
	FieldString   FieldType = "string"
	FieldNumber   FieldType = "number"
	FieldCurrency FieldType = "currency"
	FieldDate     FieldType = "date"
)

// Aggregation is the reduce operator applied to a numeric field when
// grouping is active.
type Aggregation string

const (
	AggNone  Aggregation = ""
	AggSum   Aggregation = "SUM"
	AggAvg   Aggregation = "AVG"
	AggMin   Aggregation = "MIN"
	AggMax   Aggregation = "MAX"
	AggCount Aggregation = "COUNT"
)

// Field is one reportable attribute of a data source. Fields are
// declared once per source in the catalog and never derived from
// records at runtime.
type Field struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Type        FieldType   `json:"type"`
	Aggregation Aggregation `json:"aggregation,omitempty"`
}

// FilterOp is the closed set of comparison operators a filter may use.
type FilterOp string

const (
	OpEquals   FilterOp = "equals"
	OpContains FilterOp = "contains"
	OpGt       FilterOp = "gt"
	OpLt       FilterOp = "lt"
	OpBetween  FilterOp = "between"
	OpIn       FilterOp = "in"
)

// Filter compares one field against a value. Filters compose with
// logical AND only.
type Filter struct {
	FieldID  string   `json:"fieldId"`
	Operator FilterOp `json:"operator"`
	Value    any      `json:"value"`
}

// ChartType is passed through to the presentation layer untouched.
type ChartType string

const (
	ChartTable    ChartType = "TABLE"
	ChartBar      ChartType = "BAR"
	ChartLine     ChartType = "LINE"
	ChartArea     ChartType = "AREA"
	ChartPie      ChartType = "PIE"
	ChartScatter  ChartType = "SCATTER"
	ChartComposed ChartType = "COMPOSED"
	ChartKPI      ChartType = "KPI"
	ChartFunnel   ChartType = "FUNNEL"
	ChartTreemap  ChartType = "TREEMAP"
)

// ReportConfig fully describes one reproducible report. It is a value
// object: created by a builder or template list, never mutated after
// being run. Re-running applies it against the live collections.
type ReportConfig struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DataSource  Source    `json:"dataSource"`
	Fields      []Field   `json:"fields"`
	Filters     []Filter  `json:"filters"`
	GroupBy     string    `json:"groupBy,omitempty"`
	ChartType   ChartType `json:"chartType"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Row is one result row keyed by field id. Enriched records and group
// buckets share this shape; rows are transient and recomputed on every
// report run.
type Row map[string]any

// ResultSet pairs the rows a run produced with the field catalog used
// to produce them. It is everything a chart renderer or export adapter
// needs.
type ResultSet struct {
	Config  ReportConfig `json:"config"`
	Fields  []Field      `json:"fields"`
	Rows    []Row        `json:"rows"`
	Grouped bool         `json:"grouped"`
}
