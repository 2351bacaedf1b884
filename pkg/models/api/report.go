package api

import "github.com/retail-tools/ledger-atlas/pkg/models/domain"

// Template is the summary shape the template listing endpoint returns.
type Template struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	DataSource  domain.Source    `json:"dataSource"`
	ChartType   domain.ChartType `json:"chartType"`
}

// RunRequest asks for a report run, either by template id or with a
// full inline config. Exactly one of the two should be set.
type RunRequest struct {
	TemplateID string               `json:"templateId,omitempty"`
	Config     *domain.ReportConfig `json:"config,omitempty"`
}

// Error is the uniform error payload.
type Error struct {
	Error string `json:"error"`
}
