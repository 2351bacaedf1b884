package engine

import (
	"fmt"
	"time"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
	"github.com/retail-tools/ledger-atlas/pkg/services/catalog"
	"github.com/retail-tools/ledger-atlas/pkg/services/enrich"
)

// Run executes a report config against a collections snapshot:
// enrich, filter, then group when the config asks for it. The
// collections are read-only; every run re-enriches from current data.
func Run(c domain.Collections, cfg domain.ReportConfig) (domain.ResultSet, error) {
	return RunAt(c, cfg, time.Now())
}

// RunAt pins the reference time used by time-relative enrichment.
func RunAt(c domain.Collections, cfg domain.ReportConfig, now time.Time) (domain.ResultSet, error) {
	declared := catalog.Fields(cfg.DataSource)
	if declared == nil {
		return domain.ResultSet{}, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}

	fields := cfg.Fields
	if len(fields) == 0 {
		fields = declared
	}

	reg := catalog.Accessors(cfg.DataSource)
	rows := enrich.NewAt(c, now).Source(cfg.DataSource)
	rows = Apply(reg, rows, cfg.Filters)

	grouped := cfg.GroupBy != ""
	if grouped {
		rows = Group(reg, rows, cfg.GroupBy, fields)
		fields = groupedFields(cfg.GroupBy, fields, reg)
	}

	return domain.ResultSet{
		Config:  cfg,
		Fields:  fields,
		Rows:    rows,
		Grouped: grouped,
	}, nil
}

// groupedFields is the output catalog after grouping: the group key,
// the bucket count, then every aggregated field in declared order.
func groupedFields(groupBy string, fields []domain.Field, reg catalog.Registry) []domain.Field {
	key := reg.Get(groupBy).Field
	out := []domain.Field{
		{ID: key.ID, Label: key.Label, Type: key.Type},
		{ID: "count", Label: "Count", Type: domain.FieldNumber},
	}
	// grouped output keys are strings even for date fields
	if out[0].Type == domain.FieldDate || out[0].Type == domain.FieldCurrency {
		out[0].Type = domain.FieldString
	}
	return append(out, aggregated(fields, groupBy)...)
}
