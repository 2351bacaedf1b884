package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
)

// writeCSV emits one header row of field labels followed by one record
// per result row. encoding/csv handles quoting and escaping of
// embedded quotes. An empty result set still produces the header so
// consumers can render an explicit no-data state.
func writeCSV(f *Formatter, w io.Writer, rs domain.ResultSet) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(rs.Fields))
	for i, field := range rs.Fields {
		header[i] = field.Label
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	record := make([]string, len(rs.Fields))
	for _, row := range rs.Rows {
		for i, field := range rs.Fields {
			record[i] = f.Cell(field, row[field.ID])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
