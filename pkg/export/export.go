package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
	"github.com/retail-tools/ledger-atlas/pkg/services/catalog"
)

// Format is the closed set of export kinds. Each kind dispatches
// through the writers table; adding a format means adding one entry.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

type writeFunc func(f *Formatter, w io.Writer, rs domain.ResultSet) error

var writers = map[Format]writeFunc{
	FormatCSV: writeCSV,
	FormatPDF: writePDF,
}

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// Formatter serializes result sets. It never recomputes anything: the
// rows and field catalog it receives are exactly what the engine
// produced.
type Formatter struct {
	currency string
}

// NewFormatter builds a formatter with the currency prefix used for
// currency-typed cells.
func NewFormatter(currencySymbol string) *Formatter {
	if currencySymbol == "" {
		currencySymbol = "Rs."
	}
	return &Formatter{currency: currencySymbol}
}

// Write serializes a result set in the requested format.
func (f *Formatter) Write(w io.Writer, format Format, rs domain.ResultSet) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unsupported export format %q", format)
	}
	return fn(f, w, rs)
}

// Cell renders a single row value according to its field type.
// Currency cells get a fixed two-decimal rendering, date cells a
// calendar date instead of the raw epoch value.
func (f *Formatter) Cell(field domain.Field, v any) string {
	switch field.Type {
	case domain.FieldCurrency:
		amount := decimal.NewFromFloat(catalog.Number(v))
		return f.currency + " " + amount.StringFixed(2)
	case domain.FieldDate:
		ms := int64(catalog.Number(v))
		if ms == 0 {
			return ""
		}
		return time.UnixMilli(ms).UTC().Format("02 Jan 2006")
	default:
		return catalog.Text(v)
	}
}

// Filename derives an export file name from the report title and a
// timestamp.
func Filename(title string, format Format, now time.Time) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, title)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "report"
	}
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return fmt.Sprintf("%s-%s.%s", slug, now.Format("20060102-150405"), format)
}
