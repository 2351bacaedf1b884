package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/retail-tools/ledger-atlas/pkg/models/domain"
)

const (
	pdfMargin     = 10.0
	pdfRowHeight  = 7.0
	pdfBreakAtY   = 190.0
	pdfTitleSize  = 14.0
	pdfHeaderSize = 9.0
	pdfCellSize   = 8.5
)

// writePDF paginates the result set into a table below a title and
// optional description line. The last column is right-aligned; the
// header row repeats on every page.
func writePDF(f *Formatter, w io.Writer, rs domain.ResultSet) error {
	if len(rs.Fields) == 0 {
		return fmt.Errorf("nothing to export: result set has no fields")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	colW := (pageW - 2*pdfMargin) / float64(len(rs.Fields))

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", pdfHeaderSize)
		pdf.SetFillColor(230, 230, 230)
		for i, field := range rs.Fields {
			align := "L"
			if i == len(rs.Fields)-1 {
				align = "R"
			}
			pdf.CellFormat(colW, pdfRowHeight, tr(field.Label), "1", 0, align, true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", pdfCellSize)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", pdfTitleSize)
	pdf.CellFormat(0, 10, tr(rs.Config.Title), "", 1, "L", false, 0, "")
	if rs.Config.Description != "" {
		pdf.SetFont("Helvetica", "", pdfHeaderSize)
		pdf.CellFormat(0, 6, tr(rs.Config.Description), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
	writeHeader()

	for _, row := range rs.Rows {
		if pdf.GetY() > pdfBreakAtY {
			pdf.AddPage()
			writeHeader()
		}
		for i, field := range rs.Fields {
			align := "L"
			if i == len(rs.Fields)-1 {
				align = "R"
			}
			pdf.CellFormat(colW, pdfRowHeight, tr(f.Cell(field, row[field.ID])), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(rs.Rows) == 0 {
		pdf.CellFormat(0, pdfRowHeight, "No data for the selected filters", "", 1, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
