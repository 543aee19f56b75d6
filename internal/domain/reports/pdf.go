package reports

import (
	"os"
	"strings"
	"unicode"

	"github.com/abdullahdiaa/garabic"
	"github.com/jung-kurt/gofpdf"

	"masar/internal/domain/records"
)

const (
	exportFontName = "Amiri"
	headerFontSize = 9.0
	cellFontSize   = 7.0
	lineHeight     = 3.6
)

// Exporter renders the employee table as a landscape A4 PDF. Columns are laid
// out in reverse field order to match right-to-left reading direction, and
// long cell contents wrap instead of truncating.
type Exporter struct {
	Title    string
	FontFile string
}

// Export writes the document to path. Zero records produce a header-only
// table. When the configured font file is missing the export falls back to a
// built-in font: that font cannot encode Arabic glyphs, so text is reduced to
// its Latin content instead of being shaped, and the document structure is
// still produced.
func (e *Exporter) Export(path string, employees []records.Employee, fields []string) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	font := "Helvetica"
	prepare := latinOnly
	if _, err := os.Stat(e.FontFile); err == nil {
		pdf.AddUTF8Font(exportFontName, "", e.FontFile)
		font = exportFontName
		prepare = rtl
	}

	pdf.AddPage()
	pdf.SetFont(font, "", 14)
	pdf.CellFormat(0, 10, prepare(e.Title), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Reverse the column order: the first field lands in the rightmost column.
	ordered := make([]string, len(fields))
	for i, field := range fields {
		ordered[len(fields)-1-i] = field
	}

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(ordered))

	drawHeader := func() {
		pdf.SetFont(font, "", headerFontSize)
		headers := make([]string, len(ordered))
		for i, field := range ordered {
			headers[i] = records.Labels[field]
		}
		pdf.SetFillColor(179, 209, 247)
		drawRow(pdf, headers, colWidth, true, prepare)
		pdf.SetFont(font, "", cellFontSize)
	}
	drawHeader()

	for _, emp := range employees {
		cells := make([]string, len(ordered))
		for i, field := range ordered {
			cells[i] = records.FieldValue(emp, field)
		}
		if rowOverflows(pdf, cells, colWidth, prepare) {
			pdf.AddPage()
			drawHeader()
		}
		drawRow(pdf, cells, colWidth, false, prepare)
	}

	return pdf.OutputFileAndClose(path)
}

// drawRow renders one table row with every cell wrapped to the column width.
// The row height is the height of the tallest cell.
func drawRow(pdf *gofpdf.Fpdf, cells []string, colWidth float64, fill bool, prepare func(string) string) {
	wrapped, maxLines := wrapCells(pdf, cells, colWidth, prepare)
	rowHeight := float64(maxLines)*lineHeight + 1.2

	left, _, _, _ := pdf.GetMargins()
	y := pdf.GetY()
	x := left

	style := "D"
	if fill {
		style = "FD"
	}
	for _, lines := range wrapped {
		pdf.Rect(x, y, colWidth, rowHeight, style)
		lineY := y + 0.6
		for _, line := range lines {
			pdf.SetXY(x+0.4, lineY)
			pdf.CellFormat(colWidth-0.8, lineHeight, line, "", 0, "R", false, 0, "")
			lineY += lineHeight
		}
		x += colWidth
	}
	pdf.SetXY(left, y+rowHeight)
}

func rowOverflows(pdf *gofpdf.Fpdf, cells []string, colWidth float64, prepare func(string) string) bool {
	_, maxLines := wrapCells(pdf, cells, colWidth, prepare)
	rowHeight := float64(maxLines)*lineHeight + 1.2
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	return pdf.GetY()+rowHeight > pageHeight-bottom
}

func wrapCells(pdf *gofpdf.Fpdf, cells []string, colWidth float64, prepare func(string) string) ([][]string, int) {
	wrapped := make([][]string, len(cells))
	maxLines := 1
	for i, cell := range cells {
		lines := pdf.SplitText(prepare(cell), colWidth-0.8)
		if len(lines) == 0 {
			lines = []string{""}
		}
		wrapped[i] = lines
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}
	return wrapped, maxLines
}

// rtl prepares Arabic text for gofpdf, which lays glyphs out left to right:
// letters are shaped into their joined presentation forms and the rune order
// is reversed. Text without Arabic letters passes through untouched. Only
// valid with a UTF-8 font loaded.
func rtl(text string) string {
	if !containsArabic(text) {
		return text
	}
	runes := []rune(garabic.Shape(text))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// latinOnly drops every rune the built-in fonts cannot encode. The core-font
// width tables cover single-byte codepoints only, so anything beyond them
// must never reach gofpdf on the fallback path.
func latinOnly(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r < 256 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func containsArabic(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}
