package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/kathiroli/travel-claim/internal/report"
)

// HTMLRenderer renders report sheets as plain HTML tables for on-screen
// preview. Purely presentational: numbers are shown with two decimals, text
// is escaped, nothing is computed.
type HTMLRenderer struct{}

// NewHTMLRenderer creates a new HTML renderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render produces one HTML table covering the sheet's bounded rectangle.
func (r *HTMLRenderer) Render(sh *report.Sheet) string {
	var b strings.Builder
	b.WriteString(`<div class="excel-sheet">`)
	fmt.Fprintf(&b, `<h3>%s</h3>`, html.EscapeString(sh.Name))
	b.WriteString(`<table class="excel-table">`)

	for row := 1; row <= sh.Rows; row++ {
		b.WriteString("<tr>")
		for col := 1; col <= sh.Cols; col++ {
			cell, ok := sh.Cell(report.Addr(report.ColumnName(col), row))
			switch {
			case !ok:
				b.WriteString("<td></td>")
			case cell.Kind == report.CellNumber:
				fmt.Fprintf(&b, `<td class="num">%.2f</td>`, cell.Number)
			default:
				fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(cell.Text))
			}
		}
		b.WriteString("</tr>")
	}

	b.WriteString("</table></div>")
	return b.String()
}

// RenderAll concatenates the previews of several sheets.
func (r *HTMLRenderer) RenderAll(sheets []*report.Sheet) string {
	var b strings.Builder
	for _, sh := range sheets {
		b.WriteString(r.Render(sh))
	}
	return b.String()
}
