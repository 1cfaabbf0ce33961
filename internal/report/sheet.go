// Package report assembles claim data into fixed-layout, address-keyed
// sheets replicating the legacy paper expense-statement form. The output is
// a pure data structure; rendering to HTML or a spreadsheet file is left to
// the adapters in internal/render.
package report

import "fmt"

// CellKind distinguishes text from numeric cells.
type CellKind string

// Cell value kinds, matching the legacy sheet's type tags.
const (
	CellText   CellKind = "s"
	CellNumber CellKind = "n"
)

// Cell is one addressed value in a sheet.
type Cell struct {
	Kind   CellKind `json:"kind"`
	Text   string   `json:"text,omitempty"`
	Number float64  `json:"number,omitempty"`
}

// Sheet is a sparse address-to-cell mapping over a bounded rectangle.
type Sheet struct {
	Name      string          `json:"name"`
	Cells     map[string]Cell `json:"cells"`
	ColWidths []float64       `json:"col_widths"`
	Rows      int             `json:"rows"`
	Cols      int             `json:"cols"`
}

// NewSheet creates an empty sheet bounded to rows x cols. Column widths are
// indexed from column A.
func NewSheet(name string, rows, cols int, colWidths []float64) *Sheet {
	return &Sheet{
		Name:      name,
		Cells:     make(map[string]Cell),
		ColWidths: colWidths,
		Rows:      rows,
		Cols:      cols,
	}
}

// SetText places a text cell at the given address.
func (s *Sheet) SetText(addr, value string) {
	s.Cells[addr] = Cell{Kind: CellText, Text: value}
}

// SetNumber places a numeric cell at the given address.
func (s *Sheet) SetNumber(addr string, value float64) {
	s.Cells[addr] = Cell{Kind: CellNumber, Number: value}
}

// Cell returns the cell at addr and whether it is populated.
func (s *Sheet) Cell(addr string) (Cell, bool) {
	c, ok := s.Cells[addr]
	return c, ok
}

// Addr builds a cell address from a column letter and a 1-based row.
func Addr(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// ColumnName converts a 1-based column number to its letter name.
func ColumnName(n int) string {
	name := ""
	for n > 0 {
		n--
		name = string(rune('A'+n%26)) + name
		n /= 26
	}
	return name
}
