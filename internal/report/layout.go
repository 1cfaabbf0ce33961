package report

// Sheet names as they appear in the exported workbook.
const (
	StatementSheetName  = "TEBILL"
	HotelSheetName      = "Hotel Expenses"
	ConveyanceSheetName = "Local Conveyance"
)

// Layout carries the row constants of the legacy form. They are
// configurable, but the defaults must be kept for exact-format
// compatibility with the paper statement.
type Layout struct {
	// Statement sheet: trip rows occupy StatementDataStart through
	// StatementDataEnd, with unused rows zero-filled in the running-total
	// column; the totals row follows immediately.
	StatementDataStart int
	StatementDataEnd   int
	StatementTotalsRow int

	// Hotel detail sheet: one row per hotel expense from HotelDataStart,
	// numeric padding through HotelPadEnd, totals at HotelTotalsRow.
	HotelDataStart int
	HotelPadEnd    int
	HotelTotalsRow int

	// Conveyance detail sheet: one row per entry from ConveyanceDataStart,
	// ditto-mark padding through ConveyancePadEnd, totals at
	// ConveyanceTotalsRow.
	ConveyanceDataStart int
	ConveyancePadEnd    int
	ConveyanceTotalsRow int
}

// DefaultLayout reproduces the legacy paper form exactly.
func DefaultLayout() Layout {
	return Layout{
		StatementDataStart:  14,
		StatementDataEnd:    23,
		StatementTotalsRow:  24,
		HotelDataStart:      7,
		HotelPadEnd:         18,
		HotelTotalsRow:      19,
		ConveyanceDataStart: 8,
		ConveyancePadEnd:    16,
		ConveyanceTotalsRow: 17,
	}
}

// Column widths per sheet, indexed from column A, matching the legacy
// workbook.
var (
	statementColWidths = []float64{3, 12, 10, 10, 8, 8, 8, 8, 12, 10, 8, 8, 8, 8, 8, 8, 8, 8, 8}
	hotelColWidths     = []float64{3, 15, 12, 10, 10, 25, 15, 15, 15}
	conveyColWidths    = []float64{3, 12, 15, 15, 15, 12}
)

// Bounded rectangle sizes per sheet.
const (
	statementRows = 41
	hotelRows     = 21
	conveyRows    = 19
)
