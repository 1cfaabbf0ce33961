package report

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kathiroli/travel-claim/internal/calc"
)

// ConveyanceDetail builds the local conveyance detail sheet: one row per
// conveyance entry across all trips in trip order then entry order, with
// ditto-mark padding rows and a totals row summing the amounts.
func (e *Engine) ConveyanceDetail(in Input) *Sheet {
	sh := NewSheet(ConveyanceSheetName, conveyRows, len(conveyColWidths), conveyColWidths)
	l := e.layout

	sh.SetText("B4", fmt.Sprintf("Details of Local Conveyance of %s (E.No.%s) in %s.",
		in.Employee.Name, in.Employee.PersNo, Locations(in.Trips)))

	sh.SetText("B7", "Date")
	sh.SetText("C7", "From")
	sh.SetText("D7", "To")
	sh.SetText("E7", "Mode of Travel")
	sh.SetText("F7", "Amount Rs.")

	maxRows := l.ConveyancePadEnd - l.ConveyanceDataStart + 1
	row := l.ConveyanceDataStart
	var totalAmount float64

	count := 0
loop:
	for _, trip := range in.Trips {
		for _, entry := range trip.LocalConveyance {
			if count >= maxRows {
				e.logger.Warn("Conveyance entry count exceeds detail sheet capacity, truncating",
					zap.Int("max_rows", maxRows))
				break loop
			}

			sh.SetText(Addr("B", row), calc.DisplayDate(entry.Date))
			sh.SetText(Addr("C", row), entry.From)
			sh.SetText(Addr("D", row), entry.To)
			sh.SetText(Addr("E", row), entry.ModeOfTravel)
			sh.SetNumber(Addr("F", row), entry.Amount)

			totalAmount += entry.Amount
			row++
			count++
		}
	}

	// The legacy sheet fills unused mode cells with a ditto mark.
	for ; row <= l.ConveyancePadEnd; row++ {
		sh.SetText(Addr("E", row), `"`)
	}

	tr := l.ConveyanceTotalsRow
	sh.SetText(Addr("C", tr), "TOTAL")
	sh.SetNumber(Addr("F", tr), totalAmount)

	return sh
}
