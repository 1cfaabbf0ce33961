package report

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kathiroli/travel-claim/internal/calc"
)

// HotelDetail builds the food-and-lodging detail sheet: one row per hotel
// expense across all trips in trip order then entry order, each re-running
// the eligibility calculation, with numeric padding rows and a totals row
// summing room rent, tax, total expense and the final claimable amount.
func (e *Engine) HotelDetail(in Input) *Sheet {
	sh := NewSheet(HotelSheetName, hotelRows, len(hotelColWidths), hotelColWidths)
	l := e.layout

	sh.SetText("B4", fmt.Sprintf("Food & Lodging Expenses of %s (E.No.%s) in %s.",
		in.Employee.Name, in.Employee.PersNo, Locations(in.Trips)))

	sh.SetText("B6", "Date")
	sh.SetText("C6", "Particulars")
	sh.SetText("D6", "Room Rent (Rs.)")
	sh.SetText("E6", "Tax (Rs.)")
	sh.SetText("F6", "Total (Rs.)")
	sh.SetText("G6", "Eligibility")
	sh.SetText("H6", "Amount Paid by Company")
	sh.SetText("I6", "Balance Amount Claimed Rs.")

	// The stayed-at stub occupies the last padded row, so data stops one
	// row short of it.
	maxRows := l.HotelPadEnd - l.HotelDataStart
	row := l.HotelDataStart
	var totalRoomRent, totalTax, totalAmount, totalClaimable float64

	count := 0
loop:
	for _, trip := range in.Trips {
		for _, expense := range trip.HotelExpenses {
			if count >= maxRows {
				e.logger.Warn("Hotel expense count exceeds detail sheet capacity, truncating",
					zap.Int("max_rows", maxRows))
				break loop
			}
			result := e.calc.Hotel(expense, in.Employee.Grade, trip.ToLocation)

			sh.SetText(Addr("B", row), calc.DateRangeText(expense.DateFrom, expense.DateTo))
			sh.SetText(Addr("C", row), expense.Particulars)
			sh.SetNumber(Addr("D", row), result.TotalRoomRent)
			sh.SetNumber(Addr("E", row), result.TotalTax)
			sh.SetNumber(Addr("F", row), result.TotalExpense)
			sh.SetText(Addr("G", row), result.EligibilityText)
			sh.SetNumber(Addr("H", row), expense.CompanyPaidTotal)
			sh.SetNumber(Addr("I", row), result.FinalClaimable)

			totalRoomRent += result.TotalRoomRent
			totalTax += result.TotalTax
			totalAmount += result.TotalExpense
			totalClaimable += result.FinalClaimable
			row++
			count++
		}
	}

	// Numeric padding through the fixed minimum row count.
	for ; row <= l.HotelPadEnd; row++ {
		for _, col := range []string{"D", "E", "F", "H", "I"} {
			sh.SetNumber(Addr(col, row), 0)
		}
	}

	// Blank stayed-at stub on the last padded row.
	sh.SetText(Addr("B", l.HotelPadEnd), "from _____ to ______")
	sh.SetText(Addr("C", l.HotelPadEnd), "Stayed at _________________")
	sh.SetNumber(Addr("D", l.HotelPadEnd), 0)
	sh.SetNumber(Addr("E", l.HotelPadEnd), 0)
	sh.SetNumber(Addr("F", l.HotelPadEnd), 0)

	tr := l.HotelTotalsRow
	sh.SetText(Addr("C", tr), "TOTAL")
	sh.SetNumber(Addr("D", tr), totalRoomRent)
	sh.SetNumber(Addr("E", tr), totalTax)
	sh.SetNumber(Addr("F", tr), totalAmount)
	sh.SetText(Addr("G", tr), "-")
	sh.SetNumber(Addr("H", tr), 0)
	sh.SetNumber(Addr("I", tr), totalClaimable)

	return sh
}
