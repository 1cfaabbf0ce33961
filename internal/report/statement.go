package report

import (
	"go.uber.org/zap"

	"github.com/kathiroli/travel-claim/internal/calc"
)

// Statement builds the main travel expense statement sheet: the header
// band, numbered column headers, one row per trip, a totals row and the
// signature/summary block.
//
// The summary block's net payable reproduces the legacy form's definition,
// which subtracts the fare column again on top of the advance. It therefore
// differs from the claim summary's net claimable whenever fare is non-zero;
// both figures are intentionally kept distinct.
func (e *Engine) Statement(in Input) *Sheet {
	sh := NewSheet(StatementSheetName, statementRows, len(statementColWidths), statementColWidths)
	l := e.layout

	// Organization and form title.
	sh.SetText("B3", e.orgName)
	sh.SetText("N3", "TRAVEL EXPENSE STATEMENT")

	// Employee block: labels on row 4, values on row 5.
	sh.SetText("B4", "NAME / EMP No.:")
	sh.SetText("F4", "GRADE")
	sh.SetText("H4", "DESIGNATION")
	sh.SetText("M4", "DEPARTMENT")
	sh.SetText("Q4", "DATE")

	sh.SetText("B5", in.Employee.Name+" / "+in.Employee.PersNo)
	sh.SetText("F5", in.Employee.Grade)
	sh.SetText("H5", in.Employee.Position)
	sh.SetText("M5", in.Employee.Department)
	sh.SetText("Q5", in.Date.Format("02/01/2006"))

	sh.SetText("B6", "PLACE & PURPOSE OF VISIT :")
	sh.SetText("B7", in.Purpose)

	// Columns 10 and 11 of the form sit outside the numbered header band.
	sh.SetText("P6", "10")
	sh.SetText("R6", "11")
	sh.SetText("P7", "Indicate whether Tourist Taxi on Credit or Company Car used or not")
	sh.SetText("R7", "Total")

	// Numbered column headers 1-9.
	sh.SetText("B8", "1")
	sh.SetText("C8", "2")
	sh.SetText("D8", "3")
	sh.SetText("E8", "4")
	sh.SetText("F8", "5")
	sh.SetText("H8", "6")
	sh.SetText("J8", "7")
	sh.SetText("L8", "8")
	sh.SetText("N8", "9")

	sh.SetText("B9", "DATE")
	sh.SetText("C9", "FROM")
	sh.SetText("D9", "TO")
	sh.SetText("E9", "MODE/")
	sh.SetText("F9", "FARE")
	sh.SetText("H9", "HOTEL BILLS/")
	sh.SetText("J9", "BUSINESS")
	sh.SetText("L9", "MISCELLANEOUS /")
	sh.SetText("N9", "CONVEYANCE")

	sh.SetText("E10", "CLASS")
	sh.SetText("H10", "SUST.EXP")
	sh.SetText("J10", "DISC")
	sh.SetText("L10", "OUT OF POCKET")
	sh.SetText("N10", "EXPENSES")

	sh.SetText("L11", "EXPENSES")

	for _, col := range []string{"F", "H", "J", "L", "N", "R"} {
		sh.SetText(Addr(col, 12), "Rs.")
	}
	for _, col := range []string{"G", "I", "K", "M", "O", "S"} {
		sh.SetText(Addr(col, 12), "P.")
	}

	sh.SetText("B13", "PART - A - TO BE FILLED IN BY INDIVIDUAL")

	// One row per trip, truncated at the form's capacity.
	maxTrips := l.StatementDataEnd - l.StatementDataStart + 1
	trips := in.Trips
	if len(trips) > maxTrips {
		e.logger.Warn("Trip count exceeds statement capacity, truncating",
			zap.Int("total_trips", len(trips)),
			zap.Int("max_trips", maxTrips))
		trips = trips[:maxTrips]
	}

	row := l.StatementDataStart
	var totals calc.ClaimSummary
	for _, trip := range trips {
		hotelTotal := e.calc.HotelTotal(trip, in.Employee.Grade)
		conveyanceTotal := calc.ConveyanceTotal(trip)
		rowTotal := trip.Fare + hotelTotal + trip.MiscExpenses + conveyanceTotal - trip.BusinessDisc

		sh.SetText(Addr("B", row), calc.DateRangeText(trip.DateFrom, trip.DateTo))
		sh.SetText(Addr("C", row), trip.FromLocation)
		sh.SetText(Addr("D", row), trip.ToLocation)
		sh.SetText(Addr("E", row), trip.ModeClass)
		sh.SetNumber(Addr("F", row), trip.Fare)
		sh.SetNumber(Addr("H", row), hotelTotal)
		sh.SetNumber(Addr("J", row), trip.BusinessDisc)
		sh.SetNumber(Addr("L", row), trip.MiscExpenses)
		sh.SetNumber(Addr("N", row), conveyanceTotal)
		sh.SetNumber(Addr("R", row), rowTotal)

		totals.TotalFare += trip.Fare
		totals.TotalHotel += hotelTotal
		totals.TotalBusinessDisc += trip.BusinessDisc
		totals.TotalMisc += trip.MiscExpenses
		totals.TotalConveyance += conveyanceTotal
		totals.TotalAdvance += trip.Advance
		row++
	}

	// Unused rows keep a zero in the running-total column.
	for ; row <= l.StatementDataEnd; row++ {
		sh.SetNumber(Addr("R", row), 0)
	}

	gross := totals.TotalFare + totals.TotalHotel + totals.TotalMisc + totals.TotalConveyance - totals.TotalBusinessDisc

	tr := l.StatementTotalsRow
	sh.SetNumber(Addr("F", tr), totals.TotalFare)
	sh.SetNumber(Addr("H", tr), totals.TotalHotel)
	sh.SetNumber(Addr("J", tr), totals.TotalBusinessDisc)
	sh.SetNumber(Addr("L", tr), totals.TotalMisc)
	sh.SetNumber(Addr("N", tr), totals.TotalConveyance)
	sh.SetNumber(Addr("R", tr), gross)

	// Signature and summary block.
	sh.SetText("B26", "Accounts/Branches")
	sh.SetText("B27", "HOTEL BILLS ON CREDIT")
	sh.SetText("B28", "Paid by Plant / Sales Office.")
	sh.SetText("B30", "SIGNATURE")

	sh.SetText("J30", "TO BE FILLED IN BY INDIVIDUAL")
	sh.SetText("J31", "A. TOTAL EXPENSES - A - COL.11")
	sh.SetText("J33", "B. ADVANCE-")
	sh.SetText("J35", "C. FARE (AS PER COL. 5)")
	sh.SetText("J37", "D. NET PAYABLE TO CO/SELF (A-(B+C))")

	sh.SetNumber("O31", gross)
	sh.SetNumber("O33", totals.TotalAdvance)
	sh.SetNumber("O35", totals.TotalFare)
	netPayable := gross - totals.TotalAdvance - totals.TotalFare
	if netPayable < 0 {
		netPayable = 0
	}
	sh.SetNumber("O37", netPayable)

	sh.SetText("B32", "AUTHORISED BY")
	sh.SetText("B33", "LESS ALLOWED AS PER RULE 6 DD")
	sh.SetText("B35", "NO. OF DAYS X")
	sh.SetText("B36", "DISALLOWED HOTEL I A/c No.6331")

	return sh
}
