// Package calc implements the pure expense calculators: hotel-stay
// eligibility, per-trip totals and claim-wide summaries. Everything here is
// a deterministic function of its inputs so recalculation is idempotent.
package calc

import (
	"fmt"
	"math"
	"strconv"

	"github.com/kathiroli/travel-claim/internal/models"
	"github.com/kathiroli/travel-claim/internal/rates"
)

// HotelEligibility is the full result of evaluating one hotel stay.
type HotelEligibility struct {
	Days            int     `json:"days"`
	DailyAllowance  float64 `json:"daily_allowance"`
	TotalRoomRent   float64 `json:"total_room_rent"`
	TotalTax        float64 `json:"total_tax"`
	TotalExpense    float64 `json:"total_expense"`
	Eligibility     float64 `json:"eligibility"`
	FinalClaimable  float64 `json:"final_claimable"`
	CityClass       string  `json:"city_class"`
	EligibilityText string  `json:"eligibility_text"`
}

// Calculator evaluates hotel stays, trips and claims against a rate table.
type Calculator struct {
	rates *rates.Table
}

// NewCalculator creates a Calculator backed by the given rate table.
func NewCalculator(t *rates.Table) *Calculator {
	return &Calculator{rates: t}
}

// Hotel evaluates one hotel expense for an employee grade. The stay's
// particulars text drives city classification, falling back to the parent
// trip's destination when the particulars are empty.
//
// Tax is reimbursed in full; only room rent is capped by the allowance.
// The final claimable amount is the lesser of actual spend and eligibility,
// reduced by what the employer already paid directly, floored at zero.
func (c *Calculator) Hotel(expense models.HotelExpense, grade, fallbackLocation string) HotelEligibility {
	days := InclusiveDays(expense.DateFrom, expense.DateTo)
	if days == 0 {
		return HotelEligibility{CityClass: c.rates.DefaultClass()}
	}

	location := expense.Particulars
	if location == "" {
		location = fallbackLocation
	}
	cityClass := c.rates.CityClass(location)
	dailyAllowance := c.rates.AllowanceRate(grade, cityClass)

	totalRoomRent := expense.RoomRentPerDay * float64(days)
	totalTax := expense.TaxPerDay * float64(days)
	totalExpense := totalRoomRent + totalTax
	eligibility := dailyAllowance*float64(days) + totalTax
	finalClaimable := math.Max(0, math.Min(totalExpense, eligibility)-expense.CompanyPaidTotal)

	text := fmt.Sprintf("Sust Rs.%sx %d day= Rs.%.2f + Total Tax Amount Rs.%.2f",
		strconv.FormatFloat(dailyAllowance, 'f', -1, 64), days, dailyAllowance*float64(days), totalTax)

	return HotelEligibility{
		Days:            days,
		DailyAllowance:  dailyAllowance,
		TotalRoomRent:   totalRoomRent,
		TotalTax:        totalTax,
		TotalExpense:    totalExpense,
		Eligibility:     eligibility,
		FinalClaimable:  finalClaimable,
		CityClass:       cityClass,
		EligibilityText: text,
	}
}
