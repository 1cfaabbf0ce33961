package calc

import (
	"math"

	"github.com/kathiroli/travel-claim/internal/models"
)

// ClaimSummary holds the claim-wide totals across all trips. The advance
// total is purely a sum of the trip-level advances; there is no separate
// claim-wide advance.
type ClaimSummary struct {
	TotalFare         float64 `json:"total_fare"`
	TotalHotel        float64 `json:"total_hotel"`
	TotalConveyance   float64 `json:"total_conveyance"`
	TotalMisc         float64 `json:"total_misc"`
	TotalBusinessDisc float64 `json:"total_business_disc"`
	TotalAdvance      float64 `json:"total_advance"`
	GrossTotal        float64 `json:"gross_total"`
	NetClaimable      float64 `json:"net_claimable"`
}

// Summary folds all trips into the claim-wide totals and the net claimable
// figure, floored at zero.
func (c *Calculator) Summary(trips []models.TripRecord, grade string) ClaimSummary {
	var s ClaimSummary
	for _, trip := range trips {
		s.TotalFare += trip.Fare
		s.TotalHotel += c.HotelTotal(trip, grade)
		s.TotalConveyance += ConveyanceTotal(trip)
		s.TotalMisc += trip.MiscExpenses
		s.TotalBusinessDisc += trip.BusinessDisc
		s.TotalAdvance += trip.Advance
	}
	s.GrossTotal = s.TotalFare + s.TotalHotel + s.TotalMisc + s.TotalConveyance - s.TotalBusinessDisc
	s.NetClaimable = math.Max(0, s.GrossTotal-s.TotalAdvance)
	return s
}
