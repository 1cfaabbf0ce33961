package calc

import (
	"math"

	"github.com/kathiroli/travel-claim/internal/models"
)

// TripTotals carries the derived figures for one trip.
type TripTotals struct {
	HotelTotal      float64 `json:"hotel_total"`
	ConveyanceTotal float64 `json:"conveyance_total"`
	Gross           float64 `json:"gross"`
	Net             float64 `json:"net"`
}

// RowSummary is the per-trip view consumed by table rendering.
type RowSummary struct {
	TripID          string  `json:"trip_id"`
	DateRange       string  `json:"date_range"`
	FromLocation    string  `json:"from_location"`
	ToLocation      string  `json:"to_location"`
	ModeClass       string  `json:"mode_class"`
	Fare            float64 `json:"fare"`
	HotelTotal      float64 `json:"hotel_total"`
	BusinessDisc    float64 `json:"business_disc"`
	MiscExpenses    float64 `json:"misc_expenses"`
	ConveyanceTotal float64 `json:"conveyance_total"`
	Advance         float64 `json:"advance"`
	TouristTaxi     bool    `json:"tourist_taxi"`
	CompanyCar      bool    `json:"company_car"`
	Total           float64 `json:"total"`
}

// HotelTotal sums the final claimable amount over a trip's hotel expenses,
// using the trip's destination as the classification fallback.
func (c *Calculator) HotelTotal(trip models.TripRecord, grade string) float64 {
	var total float64
	for _, expense := range trip.HotelExpenses {
		total += c.Hotel(expense, grade, trip.ToLocation).FinalClaimable
	}
	return total
}

// ConveyanceTotal sums the amounts of a trip's local conveyance entries.
func ConveyanceTotal(trip models.TripRecord) float64 {
	var total float64
	for _, entry := range trip.LocalConveyance {
		total += entry.Amount
	}
	return total
}

// Trip computes a trip's gross and net figures. The advance is trip-scoped
// and the net is floored at zero.
func (c *Calculator) Trip(trip models.TripRecord, grade string) TripTotals {
	hotel := c.HotelTotal(trip, grade)
	conveyance := ConveyanceTotal(trip)
	gross := trip.Fare + hotel + trip.MiscExpenses - trip.BusinessDisc + conveyance
	return TripTotals{
		HotelTotal:      hotel,
		ConveyanceTotal: conveyance,
		Gross:           gross,
		Net:             math.Max(0, gross-trip.Advance),
	}
}

// Row builds the table-rendering summary for one trip.
func (c *Calculator) Row(trip models.TripRecord, grade string) RowSummary {
	totals := c.Trip(trip, grade)
	return RowSummary{
		TripID:          trip.ID,
		DateRange:       DateRangeText(trip.DateFrom, trip.DateTo),
		FromLocation:    trip.FromLocation,
		ToLocation:      trip.ToLocation,
		ModeClass:       trip.ModeClass,
		Fare:            trip.Fare,
		HotelTotal:      totals.HotelTotal,
		BusinessDisc:    trip.BusinessDisc,
		MiscExpenses:    trip.MiscExpenses,
		ConveyanceTotal: totals.ConveyanceTotal,
		Advance:         trip.Advance,
		TouristTaxi:     trip.TouristTaxi,
		CompanyCar:      trip.CompanyCar,
		Total:           totals.Gross,
	}
}

// Rows builds row summaries for every trip in display order.
func (c *Calculator) Rows(trips []models.TripRecord, grade string) []RowSummary {
	rows := make([]RowSummary, 0, len(trips))
	for _, trip := range trips {
		rows = append(rows, c.Row(trip, grade))
	}
	return rows
}
