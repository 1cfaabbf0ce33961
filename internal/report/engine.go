package report

import (
	"time"

	"go.uber.org/zap"

	"github.com/kathiroli/travel-claim/internal/calc"
	"github.com/kathiroli/travel-claim/internal/models"
)

// Input bundles everything the sheets are built from.
type Input struct {
	Employee models.Employee
	Trips    []models.TripRecord
	Purpose  string
	Date     time.Time // statement header timestamp
}

// Engine maps aggregated claim data into the three fixed-layout sheets.
type Engine struct {
	calc    *calc.Calculator
	layout  Layout
	orgName string
	logger  *zap.Logger
}

// NewEngine creates a layout engine for the given organization name.
func NewEngine(c *calc.Calculator, layout Layout, orgName string, logger *zap.Logger) *Engine {
	return &Engine{calc: c, layout: layout, orgName: orgName, logger: logger}
}

// Sheets builds the statement, hotel-detail and conveyance-detail sheets in
// workbook order.
func (e *Engine) Sheets(in Input) []*Sheet {
	return []*Sheet{
		e.Statement(in),
		e.HotelDetail(in),
		e.ConveyanceDetail(in),
	}
}

// Locations returns the distinct locations visited across all trips, in
// order of first appearance, comma-joined. Both endpoints of every trip
// count as visited.
func Locations(trips []models.TripRecord) string {
	seen := make(map[string]bool)
	var list string
	add := func(loc string) {
		if loc == "" || seen[loc] {
			return
		}
		seen[loc] = true
		if list != "" {
			list += ", "
		}
		list += loc
	}
	for _, trip := range trips {
		add(trip.FromLocation)
		add(trip.ToLocation)
	}
	return list
}
