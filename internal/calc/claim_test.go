package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kathiroli/travel-claim/internal/models"
	"github.com/kathiroli/travel-claim/internal/rates"
)

func TestCalculator_Summary(t *testing.T) {
	c := NewCalculator(rates.Default())

	t.Run("folds all trips", func(t *testing.T) {
		first := sampleTrip()
		second := sampleTrip()
		second.ID = "trip_2"
		second.Fare = 1000
		second.Advance = 0
		second.MiscExpenses = 0
		second.BusinessDisc = 0
		second.HotelExpenses = nil
		second.LocalConveyance = nil

		s := c.Summary([]models.TripRecord{first, second}, models.GradeSME)

		assert.Equal(t, 3000.0, s.TotalFare)
		assert.Equal(t, 1800.0, s.TotalHotel)
		assert.Equal(t, 500.0, s.TotalConveyance)
		assert.Equal(t, 500.0, s.TotalMisc)
		assert.Equal(t, 200.0, s.TotalBusinessDisc)
		assert.Equal(t, 3000.0, s.TotalAdvance)
		assert.Equal(t, 5600.0, s.GrossTotal)
		assert.Equal(t, 2600.0, s.NetClaimable)
	})

	t.Run("net claimable floors at zero", func(t *testing.T) {
		trip := sampleTrip()
		trip.Advance = 10000

		s := c.Summary([]models.TripRecord{trip}, models.GradeSME)
		assert.Equal(t, 4600.0, s.GrossTotal)
		assert.Equal(t, 0.0, s.NetClaimable)
	})

	t.Run("empty claim yields zero summary", func(t *testing.T) {
		assert.Equal(t, ClaimSummary{}, c.Summary(nil, models.GradeSME))
	})
}
