package claims

import (
	"fmt"
	"time"

	"github.com/kathiroli/travel-claim/internal/models"
)

// requireDate parses a wire-format date, reporting a missing-field
// validation error on absent or malformed input.
func requireDate(field, value string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %w", ErrValidation, field, ErrMissingField)
	}
	return t, nil
}

// requireText reports a missing-field validation error for empty input.
func requireText(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s: %w", ErrValidation, field, ErrMissingField)
	}
	return nil
}

// validateDateSpan enforces to >= from.
func validateDateSpan(from, to time.Time) error {
	if to.Before(from) {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidDateSpan)
	}
	return nil
}

// validateTrip checks a trip's required fields and date ordering. Monetary
// fields are not validated; an absent amount degrades to zero in the
// calculators.
func validateTrip(trip *models.TripRecord) error {
	from, err := requireDate("date_from", trip.DateFrom)
	if err != nil {
		return err
	}
	to, err := requireDate("date_to", trip.DateTo)
	if err != nil {
		return err
	}
	if err := validateDateSpan(from, to); err != nil {
		return err
	}
	if err := requireText("from_location", trip.FromLocation); err != nil {
		return err
	}
	if err := requireText("to_location", trip.ToLocation); err != nil {
		return err
	}
	if err := requireText("mode_class", trip.ModeClass); err != nil {
		return err
	}
	for i := range trip.HotelExpenses {
		if err := validateHotel(&trip.HotelExpenses[i]); err != nil {
			return err
		}
	}
	for i := range trip.LocalConveyance {
		if err := validateConveyance(&trip.LocalConveyance[i]); err != nil {
			return err
		}
	}
	return nil
}

// validateHotel checks a hotel expense's required fields and date ordering.
func validateHotel(expense *models.HotelExpense) error {
	from, err := requireDate("date_from", expense.DateFrom)
	if err != nil {
		return err
	}
	to, err := requireDate("date_to", expense.DateTo)
	if err != nil {
		return err
	}
	if err := validateDateSpan(from, to); err != nil {
		return err
	}
	return requireText("particulars", expense.Particulars)
}

// validateConveyance checks a conveyance entry's required fields.
func validateConveyance(entry *models.ConveyanceEntry) error {
	if _, err := requireDate("date", entry.Date); err != nil {
		return err
	}
	if err := requireText("from", entry.From); err != nil {
		return err
	}
	if err := requireText("to", entry.To); err != nil {
		return err
	}
	return requireText("mode_of_travel", entry.ModeOfTravel)
}
