package claims

import "errors"

// Domain errors for claim editing and export.

var (
	// Validation errors (user-correctable; no state is mutated)
	ErrValidation      = errors.New("validation failed")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidDateSpan = errors.New("to date cannot be earlier than from date")
	ErrNoTripsSelected = errors.New("no trips selected")
	ErrEmptyClaim      = errors.New("no travel entries to export")
	ErrNotConfirmed    = errors.New("deletion requires confirmation")

	// Lookup errors
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrNoSession          = errors.New("no active session")
	ErrTripNotFound       = errors.New("trip not found")
	ErrHotelNotFound      = errors.New("hotel expense not found")
	ErrConveyanceNotFound = errors.New("conveyance entry not found")
)
