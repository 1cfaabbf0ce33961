package claims

import (
	"fmt"

	"github.com/kathiroli/travel-claim/internal/models"
)

// TripDraft is a scoped edit transaction over a cloned trip record. All
// sub-record edits happen on the clone; nothing touches the claim until
// Commit, and discarding the draft discards every change.
type TripDraft struct {
	persNo string
	isNew  bool
	Trip   *models.TripRecord
}

// NewTripDraft opens a draft for a brand-new trip.
func (s *Service) NewTripDraft(persNo string) (*TripDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.session(persNo); err != nil {
		return nil, err
	}
	return &TripDraft{
		persNo: persNo,
		isNew:  true,
		Trip:   &models.TripRecord{ID: NewID()},
	}, nil
}

// EditTripDraft opens a draft over a deep copy of an existing trip.
func (s *Service) EditTripDraft(persNo, tripID string) (*TripDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(persNo)
	if err != nil {
		return nil, err
	}
	idx := session.Claim.TripIndex(tripID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTripNotFound, tripID)
	}
	return &TripDraft{persNo: persNo, Trip: session.Claim.Trips[idx].Clone()}, nil
}

// Commit validates the draft and applies it to the claim atomically: a new
// trip is appended, an edited trip replaces the original. The draft must
// not be reused afterwards.
func (s *Service) Commit(draft *TripDraft) error {
	if draft.isNew {
		_, err := s.AddTrip(draft.persNo, *draft.Trip)
		return err
	}
	return s.UpdateTrip(draft.persNo, *draft.Trip)
}

// AddHotel appends a hotel expense to the draft after validation.
func (d *TripDraft) AddHotel(expense models.HotelExpense) (string, error) {
	if err := validateHotel(&expense); err != nil {
		return "", err
	}
	if expense.ID == "" {
		expense.ID = NewID()
	}
	d.Trip.HotelExpenses = append(d.Trip.HotelExpenses, expense)
	return expense.ID, nil
}

// UpdateHotel replaces the hotel expense with the same id.
func (d *TripDraft) UpdateHotel(expense models.HotelExpense) error {
	if err := validateHotel(&expense); err != nil {
		return err
	}
	for i := range d.Trip.HotelExpenses {
		if d.Trip.HotelExpenses[i].ID == expense.ID {
			d.Trip.HotelExpenses[i] = expense
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrHotelNotFound, expense.ID)
}

// DeleteHotel removes a hotel expense; the caller must confirm.
func (d *TripDraft) DeleteHotel(id string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("%w: %w", ErrValidation, ErrNotConfirmed)
	}
	for i := range d.Trip.HotelExpenses {
		if d.Trip.HotelExpenses[i].ID == id {
			d.Trip.HotelExpenses = append(d.Trip.HotelExpenses[:i], d.Trip.HotelExpenses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrHotelNotFound, id)
}

// AddConveyance appends a conveyance entry to the draft after validation.
func (d *TripDraft) AddConveyance(entry models.ConveyanceEntry) (string, error) {
	if err := validateConveyance(&entry); err != nil {
		return "", err
	}
	if entry.ID == "" {
		entry.ID = NewID()
	}
	d.Trip.LocalConveyance = append(d.Trip.LocalConveyance, entry)
	return entry.ID, nil
}

// UpdateConveyance replaces the conveyance entry with the same id.
func (d *TripDraft) UpdateConveyance(entry models.ConveyanceEntry) error {
	if err := validateConveyance(&entry); err != nil {
		return err
	}
	for i := range d.Trip.LocalConveyance {
		if d.Trip.LocalConveyance[i].ID == entry.ID {
			d.Trip.LocalConveyance[i] = entry
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrConveyanceNotFound, entry.ID)
}

// DeleteConveyance removes a conveyance entry; the caller must confirm.
func (d *TripDraft) DeleteConveyance(id string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("%w: %w", ErrValidation, ErrNotConfirmed)
	}
	for i := range d.Trip.LocalConveyance {
		if d.Trip.LocalConveyance[i].ID == id {
			d.Trip.LocalConveyance = append(d.Trip.LocalConveyance[:i], d.Trip.LocalConveyance[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrConveyanceNotFound, id)
}
