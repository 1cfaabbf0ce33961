// Package claims owns the in-memory claim sessions: login against the
// employee directory, trip and sub-record editing through cloned drafts,
// recalculated summaries, persistence after every committed mutation and
// workbook export.
package claims

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/kathiroli/travel-claim/internal/calc"
	"github.com/kathiroli/travel-claim/internal/models"
)

// Session is one employee's active claim. The claim object is exclusively
// owned by the session; callers always receive clones.
type Session struct {
	Employee models.Employee
	Claim    *models.Claim
}

// Service manages claim sessions and their persistence.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*Session

	directory EmployeeDirectory
	store     ClaimStore
	calc      *calc.Calculator
	builder   SheetBuilder
	writer    WorkbookWriter
	outputDir string
	logger    *zap.Logger
}

// NewService creates a claim service. outputDir may be empty to disable the
// on-disk export copy.
func NewService(
	directory EmployeeDirectory,
	store ClaimStore,
	calculator *calc.Calculator,
	builder SheetBuilder,
	writer WorkbookWriter,
	outputDir string,
	logger *zap.Logger,
) *Service {
	return &Service{
		sessions:  make(map[string]*Session),
		directory: directory,
		store:     store,
		calc:      calculator,
		builder:   builder,
		writer:    writer,
		outputDir: outputDir,
		logger:    logger,
	}
}

// Login validates the personnel number against the directory and opens a
// session, hydrated from persisted claim state when present. Logging in
// twice resumes the existing session.
func (s *Service) Login(persNo string) (*Session, error) {
	if persNo == "" {
		return nil, fmt.Errorf("%w: pers_no: %w", ErrValidation, ErrMissingField)
	}

	employee, err := s.directory.GetByPersNo(persNo)
	if err != nil {
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmployeeNotFound, persNo)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[persNo]; ok {
		return s.snapshot(existing), nil
	}

	claim, err := s.store.Get(persNo)
	if err != nil {
		// Unreadable saved state starts an empty claim; the session stays
		// usable and the next save rewrites the blob.
		s.logger.Warn("Failed to load saved claim state, starting empty",
			zap.String("pers_no", persNo), zap.Error(err))
		claim = nil
	}
	if claim == nil {
		claim = &models.Claim{}
	}

	session := &Session{Employee: *employee, Claim: claim}
	s.sessions[persNo] = session

	s.logger.Info("Session opened",
		zap.String("pers_no", persNo),
		zap.Int("trips", len(claim.Trips)))

	return s.snapshot(session), nil
}

// Logout closes the session and drops its in-memory state.
func (s *Service) Logout(persNo string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, persNo)
	s.logger.Info("Session closed", zap.String("pers_no", persNo))
}

// State returns a snapshot of the session's employee and claim.
func (s *Service) State(persNo string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(persNo)
	if err != nil {
		return nil, err
	}
	return s.snapshot(session), nil
}

// SetPurpose updates the claim's purpose-of-visit text.
func (s *Service) SetPurpose(persNo, purpose string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(persNo)
	if err != nil {
		return err
	}
	session.Claim.PurposeOfVisit = purpose
	s.persist(persNo, session)
	return nil
}

// AddTrip validates and appends a trip, assigning an id when absent.
// Returns the trip id.
func (s *Service) AddTrip(persNo string, trip models.TripRecord) (string, error) {
	if err := validateTrip(&trip); err != nil {
		return "", err
	}
	if trip.ID == "" {
		trip.ID = NewID()
	}
	ensureSubRecordIDs(&trip)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(persNo)
	if err != nil {
		return "", err
	}
	session.Claim.Trips = append(session.Claim.Trips, *trip.Clone())
	s.persist(persNo, session)
	return trip.ID, nil
}

// UpdateTrip validates and atomically replaces the trip with the same id.
func (s *Service) UpdateTrip(persNo string, trip models.TripRecord) error {
	if err := validateTrip(&trip); err != nil {
		return err
	}
	ensureSubRecordIDs(&trip)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(persNo)
	if err != nil {
		return err
	}
	idx := session.Claim.TripIndex(trip.ID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrTripNotFound, trip.ID)
	}
	session.Claim.Trips[idx] = *trip.Clone()
	s.persist(persNo, session)
	return nil
}

// DeleteTrip removes a trip. Deletion is irreversible, so the caller must
// pass explicit confirmation.
func (s *Service) DeleteTrip(persNo, tripID string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("%w: %w", ErrValidation, ErrNotConfirmed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(persNo)
	if err != nil {
		return err
	}
	idx := session.Claim.TripIndex(tripID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrTripNotFound, tripID)
	}
	session.Claim.Trips = append(session.Claim.Trips[:idx], session.Claim.Trips[idx+1:]...)
	s.persist(persNo, session)
	return nil
}

// Rows returns the per-trip table summaries for the session's claim.
func (s *Service) Rows(persNo string) ([]calc.RowSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(persNo)
	if err != nil {
		return nil, err
	}
	return s.calc.Rows(session.Claim.Trips, session.Employee.Grade), nil
}

// Summary returns the claim-wide totals for the session's claim.
func (s *Service) Summary(persNo string) (calc.ClaimSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(persNo)
	if err != nil {
		return calc.ClaimSummary{}, err
	}
	return s.calc.Summary(session.Claim.Trips, session.Employee.Grade), nil
}

// EvaluateHotel runs the eligibility calculation for a single hotel stay
// against the session's grade, for live recalculation while editing.
func (s *Service) EvaluateHotel(persNo string, expense models.HotelExpense, fallbackLocation string) (calc.HotelEligibility, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(persNo)
	if err != nil {
		return calc.HotelEligibility{}, err
	}
	return s.calc.Hotel(expense, session.Employee.Grade, fallbackLocation), nil
}

// session returns the live session for persNo; callers hold s.mu.
func (s *Service) session(persNo string) (*Session, error) {
	session, ok := s.sessions[persNo]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSession, persNo)
	}
	return session, nil
}

// snapshot clones session state for handing outside the lock.
func (s *Service) snapshot(session *Session) *Session {
	return &Session{Employee: session.Employee, Claim: session.Claim.Clone()}
}

// persist saves the claim blob after a committed mutation. On failure the
// in-memory state stays authoritative and the write is not retried; the
// next committed mutation rewrites the full blob.
func (s *Service) persist(persNo string, session *Session) {
	if err := s.store.Save(persNo, session.Claim); err != nil {
		s.logger.Warn("Failed to persist claim state, in-memory state remains authoritative",
			zap.String("pers_no", persNo), zap.Error(err))
	}
}

// ensureSubRecordIDs assigns ids to nested records that arrive without one.
func ensureSubRecordIDs(trip *models.TripRecord) {
	for i := range trip.HotelExpenses {
		if trip.HotelExpenses[i].ID == "" {
			trip.HotelExpenses[i].ID = NewID()
		}
	}
	for i := range trip.LocalConveyance {
		if trip.LocalConveyance[i].ID == "" {
			trip.LocalConveyance[i].ID = NewID()
		}
	}
}

// NewID returns a short random record identifier.
func NewID() string {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return "id_" + hex.EncodeToString(buf)
}
