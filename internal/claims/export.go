package claims

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/kathiroli/travel-claim/internal/models"
	"github.com/kathiroli/travel-claim/internal/render"
	"github.com/kathiroli/travel-claim/internal/report"
)

// ExportResult is a serialized workbook ready for download.
type ExportResult struct {
	FileName string
	Data     []byte
}

// Sheets builds the three report sheets for the session's full claim.
func (s *Service) Sheets(persNo string, now time.Time) ([]*report.Sheet, error) {
	session, err := s.State(persNo)
	if err != nil {
		return nil, err
	}
	return s.builder.Sheets(report.Input{
		Employee: session.Employee,
		Trips:    session.Claim.Trips,
		Purpose:  session.Claim.PurposeOfVisit,
		Date:     now,
	}), nil
}

// Export serializes the full claim into a workbook. A claim with no trips
// has nothing to export and is rejected.
func (s *Service) Export(persNo string, now time.Time) (*ExportResult, error) {
	session, err := s.State(persNo)
	if err != nil {
		return nil, err
	}
	if len(session.Claim.Trips) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrEmptyClaim)
	}
	name := render.ExportFileName(persNo, now)
	return s.export(session, session.Claim.Trips, name, now)
}

// ExportSelected serializes a workbook covering only the chosen trips, in
// claim order. An empty or unknown selection is a validation error.
func (s *Service) ExportSelected(persNo string, tripIDs []string, now time.Time) (*ExportResult, error) {
	if len(tripIDs) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrNoTripsSelected)
	}

	session, err := s.State(persNo)
	if err != nil {
		return nil, err
	}

	selected := make(map[string]bool, len(tripIDs))
	for _, id := range tripIDs {
		if session.Claim.TripIndex(id) < 0 {
			return nil, fmt.Errorf("%w: %s", ErrTripNotFound, id)
		}
		selected[id] = true
	}

	var trips []models.TripRecord
	for _, trip := range session.Claim.Trips {
		if selected[trip.ID] {
			trips = append(trips, trip)
		}
	}

	name := render.SelectedExportFileName(persNo, now)
	return s.export(session, trips, name, now)
}

// export builds and serializes the workbook over the given trip subset,
// keeping a best-effort copy in the output directory when configured.
func (s *Service) export(session *Session, trips []models.TripRecord, fileName string, now time.Time) (*ExportResult, error) {
	sheets := s.builder.Sheets(report.Input{
		Employee: session.Employee,
		Trips:    trips,
		Purpose:  session.Claim.PurposeOfVisit,
		Date:     now,
	})

	data, err := s.writer.Bytes(sheets)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize claim workbook: %w", err)
	}

	if s.outputDir != "" {
		path := filepath.Join(s.outputDir, fileName)
		if err := s.writer.WriteFile(sheets, path); err != nil {
			// The download still succeeds; the disk copy is not retried.
			s.logger.Warn("Failed to write export copy",
				zap.String("path", path), zap.Error(err))
		}
	}

	s.logger.Info("Claim exported",
		zap.String("pers_no", session.Employee.PersNo),
		zap.String("file", fileName),
		zap.Int("trips", len(trips)))

	return &ExportResult{FileName: fileName, Data: data}, nil
}
