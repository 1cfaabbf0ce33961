package claims

import (
	"github.com/kathiroli/travel-claim/internal/models"
	"github.com/kathiroli/travel-claim/internal/report"
)

// EmployeeDirectory looks up employees by personnel number. A nil result
// with nil error means the number is unknown.
type EmployeeDirectory interface {
	GetByPersNo(persNo string) (*models.Employee, error)
}

// ClaimStore persists claim state as an opaque blob keyed by personnel
// number. Get returns nil for an employee with no saved claim.
type ClaimStore interface {
	Get(persNo string) (*models.Claim, error)
	Save(persNo string, claim *models.Claim) error
}

// SheetBuilder assembles the three report sheets from claim data.
type SheetBuilder interface {
	Sheets(in report.Input) []*report.Sheet
}

// WorkbookWriter serializes report sheets into spreadsheet file contents.
type WorkbookWriter interface {
	Bytes(sheets []*report.Sheet) ([]byte, error)
	WriteFile(sheets []*report.Sheet, path string) error
}
