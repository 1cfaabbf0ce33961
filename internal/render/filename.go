package render

import (
	"fmt"
	"time"
)

// ExportFileName returns the download name for a full-claim export.
func ExportFileName(persNo string, date time.Time) string {
	return fmt.Sprintf("TravelClaim_%s_%s.xlsx", persNo, date.Format("2006-01-02"))
}

// SelectedExportFileName returns the download name for an export covering a
// caller-chosen subset of trips.
func SelectedExportFileName(persNo string, date time.Time) string {
	return fmt.Sprintf("TravelClaim_Selected_%s_%s.xlsx", persNo, date.Format("2006-01-02"))
}
