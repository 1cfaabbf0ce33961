package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExportFileNames(t *testing.T) {
	date := time.Date(2025, 3, 20, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "TravelClaim_EMP001_2025-03-20.xlsx", ExportFileName("EMP001", date))
	assert.Equal(t, "TravelClaim_Selected_EMP001_2025-03-20.xlsx", SelectedExportFileName("EMP001", date))
}
