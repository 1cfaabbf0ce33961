package claims

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kathiroli/travel-claim/internal/calc"
	"github.com/kathiroli/travel-claim/internal/rates"
)

var exportDate = time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)

func TestService_Sheets(t *testing.T) {
	fx := newFixture()
	_, err := fx.service.Login("EMP001")
	require.NoError(t, err)
	_, err = fx.service.AddTrip("EMP001", validTrip())
	require.NoError(t, err)
	require.NoError(t, fx.service.SetPurpose("EMP001", "Plant audit"))

	sheets, err := fx.service.Sheets("EMP001", exportDate)
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	assert.Equal(t, "EMP001", fx.builder.lastInput.Employee.PersNo)
	assert.Equal(t, "Plant audit", fx.builder.lastInput.Purpose)
	assert.Equal(t, exportDate, fx.builder.lastInput.Date)
	assert.Len(t, fx.builder.lastInput.Trips, 1)
}

func TestService_Export(t *testing.T) {
	t.Run("serializes the full claim", func(t *testing.T) {
		fx := newFixture()
		_, err := fx.service.Login("EMP001")
		require.NoError(t, err)
		_, err = fx.service.AddTrip("EMP001", validTrip())
		require.NoError(t, err)

		result, err := fx.service.Export("EMP001", exportDate)
		require.NoError(t, err)
		assert.Equal(t, "TravelClaim_EMP001_2025-03-20.xlsx", result.FileName)
		assert.Equal(t, []byte("xlsx-bytes"), result.Data)
	})

	t.Run("requires a session", func(t *testing.T) {
		fx := newFixture()

		_, err := fx.service.Export("EMP001", exportDate)
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("empty claim is a validation error", func(t *testing.T) {
		fx := newFixture()
		_, err := fx.service.Login("EMP001")
		require.NoError(t, err)

		_, err = fx.service.Export("EMP001", exportDate)
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, ErrEmptyClaim)
	})

	t.Run("serialization failure propagates", func(t *testing.T) {
		fx := newFixture()
		_, err := fx.service.Login("EMP001")
		require.NoError(t, err)
		_, err = fx.service.AddTrip("EMP001", validTrip())
		require.NoError(t, err)
		fx.writer.bytesErr = errors.New("encode failed")

		_, err = fx.service.Export("EMP001", exportDate)
		assert.Error(t, err)
	})

	t.Run("keeps a copy in the output directory", func(t *testing.T) {
		fx := newFixture()
		service := NewService(fx.directory, fx.store, calc.NewCalculator(rates.Default()),
			fx.builder, fx.writer, "exports", zap.NewNop())
		_, err := service.Login("EMP001")
		require.NoError(t, err)
		_, err = service.AddTrip("EMP001", validTrip())
		require.NoError(t, err)

		_, err = service.Export("EMP001", exportDate)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("exports", "TravelClaim_EMP001_2025-03-20.xlsx"), fx.writer.writtenPath)
	})

	t.Run("disk copy failure does not fail the export", func(t *testing.T) {
		fx := newFixture()
		fx.writer.writeErr = errors.New("disk full")
		service := NewService(fx.directory, fx.store, calc.NewCalculator(rates.Default()),
			fx.builder, fx.writer, "exports", zap.NewNop())
		_, err := service.Login("EMP001")
		require.NoError(t, err)
		_, err = service.AddTrip("EMP001", validTrip())
		require.NoError(t, err)

		result, err := service.Export("EMP001", exportDate)
		require.NoError(t, err)
		assert.Equal(t, []byte("xlsx-bytes"), result.Data)
	})
}

func TestService_ExportSelected(t *testing.T) {
	setup := func(t *testing.T) (*serviceFixture, []string) {
		t.Helper()
		fx := newFixture()
		_, err := fx.service.Login("EMP001")
		require.NoError(t, err)

		var ids []string
		for i := 0; i < 3; i++ {
			id, err := fx.service.AddTrip("EMP001", validTrip())
			require.NoError(t, err)
			ids = append(ids, id)
		}
		return fx, ids
	}

	t.Run("covers only the chosen trips in claim order", func(t *testing.T) {
		fx, ids := setup(t)

		result, err := fx.service.ExportSelected("EMP001", []string{ids[2], ids[0]}, exportDate)
		require.NoError(t, err)
		assert.Equal(t, "TravelClaim_Selected_EMP001_2025-03-20.xlsx", result.FileName)

		// Selection order does not matter; claim order wins.
		require.Len(t, fx.builder.lastInput.Trips, 2)
		assert.Equal(t, ids[0], fx.builder.lastInput.Trips[0].ID)
		assert.Equal(t, ids[2], fx.builder.lastInput.Trips[1].ID)
	})

	t.Run("empty selection is a validation error", func(t *testing.T) {
		fx, _ := setup(t)

		_, err := fx.service.ExportSelected("EMP001", nil, exportDate)
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, ErrNoTripsSelected)
	})

	t.Run("unknown trip id", func(t *testing.T) {
		fx, ids := setup(t)

		_, err := fx.service.ExportSelected("EMP001", []string{ids[0], "trip_missing"}, exportDate)
		assert.ErrorIs(t, err, ErrTripNotFound)
	})
}
