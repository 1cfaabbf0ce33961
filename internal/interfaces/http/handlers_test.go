package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kathiroli/travel-claim/internal/calc"
	"github.com/kathiroli/travel-claim/internal/claims"
	"github.com/kathiroli/travel-claim/internal/models"
	"github.com/kathiroli/travel-claim/internal/rates"
	"github.com/kathiroli/travel-claim/internal/report"
)

// stubDirectory implements claims.EmployeeDirectory for testing
type stubDirectory struct {
	employees map[string]*models.Employee
}

func (s *stubDirectory) GetByPersNo(persNo string) (*models.Employee, error) {
	return s.employees[persNo], nil
}

// stubStore implements claims.ClaimStore for testing
type stubStore struct{}

func (s *stubStore) Get(persNo string) (*models.Claim, error)      { return nil, nil }
func (s *stubStore) Save(persNo string, claim *models.Claim) error { return nil }

// stubBuilder implements claims.SheetBuilder for testing
type stubBuilder struct{}

func (s *stubBuilder) Sheets(in report.Input) []*report.Sheet {
	sh := report.NewSheet("TEBILL", 1, 1, nil)
	sh.SetText("A1", "statement")
	return []*report.Sheet{sh}
}

// stubWriter implements claims.WorkbookWriter for testing
type stubWriter struct{}

func (s *stubWriter) Bytes(sheets []*report.Sheet) ([]byte, error) {
	return []byte("xlsx-bytes"), nil
}

func (s *stubWriter) WriteFile(sheets []*report.Sheet, path string) error { return nil }

func testServer() *Server {
	directory := &stubDirectory{employees: map[string]*models.Employee{
		"EMP001": {PersNo: "EMP001", Name: "Kathiroli B", Grade: models.GradeSME},
	}}
	service := claims.NewService(
		directory,
		&stubStore{},
		calc.NewCalculator(rates.Default()),
		&stubBuilder{},
		&stubWriter{},
		"",
		zap.NewNop(),
	)
	return NewServer(DefaultServerConfig(), service, zap.NewNop())
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, srv *Server) {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/api/login", LoginRequest{PersNo: "EMP001"})
	require.Equal(t, http.StatusOK, rec.Code)
}

func validTripBody() models.TripRecord {
	return models.TripRecord{
		DateFrom:     "2025-03-10",
		DateTo:       "2025-03-12",
		FromLocation: "Coimbatore",
		ToLocation:   "Mumbai",
		ModeClass:    "Train 2A",
		Fare:         2000,
	}
}

func TestHandlers_HealthCheck(t *testing.T) {
	srv := testServer()

	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestHandlers_Login(t *testing.T) {
	srv := testServer()

	t.Run("known employee", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/login", LoginRequest{PersNo: "EMP001"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Kathiroli B")
	})

	t.Run("unknown employee", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/login", LoginRequest{PersNo: "EMP999"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty personnel number", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/login", LoginRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlers_TripLifecycle(t *testing.T) {
	srv := testServer()
	login(t, srv)

	var tripID string

	t.Run("add trip", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/claims/EMP001/trips", validTripBody())
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Data struct {
				TripID string `json:"trip_id"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		tripID = resp.Data.TripID
		require.NotEmpty(t, tripID)
	})

	t.Run("invalid trip is rejected", func(t *testing.T) {
		trip := validTripBody()
		trip.ModeClass = ""
		rec := doJSON(t, srv, http.MethodPost, "/api/claims/EMP001/trips", trip)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update trip", func(t *testing.T) {
		trip := validTripBody()
		trip.Fare = 3500
		rec := doJSON(t, srv, http.MethodPut, "/api/claims/EMP001/trips/"+tripID, trip)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rows reflect the trip", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/claims/EMP001/rows", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), tripID)
		assert.Contains(t, rec.Body.String(), "3500")
	})

	t.Run("summary reflects the trip", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/claims/EMP001/summary", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "gross_total")
	})

	t.Run("delete without confirmation is rejected", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodDelete, "/api/claims/EMP001/trips/"+tripID, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete with confirmation", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/claims/EMP001/trips/%s?confirm=true", tripID), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("deleting again is not found", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/claims/EMP001/trips/%s?confirm=true", tripID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandlers_SetPurpose(t *testing.T) {
	srv := testServer()
	login(t, srv)

	rec := doJSON(t, srv, http.MethodPut, "/api/claims/EMP001/purpose", PurposeRequest{Purpose: "Plant audit"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/claims/EMP001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Plant audit")
}

func TestHandlers_NoSession(t *testing.T) {
	srv := testServer()

	rec := doJSON(t, srv, http.MethodGet, "/api/claims/EMP001", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlers_EvaluateHotel(t *testing.T) {
	srv := testServer()
	login(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/api/claims/EMP001/hotel-eligibility", EvaluateHotelRequest{
		Expense: models.HotelExpense{
			DateFrom:       "2025-03-10",
			DateTo:         "2025-03-12",
			Particulars:    "Mumbai",
			RoomRentPerDay: 2000,
			TaxPerDay:      200,
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "final_claimable")
	assert.Contains(t, rec.Body.String(), "4200")
}

func TestHandlers_Preview(t *testing.T) {
	srv := testServer()
	login(t, srv)

	rec := doJSON(t, srv, http.MethodGet, "/api/claims/EMP001/preview", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "excel-sheet")
	assert.Contains(t, rec.Body.String(), "statement")
}

func createTrip(t *testing.T, srv *Server) string {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/api/claims/EMP001/trips", validTripBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data["trip_id"]
}

func validHotelBody() models.HotelExpense {
	return models.HotelExpense{
		DateFrom:       "2025-03-10",
		DateTo:         "2025-03-12",
		Particulars:    "Hotel Sea View, Mumbai",
		RoomRentPerDay: 800,
		TaxPerDay:      100,
	}
}

func validConveyanceBody() models.ConveyanceEntry {
	return models.ConveyanceEntry{
		Date:         "2025-03-11",
		From:         "Hotel",
		To:           "Plant",
		ModeOfTravel: "Auto",
		Amount:       300,
	}
}

func TestHandlers_HotelCRUD(t *testing.T) {
	srv := testServer()
	login(t, srv)
	tripID := createTrip(t, srv)
	base := fmt.Sprintf("/api/claims/EMP001/trips/%s/hotels", tripID)

	var hotelID string
	t.Run("add hotel", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, base, validHotelBody())
		require.Equal(t, http.StatusCreated, rec.Code)
		var resp struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		hotelID = resp.Data["hotel_id"]
		require.NotEmpty(t, hotelID)
	})

	t.Run("stay shows up in the claim", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/claims/EMP001", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Hotel Sea View")
	})

	t.Run("missing particulars is rejected", func(t *testing.T) {
		expense := validHotelBody()
		expense.Particulars = ""
		rec := doJSON(t, srv, http.MethodPost, base, expense)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown trip is not found", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/claims/EMP001/trips/trip_missing/hotels", validHotelBody())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update hotel", func(t *testing.T) {
		expense := validHotelBody()
		expense.RoomRentPerDay = 950
		rec := doJSON(t, srv, http.MethodPut, base+"/"+hotelID, expense)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, srv, http.MethodGet, "/api/claims/EMP001", nil)
		assert.Contains(t, rec.Body.String(), "950")
	})

	t.Run("updating an unknown stay is not found", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPut, base+"/hotel_missing", validHotelBody())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete without confirmation is rejected", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodDelete, base+"/"+hotelID, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete with confirmation", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodDelete, base+"/"+hotelID+"?confirm=true", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, srv, http.MethodDelete, base+"/"+hotelID+"?confirm=true", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandlers_ConveyanceCRUD(t *testing.T) {
	srv := testServer()
	login(t, srv)
	tripID := createTrip(t, srv)
	base := fmt.Sprintf("/api/claims/EMP001/trips/%s/conveyance", tripID)

	var convID string
	t.Run("add conveyance", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, base, validConveyanceBody())
		require.Equal(t, http.StatusCreated, rec.Code)
		var resp struct {
			Data map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		convID = resp.Data["conveyance_id"]
		require.NotEmpty(t, convID)
	})

	t.Run("missing mode of travel is rejected", func(t *testing.T) {
		entry := validConveyanceBody()
		entry.ModeOfTravel = ""
		rec := doJSON(t, srv, http.MethodPost, base, entry)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown trip is not found", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/claims/EMP001/trips/trip_missing/conveyance", validConveyanceBody())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update conveyance", func(t *testing.T) {
		entry := validConveyanceBody()
		entry.Amount = 450
		rec := doJSON(t, srv, http.MethodPut, base+"/"+convID, entry)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, srv, http.MethodGet, "/api/claims/EMP001", nil)
		assert.Contains(t, rec.Body.String(), "450")
	})

	t.Run("updating an unknown entry is not found", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPut, base+"/conv_missing", validConveyanceBody())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete without confirmation is rejected", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodDelete, base+"/"+convID, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete with confirmation", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodDelete, base+"/"+convID+"?confirm=true", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, srv, http.MethodDelete, base+"/"+convID+"?confirm=true", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandlers_Export(t *testing.T) {
	srv := testServer()
	login(t, srv)

	t.Run("exporting an empty claim is rejected", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/claims/EMP001/export", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("full export streams an attachment", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/claims/EMP001/trips", validTripBody())
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, srv, http.MethodGet, "/api/claims/EMP001/export", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "TravelClaim_EMP001_")
		assert.Equal(t, "xlsx-bytes", rec.Body.String())
	})

	t.Run("selected export rejects an empty selection", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/claims/EMP001/export/selected", ExportSelectedRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("selected export rejects unknown trips", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/claims/EMP001/export/selected", ExportSelectedRequest{
			TripIDs: []string{"trip_missing"},
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("selected export streams the chosen trips", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/claims/EMP001/trips", validTripBody())
		require.Equal(t, http.StatusCreated, rec.Code)
		var resp struct {
			Data struct {
				TripID string `json:"trip_id"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		rec = doJSON(t, srv, http.MethodPost, "/api/claims/EMP001/export/selected", ExportSelectedRequest{
			TripIDs: []string{resp.Data.TripID},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "TravelClaim_Selected_EMP001_")
	})
}
