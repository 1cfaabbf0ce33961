package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kathiroli/travel-claim/internal/claims"
	"github.com/kathiroli/travel-claim/internal/models"
	"github.com/kathiroli/travel-claim/internal/render"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handlers contains all HTTP request handlers
type Handlers struct {
	service *claims.Service
	logger  *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(service *claims.Service, logger *zap.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// LoginRequest carries the personnel number to open a session for
type LoginRequest struct {
	PersNo string `json:"pers_no"`
}

// PurposeRequest carries the purpose-of-visit text
type PurposeRequest struct {
	Purpose string `json:"purpose"`
}

// EvaluateHotelRequest carries one hotel stay for live recalculation
type EvaluateHotelRequest struct {
	Expense          models.HotelExpense `json:"expense"`
	FallbackLocation string              `json:"fallback_location"`
}

// ExportSelectedRequest names the trips to include in a partial export
type ExportSelectedRequest struct {
	TripIDs []string `json:"trip_ids"`
}

// SessionResponse represents a claim session in API responses
type SessionResponse struct {
	Employee models.Employee `json:"employee"`
	Claim    *models.Claim   `json:"claim"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   "1.0.0",
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: response})
}

// Login handles POST /api/login
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	session, err := h.service.Login(req.PersNo)
	if err != nil {
		h.fail(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    SessionResponse{Employee: session.Employee, Claim: session.Claim},
	})
}

// Logout handles POST /api/logout
func (h *Handlers) Logout(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	h.service.Logout(req.PersNo)
	c.JSON(http.StatusOK, Response{Success: true})
}

// GetClaim handles GET /api/claims/:persNo
func (h *Handlers) GetClaim(c *gin.Context) {
	session, err := h.service.State(c.Param("persNo"))
	if err != nil {
		h.fail(c, "get claim", err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    SessionResponse{Employee: session.Employee, Claim: session.Claim},
	})
}

// SetPurpose handles PUT /api/claims/:persNo/purpose
func (h *Handlers) SetPurpose(c *gin.Context) {
	var req PurposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	if err := h.service.SetPurpose(c.Param("persNo"), req.Purpose); err != nil {
		h.fail(c, "set purpose", err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true})
}

// AddTrip handles POST /api/claims/:persNo/trips
func (h *Handlers) AddTrip(c *gin.Context) {
	var trip models.TripRecord
	if err := c.ShouldBindJSON(&trip); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	id, err := h.service.AddTrip(c.Param("persNo"), trip)
	if err != nil {
		h.fail(c, "add trip", err)
		return
	}

	c.JSON(http.StatusCreated, Response{Success: true, Data: gin.H{"trip_id": id}})
}

// UpdateTrip handles PUT /api/claims/:persNo/trips/:tripID
func (h *Handlers) UpdateTrip(c *gin.Context) {
	var trip models.TripRecord
	if err := c.ShouldBindJSON(&trip); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}
	trip.ID = c.Param("tripID")

	if err := h.service.UpdateTrip(c.Param("persNo"), trip); err != nil {
		h.fail(c, "update trip", err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true})
}

// DeleteTrip handles DELETE /api/claims/:persNo/trips/:tripID.
// Deletion is irreversible and requires ?confirm=true.
func (h *Handlers) DeleteTrip(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"

	if err := h.service.DeleteTrip(c.Param("persNo"), c.Param("tripID"), confirmed); err != nil {
		h.fail(c, "delete trip", err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true})
}

// AddHotel handles POST /api/claims/:persNo/trips/:tripID/hotels. The stay
// is applied through a trip draft so the claim only changes when the edited
// trip still validates as a whole.
func (h *Handlers) AddHotel(c *gin.Context) {
	var expense models.HotelExpense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	draft, err := h.service.EditTripDraft(c.Param("persNo"), c.Param("tripID"))
	if err != nil {
		h.fail(c, "add hotel", err)
		return
	}
	id, err := draft.AddHotel(expense)
	if err != nil {
		h.fail(c, "add hotel", err)
		return
	}
	if err := h.service.Commit(draft); err != nil {
		h.fail(c, "add hotel", err)
		return
	}

	c.JSON(http.StatusCreated, Response{Success: true, Data: gin.H{"hotel_id": id}})
}

// UpdateHotel handles PUT /api/claims/:persNo/trips/:tripID/hotels/:hotelID
func (h *Handlers) UpdateHotel(c *gin.Context) {
	var expense models.HotelExpense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}
	expense.ID = c.Param("hotelID")

	draft, err := h.service.EditTripDraft(c.Param("persNo"), c.Param("tripID"))
	if err != nil {
		h.fail(c, "update hotel", err)
		return
	}
	if err := draft.UpdateHotel(expense); err != nil {
		h.fail(c, "update hotel", err)
		return
	}
	if err := h.service.Commit(draft); err != nil {
		h.fail(c, "update hotel", err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true})
}

// DeleteHotel handles DELETE /api/claims/:persNo/trips/:tripID/hotels/:hotelID.
// Deletion is irreversible and requires ?confirm=true.
func (h *Handlers) DeleteHotel(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"

	draft, err := h.service.EditTripDraft(c.Param("persNo"), c.Param("tripID"))
	if err != nil {
		h.fail(c, "delete hotel", err)
		return
	}
	if err := draft.DeleteHotel(c.Param("hotelID"), confirmed); err != nil {
		h.fail(c, "delete hotel", err)
		return
	}
	if err := h.service.Commit(draft); err != nil {
		h.fail(c, "delete hotel", err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true})
}

// AddConveyance handles POST /api/claims/:persNo/trips/:tripID/conveyance
func (h *Handlers) AddConveyance(c *gin.Context) {
	var entry models.ConveyanceEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	draft, err := h.service.EditTripDraft(c.Param("persNo"), c.Param("tripID"))
	if err != nil {
		h.fail(c, "add conveyance", err)
		return
	}
	id, err := draft.AddConveyance(entry)
	if err != nil {
		h.fail(c, "add conveyance", err)
		return
	}
	if err := h.service.Commit(draft); err != nil {
		h.fail(c, "add conveyance", err)
		return
	}

	c.JSON(http.StatusCreated, Response{Success: true, Data: gin.H{"conveyance_id": id}})
}

// UpdateConveyance handles PUT /api/claims/:persNo/trips/:tripID/conveyance/:convID
func (h *Handlers) UpdateConveyance(c *gin.Context) {
	var entry models.ConveyanceEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}
	entry.ID = c.Param("convID")

	draft, err := h.service.EditTripDraft(c.Param("persNo"), c.Param("tripID"))
	if err != nil {
		h.fail(c, "update conveyance", err)
		return
	}
	if err := draft.UpdateConveyance(entry); err != nil {
		h.fail(c, "update conveyance", err)
		return
	}
	if err := h.service.Commit(draft); err != nil {
		h.fail(c, "update conveyance", err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true})
}

// DeleteConveyance handles DELETE /api/claims/:persNo/trips/:tripID/conveyance/:convID.
// Deletion is irreversible and requires ?confirm=true.
func (h *Handlers) DeleteConveyance(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"

	draft, err := h.service.EditTripDraft(c.Param("persNo"), c.Param("tripID"))
	if err != nil {
		h.fail(c, "delete conveyance", err)
		return
	}
	if err := draft.DeleteConveyance(c.Param("convID"), confirmed); err != nil {
		h.fail(c, "delete conveyance", err)
		return
	}
	if err := h.service.Commit(draft); err != nil {
		h.fail(c, "delete conveyance", err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true})
}

// Rows handles GET /api/claims/:persNo/rows
func (h *Handlers) Rows(c *gin.Context) {
	rows, err := h.service.Rows(c.Param("persNo"))
	if err != nil {
		h.fail(c, "rows", err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: rows})
}

// Summary handles GET /api/claims/:persNo/summary
func (h *Handlers) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Param("persNo"))
	if err != nil {
		h.fail(c, "summary", err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: summary})
}

// EvaluateHotel handles POST /api/claims/:persNo/hotel-eligibility
func (h *Handlers) EvaluateHotel(c *gin.Context) {
	var req EvaluateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	result, err := h.service.EvaluateHotel(c.Param("persNo"), req.Expense, req.FallbackLocation)
	if err != nil {
		h.fail(c, "evaluate hotel", err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: result})
}

// Preview handles GET /api/claims/:persNo/preview, returning the three
// report sheets rendered as HTML tables.
func (h *Handlers) Preview(c *gin.Context) {
	sheets, err := h.service.Sheets(c.Param("persNo"), time.Now())
	if err != nil {
		h.fail(c, "preview", err)
		return
	}

	renderer := render.NewHTMLRenderer()
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(renderer.RenderAll(sheets)))
}

// Export handles GET /api/claims/:persNo/export, streaming the full claim
// workbook as an attachment.
func (h *Handlers) Export(c *gin.Context) {
	result, err := h.service.Export(c.Param("persNo"), time.Now())
	if err != nil {
		h.fail(c, "export", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, xlsxContentType, result.Data)
}

// ExportSelected handles POST /api/claims/:persNo/export/selected
func (h *Handlers) ExportSelected(c *gin.Context) {
	var req ExportSelectedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	result, err := h.service.ExportSelected(c.Param("persNo"), req.TripIDs, time.Now())
	if err != nil {
		h.fail(c, "export selected", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, xlsxContentType, result.Data)
}

// fail maps service errors onto HTTP status codes and writes the error
// envelope.
func (h *Handlers) fail(c *gin.Context, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, claims.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, claims.ErrEmployeeNotFound),
		errors.Is(err, claims.ErrNoSession),
		errors.Is(err, claims.ErrTripNotFound),
		errors.Is(err, claims.ErrHotelNotFound),
		errors.Is(err, claims.ErrConveyanceNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.String("op", op), zap.Error(err))
	} else {
		h.logger.Info("Request rejected", zap.String("op", op), zap.Error(err))
	}

	c.JSON(status, Response{Success: false, Error: err.Error()})
}
