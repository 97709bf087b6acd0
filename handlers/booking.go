// handlers/booking.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentora/models"
	"rentora/services/booking"
	"rentora/utils"
)

// BookingHandler exposes the validate / confirm / cancel operations.
type BookingHandler struct {
	Booking booking.Service
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Booking: svc, Logger: logger}
}

// ValidateBooking handles POST /api/bookings/validate. It runs the policy
// gates against the current snapshot without reserving anything, so the UI
// can show problems before the customer commits.
func (h *BookingHandler) ValidateBooking(c *gin.Context) {
	var input struct {
		ListingID string `json:"listingId" binding:"required"`
		StartDate string `json:"startDate" binding:"required"`
		EndDate   string `json:"endDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	err := h.Booking.ValidateRange(c.Request.Context(), input.ListingID, input.StartDate, input.EndDate, time.Now())
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ConfirmBooking handles POST /api/bookings: validate, price and commit
// under the listing's optimistic version guard.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		UserID string              `json:"userId" binding:"required"`
		Quote  models.QuoteRequest `json:"request"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, quote, err := h.Booking.ConfirmBooking(c.Request.Context(), input.Quote, input.UserID)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	h.Logger.Info("booking confirmed",
		zap.String("bookingId", b.ID),
		zap.String("listingId", b.ListingID),
		zap.Float64("total", b.Total))
	c.JSON(http.StatusCreated, gin.H{"booking": b, "quote": quote})
}

// CancelBooking handles PATCH /api/bookings/:id/cancel. Cancellation frees
// the booked dates immediately; the booking record itself is kept.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("id")
	listingID := c.Query("listingId")
	if listingID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "listingId query parameter is required")
		return
	}

	b, err := h.Booking.CancelBooking(c.Request.Context(), listingID, bookingID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
