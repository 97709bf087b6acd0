// handlers/vendor.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"rentora/database/repository"
	"rentora/models"
	"rentora/services/calendar"
	"rentora/services/pricing"
	"rentora/utils"
)

// VendorHandler covers the vendor-side editing surface: pricing profile,
// seasonal rates and the manual availability calendar.
type VendorHandler struct {
	Listings repository.ListingRepository
	Logger   *zap.Logger
}

func NewVendorHandler(listings repository.ListingRepository, logger *zap.Logger) *VendorHandler {
	return &VendorHandler{Listings: listings, Logger: logger}
}

// CreateListing handles POST /api/vendor/listings. Listing media, search
// and the full CRUD screens live elsewhere; this only seeds the document
// the engine prices against.
func (h *VendorHandler) CreateListing(c *gin.Context) {
	var input struct {
		VendorID string                   `json:"vendorId" binding:"required"`
		Title    string                   `json:"title" binding:"required"`
		Kind     models.ListingKind       `json:"kind" binding:"required"`
		Pricing  models.PricingProfile    `json:"pricing"`
		State    models.AvailabilityState `json:"availability"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Kind != models.ListingCar && input.Kind != models.ListingApartment {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "kind must be car or apartment")
		return
	}

	listing := &models.Listing{
		ID:           uuid.New().String(),
		VendorID:     input.VendorID,
		Title:        input.Title,
		Kind:         input.Kind,
		Pricing:      input.Pricing,
		Availability: input.State,
	}
	if err := h.Listings.Create(c.Request.Context(), listing); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"listing": listing})
}

// UpdatePricing handles PUT /api/vendor/listings/:id/pricing.
func (h *VendorHandler) UpdatePricing(c *gin.Context) {
	var profile models.PricingProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if profile.BasePrice < 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "basePrice must not be negative")
		return
	}

	id := c.Param("id")
	if err := h.Listings.UpdatePricing(c.Request.Context(), id, profile); err != nil {
		respondEngineError(c, err)
		return
	}
	h.Logger.Info("pricing profile updated", zap.String("listingId", id))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ReplaceSeasons handles PUT /api/vendor/listings/:id/seasons. Seasons may
// overlap freely; the engine resolves precedence at quote time.
func (h *VendorHandler) ReplaceSeasons(c *gin.Context) {
	var input struct {
		Seasons []models.SeasonalRate `json:"seasons"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	for i := range input.Seasons {
		s := &input.Seasons[i]
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		start, err := models.ParseDate(s.StartDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		end, err := models.ParseDate(s.EndDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if end.Before(start) || s.Price < 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid input",
				"season end must not precede start and price must not be negative")
			return
		}
	}

	id := c.Param("id")
	if err := h.Listings.ReplaceSeasonalRates(c.Request.Context(), id, input.Seasons); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "seasons": len(input.Seasons)})
}

// calendarRangeInput is shared by the block/unblock endpoints. Both dates
// are inclusive, matching how vendors think about blocking days off.
type calendarRangeInput struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// editManualBlocks loads the listing, applies fn to its calendar and
// persists the result.
func (h *VendorHandler) editManualBlocks(c *gin.Context, fn func(cal *calendar.Calendar) error) {
	id := c.Param("id")
	listing, err := h.Listings.GetByID(c.Request.Context(), id)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	cal := calendar.FromState(listing.Availability)
	if err := fn(cal); err != nil {
		respondEngineError(c, err)
		return
	}

	state := cal.State()
	if err := h.Listings.SetAvailability(c.Request.Context(), id, state); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "manualBlocks": len(state.ManualBlocks)})
}

// BlockCalendar handles POST /api/vendor/listings/:id/calendar/block.
func (h *VendorHandler) BlockCalendar(c *gin.Context) {
	var input calendarRangeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.editManualBlocks(c, func(cal *calendar.Calendar) error {
		start, err := models.ParseDate(input.StartDate)
		if err != nil {
			return pricing.NewValidationError("startDate", err.Error())
		}
		end, err := models.ParseDate(input.EndDate)
		if err != nil {
			return pricing.NewValidationError("endDate", err.Error())
		}
		if end.Before(start) {
			return pricing.NewValidationError("endDate", "must not precede startDate")
		}
		cal.BlockRange(start, end)
		return nil
	})
}

// UnblockCalendar handles POST /api/vendor/listings/:id/calendar/unblock.
func (h *VendorHandler) UnblockCalendar(c *gin.Context) {
	var input calendarRangeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.editManualBlocks(c, func(cal *calendar.Calendar) error {
		start, err := models.ParseDate(input.StartDate)
		if err != nil {
			return pricing.NewValidationError("startDate", err.Error())
		}
		end, err := models.ParseDate(input.EndDate)
		if err != nil {
			return pricing.NewValidationError("endDate", err.Error())
		}
		if end.Before(start) {
			return pricing.NewValidationError("endDate", "must not precede startDate")
		}
		cal.UnblockRange(start, end)
		return nil
	})
}

// ClearBlocks handles DELETE /api/vendor/listings/:id/calendar/blocks.
func (h *VendorHandler) ClearBlocks(c *gin.Context) {
	h.editManualBlocks(c, func(cal *calendar.Calendar) error {
		cal.ClearManualBlocks()
		return nil
	})
}

// GetCalendar handles GET /api/vendor/listings/:id/calendar. With from/to
// query dates it returns the conflicts inside that window, which is what
// the vendor calendar grid renders.
func (h *VendorHandler) GetCalendar(c *gin.Context) {
	id := c.Param("id")
	listing, err := h.Listings.GetByID(c.Request.Context(), id)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	resp := gin.H{"availability": listing.Availability}
	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" && toStr != "" {
		from, err := models.ParseDate(fromStr)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		to, err := models.ParseDate(toStr)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		cal := calendar.FromState(listing.Availability)
		conflicts := cal.ConflictsWith(from, to)
		if conflicts == nil {
			conflicts = []models.Conflict{}
		}
		resp["conflicts"] = conflicts
	}
	c.JSON(http.StatusOK, resp)
}
