// handlers/quote.go
package handlers

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"rentora/config"
	"rentora/models"
	"rentora/services/booking"
	"rentora/utils"
)

// QuoteHandler serves priced quotes for candidate rental windows.
type QuoteHandler struct {
	Booking booking.Service
	Cache   *redis.Client
	Logger  *zap.Logger
}

func NewQuoteHandler(svc booking.Service, cache *redis.Client, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{Booking: svc, Cache: cache, Logger: logger}
}

// ComputeQuote handles POST /api/quotes. With ?preview=true the
// availability gate is skipped and the quote is indicative only. Computed
// quotes are cached briefly keyed by a digest of the request, since the
// same search is typically repeated while a customer walks the wizard.
func (h *QuoteHandler) ComputeQuote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	preview := c.Query("preview") == "true"

	ctx := context.Background()
	key := quoteCacheKey(req, preview)
	ttl := time.Duration(config.AppConfig.QuoteCacheTTL) * time.Second

	if ttl > 0 {
		if cached, err := h.Cache.Get(ctx, key).Result(); err == nil {
			var q models.Quote
			if json.Unmarshal([]byte(cached), &q) == nil {
				c.JSON(http.StatusOK, gin.H{"quote": q, "preview": preview, "cached": true})
				return
			}
		}
	}

	quote, err := h.Booking.QuoteFor(c.Request.Context(), req, preview)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	if ttl > 0 {
		if data, err := json.Marshal(quote); err == nil {
			if err := h.Cache.Set(ctx, key, data, ttl).Err(); err != nil {
				h.Logger.Warn("failed to cache quote", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"quote": quote, "preview": preview})
}

func quoteCacheKey(req models.QuoteRequest, preview bool) string {
	data, _ := json.Marshal(struct {
		R models.QuoteRequest
		P bool
	}{req, preview})
	sum := sha1.Sum(data)
	return "quote:" + hex.EncodeToString(sum[:])
}
