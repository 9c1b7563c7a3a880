package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sportbook-app/sportbook-backend/internal/calendar"
	"github.com/sportbook-app/sportbook-backend/internal/pkg/request"
	"github.com/sportbook-app/sportbook-backend/internal/pricing"
)

type Handler struct {
	service calendar.Service
}

func NewHandler(service calendar.Service) *Handler {
	return &Handler{service: service}
}

// Month returns the slot grid of a court for every day of a month.
func (h *Handler) Month(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req MonthRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	days, err := h.service.Month(c.Request.Context(), uri.ID, req.Month)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidMonth):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, calendar.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build calendar"})
		}
		return
	}

	c.JSON(http.StatusOK, MonthResponse{
		CourtID: uri.ID,
		Month:   req.Month,
		Days:    days,
	})
}

// Availability returns the bookable start slots of a court for one date
// and duration, with resolved prices.
func (h *Handler) Availability(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	// The duration enum is enforced here, not at binding.
	d, err := pricing.ParseDuration(req.DurationHours)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	avail, err := h.service.DayAvailability(c.Request.Context(), uri.ID, req.Date, d)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, calendar.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve availability"})
		}
		return
	}

	c.JSON(http.StatusOK, avail)
}
