package http

import (
	"github.com/sportbook-app/sportbook-backend/internal/calendar"
)

// MonthRequest defines query parameters for the month calendar endpoint.
type MonthRequest struct {
	Month string `form:"month" binding:"required,datetime=2006-01"`
}

// AvailabilityRequest defines query parameters for the per-day
// availability endpoint.
type AvailabilityRequest struct {
	Date          string  `form:"date" binding:"required,datetime=2006-01-02"`
	DurationHours float64 `form:"duration_hours" binding:"required"`
}

type MonthResponse struct {
	CourtID string              `json:"court_id"`
	Month   string              `json:"month"`
	Days    []calendar.MonthDay `json:"days"`
}
