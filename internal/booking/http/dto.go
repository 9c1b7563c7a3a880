package http

import (
	"time"

	"github.com/sportbook-app/sportbook-backend/internal/booking"
	courtHttp "github.com/sportbook-app/sportbook-backend/internal/court/http"
	facHttp "github.com/sportbook-app/sportbook-backend/internal/facility/http"
	"github.com/sportbook-app/sportbook-backend/internal/pkg/request"
	userHttp "github.com/sportbook-app/sportbook-backend/internal/user/http"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	CourtID    string `form:"court_id" binding:"omitempty,uuid"`
	FacilityID string `form:"facility_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	UserID     string `form:"user_id" binding:"omitempty,uuid"`
	DateFrom   string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}

// Validate performs custom validation for ListBookingsRequest.
func (r *ListBookingsRequest) Validate() error {
	if r.DateFrom != "" && r.DateTo != "" && r.DateFrom > r.DateTo {
		return booking.ErrInvalidInput
	}
	return nil
}

type CreateBookingBody struct {
	CourtID       string  `json:"court_id" binding:"required,uuid"`
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime     string  `json:"start_time" binding:"required,len=5"`
	// The duration enum is validated by the service, not at binding;
	// validator's oneof does not support float fields.
	DurationHours float64 `json:"duration_hours" binding:"required"`
}

type UpdateBookingBody struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

type BookingResponse struct {
	ID            string                `json:"id"`
	Court         courtHttp.CourtTag    `json:"court"`
	Facility      facHttp.FacilityTag   `json:"facility"`
	User          userHttp.UserTag      `json:"user"`
	Date          string                `json:"date"`
	StartTime     string                `json:"start_time"`
	DurationHours float64               `json:"duration_hours"`
	StartsAt      time.Time             `json:"starts_at"`
	EndsAt        time.Time             `json:"ends_at"`
	Price         float64               `json:"price"`
	Status        string                `json:"status"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		Court:         courtHttp.CourtTag{ID: b.CourtID, Name: b.CourtName},
		Facility:      facHttp.FacilityTag{ID: b.FacilityID, Name: b.FacilityName},
		User:          userHttp.UserTag{ID: b.UserID, Name: b.UserName},
		Date:          b.Date,
		StartTime:     b.StartTime,
		DurationHours: b.DurationHours,
		StartsAt:      b.StartsAt,
		EndsAt:        b.EndsAt,
		Price:         b.Price,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
