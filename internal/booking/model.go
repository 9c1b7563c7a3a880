package booking

import (
	"net/http"
	"time"

	"github.com/sportbook-app/sportbook-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrTimeConflict        = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidDuration     = apperror.New(http.StatusBadRequest, "duration must be 1 or 1.5 hours")
	ErrInvalidStartTime    = apperror.New(http.StatusBadRequest, "start time must be on a 30-minute boundary")
	ErrInvalidStatus       = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrCourtNotFound       = apperror.New(http.StatusNotFound, "court not found")
	ErrPermissionDenied    = apperror.New(http.StatusForbidden, "permission denied")
	ErrStartTimePast       = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrFacilityClosed      = apperror.New(http.StatusBadRequest, "facility is closed on this day")
	ErrOutsideOpeningHours = apperror.New(http.StatusBadRequest, "booking is outside facility opening hours")
	ErrInvalidInput        = apperror.New(http.StatusBadRequest, "invalid input parameters")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking is a slot reservation on a court. Date/StartTime/Duration are
// the user-facing slot coordinates; StartsAt/EndsAt are the derived
// timestamps used for overlap queries. Price is computed server-side at
// creation and frozen.
type Booking struct {
	ID            string
	CourtID       string
	CourtName     string
	FacilityID    string
	FacilityName  string
	UserID        string
	UserName      string
	Date          string // YYYY-MM-DD
	StartTime     string // HH:MM
	DurationHours float64
	StartsAt      time.Time
	EndsAt        time.Time
	Price         float64
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Interval is a booked time span, consumed by the calendar module when
// disabling slots.
type Interval struct {
	Start time.Time
	End   time.Time
}

type Filter struct {
	UserID     string
	CourtID    string
	FacilityID string
	Status     string
	DateFrom   string // YYYY-MM-DD inclusive
	DateTo     string // YYYY-MM-DD inclusive
	Page       int
	PageSize   int
}
