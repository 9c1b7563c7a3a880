package booking

import (
	"context"
	"errors"
	"time"

	"github.com/sportbook-app/sportbook-backend/internal/court"
	"github.com/sportbook-app/sportbook-backend/internal/facility"
	"github.com/sportbook-app/sportbook-backend/internal/pricing"
)

type CreateRequest struct {
	UserID        string
	CourtID       string
	Date          string // YYYY-MM-DD
	StartTime     string // HH:MM
	DurationHours float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, status string, updaterID string, isSysAdmin bool) (*Booking, error)
	Delete(ctx context.Context, id string, deleterID string, isSysAdmin bool) error

	// ActiveIntervals returns the non-cancelled booked spans of a court
	// between two instants. The calendar module uses it to disable slots.
	ActiveIntervals(ctx context.Context, courtID string, from, to time.Time) ([]Interval, error)
}

type service struct {
	repo       Repository
	courtSvc   court.Service
	facSvc     facility.Service
	now        func() time.Time
}

// NewService creates the booking service. now is the clock used for the
// past-start check; pass time.Now in production.
func NewService(repo Repository, courtSvc court.Service, facSvc facility.Service, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:     repo,
		courtSvc: courtSvc,
		facSvc:   facSvc,
		now:      now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	d, err := pricing.ParseDuration(req.DurationHours)
	if err != nil {
		return nil, ErrInvalidDuration
	}

	startMin, ok := minutesOfDay(req.StartTime)
	if !ok || startMin%30 != 0 {
		return nil, ErrInvalidStartTime
	}

	dateObj, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidInput
	}

	// Resolve court and owning facility
	ct, err := s.courtSvc.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	fac, err := s.facSvc.GetByID(ctx, ct.FacilityID)
	if err != nil {
		return nil, err
	}

	// Opening-days and opening-hours checks
	if fac.ClosedOn(int(dateObj.Weekday())) {
		return nil, ErrFacilityClosed
	}
	openMin, okOpen := minutesOfDay(fac.OpeningTime)
	closeMin, okClose := minutesOfDay(fac.ClosingTime)
	endMin := startMin + int(d.Hours()*60)
	if okOpen && okClose {
		if startMin < openMin || endMin > closeMin {
			return nil, ErrOutsideOpeningHours
		}
	}

	// Derived timestamps; the past check uses the injected clock
	now := s.now()
	startsAt := time.Date(
		dateObj.Year(), dateObj.Month(), dateObj.Day(),
		startMin/60, startMin%60, 0, 0, now.Location(),
	)
	endsAt := startsAt.Add(time.Duration(d.Hours() * float64(time.Hour)))

	if startsAt.Before(now) {
		return nil, ErrStartTimePast
	}

	// The server is the authority on slot availability: re-check for
	// conflicts at write time regardless of what the client displayed.
	hasOverlap, err := s.repo.HasOverlap(ctx, req.CourtID, startsAt, endsAt, "")
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, ErrTimeConflict
	}

	// Price is resolved server-side and frozen on the booking row.
	price := pricing.Calculate(ct.Pricing(), d, req.Date, req.StartTime)

	b := &Booking{
		CourtID:       req.CourtID,
		UserID:        req.UserID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		DurationHours: d.Hours(),
		StartsAt:      startsAt,
		EndsAt:        endsAt,
		Price:         price,
		Status:        StatusPending,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status string, updaterID string, isSysAdmin bool) (*Booking, error) {
	st := Status(status)
	if st != StatusPending && st != StatusConfirmed && st != StatusCancelled {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isBookingOwner := b.UserID == updaterID
	isFacilityOwner := false
	if !isSysAdmin && !isBookingOwner {
		// Lazy check: only query if not already authorized
		isFacilityOwner, err = s.facSvc.IsOwner(ctx, b.FacilityID, updaterID)
		if err != nil {
			return nil, err
		}
	}

	if !isSysAdmin && !isBookingOwner && !isFacilityOwner {
		return nil, ErrPermissionDenied
	}

	// A player may only cancel their own booking; confirming is the
	// facility owner's (or admin's) call.
	if isBookingOwner && !isSysAdmin && st != StatusCancelled {
		if owns, err := s.facSvc.IsOwner(ctx, b.FacilityID, updaterID); err != nil || !owns {
			return nil, ErrPermissionDenied
		}
	}

	b.Status = st
	if err := s.repo.UpdateStatus(ctx, b.ID, st); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string, deleterID string, isSysAdmin bool) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isSysAdmin && b.UserID != deleterID {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) ActiveIntervals(ctx context.Context, courtID string, from, to time.Time) ([]Interval, error) {
	return s.repo.ActiveIntervals(ctx, courtID, from, to)
}

// minutesOfDay converts "HH:MM" to minutes since midnight.
func minutesOfDay(hhmm string) (int, bool) {
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if hhmm[i] < '0' || hhmm[i] > '9' {
			return 0, false
		}
	}
	h := int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	m := int(hhmm[3]-'0')*10 + int(hhmm[4]-'0')
	if h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
