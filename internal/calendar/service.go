package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sportbook-app/sportbook-backend/internal/booking"
	"github.com/sportbook-app/sportbook-backend/internal/court"
	"github.com/sportbook-app/sportbook-backend/internal/facility"
	"github.com/sportbook-app/sportbook-backend/internal/pricing"
)

var (
	ErrInvalidMonth  = errors.New("month must be formatted as YYYY-MM")
	ErrInvalidDate   = errors.New("date must be formatted as YYYY-MM-DD")
	ErrCourtNotFound = errors.New("court not found")
)

// StartOption is one bookable start time for a requested duration, with
// its resolved price and the pricing rule that produced it (if any).
type StartOption struct {
	Time      string  `json:"time"`
	Price     float64 `json:"price"`
	RuleLabel *string `json:"rule_label,omitempty"`
}

// DayAvailability is the field-details payload for one day: the raw slot
// grid plus the start times bookable for the requested duration.
type DayAvailability struct {
	Day        Day           `json:"day"`
	Status     DayStatus     `json:"status"`
	Duration   float64       `json:"duration_hours"`
	Starts     []StartOption `json:"start_slots"`
	PriceLabel string        `json:"price_label"`
}

// MonthDay pairs a day grid with its render status.
type MonthDay struct {
	Day    Day       `json:"day"`
	Status DayStatus `json:"status"`
}

type Service interface {
	// Month materializes the slot grids of a court for every day of the
	// given YYYY-MM month.
	Month(ctx context.Context, courtID, month string) ([]MonthDay, error)

	// DayAvailability resolves the bookable start slots and prices of a
	// court for one date and duration.
	DayAvailability(ctx context.Context, courtID, date string, d pricing.Duration) (*DayAvailability, error)
}

type service struct {
	courtSvc   court.Service
	facSvc     facility.Service
	bookingSvc booking.Service
	now        func() time.Time
}

// NewService creates the calendar service. now is the clock used for
// past-slot filtering; pass time.Now in production.
func NewService(courtSvc court.Service, facSvc facility.Service, bookingSvc booking.Service, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		courtSvc:   courtSvc,
		facSvc:     facSvc,
		bookingSvc: bookingSvc,
		now:        now,
	}
}

func (s *service) Month(ctx context.Context, courtID, month string) ([]MonthDay, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, ErrInvalidMonth
	}

	ct, fac, err := s.resolveCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}

	loc := s.now().Location()
	from := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, 0)

	intervals, err := s.bookingSvc.ActiveIntervals(ctx, ct.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load booked intervals failed: %w", err)
	}

	var days []MonthDay
	for cur := from; cur.Before(to); cur = cur.AddDate(0, 0, 1) {
		day := s.buildDay(fac, cur, intervals)
		days = append(days, MonthDay{Day: day, Status: Status(&day)})
	}
	return days, nil
}

func (s *service) DayAvailability(ctx context.Context, courtID, date string, d pricing.Duration) (*DayAvailability, error) {
	dateObj, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	ct, fac, err := s.resolveCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}

	loc := s.now().Location()
	from := time.Date(dateObj.Year(), dateObj.Month(), dateObj.Day(), 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 1)

	intervals, err := s.bookingSvc.ActiveIntervals(ctx, ct.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load booked intervals failed: %w", err)
	}

	day := s.buildDay(fac, from, intervals)
	startSlots := AvailableStartSlots(day.Slots, d, day.Date, s.now())

	cp := ct.Pricing()
	starts := make([]StartOption, len(startSlots))
	startTimes := make([]string, len(startSlots))
	for i, slot := range startSlots {
		starts[i] = StartOption{
			Time:      slot.Time,
			Price:     pricing.Calculate(cp, d, day.Date, slot.Time),
			RuleLabel: pricing.MatchLabel(cp, day.Date, slot.Time),
		}
		startTimes[i] = slot.Time
	}

	return &DayAvailability{
		Day:        day,
		Status:     Status(&day),
		Duration:   d.Hours(),
		Starts:     starts,
		PriceLabel: pricing.LabelForDate(cp, d, day.Date, startTimes),
	}, nil
}

func (s *service) resolveCourt(ctx context.Context, courtID string) (*court.Court, *facility.Facility, error) {
	ct, err := s.courtSvc.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, nil, ErrCourtNotFound
		}
		return nil, nil, err
	}
	fac, err := s.facSvc.GetByID(ctx, ct.FacilityID)
	if err != nil {
		return nil, nil, err
	}
	return ct, fac, nil
}

// buildDay generates the slot grid of one date from the facility's
// opening hours, disabling every slot covered by a booked interval.
func (s *service) buildDay(fac *facility.Facility, date time.Time, intervals []booking.Interval) Day {
	dateStr := date.Format("2006-01-02")

	if fac.ClosedOn(int(date.Weekday())) {
		return Day{Date: dateStr, Closed: true}
	}

	openMin, okOpen := minutesOfDay(fac.OpeningTime)
	closeMin, okClose := minutesOfDay(fac.ClosingTime)
	if !okOpen || !okClose || openMin >= closeMin {
		return Day{Date: dateStr, Closed: true}
	}

	var slots []Slot
	for m := openMin; m+SlotMinutes <= closeMin; m += SlotMinutes {
		slotStart := date.Add(time.Duration(m) * time.Minute)
		slotEnd := slotStart.Add(SlotMinutes * time.Minute)

		enabled := true
		for _, iv := range intervals {
			if slotStart.Before(iv.End) && slotEnd.After(iv.Start) {
				enabled = false
				break
			}
		}

		slots = append(slots, Slot{
			Time:    fmt.Sprintf("%02d:%02d", m/60, m%60),
			Enabled: enabled,
		})
	}

	return Day{Date: dateStr, Slots: slots}
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
