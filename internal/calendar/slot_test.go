package calendar

import (
	"reflect"
	"testing"
	"time"

	"github.com/sportbook-app/sportbook-backend/internal/pricing"
)

// farPast keeps every test slot in the future relative to the clock.
var farPast = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func slotTimes(slots []Slot) []string {
	if slots == nil {
		return nil
	}
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Time
	}
	return out
}

func TestAvailableStartSlots(t *testing.T) {
	// 09:00-11:00 grid, four slots.
	fullGrid := []Slot{
		{Time: "09:00", Enabled: true},
		{Time: "09:30", Enabled: true},
		{Time: "10:00", Enabled: true},
		{Time: "10:30", Enabled: true},
	}
	// Same grid with 10:00 already booked.
	bookedGrid := []Slot{
		{Time: "09:00", Enabled: true},
		{Time: "09:30", Enabled: true},
		{Time: "10:00", Enabled: false},
		{Time: "10:30", Enabled: true},
	}

	tests := []struct {
		name     string
		slots    []Slot
		duration pricing.Duration
		want     []string
	}{
		{
			name:     "1h on a free grid",
			slots:    fullGrid,
			duration: pricing.OneHour,
			want:     []string{"09:00", "09:30", "10:00"},
		},
		{
			name:     "1.5h on a free grid",
			slots:    fullGrid,
			duration: pricing.OneHourHalf,
			want:     []string{"09:00", "09:30"},
		},
		{
			name:     "1h around a booked slot",
			slots:    bookedGrid,
			duration: pricing.OneHour,
			want:     []string{"09:00"},
		},
		{
			name:     "1.5h around a booked slot",
			slots:    bookedGrid,
			duration: pricing.OneHourHalf,
			want:     nil,
		},
		{
			name:     "too short a grid for the duration",
			slots:    fullGrid[:1],
			duration: pricing.OneHourHalf,
			want:     nil,
		},
		{
			name:     "empty grid",
			slots:    nil,
			duration: pricing.OneHour,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableStartSlots(tt.slots, tt.duration, "2026-03-24", farPast)
			if !reflect.DeepEqual(slotTimes(got), tt.want) {
				t.Errorf("AvailableStartSlots() = %v, want %v", slotTimes(got), tt.want)
			}
		})
	}
}

func TestAvailableStartSlotsSkipsPast(t *testing.T) {
	grid := []Slot{
		{Time: "09:00", Enabled: true},
		{Time: "09:30", Enabled: true},
		{Time: "10:00", Enabled: true},
		{Time: "10:30", Enabled: true},
	}

	// Clock at 09:30 sharp: 09:00 has elapsed, 09:30 has started.
	now := time.Date(2026, 3, 24, 9, 30, 0, 0, time.UTC)
	got := AvailableStartSlots(grid, pricing.OneHour, "2026-03-24", now)
	want := []string{"10:00"}
	if !reflect.DeepEqual(slotTimes(got), want) {
		t.Errorf("AvailableStartSlots() = %v, want %v", slotTimes(got), want)
	}

	// A clock one second before 09:30 keeps that slot bookable.
	now = time.Date(2026, 3, 24, 9, 29, 59, 0, time.UTC)
	got = AvailableStartSlots(grid, pricing.OneHour, "2026-03-24", now)
	want = []string{"09:30", "10:00"}
	if !reflect.DeepEqual(slotTimes(got), want) {
		t.Errorf("AvailableStartSlots() = %v, want %v", slotTimes(got), want)
	}

	// A different date is unaffected by the clock's time of day.
	got = AvailableStartSlots(grid, pricing.OneHour, "2026-03-25", now)
	want = []string{"09:00", "09:30", "10:00"}
	if !reflect.DeepEqual(slotTimes(got), want) {
		t.Errorf("AvailableStartSlots() = %v, want %v", slotTimes(got), want)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		day  *Day
		want DayStatus
	}{
		{
			name: "nil day",
			day:  nil,
			want: DayUnknown,
		},
		{
			name: "closed flag",
			day:  &Day{Date: "2026-03-24", Closed: true},
			want: DayClosed,
		},
		{
			name: "no slots counts as closed",
			day:  &Day{Date: "2026-03-24"},
			want: DayClosed,
		},
		{
			name: "all slots booked",
			day: &Day{Date: "2026-03-24", Slots: []Slot{
				{Time: "09:00"}, {Time: "09:30"},
			}},
			want: DayFull,
		},
		{
			name: "all slots free",
			day: &Day{Date: "2026-03-24", Slots: []Slot{
				{Time: "09:00", Enabled: true}, {Time: "09:30", Enabled: true},
			}},
			want: DayAvailable,
		},
		{
			name: "mixed slots",
			day: &Day{Date: "2026-03-24", Slots: []Slot{
				{Time: "09:00", Enabled: true}, {Time: "09:30"},
			}},
			want: DayPartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.day); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}
