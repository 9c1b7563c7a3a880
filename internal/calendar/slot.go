package calendar

import (
	"time"

	"github.com/sportbook-app/sportbook-backend/internal/pricing"
)

// SlotMinutes is the fixed slot granularity. All opening hours and
// booking start times align to this grid.
const SlotMinutes = 30

// Slot is one bookable time unit within a day. Enabled=false means the
// slot is already booked or blocked.
type Slot struct {
	Time    string `json:"time"` // HH:MM
	Enabled bool   `json:"enabled"`
}

// Day is the slot grid of one court for one calendar date. A closed day
// carries no slots.
type Day struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Slots  []Slot `json:"slots"`
	Closed bool   `json:"isClosed,omitempty"`
}

// DayStatus classifies a day for calendar-cell rendering only; booking
// decisions go through AvailableStartSlots.
type DayStatus string

const (
	DayUnknown   DayStatus = "unknown"
	DayClosed    DayStatus = "closed"
	DayFull      DayStatus = "full"
	DayPartial   DayStatus = "partial"
	DayAvailable DayStatus = "available"
)

// AvailableStartSlots returns the slots usable as a start time for the
// given duration: every slot in the occupied window must be enabled, the
// window must not run past the end of the day's grid, and the start must
// not already be in the past relative to now. Input order is preserved;
// the result is possibly empty, never an error.
func AvailableStartSlots(slots []Slot, d pricing.Duration, date string, now time.Time) []Slot {
	needed := d.Slots()
	var out []Slot

	for i := range slots {
		if i+needed > len(slots) {
			break
		}
		if isPastSlot(date, slots[i].Time, now) {
			continue
		}
		free := true
		for j := i; j < i+needed; j++ {
			if !slots[j].Enabled {
				free = false
				break
			}
		}
		if free {
			out = append(out, slots[i])
		}
	}

	return out
}

// Status classifies a day record. A nil day means the backend returned
// nothing for that date.
func Status(day *Day) DayStatus {
	if day == nil {
		return DayUnknown
	}
	if day.Closed || len(day.Slots) == 0 {
		return DayClosed
	}

	enabled := 0
	for _, s := range day.Slots {
		if s.Enabled {
			enabled++
		}
	}

	switch enabled {
	case 0:
		return DayFull
	case len(day.Slots):
		return DayAvailable
	default:
		return DayPartial
	}
}

// isPastSlot reports whether the slot's start moment has already elapsed.
// A slot starting exactly at now counts as elapsed. Unparseable input
// counts as not past, keeping the resolver total.
func isPastSlot(date, hhmm string, now time.Time) bool {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hhmm, now.Location())
	if err != nil {
		return false
	}
	return !t.After(now)
}
