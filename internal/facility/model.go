package facility

import (
	"errors"
	"time"
)

var (
	ErrNotFound             = errors.New("facility not found")
	ErrEmptyName            = errors.New("name cannot be empty")
	ErrInvalidOpeningHours  = errors.New("invalid opening hours")
	ErrInvalidClosedWeekday = errors.New("closed weekdays must be between 0 and 6")
	ErrPermissionDenied     = errors.New("permission denied")
)

// Facility represents a sports venue (source term "struttura") owned by a
// user. Opening hours are shared by all of its courts and drive the slot
// grid generation.
type Facility struct {
	ID             string // UUID
	OwnerID        string
	Name           string
	Description    string
	Address        string
	City           string
	Phone          string
	OpeningTime    string // HH:MM
	ClosingTime    string // HH:MM
	ClosedWeekdays []int  // 0=Sunday .. 6=Saturday
	Amenities      []string
	PhotoFileIDs   []string
	Latitude       float64
	Longitude      float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ClosedOn reports whether the facility does not operate on the given
// weekday (0=Sunday).
func (f *Facility) ClosedOn(weekday int) bool {
	for _, d := range f.ClosedWeekdays {
		if d == weekday {
			return true
		}
	}
	return false
}

// Filter defines parameters for listing facilities.
type Filter struct {
	OwnerID  string
	City     string
	Keyword  string // Search in Name or Address
	Page     int
	PageSize int
}
