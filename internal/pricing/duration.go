package pricing

import "errors"

var ErrInvalidDuration = errors.New("duration must be 1 or 1.5 hours")

// Duration is the booking length in hours. Only two values are ever
// offered to users, so this is a closed enum rather than a free duration.
type Duration float64

const (
	OneHour     Duration = 1
	OneHourHalf Duration = 1.5
)

// ParseDuration validates a raw hours value against the supported set.
func ParseDuration(hours float64) (Duration, error) {
	switch Duration(hours) {
	case OneHour, OneHourHalf:
		return Duration(hours), nil
	default:
		return 0, ErrInvalidDuration
	}
}

// DurationFromSlots converts a 30-minute slot count into a Duration.
func DurationFromSlots(n int) (Duration, error) {
	switch n {
	case 2:
		return OneHour, nil
	case 3:
		return OneHourHalf, nil
	default:
		return 0, ErrInvalidDuration
	}
}

// Slots returns how many 30-minute slots the duration occupies.
func (d Duration) Slots() int {
	return int(float64(d) * 2)
}

// Hours returns the duration as a plain float for arithmetic and JSON.
func (d Duration) Hours() float64 {
	return float64(d)
}
