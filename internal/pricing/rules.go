package pricing

// Mode selects which pricing scheme a court uses.
type Mode string

const (
	ModeFlat     Mode = "flat"
	ModeAdvanced Mode = "advanced"
)

// PricePair holds the prices for the two supported durations.
// Either field may be absent; missing prices fall back to the legacy
// per-hour formula at resolution time.
type PricePair struct {
	OneHour     *float64 `json:"oneHour,omitempty"`
	OneHourHalf *float64 `json:"oneHourHalf,omitempty"`
}

// Rules is a court's pricing configuration, stored as a JSONB document on
// the court row. Flat mode uses FlatPrices only; advanced mode layers
// optional overrides on top of BasePrices.
type Rules struct {
	Mode            Mode             `json:"mode"`
	FlatPrices      *PricePair       `json:"flatPrices,omitempty"`
	BasePrices      *PricePair       `json:"basePrices,omitempty"`
	DateOverrides   *DateOverrides   `json:"dateOverrides,omitempty"`
	PeriodOverrides *PeriodOverrides `json:"periodOverrides,omitempty"`
	TimeSlotPricing *TimeSlotPricing `json:"timeSlotPricing,omitempty"`
}

// DateOverrides prices specific calendar dates (highest priority).
type DateOverrides struct {
	Enabled bool           `json:"enabled"`
	Dates   []DateOverride `json:"dates"`
}

type DateOverride struct {
	Date   string    `json:"date"` // YYYY-MM-DD
	Label  string    `json:"label,omitempty"`
	Prices PricePair `json:"prices"`
}

// PeriodOverrides prices inclusive date ranges (second priority).
type PeriodOverrides struct {
	Enabled bool             `json:"enabled"`
	Periods []PeriodOverride `json:"periods"`
}

type PeriodOverride struct {
	StartDate string    `json:"startDate"` // YYYY-MM-DD, inclusive
	EndDate   string    `json:"endDate"`   // YYYY-MM-DD, inclusive
	Label     string    `json:"label,omitempty"`
	Prices    PricePair `json:"prices"`
}

// TimeSlotPricing prices recurring time-of-day windows (third priority).
// A slot with DaysOfWeek restricts itself to those weekdays (0=Sunday);
// an empty DaysOfWeek applies every day, and is only consulted after all
// weekday-specific slots.
type TimeSlotPricing struct {
	Enabled bool           `json:"enabled"`
	Slots   []TimeSlotRule `json:"slots"`
}

type TimeSlotRule struct {
	Start      string    `json:"start"` // HH:MM, inclusive
	End        string    `json:"end"`   // HH:MM, exclusive
	DaysOfWeek []int     `json:"daysOfWeek,omitempty"`
	Label      string    `json:"label,omitempty"`
	Prices     PricePair `json:"prices"`
}

// CourtPricing is the pricing-relevant slice of a court record. The court
// module converts its own model into this; pricing stays free of storage
// concerns.
type CourtPricing struct {
	PricePerHour float64
	Rules        *Rules
}
