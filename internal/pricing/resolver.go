package pricing

import (
	"strconv"
	"strings"
	"time"
)

// legacyHalfHourFactor derives the 1.5h price from the per-hour rate when
// no explicit price is configured. The asymmetry (1h pays 1x, 1.5h pays
// 1.4x) is a pinned compatibility contract, not a typo.
const legacyHalfHourFactor = 1.4

// query is the resolution context for one price lookup. Date and
// StartTime are optional; rules that need a missing field simply do not
// match.
type query struct {
	date      string // YYYY-MM-DD
	startTime string // HH:MM
}

// match is the outcome of a single rule evaluation.
type match struct {
	prices PricePair
	label  string
}

// advancedRule evaluates one override layer. Returns nil when the layer
// is disabled, not applicable, or has no entry for the query.
type advancedRule func(r *Rules, q query) *match

// advancedRules is the fixed priority order for advanced mode. The first
// non-nil match wins; later layers are never consulted. Overlapping rules
// are not validated, this order is the only conflict resolution.
var advancedRules = []advancedRule{
	dateOverrideRule,
	periodOverrideRule,
	weekdayTimeSlotRule,
	genericTimeSlotRule,
}

// Calculate resolves the price for a court, duration and optional
// date/start-time context. It is total: malformed or missing rule data
// degrades to the legacy per-hour fallback, never an error.
func Calculate(cp CourtPricing, d Duration, date, startTime string) float64 {
	r := cp.Rules
	if r == nil {
		return legacyPrice(cp.PricePerHour, d)
	}

	switch r.Mode {
	case ModeFlat:
		return pairPrice(r.FlatPrices, cp.PricePerHour, d)
	case ModeAdvanced:
		q := query{date: date, startTime: startTime}
		for _, rule := range advancedRules {
			if m := rule(r, q); m != nil {
				return pairPrice(&m.prices, cp.PricePerHour, d)
			}
		}
		return pairPrice(r.BasePrices, cp.PricePerHour, d)
	default:
		return legacyPrice(cp.PricePerHour, d)
	}
}

// MatchLabel re-runs the advanced priority chain and reports which
// override matched, for UI tags like "Tariffa serale". Returns nil when
// pricing is flat/legacy, when only the base price applies, or when the
// matched override carries no label.
func MatchLabel(cp CourtPricing, date, startTime string) *string {
	r := cp.Rules
	if r == nil || r.Mode != ModeAdvanced {
		return nil
	}
	q := query{date: date, startTime: startTime}
	for _, rule := range advancedRules {
		if m := rule(r, q); m != nil {
			if m.label == "" {
				return nil
			}
			label := m.label
			return &label
		}
	}
	return nil
}

func dateOverrideRule(r *Rules, q query) *match {
	if r.DateOverrides == nil || !r.DateOverrides.Enabled || q.date == "" {
		return nil
	}
	for _, o := range r.DateOverrides.Dates {
		if o.Date == q.date {
			return &match{prices: o.Prices, label: o.Label}
		}
	}
	return nil
}

func periodOverrideRule(r *Rules, q query) *match {
	if r.PeriodOverrides == nil || !r.PeriodOverrides.Enabled || q.date == "" {
		return nil
	}
	for _, p := range r.PeriodOverrides.Periods {
		// Lexicographic comparison is valid on fixed-width YYYY-MM-DD.
		if p.StartDate <= q.date && q.date <= p.EndDate {
			return &match{prices: p.Prices, label: p.Label}
		}
	}
	return nil
}

func weekdayTimeSlotRule(r *Rules, q query) *match {
	if r.TimeSlotPricing == nil || !r.TimeSlotPricing.Enabled || q.date == "" || q.startTime == "" {
		return nil
	}
	weekday, ok := dayOfWeek(q.date)
	if !ok {
		return nil
	}
	for _, s := range r.TimeSlotPricing.Slots {
		if len(s.DaysOfWeek) == 0 {
			continue
		}
		if containsInt(s.DaysOfWeek, weekday) && timeInRange(s.Start, s.End, q.startTime) {
			return &match{prices: s.Prices, label: s.Label}
		}
	}
	return nil
}

func genericTimeSlotRule(r *Rules, q query) *match {
	if r.TimeSlotPricing == nil || !r.TimeSlotPricing.Enabled || q.startTime == "" {
		return nil
	}
	for _, s := range r.TimeSlotPricing.Slots {
		if len(s.DaysOfWeek) != 0 {
			continue
		}
		if timeInRange(s.Start, s.End, q.startTime) {
			return &match{prices: s.Prices, label: s.Label}
		}
	}
	return nil
}

// pairPrice selects the price for the duration out of a pair, falling
// back to the legacy formula per missing field.
func pairPrice(p *PricePair, pricePerHour float64, d Duration) float64 {
	if p != nil {
		if d == OneHour && p.OneHour != nil {
			return *p.OneHour
		}
		if d == OneHourHalf && p.OneHourHalf != nil {
			return *p.OneHourHalf
		}
	}
	return legacyPrice(pricePerHour, d)
}

func legacyPrice(pricePerHour float64, d Duration) float64 {
	if d == OneHourHalf {
		return pricePerHour * legacyHalfHourFactor
	}
	return pricePerHour
}

// dayOfWeek parses a YYYY-MM-DD date and returns its weekday with
// 0=Sunday .. 6=Saturday.
func dayOfWeek(date string) (int, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, false
	}
	return int(t.Weekday()), true
}

// minutesOfDay converts "HH:MM" to minutes since midnight.
func minutesOfDay(hhmm string) (int, bool) {
	h, m, ok := splitHHMM(hhmm)
	if !ok {
		return 0, false
	}
	return h*60 + m, true
}

func splitHHMM(hhmm string) (int, int, bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}

// timeInRange reports whether t falls in [start, end) at minute
// resolution.
func timeInRange(start, end, t string) bool {
	s, ok := minutesOfDay(start)
	if !ok {
		return false
	}
	e, ok := minutesOfDay(end)
	if !ok {
		return false
	}
	v, ok := minutesOfDay(t)
	if !ok {
		return false
	}
	return v >= s && v < e
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
