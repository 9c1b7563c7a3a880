package pricing

import "fmt"

// Label builds the display price for a court and duration without a
// date/time context. Flat and legacy pricing have a single price; advanced
// pricing scans every configured override plus the base price and shows a
// "from" label when they differ.
func Label(cp CourtPricing, d Duration) string {
	r := cp.Rules
	if r == nil || r.Mode != ModeAdvanced {
		return formatPrice(Calculate(cp, d, "", ""))
	}

	min, max := aggregateRange(cp, d)
	if min == max {
		return formatPrice(min)
	}
	return "da " + formatPrice(min)
}

// LabelForDate is the Label variant scoped to the start times actually
// bookable on a given date. With no bookable start times it falls back to
// the date-independent label.
func LabelForDate(cp CourtPricing, d Duration, date string, startTimes []string) string {
	if len(startTimes) == 0 {
		return Label(cp, d)
	}

	min := Calculate(cp, d, date, startTimes[0])
	max := min
	for _, start := range startTimes[1:] {
		p := Calculate(cp, d, date, start)
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}

	if min == max {
		return formatPrice(min)
	}
	return "da " + formatPrice(min)
}

// aggregateRange returns the min and max price across all advanced-mode
// override entries and the base/default price for the duration.
func aggregateRange(cp CourtPricing, d Duration) (float64, float64) {
	r := cp.Rules

	min := pairPrice(r.BasePrices, cp.PricePerHour, d)
	max := min

	observe := func(p PricePair) {
		v := pairPrice(&p, cp.PricePerHour, d)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if r.DateOverrides != nil && r.DateOverrides.Enabled {
		for _, o := range r.DateOverrides.Dates {
			observe(o.Prices)
		}
	}
	if r.PeriodOverrides != nil && r.PeriodOverrides.Enabled {
		for _, p := range r.PeriodOverrides.Periods {
			observe(p.Prices)
		}
	}
	if r.TimeSlotPricing != nil && r.TimeSlotPricing.Enabled {
		for _, s := range r.TimeSlotPricing.Slots {
			observe(s.Prices)
		}
	}

	return min, max
}

func formatPrice(v float64) string {
	return fmt.Sprintf("€%.2f", v)
}
