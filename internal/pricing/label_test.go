package pricing

import "testing"

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		cp       CourtPricing
		duration Duration
		want     string
	}{
		{
			name:     "legacy pricing shows the single price",
			cp:       CourtPricing{PricePerHour: 20},
			duration: OneHour,
			want:     "€20.00",
		},
		{
			name:     "legacy pricing for 1.5h",
			cp:       CourtPricing{PricePerHour: 20},
			duration: OneHourHalf,
			want:     "€28.00",
		},
		{
			name: "flat pricing shows the single price",
			cp: CourtPricing{PricePerHour: 20, Rules: &Rules{
				Mode:       ModeFlat,
				FlatPrices: &PricePair{OneHour: fp(25), OneHourHalf: fp(35)},
			}},
			duration: OneHourHalf,
			want:     "€35.00",
		},
		{
			name: "advanced with uniform prices shows the single price",
			cp: CourtPricing{PricePerHour: 20, Rules: &Rules{
				Mode:       ModeAdvanced,
				BasePrices: &PricePair{OneHour: fp(22)},
				TimeSlotPricing: &TimeSlotPricing{
					Enabled: true,
					Slots: []TimeSlotRule{
						{Start: "18:00", End: "22:00", Prices: PricePair{OneHour: fp(22)}},
					},
				},
			}},
			duration: OneHour,
			want:     "€22.00",
		},
		{
			name:     "advanced with differing prices shows a from label",
			cp:       CourtPricing{PricePerHour: 20, Rules: advancedTestRules()},
			duration: OneHour,
			want:     "da €15.00",
		},
		{
			name: "disabled layers are excluded from the range",
			cp: CourtPricing{PricePerHour: 20, Rules: &Rules{
				Mode:       ModeAdvanced,
				BasePrices: &PricePair{OneHour: fp(22)},
				DateOverrides: &DateOverrides{
					Enabled: false,
					Dates:   []DateOverride{{Date: "2026-03-14", Prices: PricePair{OneHour: fp(50)}}},
				},
			}},
			duration: OneHour,
			want:     "€22.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.cp, tt.duration); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabelForDate(t *testing.T) {
	cp := CourtPricing{PricePerHour: 20, Rules: advancedTestRules()}

	tests := []struct {
		name       string
		date       string
		startTimes []string
		want       string
	}{
		{
			// 2026-03-24 is a Tuesday outside the period. Morning starts
			// hit the generic slot (15), afternoon the base (22).
			name:       "differing prices across the day",
			date:       "2026-03-24",
			startTimes: []string{"09:00", "14:00", "19:00"},
			want:       "da €15.00",
		},
		{
			name:       "uniform price across the day",
			date:       "2026-03-24",
			startTimes: []string{"14:00", "15:00"},
			want:       "€22.00",
		},
		{
			// Every start on the overridden date costs the same.
			name:       "date override flattens the range",
			date:       "2026-03-14",
			startTimes: []string{"10:00", "19:00"},
			want:       "€50.00",
		},
		{
			name:       "no bookable starts falls back to date-independent label",
			date:       "2026-03-24",
			startTimes: nil,
			want:       "da €15.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelForDate(cp, OneHour, tt.date, tt.startTimes); got != tt.want {
				t.Errorf("LabelForDate() = %q, want %q", got, tt.want)
			}
		})
	}
}
