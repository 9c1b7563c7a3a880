package court

import (
	"errors"
	"time"

	"github.com/sportbook-app/sportbook-backend/internal/pricing"
)

var (
	ErrNotFound         = errors.New("court not found")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrInvalidFacility  = errors.New("invalid facility_id")
	ErrInvalidSport     = errors.New("invalid sport")
	ErrInvalidPrice     = errors.New("price per hour must be positive")
	ErrInvalidRules     = errors.New("invalid pricing rules")
	ErrPermissionDenied = errors.New("permission denied")
)

// ValidSports is the closed set of sports a court can host.
var ValidSports = []string{"padel", "tennis", "calcetto", "basket", "volley"}

// Court represents a bookable playing surface (source term "campo")
// within a facility. PricePerHour is the legacy rate used when no
// pricing rules are configured; PricingRules, when present, is the full
// flat/advanced configuration resolved by the pricing package.
type Court struct {
	ID           string // UUID
	FacilityID   string
	FacilityName string
	Name         string
	Sport        string
	Surface      string
	Indoor       bool
	PricePerHour float64
	PricingRules *pricing.Rules
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Pricing returns the pricing-relevant view of the court.
func (c *Court) Pricing() pricing.CourtPricing {
	return pricing.CourtPricing{
		PricePerHour: c.PricePerHour,
		Rules:        c.PricingRules,
	}
}

// Filter defines parameters for listing courts.
type Filter struct {
	FacilityID string
	Sport      string
	Page       int
	PageSize   int
}
