package http

import (
	"time"

	"github.com/sportbook-app/sportbook-backend/internal/court"
	facHttp "github.com/sportbook-app/sportbook-backend/internal/facility/http"
	"github.com/sportbook-app/sportbook-backend/internal/pkg/request"
	"github.com/sportbook-app/sportbook-backend/internal/pricing"
)

// ListCourtsRequest defines query parameters for listing courts.
type ListCourtsRequest struct {
	request.ListParams
	FacilityID string `form:"facility_id" binding:"omitempty,uuid"`
	Sport      string `form:"sport" binding:"omitempty,oneof=padel tennis calcetto basket volley"`
}

type CreateCourtBody struct {
	FacilityID   string  `json:"facility_id" binding:"required,uuid"`
	Name         string  `json:"name" binding:"required,max=100"`
	Sport        string  `json:"sport" binding:"required,oneof=padel tennis calcetto basket volley"`
	Surface      string  `json:"surface" binding:"omitempty,max=50"`
	Indoor       bool    `json:"indoor"`
	PricePerHour float64 `json:"price_per_hour" binding:"required,gt=0"`
}

type UpdateCourtBody struct {
	Name         *string  `json:"name" binding:"omitempty,max=100"`
	Sport        *string  `json:"sport" binding:"omitempty,oneof=padel tennis calcetto basket volley"`
	Surface      *string  `json:"surface" binding:"omitempty,max=50"`
	Indoor       *bool    `json:"indoor"`
	PricePerHour *float64 `json:"price_per_hour" binding:"omitempty,gt=0"`
}

// UpdatePricingRulesBody replaces the court's whole pricing document.
// A null body clears the rules, reverting to the legacy per-hour rate.
type UpdatePricingRulesBody struct {
	PricingRules *pricing.Rules `json:"pricing_rules"`
}

type CourtResponse struct {
	ID           string              `json:"id"`
	Facility     facHttp.FacilityTag `json:"facility"`
	Name         string              `json:"name"`
	Sport        string              `json:"sport"`
	Surface      string              `json:"surface"`
	Indoor       bool                `json:"indoor"`
	PricePerHour float64             `json:"price_per_hour"`
	PricingRules *pricing.Rules      `json:"pricing_rules,omitempty"`
	// Display aggregates across all configured rules, per duration.
	PriceLabelOneHour     string    `json:"price_label_one_hour"`
	PriceLabelOneHourHalf string    `json:"price_label_one_hour_half"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// CourtTag is a brief representation of a court embedded in other responses.
type CourtTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewCourtResponse(c *court.Court) CourtResponse {
	cp := c.Pricing()
	return CourtResponse{
		ID:                    c.ID,
		Facility:              facHttp.FacilityTag{ID: c.FacilityID, Name: c.FacilityName},
		Name:                  c.Name,
		Sport:                 c.Sport,
		Surface:               c.Surface,
		Indoor:                c.Indoor,
		PricePerHour:          c.PricePerHour,
		PricingRules:          c.PricingRules,
		PriceLabelOneHour:     pricing.Label(cp, pricing.OneHour),
		PriceLabelOneHourHalf: pricing.Label(cp, pricing.OneHourHalf),
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}
