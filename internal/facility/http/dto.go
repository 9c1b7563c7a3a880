package http

import (
	"time"

	"github.com/sportbook-app/sportbook-backend/internal/facility"
	"github.com/sportbook-app/sportbook-backend/internal/pkg/request"
)

// ListFacilitiesRequest defines query parameters for listing facilities.
type ListFacilitiesRequest struct {
	request.ListParams
	City    string `form:"city" binding:"omitempty,max=100"`
	Keyword string `form:"q" binding:"omitempty,max=100"`
	OwnerID string `form:"owner_id" binding:"omitempty,uuid"` // Owner-side listing
}

type CreateFacilityBody struct {
	Name           string   `json:"name" binding:"required,max=150"`
	Description    string   `json:"description" binding:"omitempty,max=2000"`
	Address        string   `json:"address" binding:"omitempty,max=300"`
	City           string   `json:"city" binding:"omitempty,max=100"`
	Phone          string   `json:"phone" binding:"omitempty,max=30"`
	OpeningTime    string   `json:"opening_time" binding:"required,len=5"`
	ClosingTime    string   `json:"closing_time" binding:"required,len=5"`
	ClosedWeekdays []int    `json:"closed_weekdays" binding:"omitempty,dive,min=0,max=6"`
	Amenities      []string `json:"amenities" binding:"omitempty,dive,max=50"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
}

type UpdateFacilityBody struct {
	Name           *string   `json:"name" binding:"omitempty,max=150"`
	Description    *string   `json:"description" binding:"omitempty,max=2000"`
	Address        *string   `json:"address" binding:"omitempty,max=300"`
	City           *string   `json:"city" binding:"omitempty,max=100"`
	Phone          *string   `json:"phone" binding:"omitempty,max=30"`
	OpeningTime    *string   `json:"opening_time" binding:"omitempty,len=5"`
	ClosingTime    *string   `json:"closing_time" binding:"omitempty,len=5"`
	ClosedWeekdays *[]int    `json:"closed_weekdays" binding:"omitempty,dive,min=0,max=6"`
	Amenities      *[]string `json:"amenities" binding:"omitempty,dive,max=50"`
	PhotoFileIDs   *[]string `json:"photo_file_ids" binding:"omitempty,dive,uuid"`
}

type FacilityResponse struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	Phone          string    `json:"phone"`
	OpeningTime    string    `json:"opening_time"`
	ClosingTime    string    `json:"closing_time"`
	ClosedWeekdays []int     `json:"closed_weekdays"`
	Amenities      []string  `json:"amenities"`
	PhotoFileIDs   []string  `json:"photo_file_ids"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FacilityTag is a brief representation of a facility embedded in other responses.
type FacilityTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewFacilityResponse(f *facility.Facility) FacilityResponse {
	resp := FacilityResponse{
		ID:             f.ID,
		OwnerID:        f.OwnerID,
		Name:           f.Name,
		Description:    f.Description,
		Address:        f.Address,
		City:           f.City,
		Phone:          f.Phone,
		OpeningTime:    f.OpeningTime,
		ClosingTime:    f.ClosingTime,
		ClosedWeekdays: f.ClosedWeekdays,
		Amenities:      f.Amenities,
		PhotoFileIDs:   f.PhotoFileIDs,
		Latitude:       f.Latitude,
		Longitude:      f.Longitude,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
	// Avoid JSON null for empty collections
	if resp.ClosedWeekdays == nil {
		resp.ClosedWeekdays = []int{}
	}
	if resp.Amenities == nil {
		resp.Amenities = []string{}
	}
	if resp.PhotoFileIDs == nil {
		resp.PhotoFileIDs = []string{}
	}
	return resp
}
