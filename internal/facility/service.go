package facility

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name           string
	Description    string
	Address        string
	City           string
	Phone          string
	OpeningTime    string
	ClosingTime    string
	ClosedWeekdays []int
	Amenities      []string
	Latitude       float64
	Longitude      float64
}

// UpdateRequest carries mutable facility fields. Nil means unchanged.
type UpdateRequest struct {
	Name           *string
	Description    *string
	Address        *string
	City           *string
	Phone          *string
	OpeningTime    *string
	ClosingTime    *string
	ClosedWeekdays *[]int
	Amenities      *[]string
	PhotoFileIDs   *[]string
}

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateRequest) (*Facility, error)
	GetByID(ctx context.Context, id string) (*Facility, error)
	List(ctx context.Context, filter Filter) ([]*Facility, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, updaterID string, isSysAdmin bool) (*Facility, error)
	Delete(ctx context.Context, id string, deleterID string, isSysAdmin bool) error

	// IsOwner reports whether the user owns the facility. Used by the
	// court and booking modules for owner-side permission checks.
	IsOwner(ctx context.Context, facilityID, userID string) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Facility, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if !validHours(req.OpeningTime, req.ClosingTime) {
		return nil, ErrInvalidOpeningHours
	}
	for _, d := range req.ClosedWeekdays {
		if d < 0 || d > 6 {
			return nil, ErrInvalidClosedWeekday
		}
	}

	f := &Facility{
		OwnerID:        ownerID,
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		Address:        req.Address,
		City:           req.City,
		Phone:          req.Phone,
		OpeningTime:    req.OpeningTime,
		ClosingTime:    req.ClosingTime,
		ClosedWeekdays: req.ClosedWeekdays,
		Amenities:      req.Amenities,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Facility, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Facility, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, updaterID string, isSysAdmin bool) (*Facility, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isSysAdmin && f.OwnerID != updaterID {
		return nil, ErrPermissionDenied
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		f.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		f.Description = *req.Description
	}
	if req.Address != nil {
		f.Address = *req.Address
	}
	if req.City != nil {
		f.City = *req.City
	}
	if req.Phone != nil {
		f.Phone = *req.Phone
	}

	newOpen := f.OpeningTime
	newClose := f.ClosingTime
	if req.OpeningTime != nil {
		newOpen = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		newClose = *req.ClosingTime
	}
	if !validHours(newOpen, newClose) {
		return nil, ErrInvalidOpeningHours
	}
	f.OpeningTime = newOpen
	f.ClosingTime = newClose

	if req.ClosedWeekdays != nil {
		for _, d := range *req.ClosedWeekdays {
			if d < 0 || d > 6 {
				return nil, ErrInvalidClosedWeekday
			}
		}
		f.ClosedWeekdays = *req.ClosedWeekdays
	}
	if req.Amenities != nil {
		f.Amenities = *req.Amenities
	}
	if req.PhotoFileIDs != nil {
		f.PhotoFileIDs = *req.PhotoFileIDs
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) Delete(ctx context.Context, id string, deleterID string, isSysAdmin bool) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isSysAdmin && f.OwnerID != deleterID {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) IsOwner(ctx context.Context, facilityID, userID string) (bool, error) {
	f, err := s.repo.GetByID(ctx, facilityID)
	if err != nil {
		return false, err
	}
	return f.OwnerID == userID, nil
}

// validHours checks HH:MM formatting and that opening precedes closing.
// Lexicographic comparison is valid on zero-padded HH:MM.
func validHours(open, close string) bool {
	return validHHMM(open) && validHHMM(close) && open < close
}

func validHHMM(v string) bool {
	if len(v) != 5 || v[2] != ':' {
		return false
	}
	h := (int(v[0]-'0'))*10 + int(v[1]-'0')
	m := (int(v[3]-'0'))*10 + int(v[4]-'0')
	for _, c := range []byte{v[0], v[1], v[3], v[4]} {
		if c < '0' || c > '9' {
			return false
		}
	}
	return h >= 0 && h <= 23 && m >= 0 && m <= 59
}
