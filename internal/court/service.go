package court

import (
	"context"
	"errors"
	"strings"

	"github.com/sportbook-app/sportbook-backend/internal/facility"
	"github.com/sportbook-app/sportbook-backend/internal/pricing"
)

type CreateRequest struct {
	FacilityID   string
	Name         string
	Sport        string
	Surface      string
	Indoor       bool
	PricePerHour float64
}

// UpdateRequest carries mutable court fields. Nil means unchanged.
type UpdateRequest struct {
	Name         *string
	Sport        *string
	Surface      *string
	Indoor       *bool
	PricePerHour *float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest, creatorID string, isSysAdmin bool) (*Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, updaterID string, isSysAdmin bool) (*Court, error)
	UpdatePricingRules(ctx context.Context, id string, rules *pricing.Rules, updaterID string, isSysAdmin bool) (*Court, error)
	Delete(ctx context.Context, id string, deleterID string, isSysAdmin bool) error
}

type service struct {
	repo       Repository
	facService facility.Service
}

func NewService(repo Repository, facService facility.Service) Service {
	return &service{
		repo:       repo,
		facService: facService,
	}
}

// canManage checks whether the user may mutate courts of the facility.
func (s *service) canManage(ctx context.Context, facilityID, userID string, isSysAdmin bool) error {
	if isSysAdmin {
		return nil
	}
	isOwner, err := s.facService.IsOwner(ctx, facilityID, userID)
	if err != nil {
		if errors.Is(err, facility.ErrNotFound) {
			return ErrInvalidFacility
		}
		return err
	}
	if !isOwner {
		return ErrPermissionDenied
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest, creatorID string, isSysAdmin bool) (*Court, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.FacilityID == "" {
		return nil, ErrInvalidFacility
	}
	if !validSport(req.Sport) {
		return nil, ErrInvalidSport
	}
	if req.PricePerHour <= 0 {
		return nil, ErrInvalidPrice
	}

	if err := s.canManage(ctx, req.FacilityID, creatorID, isSysAdmin); err != nil {
		return nil, err
	}

	c := &Court{
		FacilityID:   req.FacilityID,
		Name:         strings.TrimSpace(req.Name),
		Sport:        req.Sport,
		Surface:      req.Surface,
		Indoor:       req.Indoor,
		PricePerHour: req.PricePerHour,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, updaterID string, isSysAdmin bool) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.canManage(ctx, c.FacilityID, updaterID, isSysAdmin); err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Sport != nil {
		if !validSport(*req.Sport) {
			return nil, ErrInvalidSport
		}
		c.Sport = *req.Sport
	}
	if req.Surface != nil {
		c.Surface = *req.Surface
	}
	if req.Indoor != nil {
		c.Indoor = *req.Indoor
	}
	if req.PricePerHour != nil {
		if *req.PricePerHour <= 0 {
			return nil, ErrInvalidPrice
		}
		c.PricePerHour = *req.PricePerHour
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) UpdatePricingRules(ctx context.Context, id string, rules *pricing.Rules, updaterID string, isSysAdmin bool) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.canManage(ctx, c.FacilityID, updaterID, isSysAdmin); err != nil {
		return nil, err
	}

	if rules != nil && rules.Mode != pricing.ModeFlat && rules.Mode != pricing.ModeAdvanced {
		return nil, ErrInvalidRules
	}

	c.PricingRules = rules
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string, deleterID string, isSysAdmin bool) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.canManage(ctx, c.FacilityID, deleterID, isSysAdmin); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func validSport(sport string) bool {
	for _, s := range ValidSports {
		if sport == s {
			return true
		}
	}
	return false
}
