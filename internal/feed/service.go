package feed

import (
	"context"
	"strings"
)

type CreateRequest struct {
	AuthorID     string
	FacilityID   *string
	Content      string
	PhotoFileIDs []string
}

type UpdateRequest struct {
	Content      *string
	PhotoFileIDs *[]string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Post, error)
	GetByID(ctx context.Context, id string) (*Post, error)
	List(ctx context.Context, filter Filter) ([]*Post, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, updaterID string, isSysAdmin bool) (*Post, error)
	Delete(ctx context.Context, id string, deleterID string, isSysAdmin bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Post, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}

	p := &Post{
		AuthorID:     req.AuthorID,
		FacilityID:   req.FacilityID,
		Content:      strings.TrimSpace(req.Content),
		PhotoFileIDs: req.PhotoFileIDs,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Post, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, updaterID string, isSysAdmin bool) (*Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isSysAdmin && p.AuthorID != updaterID {
		return nil, ErrPermissionDenied
	}

	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, ErrContentRequired
		}
		p.Content = strings.TrimSpace(*req.Content)
	}
	if req.PhotoFileIDs != nil {
		p.PhotoFileIDs = *req.PhotoFileIDs
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string, deleterID string, isSysAdmin bool) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isSysAdmin && p.AuthorID != deleterID {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}
