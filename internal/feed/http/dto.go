package http

import (
	"time"

	facHttp "github.com/sportbook-app/sportbook-backend/internal/facility/http"
	"github.com/sportbook-app/sportbook-backend/internal/feed"
	"github.com/sportbook-app/sportbook-backend/internal/pkg/request"
	userHttp "github.com/sportbook-app/sportbook-backend/internal/user/http"
)

// ListPostsRequest defines query parameters for listing feed posts.
type ListPostsRequest struct {
	request.ListParams
	AuthorID   string `form:"author_id" binding:"omitempty,uuid"`
	FacilityID string `form:"facility_id" binding:"omitempty,uuid"`
	Keyword    string `form:"q" binding:"omitempty,max=100"`
}

type CreatePostBody struct {
	FacilityID   *string  `json:"facility_id" binding:"omitempty,uuid"`
	Content      string   `json:"content" binding:"required,max=2000"`
	PhotoFileIDs []string `json:"photo_file_ids" binding:"omitempty,dive,uuid"`
}

type UpdatePostBody struct {
	Content      *string   `json:"content" binding:"omitempty,max=2000"`
	PhotoFileIDs *[]string `json:"photo_file_ids" binding:"omitempty,dive,uuid"`
}

type PostResponse struct {
	ID           string               `json:"id"`
	Author       userHttp.UserTag     `json:"author"`
	Facility     *facHttp.FacilityTag `json:"facility,omitempty"`
	Content      string               `json:"content"`
	PhotoFileIDs []string             `json:"photo_file_ids"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func NewPostResponse(p *feed.Post) PostResponse {
	resp := PostResponse{
		ID:           p.ID,
		Author:       userHttp.UserTag{ID: p.AuthorID, Name: p.AuthorName},
		Content:      p.Content,
		PhotoFileIDs: p.PhotoFileIDs,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.FacilityID != nil {
		tag := facHttp.FacilityTag{ID: *p.FacilityID}
		if p.FacilityName != nil {
			tag.Name = *p.FacilityName
		}
		resp.Facility = &tag
	}
	if resp.PhotoFileIDs == nil {
		resp.PhotoFileIDs = []string{}
	}
	return resp
}
