package feed

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("post not found")
	ErrContentRequired  = errors.New("content is required")
	ErrPermissionDenied = errors.New("permission denied")
)

// Post is a community feed entry: a short text by a player, optionally
// tagged with a facility and carrying photo attachments.
type Post struct {
	ID           string
	AuthorID     string
	AuthorName   string
	FacilityID   *string
	FacilityName *string
	Content      string
	PhotoFileIDs []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing posts.
type Filter struct {
	AuthorID   string
	FacilityID string
	Keyword    string
	Page       int
	PageSize   int
}
