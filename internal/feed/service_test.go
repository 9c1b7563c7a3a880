package feed

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	posts  map[string]*Post
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{posts: map[string]*Post{}}
}

func (r *fakeRepo) Create(ctx context.Context, p *Post) error {
	r.nextID++
	p.ID = fmt.Sprintf("post-%d", r.nextID)
	r.posts[p.ID] = p
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*Post, int, error) {
	var out []*Post
	for _, p := range r.posts {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(ctx context.Context, p *Post) error {
	if _, ok := r.posts[p.ID]; !ok {
		return ErrNotFound
	}
	r.posts[p.ID] = p
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func TestCreatePost(t *testing.T) {
	svc := NewService(newFakeRepo())

	p, err := svc.Create(context.Background(), CreateRequest{
		AuthorID: "user-1",
		Content:  "  Grande partita stasera!  ",
	})
	require.NoError(t, err)
	require.Equal(t, "Grande partita stasera!", p.Content)
	require.Nil(t, p.FacilityID)

	_, err = svc.Create(context.Background(), CreateRequest{AuthorID: "user-1", Content: "   "})
	require.ErrorIs(t, err, ErrContentRequired)
}

func TestUpdatePost(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateRequest{AuthorID: "user-1", Content: "originale"})
	require.NoError(t, err)

	edited := "modificato"
	got, err := svc.Update(ctx, p.ID, UpdateRequest{Content: &edited}, "user-1", false)
	require.NoError(t, err)
	require.Equal(t, "modificato", got.Content)

	_, err = svc.Update(ctx, p.ID, UpdateRequest{Content: &edited}, "user-2", false)
	require.ErrorIs(t, err, ErrPermissionDenied)

	// A system admin can edit anybody's post.
	_, err = svc.Update(ctx, p.ID, UpdateRequest{Content: &edited}, "admin-1", true)
	require.NoError(t, err)

	blank := " "
	_, err = svc.Update(ctx, p.ID, UpdateRequest{Content: &blank}, "user-1", false)
	require.ErrorIs(t, err, ErrContentRequired)
}

func TestDeletePost(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateRequest{AuthorID: "user-1", Content: "da cancellare"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, p.ID, "user-2", false), ErrPermissionDenied)
	require.NoError(t, svc.Delete(ctx, p.ID, "user-1", false))

	_, err = svc.GetByID(ctx, p.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
