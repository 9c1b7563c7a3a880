package user

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byID    map[string]*User
	byEmail map[string]*User
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]*User{}, byEmail: map[string]*User{}}
}

func (r *fakeRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeRepo) Create(ctx context.Context, u *User) error {
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	u.CreatedAt = time.Now()
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, u *User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeRepo) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.LastLoginAt = &t
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	var out []*User
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, len(out), nil
}

// fakeHasher records passwords verbatim so tests can assert on them.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func newTestService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, fakeHasher{}), repo
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), "  Mario.Rossi@Example.COM ", "supersecret", "Mario")
	require.NoError(t, err)
	require.Equal(t, "mario.rossi@example.com", u.Email)
	require.Equal(t, "hashed:supersecret", u.PasswordHash)
	require.NotNil(t, u.DisplayName)
	require.Equal(t, "Mario", *u.DisplayName)
	require.True(t, u.IsActive)
	require.False(t, u.IsSystemAdmin)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "   ", "supersecret", "")
	require.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.Register(ctx, "mario@example.com", "short", "")
	require.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = svc.Register(ctx, "mario@example.com", "supersecret", "")
	require.NoError(t, err)

	// Same address with different casing still collides.
	_, err = svc.Register(ctx, "MARIO@example.com", "supersecret", "")
	require.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestLogin(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "mario@example.com", "supersecret", "Mario")
	require.NoError(t, err)

	u, err := svc.Login(ctx, "MARIO@example.com", "supersecret")
	require.NoError(t, err)
	require.Equal(t, registered.ID, u.ID)

	// Login stamps the last-login time, best effort.
	stored, _ := repo.GetByID(ctx, u.ID)
	require.NotNil(t, stored.LastLoginAt)

	_, err = svc.Login(ctx, "mario@example.com", "wrongpassword")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown emails are indistinguishable from bad passwords.
	_, err = svc.Login(ctx, "nobody@example.com", "supersecret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "mario@example.com", "supersecret", "")
	require.NoError(t, err)

	repo.byID[u.ID].IsActive = false

	_, err = svc.Login(ctx, "mario@example.com", "supersecret")
	require.ErrorIs(t, err, ErrInactiveUser)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "mario@example.com", "supersecret", "Mario")
	require.NoError(t, err)

	phone := "+39 333 1234567"
	avatar := "7d5a2c1e-0000-0000-0000-000000000000"
	got, err := svc.Update(ctx, u.ID, UpdateRequest{Phone: &phone, AvatarFileID: &avatar})
	require.NoError(t, err)
	require.NotNil(t, got.Phone)
	require.Equal(t, phone, *got.Phone)
	require.NotNil(t, got.AvatarFileID)

	// A blank display name clears it.
	blank := "  "
	got, err = svc.Update(ctx, u.ID, UpdateRequest{DisplayName: &blank})
	require.NoError(t, err)
	require.Nil(t, got.DisplayName)

	_, err = svc.Update(ctx, "missing", UpdateRequest{Phone: &phone})
	require.ErrorIs(t, err, ErrNotFound)
}
