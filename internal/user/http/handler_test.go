package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sportbook-app/sportbook-backend/internal/auth"
	"github.com/sportbook-app/sportbook-backend/internal/user"
)

const testUserID = "9b2cbad2-7a63-4a9f-8a1d-2f3b6f0a1c11"

type stubUserService struct {
	user.Service
	registerErr error
	loginErr    error
}

func (s *stubUserService) Register(ctx context.Context, email, password, displayName string) (*user.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	name := displayName
	return &user.User{ID: testUserID, Email: email, DisplayName: &name, IsActive: true}, nil
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (*user.User, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &user.User{ID: testUserID, Email: email, IsActive: true}, nil
}

func (s *stubUserService) GetByID(ctx context.Context, id string) (*user.User, error) {
	if id != testUserID {
		return nil, user.ErrNotFound
	}
	return &user.User{ID: id, Email: "user@example.com", IsActive: true}, nil
}

func newTestRouter(t *testing.T, svc user.Service) (*gin.Engine, *auth.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := auth.NewJWTManager("test-secret", time.Minute)
	passThrough := func(c *gin.Context) { c.Next() }

	r := gin.New()
	v1 := r.Group("/v1")
	RegisterRoutes(v1, NewUserHandler(svc, jwtManager), auth.AuthRequired(jwtManager), passThrough)
	return r, jwtManager
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, &stubUserService{})

	w := doJSON(r, http.MethodPost, "/v1/auth/register", "",
		`{"email":"new@example.com","password":"longenough","display_name":"New User"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp MeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, testUserID, resp.User.ID)
	require.Equal(t, "new@example.com", resp.User.Email)
}

func TestRegisterEndpointStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		svc  *stubUserService
		body string
		want int
	}{
		{
			name: "duplicate email",
			svc:  &stubUserService{registerErr: user.ErrEmailAlreadyUsed},
			body: `{"email":"dup@example.com","password":"longenough"}`,
			want: http.StatusConflict,
		},
		{
			name: "password too short for the service",
			svc:  &stubUserService{registerErr: user.ErrPasswordTooShort},
			body: `{"email":"new@example.com","password":"12345678"}`,
			want: http.StatusBadRequest,
		},
		{
			name: "malformed email fails binding",
			svc:  &stubUserService{},
			body: `{"email":"not-an-email","password":"longenough"}`,
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(t, tt.svc)
			w := doJSON(r, http.MethodPost, "/v1/auth/register", "", tt.body)
			require.Equal(t, tt.want, w.Code)
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	r, jwtManager := newTestRouter(t, &stubUserService{})

	w := doJSON(r, http.MethodPost, "/v1/auth/login", "",
		`{"email":"user@example.com","password":"longenough"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, testUserID, resp.User.ID)

	// The issued token must round-trip through the same manager.
	claims, err := jwtManager.ParseAndValidate(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, testUserID, claims.UserID)
}

func TestLoginEndpointHidesFailureCause(t *testing.T) {
	for _, svcErr := range []error{user.ErrInvalidCredentials, user.ErrNotFound, user.ErrInactiveUser} {
		r, _ := newTestRouter(t, &stubUserService{loginErr: svcErr})
		w := doJSON(r, http.MethodPost, "/v1/auth/login", "",
			`{"email":"user@example.com","password":"wrong"}`)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "invalid email or password")
	}
}

func TestMeEndpoint(t *testing.T) {
	r, jwtManager := newTestRouter(t, &stubUserService{})

	token, err := jwtManager.GenerateAccessToken(testUserID, "user@example.com")
	require.NoError(t, err)

	w := doJSON(r, http.MethodGet, "/v1/me", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp MeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, testUserID, resp.User.ID)

	// No token at all is rejected by the middleware.
	w = doJSON(r, http.MethodGet, "/v1/me", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
