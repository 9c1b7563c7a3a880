package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sportbook-app/sportbook-backend/internal/auth"
	"github.com/sportbook-app/sportbook-backend/internal/file"
)

const (
	testFileID     = "c56a4180-65aa-42ec-a945-5fd21dec0538"
	testFileUserID = "9b2cbad2-7a63-4a9f-8a1d-2f3b6f0a1c11"
)

type stubFileService struct {
	file.Service
	lastUpload *file.UploadInput
}

func (s *stubFileService) Upload(ctx context.Context, input file.UploadInput) (*file.File, error) {
	s.lastUpload = &input
	thumb := "thumbs/" + testFileID + ".jpg"
	return &file.File{
		ID:            testFileID,
		UserID:        input.UserID,
		Filename:      input.FileHeader.Filename,
		ContentType:   "image/jpeg",
		ThumbnailPath: &thumb,
	}, nil
}

func (s *stubFileService) Download(ctx context.Context, id string) (io.ReadCloser, *file.File, error) {
	if id != testFileID {
		return nil, nil, file.ErrNotFound
	}
	f := &file.File{ID: id, Filename: "court.jpg", ContentType: "image/jpeg"}
	return io.NopCloser(strings.NewReader("image-bytes")), f, nil
}

func (s *stubFileService) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *file.File, error) {
	if id != testFileID {
		return nil, nil, file.ErrNotFound
	}
	f := &file.File{ID: id, Filename: "court.jpg", ContentType: "image/jpeg"}
	return io.NopCloser(strings.NewReader("thumb-bytes")), f, nil
}

func newTestRouter(t *testing.T, svc file.Service) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := auth.NewJWTManager("test-secret", time.Minute)
	token, err := jwtManager.GenerateAccessToken(testFileUserID, "user@example.com")
	require.NoError(t, err)

	r := gin.New()
	v1 := r.Group("/v1")
	RegisterRoutes(v1, NewHandler(svc), auth.AuthRequired(jwtManager))
	return r, token
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestServeFileEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, &stubFileService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/files/"+testFileID, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	require.Equal(t, "image-bytes", w.Body.String())

	// Unknown file maps to 404.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/files/"+testFileUserID, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestServeThumbnailEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, &stubFileService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/files/"+testFileID+"/thumbnail", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	require.Equal(t, "thumb-bytes", w.Body.String())
}

func TestUploadEndpoint(t *testing.T) {
	svc := &stubFileService{}
	r, token := newTestRouter(t, svc)

	body, contentType := multipartBody(t, "file", "court.jpg", []byte("fake-image"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/files", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp FileUploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, testFileID, resp.FileID)
	require.Equal(t, file.FileURL(testFileID), resp.URL)
	require.NotNil(t, resp.ThumbnailURL)

	// The uploader comes from the token.
	require.NotNil(t, svc.lastUpload)
	require.Equal(t, testFileUserID, svc.lastUpload.UserID)
}

func TestUploadEndpointValidation(t *testing.T) {
	r, token := newTestRouter(t, &stubFileService{})

	// Missing the file form field.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/files", strings.NewReader(""))
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Uploading requires a token.
	body, contentType := multipartBody(t, "file", "court.jpg", []byte("fake-image"))
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/files", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
