package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-backend/internal/domains/artwork"
)

type stubService struct {
	items     []artwork.Artwork
	createErr error
}

func (s *stubService) List(ctx context.Context) ([]artwork.Artwork, error) {
	return s.items, nil
}

func (s *stubService) Create(ctx context.Context, in *artwork.Input) (*artwork.Artwork, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &artwork.Artwork{ID: "1", Title: in.Title, ImageURL: in.ImageURL}, nil
}

func (s *stubService) Update(ctx context.Context, id string, in *artwork.Input) (*artwork.Artwork, error) {
	return &artwork.Artwork{ID: id, Title: in.Title, ImageURL: in.ImageURL}, nil
}

func (s *stubService) Delete(ctx context.Context, id string) error { return nil }

func setupRouter(svc artwork.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewArtworkHandler(svc)

	r := gin.New()
	r.GET("/artworks", h.List)
	r.POST("/artworks", h.Create)
	r.PUT("/artworks/:id", h.Update)
	r.DELETE("/artworks/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestListReturnsEmptyArrayNotNull(t *testing.T) {
	r := setupRouter(&stubService{})

	w, env := doJSON(t, r, http.MethodGet, "/artworks", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "true", string(env["success"]))
	// An empty gallery serializes as [] so clients can iterate unconditionally.
	assert.JSONEq(t, "[]", string(env["items"]))
}

func TestCreateWrapsItemInEnvelope(t *testing.T) {
	r := setupRouter(&stubService{})

	w, env := doJSON(t, r, http.MethodPost, "/artworks",
		`{"title":"Moon Jar","imageUrl":"http://cdn/artworks/a.jpg"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "true", string(env["success"]))

	var item artwork.Artwork
	require.NoError(t, json.Unmarshal(env["item"], &item))
	assert.Equal(t, "Moon Jar", item.Title)
}

func TestCreateValidationFailureIs400(t *testing.T) {
	svc := &stubService{createErr: validation.Errors{"imageUrl": assert.AnError}}
	r := setupRouter(svc)

	w, env := doJSON(t, r, http.MethodPost, "/artworks", `{"title":"no image"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, "false", string(env["success"]))
	assert.NotEmpty(t, env["error"])
}

func TestCreateMalformedJSONIs400(t *testing.T) {
	r := setupRouter(&stubService{})

	w, env := doJSON(t, r, http.MethodPost, "/artworks", `{"title":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, "false", string(env["success"]))
}

func TestDeleteReturnsBareSuccess(t *testing.T) {
	r := setupRouter(&stubService{})

	w, env := doJSON(t, r, http.MethodDelete, "/artworks/42", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "true", string(env["success"]))
	assert.Len(t, env, 1)
}
