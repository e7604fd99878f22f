package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/service"
	"github.com/peoplescope/peoplescope/internal/store"
	"github.com/peoplescope/peoplescope/models"
)

// ─────────────────────────────────────────────
// Mock SearchService / ProfileService
// ─────────────────────────────────────────────

type mockSearchService struct {
	searchFn func(ctx context.Context, query string) (models.SearchResponse, error)
}

func (m *mockSearchService) Search(ctx context.Context, query string) (models.SearchResponse, error) {
	return m.searchFn(ctx, query)
}

type mockProfileService struct {
	getProfileFn func(ctx context.Context, personID int64) (models.Profile, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, personID int64) (models.Profile, error) {
	return m.getProfileFn(ctx, personID)
}

func newHandlerWithSearch(t *testing.T, searchSvc service.SearchService, profileSvc service.ProfileService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		SearchService:  searchSvc,
		ProfileService: profileSvc,
	}, logger.Nop())
}

// ─────────────────────────────────────────────
// search
// ─────────────────────────────────────────────

// TestSearchHandler_Success verifies that results come back as JSON with the
// normalized query echoed in the envelope.
func TestSearchHandler_Success(t *testing.T) {
	searchSvc := &mockSearchService{
		searchFn: func(_ context.Context, query string) (models.SearchResponse, error) {
			assert.Equal(t, "ann harper", query)
			return models.SearchResponse{
				Query:   "ann harper",
				Results: []models.Person{{ID: 1, Name: "Ann Harper"}},
				Summary: models.SearchSummary{Total: 1},
			}, nil
		},
	}

	h := newHandlerWithSearch(t, searchSvc, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=ann+harper", nil)
	rec := httptest.NewRecorder()

	h.search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var response models.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "ann harper", response.Query)
	require.Len(t, response.Results, 1)
	assert.Equal(t, 1, response.Summary.Total)
}

// TestSearchHandler_EmptyQueryIsBrowse verifies that a missing q parameter is
// forwarded to the service rather than rejected.
func TestSearchHandler_EmptyQueryIsBrowse(t *testing.T) {
	var gotQuery *string

	searchSvc := &mockSearchService{
		searchFn: func(_ context.Context, query string) (models.SearchResponse, error) {
			gotQuery = &query
			return models.SearchResponse{Query: ""}, nil
		},
	}

	h := newHandlerWithSearch(t, searchSvc, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rec := httptest.NewRecorder()

	h.search(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotQuery)
	assert.Equal(t, "", *gotQuery)
}

// TestSearchHandler_ServiceError verifies that repository failures map to
// 500 Internal Server Error.
func TestSearchHandler_ServiceError(t *testing.T) {
	searchSvc := &mockSearchService{
		searchFn: func(_ context.Context, _ string) (models.SearchResponse, error) {
			return models.SearchResponse{}, errors.New("db down")
		},
	}

	h := newHandlerWithSearch(t, searchSvc, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=ann", nil)
	rec := httptest.NewRecorder()

	h.search(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// profile
// ─────────────────────────────────────────────

func profileRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/profile/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// TestProfileHandler_Success verifies that the full profile is returned,
// including gated field values.
func TestProfileHandler_Success(t *testing.T) {
	profileSvc := &mockProfileService{
		getProfileFn: func(_ context.Context, personID int64) (models.Profile, error) {
			assert.Equal(t, int64(3), personID)
			return models.Profile{
				Person: models.Person{ID: 3, Name: "Cy Nakamura"},
				Fields: []models.ProfileField{
					{Label: "Phone", Value: "+1 555 0100", RequiredLevel: models.LevelStandard, ContentType: models.ContentPhone},
				},
			}, nil
		},
	}

	h := newHandlerWithSearch(t, nil, profileSvc)
	rec := httptest.NewRecorder()

	h.profile(rec, profileRequest("3"))

	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Cy Nakamura", profile.Person.Name)
	require.Len(t, profile.Fields, 1)
	assert.Equal(t, "+1 555 0100", profile.Fields[0].Value, "server returns full values; redaction is client-side")
}

// TestProfileHandler_NotFound verifies that store.ErrPersonNotFound maps to
// 404 Not Found.
func TestProfileHandler_NotFound(t *testing.T) {
	profileSvc := &mockProfileService{
		getProfileFn: func(_ context.Context, _ int64) (models.Profile, error) {
			return models.Profile{}, store.ErrPersonNotFound
		},
	}

	h := newHandlerWithSearch(t, nil, profileSvc)
	rec := httptest.NewRecorder()

	h.profile(rec, profileRequest("999"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "person not found")
}

// TestProfileHandler_BadID verifies that non-numeric and non-positive ids map
// to 400 Bad Request without touching the service.
func TestProfileHandler_BadID(t *testing.T) {
	profileSvc := &mockProfileService{
		getProfileFn: func(_ context.Context, _ int64) (models.Profile, error) {
			t.Fatal("service must not be called for an invalid id")
			return models.Profile{}, nil
		},
	}

	h := newHandlerWithSearch(t, nil, profileSvc)

	for _, id := range []string{"abc", "0", "-5"} {
		t.Run(id, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.profile(rec, profileRequest(id))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
