package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/service"
	"github.com/peoplescope/peoplescope/models"
)

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// newRouterForTest wires a full router with permissive auth: any request
// carrying "Bearer good-token" is authenticated as user 7.
func newRouterForTest(t *testing.T) http.Handler {
	t.Helper()

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "good-token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: 7}, nil
		},
	}
	searchSvc := &mockSearchService{
		searchFn: func(_ context.Context, _ string) (models.SearchResponse, error) {
			return models.SearchResponse{Query: "ok"}, nil
		},
	}

	h := NewHandler(&service.Services{
		AuthService:    auth,
		SearchService:  searchSvc,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, logger.Nop())

	return h.Init()
}

// ─────────────────────────────────────────────
// route protection
// ─────────────────────────────────────────────

// TestRoutes_SearchRequiresAuth verifies that /api/search rejects requests
// without a bearer token.
func TestRoutes_SearchRequiresAuth(t *testing.T) {
	router := newRouterForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=ann", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestRoutes_SearchWithToken verifies that a valid bearer token passes the
// auth middleware and reaches the search handler.
func TestRoutes_SearchWithToken(t *testing.T) {
	router := newRouterForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=ann", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"query":"ok"`)
}

// TestRoutes_InvalidTokenRejected verifies that a bad token is rejected with
// 401 Unauthorized.
func TestRoutes_InvalidTokenRejected(t *testing.T) {
	router := newRouterForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=ann", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestRoutes_VersionIsPublic verifies that the version endpoint requires no
// authentication.
func TestRoutes_VersionIsPublic(t *testing.T) {
	router := newRouterForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test-version")
}

// ─────────────────────────────────────────────
// method checking
// ─────────────────────────────────────────────

// TestRoutes_WrongMethodYields404 verifies that an unsupported method on a
// known path responds 404 rather than 405, hiding route existence.
func TestRoutes_WrongMethodYields404(t *testing.T) {
	router := newRouterForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/user/register", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// tracing
// ─────────────────────────────────────────────

// TestRoutes_TraceIDPropagated verifies that an inbound X-Trace-ID header is
// echoed back, and that one is generated when absent.
func TestRoutes_TraceIDPropagated(t *testing.T) {
	router := newRouterForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("X-Trace-ID", "trace-42")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get("X-Trace-ID"))

	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/api/version/", nil))
	assert.NotEmpty(t, rec2.Header().Get("X-Trace-ID"))
}

// ─────────────────────────────────────────────
// compression
// ─────────────────────────────────────────────

// TestRoutes_GzipResponse verifies that responses are gzip-encoded when the
// client advertises support.
func TestRoutes_GzipResponse(t *testing.T) {
	router := newRouterForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.False(t, strings.Contains(rec.Body.String(), "test-version"), "body must be compressed")
}

// ─────────────────────────────────────────────
// auth header parsing
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "no token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token part", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
