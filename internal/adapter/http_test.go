package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplescope/peoplescope/internal/config"
	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logger.Nop()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		ServerURL:      srv.URL,
		RequestTimeout: 5 * time.Second,
	}, log)
	require.NoError(t, err)

	return a
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	log := logger.Nop()

	tests := []struct {
		name      string
		serverURL string
	}{
		{name: "empty", serverURL: ""},
		{name: "whitespace only", serverURL: "   "},
		{name: "scheme without host", serverURL: "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: tt.serverURL}, log)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "bare host gets http scheme", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", in: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "https preserved", in: "https://api.example.com", want: "https://api.example.com"},
		{name: "surrounding whitespace", in: "  http://localhost:8080  ", want: "http://localhost:8080"},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestHTTPServerAdapter_Register(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/user/register", func(w http.ResponseWriter, r *http.Request) {
		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "new-user", user.Login)

		w.Header().Set("Authorization", "Bearer test-token-123")
		user.Name = "New User"
		user.Password = ""
		_ = json.NewEncoder(w).Encode(user)
	})

	a := newTestAdapter(t, mux)

	registered, err := a.Register(context.Background(), models.User{Login: "new-user", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "new-user", registered.Login)
	assert.Equal(t, "New User", registered.Name)
	assert.Empty(t, registered.Password)
	assert.Equal(t, "test-token-123", a.Token())
}

func TestHTTPServerAdapter_Login_WrongPassword(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/user/login", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wrong login or password", http.StatusUnauthorized)
	})

	a := newTestAdapter(t, mux)

	_, err := a.Login(context.Background(), models.User{Login: "user", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestHTTPServerAdapter_Register_MissingTokenHeader(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/user/register", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.User{Login: "user"})
	})

	a := newTestAdapter(t, mux)

	_, err := a.Register(context.Background(), models.User{Login: "user", Password: "secret"})
	assert.Error(t, err)
}

// ── search and profile ──────────────────────────────────────────────────────

func TestHTTPServerAdapter_Search(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "ann harper", r.URL.Query().Get("q"))

		_ = json.NewEncoder(w).Encode(models.SearchResponse{
			Query:   "ann harper",
			Results: []models.Person{{ID: 1, Name: "Ann Harper"}},
			Summary: models.SearchSummary{Total: 1},
		})
	})

	a := newTestAdapter(t, mux)
	a.SetToken("test-token")

	resp, err := a.Search(context.Background(), "  Ann   Harper  ")
	require.NoError(t, err)

	assert.Equal(t, "ann harper", resp.Query)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Ann Harper", resp.Results[0].Name)
}

func TestHTTPServerAdapter_GetProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/profile/3", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Profile{
			Person: models.Person{ID: 3, Name: "Cy Nakamura"},
			Fields: []models.ProfileField{
				{Label: "Phone", Value: "+1 555 0100", RequiredLevel: models.LevelPremium},
			},
		})
	})

	a := newTestAdapter(t, mux)
	a.SetToken("test-token")

	profile, err := a.GetProfile(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "Cy Nakamura", profile.Person.Name)
	require.Len(t, profile.Fields, 1)
	assert.Equal(t, models.LevelPremium, profile.Fields[0].RequiredLevel)
}

func TestHTTPServerAdapter_GetProfile_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/profile/999", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "person not found", http.StatusNotFound)
	})

	a := newTestAdapter(t, mux)
	a.SetToken("test-token")

	_, err := a.GetProfile(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── version ─────────────────────────────────────────────────────────────────

func TestHTTPServerAdapter_Version(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/version/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"version": "1.2.3"})
	})

	a := newTestAdapter(t, mux)

	version, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestHTTPServerAdapter_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NewServeMux())
	srv.Close()

	log := logger.Nop()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: srv.URL, RequestTimeout: time.Second}, log)
	require.NoError(t, err)

	_, err = a.Version(context.Background())
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}
