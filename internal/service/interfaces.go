package service

import (
	"context"

	"github.com/peoplescope/peoplescope/models"
)

// SearchService runs the server-side half of the search pipeline: repository
// lookup, record sanitization, and summary generation.
type SearchService interface {
	// Search returns sanitized people matching the free-text query together
	// with the aggregate summary. An empty query lists the demo dataset.
	Search(ctx context.Context, query string) (models.SearchResponse, error)
}

// ProfileService serves full person profiles. Every field is returned with
// the subscription level it requires; the client decides what to redact.
type ProfileService interface {
	GetProfile(ctx context.Context, personID int64) (models.Profile, error)
}

// AuthService handles account registration, credential verification, and
// the JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
