package store

import (
	"context"

	"github.com/peoplescope/peoplescope/models"
)

// PersonRepository is the server-side read model over the people dataset.
type PersonRepository interface {
	// Search returns at most limit people whose name, gender, marital status
	// or location matches the free-text query case-insensitively. An empty
	// query returns the first limit records.
	Search(ctx context.Context, query string, limit uint64) ([]models.Person, error)

	// GetPerson returns the single person with the given id.
	GetPerson(ctx context.Context, id int64) (models.Person, error)

	// GetProfile returns the person together with the ordered detail fields
	// and the subscription level each field requires.
	GetProfile(ctx context.Context, id int64) (models.Profile, error)
}

// UserRepository manages registered accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}
