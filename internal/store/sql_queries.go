package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	getPersonByID = `SELECT id, name, age, gender, marital_status, location, rating, refs, companies, contacts, image
    FROM people
    WHERE id = $1;`

	getProfileFields = `SELECT label, value, required_level, content_type
    FROM profile_fields
    WHERE person_id = $1
    ORDER BY position;`
)

// personColumns is the canonical column list scanned into models.Person.
var personColumns = []string{
	"id", "name", "age", "gender", "marital_status", "location",
	"rating", "refs", "companies", "contacts", "image",
}

// buildSearchQuery constructs the people-search SELECT for the given
// free-text query. A non-empty query adds a case-insensitive substring
// filter across name, gender, marital_status and location; an empty query
// returns the unfiltered listing. Results are ordered by id so pagination
// of the demo dataset stays deterministic.
func buildSearchQuery(query string, limit uint64) (string, []any, error) {
	builder := sq.Select(personColumns...).
		From("people").
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)

	if query != "" {
		pattern := "%" + query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"gender": pattern},
			sq.ILike{"marital_status": pattern},
			sq.ILike{"location": pattern},
		})
	}

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}
