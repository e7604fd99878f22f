package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/models"
)

// personRepository is the PostgreSQL-backed implementation of
// [PersonRepository]. All reads go against the "people" and
// "profile_fields" tables through the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so database interactions are traced with structured
// fields (person id, query, row counts).
type personRepository struct {
	*DB
	logger *logger.Logger
}

// NewPersonRepository constructs a [PersonRepository] backed by the provided
// database connection and logger.
func NewPersonRepository(db *DB, logger *logger.Logger) PersonRepository {
	logger.Debug().Msg("creating person repository")
	return &personRepository{
		DB:     db,
		logger: logger,
	}
}

// Search returns at most limit people matching the free-text query.
//
// A transient driver error (connection loss, deadlock, serialization
// failure) is retried once before being reported.
func (p *personRepository) Search(ctx context.Context, query string, limit uint64) ([]models.Person, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildSearchQuery(query, limit)
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.Search").
			Str("query", query).
			Msg("failed to build search query")
		return nil, err
	}

	rows, err := p.queryWithRetry(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.Search").
			Str("query", query).
			Msg("failed to execute search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Person, 0, limit)

	for rows.Next() {
		var person models.Person

		scanErr := rows.Scan(
			&person.ID,
			&person.Name,
			&person.Age,
			&person.Gender,
			&person.MaritalStatus,
			&person.Location,
			&person.Rating,
			&person.References,
			&person.Companies,
			&person.Contacts,
			&person.Image,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "personRepository.Search").
				Msg("failed to scan person row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, person)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "personRepository.Search").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetPerson returns the person with the given id or [ErrPersonNotFound].
func (p *personRepository) GetPerson(ctx context.Context, id int64) (models.Person, error) {
	log := logger.FromContext(ctx)

	var person models.Person
	row := p.DB.QueryRowContext(ctx, getPersonByID, id)

	err := row.Scan(
		&person.ID,
		&person.Name,
		&person.Age,
		&person.Gender,
		&person.MaritalStatus,
		&person.Location,
		&person.Rating,
		&person.References,
		&person.Companies,
		&person.Contacts,
		&person.Image,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Person{}, ErrPersonNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.GetPerson").
			Int64("person_id", id).
			Msg("failed to scan person row")
		return models.Person{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return person, nil
}

// GetProfile returns the person together with the ordered detail fields.
// A person without detail fields yields a profile with an empty Fields
// slice, not an error.
func (p *personRepository) GetProfile(ctx context.Context, id int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	person, err := p.GetPerson(ctx, id)
	if err != nil {
		return models.Profile{}, err
	}

	rows, err := p.DB.QueryContext(ctx, getProfileFields, id)
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.GetProfile").
			Int64("person_id", id).
			Msg("failed to execute profile fields query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	fields := make([]models.ProfileField, 0, 8)

	for rows.Next() {
		var field models.ProfileField
		var level int

		scanErr := rows.Scan(&field.Label, &field.Value, &level, &field.ContentType)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "personRepository.GetProfile").
				Int64("person_id", id).
				Msg("failed to scan profile field row")
			return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		field.RequiredLevel = models.SubscriptionLevel(level)
		fields = append(fields, field)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "personRepository.GetProfile").
			Int64("person_id", id).
			Msg("error occurred during rows iteration")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return models.Profile{Person: person, Fields: fields}, nil
}

// queryWithRetry executes a read query, retrying once when the error
// classifier reports the failure as transient.
func (p *personRepository) queryWithRetry(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err == nil {
		return rows, nil
	}

	if p.errorClassificator != nil && p.errorClassificator.Classify(err) == Retryable {
		p.logger.Warn().Err(err).Str("func", "personRepository.queryWithRetry").Msg("retrying transient database error")
		return p.DB.QueryContext(ctx, query, args...)
	}

	return nil, err
}
