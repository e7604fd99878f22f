package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/models"
)

func newTestCacheRepo(t *testing.T) (*searchCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &searchCacheRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func sampleResponse() models.SearchResponse {
	return models.SearchResponse{
		Query: "ann harper",
		Results: []models.Person{
			{ID: 1, Name: "Ann Harper", Age: 34, Gender: "Female", MaritalStatus: "Single", Location: "New York, NY", Rating: 4.0},
		},
		Summary: models.SearchSummary{Total: 1, AverageAge: 34, AverageRating: 4.0, TopLocations: []string{"New York, NY"}},
	}
}

func TestSaveSearch_NormalizesQueryKey(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO searches").
		WithArgs("ann harper", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveSearch(context.Background(), "  ann   harper ", sampleResponse())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetSearch_RoundTrip(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	response := sampleResponse()
	payload, _ := json.Marshal(response)
	fetchedAt := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery("SELECT (.+) FROM searches").
		WithArgs("ann harper").
		WillReturnRows(sqlmock.NewRows([]string{"response", "fetched_at"}).
			AddRow(string(payload), fetchedAt))

	got, at, err := repo.GetSearch(context.Background(), "ann harper")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !at.Equal(fetchedAt) {
		t.Errorf("expected fetched_at %v, got %v", fetchedAt, at)
	}
	if got.Query != response.Query {
		t.Errorf("expected query %q, got %q", response.Query, got.Query)
	}
	if len(got.Results) != 1 || got.Results[0].Name != "Ann Harper" {
		t.Errorf("unexpected cached results: %+v", got.Results)
	}
}

func TestGetSearch_Miss(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM searches").
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, _, err := repo.GetSearch(context.Background(), "nobody")
	if !errors.Is(err, ErrCachedSearchNotFound) {
		t.Fatalf("expected ErrCachedSearchNotFound, got %v", err)
	}
}

func TestGetSearch_CorruptPayload(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM searches").
		WithArgs("ann").
		WillReturnRows(sqlmock.NewRows([]string{"response", "fetched_at"}).
			AddRow("{not json", time.Now()))

	_, _, err := repo.GetSearch(context.Background(), "ann")
	if err == nil {
		t.Fatal("expected decode error, got nil")
	}
}

func TestSaveAndGetProfile(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	profile := models.Profile{
		Person: models.Person{ID: 1, Name: "Ann Harper", Age: 34, Gender: "Female", MaritalStatus: "Single", Location: "New York, NY", Rating: 4.0},
		Fields: []models.ProfileField{
			{Label: "Phone", Value: "(555) 010-0134", RequiredLevel: models.LevelStandard, ContentType: models.ContentPhone},
		},
	}

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(int64(1), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveProfile(context.Background(), profile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload, _ := json.Marshal(profile)
	mock.ExpectQuery("SELECT (.+) FROM profiles").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"profile"}).AddRow(string(payload)))

	got, err := repo.GetProfile(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Person.Name != "Ann Harper" {
		t.Errorf("expected 'Ann Harper', got %q", got.Person.Name)
	}
	if len(got.Fields) != 1 || got.Fields[0].ContentType != models.ContentPhone {
		t.Errorf("unexpected profile fields: %+v", got.Fields)
	}
}

func TestGetProfile_Miss(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM profiles").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProfile(context.Background(), 404)
	if !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}

func TestPruneStale_CountsBothTables(t *testing.T) {
	repo, mock, db := newTestCacheRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM searches").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM profiles").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	pruned, err := repo.PruneStale(context.Background(), time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pruned != 5 {
		t.Errorf("expected 5 pruned rows, got %d", pruned)
	}
}
