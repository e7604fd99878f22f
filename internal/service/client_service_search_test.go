package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/mock"
	"github.com/peoplescope/peoplescope/internal/store"
	"github.com/peoplescope/peoplescope/models"
)

// counterIDSource implements search.IDSource with predictable ids.
type counterIDSource struct{ n int }

func (c *counterIDSource) Generate() string {
	c.n++
	return string(rune('0' + c.n))
}

func newTestClientSearchSvc(t *testing.T, ctrl *gomock.Controller) (ClientSearchService, *mock.MockServerAdapter, *mock.MockSearchCacheRepository) {
	t.Helper()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCache := mock.NewMockSearchCacheRepository(ctrl)

	svc := NewClientSearchService(mockAdapter, mockCache, &counterIDSource{}, logger.Nop())

	return svc, mockAdapter, mockCache
}

// ── Search ──────────────────────────────────────────────────────────────────

func TestClientSearch_ServerFirstThenCacheWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestClientSearchSvc(t, ctrl)
	ctx := context.Background()

	response := models.SearchResponse{
		Query:   "ann harper",
		Results: []models.Person{{ID: 1, Name: "Ann Harper"}},
		Summary: models.SearchSummary{Total: 1},
	}

	gomock.InOrder(
		mockAdapter.EXPECT().Search(ctx, "ann harper").Return(response, nil),
		mockCache.EXPECT().SaveSearch(ctx, "ann harper", response).Return(nil),
	)

	got, fromCache, err := svc.Search(ctx, "ann harper")
	require.NoError(t, err)

	assert.False(t, fromCache)
	assert.Equal(t, response, got)
}

func TestClientSearch_CacheWriteFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestClientSearchSvc(t, ctrl)
	ctx := context.Background()

	response := models.SearchResponse{Query: "ann"}

	mockAdapter.EXPECT().Search(ctx, "ann").Return(response, nil)
	mockCache.EXPECT().SaveSearch(ctx, "ann", response).Return(errors.New("disk full"))

	got, fromCache, err := svc.Search(ctx, "ann")
	require.NoError(t, err)

	assert.False(t, fromCache)
	assert.Equal(t, response, got)
}

func TestClientSearch_FallsBackToCacheWhenServerDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestClientSearchSvc(t, ctrl)
	ctx := context.Background()

	cached := models.SearchResponse{
		Query:   "ann harper",
		Results: []models.Person{{ID: 1, Name: "Ann Harper"}},
	}

	gomock.InOrder(
		mockAdapter.EXPECT().Search(ctx, "ann harper").Return(models.SearchResponse{}, errors.New("connection refused")),
		mockCache.EXPECT().GetSearch(ctx, "ann harper").Return(cached, time.Now().Add(-time.Hour), nil),
	)

	got, fromCache, err := svc.Search(ctx, "ann harper")
	require.NoError(t, err)

	assert.True(t, fromCache)
	assert.Equal(t, cached, got)
}

func TestClientSearch_ServerDownAndCacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestClientSearchSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Search(ctx, "ghost").Return(models.SearchResponse{}, errors.New("connection refused")),
		mockCache.EXPECT().GetSearch(ctx, "ghost").Return(models.SearchResponse{}, time.Time{}, store.ErrCachedSearchNotFound),
	)

	_, _, err := svc.Search(ctx, "ghost")
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestClientSearch_EmptyQueryNeverLeavesClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestClientSearchSvc(t, ctrl)

	_, _, err := svc.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── GetProfile ──────────────────────────────────────────────────────────────

func TestClientGetProfile_FallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestClientSearchSvc(t, ctrl)
	ctx := context.Background()

	cached := models.Profile{Person: models.Person{ID: 3, Name: "Cy Nakamura"}}

	gomock.InOrder(
		mockAdapter.EXPECT().GetProfile(ctx, int64(3)).Return(models.Profile{}, errors.New("connection refused")),
		mockCache.EXPECT().GetProfile(ctx, int64(3)).Return(cached, nil),
	)

	got, fromCache, err := svc.GetProfile(ctx, 3)
	require.NoError(t, err)

	assert.True(t, fromCache)
	assert.Equal(t, cached, got)
}

func TestClientGetProfile_WritesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCache := newTestClientSearchSvc(t, ctrl)
	ctx := context.Background()

	profile := models.Profile{Person: models.Person{ID: 3, Name: "Cy Nakamura"}}

	gomock.InOrder(
		mockAdapter.EXPECT().GetProfile(ctx, int64(3)).Return(profile, nil),
		mockCache.EXPECT().SaveProfile(ctx, profile).Return(nil),
	)

	got, fromCache, err := svc.GetProfile(ctx, 3)
	require.NoError(t, err)

	assert.False(t, fromCache)
	assert.Equal(t, profile, got)
}

// ── filters ─────────────────────────────────────────────────────────────────

func TestClientFilters_AddRemoveSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestClientSearchSvc(t, ctrl)

	first := svc.AddFilter("  Ann   Harper ")
	second := svc.AddFilter("new york")

	assert.Equal(t, "ann harper", first.Text)
	assert.True(t, first.Removable)
	assert.NotEqual(t, first.ID, second.ID)

	snapshot := svc.Filters()
	require.Len(t, snapshot, 2)

	svc.RemoveFilter(first.ID)
	require.Len(t, svc.Filters(), 1)
	assert.Equal(t, second.ID, svc.Filters()[0].ID)

	// snapshot taken before the removal is unaffected
	assert.Len(t, snapshot, 2)

	svc.RemoveFilter("no-such-id")
	assert.Len(t, svc.Filters(), 1)
}
