package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
	"github.com/samuelokello/teahouse/internal/catalog/usecase/query"
)

func setupListPresenter(t *testing.T, repo *scriptedRepo) *ListPresenter {
	t.Helper()
	presenter := NewListPresenter(context.Background(), query.NewGetProductsHandler(repo))
	t.Cleanup(presenter.Close)
	return presenter
}

func TestListPresenter_LoadingThenSuccess(t *testing.T) {
	repo := &scriptedRepo{}
	stream := repo.nextStream()
	presenter := setupListPresenter(t, repo)

	presenter.Load()

	assert.Equal(t, StatusLoading, nextListState(t, presenter.States()).Status)

	products := []domain.Product{{ID: 2, Title: "Пуэр Шу 2015"}}
	stream <- domain.Snapshot{Products: products}

	state := nextListState(t, presenter.States())
	assert.Equal(t, StatusSuccess, state.Status)
	assert.Equal(t, products, state.Products)
}

func TestListPresenter_StreamErrorProducesExactlyLoadingThenError(t *testing.T) {
	repo := &scriptedRepo{}
	stream := repo.nextStream()
	presenter := setupListPresenter(t, repo)

	presenter.Load()
	stream <- domain.Snapshot{Err: errors.New("boom")}
	close(stream)

	first := nextListState(t, presenter.States())
	second := nextListState(t, presenter.States())

	assert.Equal(t, StatusLoading, first.Status)
	assert.Equal(t, StatusError, second.Status)
	assert.Equal(t, "boom", second.Message)
	assertNoListState(t, presenter.States())
}

func TestListPresenter_ErrorStopsConsumingTheAttempt(t *testing.T) {
	repo := &scriptedRepo{}
	stream := repo.nextStream()
	presenter := setupListPresenter(t, repo)

	presenter.Load()
	stream <- domain.Snapshot{Err: errors.New("boom")}
	// A value pushed after the failure must never surface.
	stream <- domain.Snapshot{Products: []domain.Product{{ID: 1}}}
	close(stream)

	require.Equal(t, StatusLoading, nextListState(t, presenter.States()).Status)
	require.Equal(t, StatusError, nextListState(t, presenter.States()).Status)
	assertNoListState(t, presenter.States())
}

func TestListPresenter_BlankErrorMessageBecomesUnknown(t *testing.T) {
	repo := &scriptedRepo{}
	stream := repo.nextStream()
	presenter := setupListPresenter(t, repo)

	presenter.Load()
	stream <- domain.Snapshot{Err: errors.New("")}

	require.Equal(t, StatusLoading, nextListState(t, presenter.States()).Status)
	state := nextListState(t, presenter.States())
	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, "Unknown error", state.Message)
}

func TestListPresenter_FreshLoadSupersedesInFlightOne(t *testing.T) {
	repo := &scriptedRepo{}
	stale := repo.nextStream()
	fresh := repo.nextStream()
	presenter := setupListPresenter(t, repo)

	presenter.Load()
	require.Equal(t, StatusLoading, nextListState(t, presenter.States()).Status)

	presenter.Load()
	require.Equal(t, StatusLoading, nextListState(t, presenter.States()).Status)

	// The abandoned attempt emits after the fresh Loading; it must be dropped.
	stale <- domain.Snapshot{Products: []domain.Product{{ID: 99, Title: "stale"}}}
	fresh <- domain.Snapshot{Products: []domain.Product{{ID: 1, Title: "fresh"}}}

	state := nextListState(t, presenter.States())
	assert.Equal(t, StatusSuccess, state.Status)
	require.Len(t, state.Products, 1)
	assert.Equal(t, "fresh", state.Products[0].Title)
	assertNoListState(t, presenter.States())
}

func TestListPresenter_ReEmitsOnEachStreamValue(t *testing.T) {
	repo := &scriptedRepo{}
	stream := repo.nextStream()
	presenter := setupListPresenter(t, repo)

	presenter.Load()
	require.Equal(t, StatusLoading, nextListState(t, presenter.States()).Status)

	stream <- domain.Snapshot{Products: []domain.Product{{ID: 1}}}
	first := nextListState(t, presenter.States())
	require.Equal(t, StatusSuccess, first.Status)
	assert.Len(t, first.Products, 1)

	stream <- domain.Snapshot{Products: []domain.Product{{ID: 1}, {ID: 2}}}
	second := nextListState(t, presenter.States())
	require.Equal(t, StatusSuccess, second.Status)
	assert.Len(t, second.Products, 2)
}

func TestListPresenter_LoadAfterCloseIsIgnored(t *testing.T) {
	repo := &scriptedRepo{}
	presenter := NewListPresenter(context.Background(), query.NewGetProductsHandler(repo))

	presenter.Close()
	presenter.Load()

	_, ok := <-presenter.States()
	assert.False(t, ok, "states channel is closed and stays empty")
}
