package view

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
	"github.com/samuelokello/teahouse/kafka"
)

// scriptedRepo hands out pre-built snapshot channels, one per Products
// call, so tests control exactly when and what a stream emits.
type scriptedRepo struct {
	mu      sync.Mutex
	streams []chan domain.Snapshot

	product   *domain.Product
	lookupErr error
}

func (r *scriptedRepo) nextStream() chan domain.Snapshot {
	ch := make(chan domain.Snapshot, 4)
	r.mu.Lock()
	r.streams = append(r.streams, ch)
	r.mu.Unlock()
	return ch
}

func (r *scriptedRepo) Products(ctx context.Context) <-chan domain.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.streams) == 0 {
		ch := make(chan domain.Snapshot)
		close(ch)
		return ch
	}
	ch := r.streams[0]
	r.streams = r.streams[1:]
	return ch
}

func (r *scriptedRepo) InsertProducts(ctx context.Context, products []domain.Product) error {
	return nil
}

func (r *scriptedRepo) InsertProduct(ctx context.Context, product domain.Product) error {
	return nil
}

func (r *scriptedRepo) SearchWithFilters(ctx context.Context, filters domain.SearchFilters) <-chan domain.Snapshot {
	return r.Products(ctx)
}

func (r *scriptedRepo) ProductByID(ctx context.Context, id int) (*domain.Product, error) {
	return r.product, r.lookupErr
}

// recordingPublisher captures published cart events.
type recordingPublisher struct {
	published chan kafka.CartItemAddedEvent
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{published: make(chan kafka.CartItemAddedEvent, 4)}
}

func (p *recordingPublisher) PublishCartItemAdded(ctx context.Context, event kafka.CartItemAddedEvent) error {
	p.published <- event
	return nil
}

func nextListState(t *testing.T, states <-chan ListState) ListState {
	t.Helper()
	select {
	case state := <-states:
		return state
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for list state")
		return ListState{}
	}
}

func nextDetailState(t *testing.T, states <-chan DetailState) DetailState {
	t.Helper()
	select {
	case state := <-states:
		return state
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for detail state")
		return DetailState{}
	}
}

func assertNoListState(t *testing.T, states <-chan ListState) {
	t.Helper()
	select {
	case state := <-states:
		t.Fatalf("unexpected extra state: %+v", state)
	case <-time.After(100 * time.Millisecond):
	}
}
