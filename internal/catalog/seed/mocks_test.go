package seed

import (
	"context"
	"sort"
	"sync"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
)

// memorySource is an upsert-by-id product store used to exercise the
// initializer without a database.
type memorySource struct {
	mu       sync.Mutex
	table    map[int]domain.Product
	inserts  int
	failNext error
}

func newMemorySource() *memorySource {
	return &memorySource{table: make(map[int]domain.Product)}
}

func (s *memorySource) Products(ctx context.Context) <-chan domain.Snapshot {
	s.mu.Lock()
	ids := make([]int, 0, len(s.table))
	for id := range s.table {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, s.table[id])
	}
	s.mu.Unlock()

	out := make(chan domain.Snapshot, 1)
	out <- domain.Snapshot{Products: products}
	close(out)
	return out
}

func (s *memorySource) InsertProducts(ctx context.Context, products []domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return err
	}
	s.inserts++
	for _, p := range products {
		s.table[p.ID] = p
	}
	return nil
}

func (s *memorySource) InsertProduct(ctx context.Context, product domain.Product) error {
	return s.InsertProducts(ctx, []domain.Product{product})
}

func (s *memorySource) SearchWithFilters(ctx context.Context, filters domain.SearchFilters) <-chan domain.Snapshot {
	out := make(chan domain.Snapshot, 1)
	out <- domain.Snapshot{Err: domain.ErrSearchNotImplemented}
	close(out)
	return out
}

func (s *memorySource) ProductByID(ctx context.Context, id int) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.table[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *memorySource) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.table)
}

func (s *memorySource) insertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inserts
}

// memoryVersionStore keeps the seed version in memory.
type memoryVersionStore struct {
	mu      sync.Mutex
	version int
}

func (s *memoryVersionStore) Version(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version, nil
}

func (s *memoryVersionStore) SetVersion(ctx context.Context, version int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.version = version
	return nil
}
