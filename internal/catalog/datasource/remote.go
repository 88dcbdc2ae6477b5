package datasource

import (
	"context"
	"errors"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
)

// RemoteSource is a stand-in for the storefront API, backed by a fixed
// in-memory list. No network I/O happens here.
type RemoteSource struct {
	products []domain.Product
}

// NewRemoteSource creates a mock remote source with the fixed catalog slice
func NewRemoteSource() *RemoteSource {
	return &RemoteSource{products: mockProducts()}
}

func mockProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Title:       "Зелёный чай Лунцзин",
			Price:       450.0,
			Description: "Премиальный китайский зелёный чай из провинции Чжэцзян",
			Category:    "Зелёный чай",
			Image:       "https://images.unsplash.com/photo-1564890369478-c89ca6d9cde9?w=400",
			Rating:      4.8,
			Count:       120,
			IsFavourite: false,
		},
		{
			ID:          2,
			Title:       "Пуэр Шу 2015",
			Price:       890.0,
			Description: "Выдержанный тёмный пуэр с мягким землистым вкусом",
			Category:    "Пуэр",
			Image:       "https://images.unsplash.com/photo-1544787219-7f47ccb76574?w=400",
			Rating:      4.9,
			Count:       45,
			IsFavourite: true,
		},
		{
			ID:          3,
			Title:       "Улун Те Гуань Инь",
			Price:       650.0,
			Description: "Классический китайский улун с цветочным ароматом",
			Category:    "Улун",
			Image:       "https://images.unsplash.com/photo-1558160074-4d7d8bdf4256?w=400",
			Rating:      4.7,
			Count:       78,
			IsFavourite: false,
		},
		{
			ID:          4,
			Title:       "Белый чай Бай Му Дань",
			Price:       720.0,
			Description: "Нежный белый чай с лёгким сладковатым вкусом",
			Category:    "Белый чай",
			Image:       "https://images.unsplash.com/photo-1597318181409-cf64d0b5d8a2?w=400",
			Rating:      4.6,
			Count:       32,
			IsFavourite: false,
		},
		{
			ID:          5,
			Title:       "Да Хун Пао",
			Price:       1200.0,
			Description: "Легендарный утёсный улун из гор Уи",
			Category:    "Улун",
			Image:       "https://images.unsplash.com/photo-1571934811356-5cc061b6821f?w=400",
			Rating:      5.0,
			Count:       15,
			IsFavourite: true,
		},
	}
}

// Products emits the fixed list exactly once, then closes. The mock list is
// static, so there is nothing to re-emit.
func (s *RemoteSource) Products(ctx context.Context) <-chan domain.Snapshot {
	out := make(chan domain.Snapshot, 1)
	out <- domain.Snapshot{Products: append([]domain.Product(nil), s.products...)}
	close(out)
	return out
}

// InsertProducts is rejected: the mock list is read-only.
func (s *RemoteSource) InsertProducts(ctx context.Context, products []domain.Product) error {
	return errors.New("remote source is read-only")
}

// InsertProduct is rejected: the mock list is read-only.
func (s *RemoteSource) InsertProduct(ctx context.Context, product domain.Product) error {
	return errors.New("remote source is read-only")
}

// SearchWithFilters emits the products matching every provided filter,
// preserving the input order. All bounds are inclusive; all filters are
// ANDed; a blank query acts as a wildcard.
func (s *RemoteSource) SearchWithFilters(ctx context.Context, filters domain.SearchFilters) <-chan domain.Snapshot {
	matched := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if filters.Matches(p) {
			matched = append(matched, p)
		}
	}
	out := make(chan domain.Snapshot, 1)
	out <- domain.Snapshot{Products: matched}
	close(out)
	return out
}

// ProductByID returns the matching product or ErrProductNotFound. Unlike
// the local source, a miss here is a failure, not an absent value.
func (s *RemoteSource) ProductByID(ctx context.Context, id int) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domain.ErrProductNotFound
}
