package domain

import (
	"context"
	"errors"
	"strings"
)

// Product represents a catalog item as the rest of the application sees it.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Count       int     `json:"count"`
	IsFavourite bool    `json:"is_favourite"`
}

// InStock checks if the product has available stock
func (p *Product) InStock() bool {
	return p.Count > 0
}

// SearchFilters holds the optional conjunctive filters for a product search.
// A nil pointer means "filter absent"; a blank Query acts as a wildcard.
type SearchFilters struct {
	Query     string
	MinPrice  *float64
	MaxPrice  *float64
	Category  *string
	MinCount  *int
	MinRating *float64
}

// Snapshot is a single emission of a product stream: the full current
// collection, or a terminal error. A snapshot carrying a non-nil Err is
// the last one the stream delivers.
type Snapshot struct {
	Products []Product
	Err      error
}

var (
	// ErrProductNotFound is returned by sources whose lookup contract raises
	// a failure on a miss (the mock remote source).
	ErrProductNotFound = errors.New("product not found")

	// ErrSearchNotImplemented marks the local filtered-search placeholder.
	// It is always delivered loudly, never as an empty result.
	ErrSearchNotImplemented = errors.New("search with filters is not implemented")
)

// ProductSource is the innermost gateway to a persisted table or a mock list.
type ProductSource interface {
	// Products emits the full current collection and, for live sources,
	// re-emits it whenever the underlying data changes. The stream is closed
	// when ctx is cancelled or after a terminal error snapshot.
	Products(ctx context.Context) <-chan Snapshot

	// InsertProducts upserts the batch by id. Re-applying the same batch is
	// a no-op on the resulting table state.
	InsertProducts(ctx context.Context, products []Product) error

	// InsertProduct upserts a single product by id.
	InsertProduct(ctx context.Context, product Product) error

	// SearchWithFilters emits the products matching all provided filters.
	SearchWithFilters(ctx context.Context, filters SearchFilters) <-chan Snapshot

	// ProductByID looks up a single product. The local source returns
	// (nil, nil) when no row matches; the remote source returns
	// ErrProductNotFound instead.
	ProductByID(ctx context.Context, id int) (*Product, error)
}

// ProductRepository defines the contract the domain layer depends on.
// It mirrors the source contract it wraps; a repository is backed by
// exactly one source, never both with merge logic.
type ProductRepository interface {
	Products(ctx context.Context) <-chan Snapshot
	InsertProducts(ctx context.Context, products []Product) error
	InsertProduct(ctx context.Context, product Product) error
	SearchWithFilters(ctx context.Context, filters SearchFilters) <-chan Snapshot
	ProductByID(ctx context.Context, id int) (*Product, error)
}

// Matches reports whether the product satisfies every provided filter.
// All bounds are inclusive; a blank query matches every title.
func (f SearchFilters) Matches(p Product) bool {
	if f.Query != "" && !containsFold(p.Title, f.Query) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Category != nil && p.Category != *f.Category {
		return false
	}
	if f.MinCount != nil && p.Count < *f.MinCount {
		return false
	}
	if f.MinRating != nil && p.Rating < *f.MinRating {
		return false
	}
	return true
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
