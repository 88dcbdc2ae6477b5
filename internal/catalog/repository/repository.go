package repository

import (
	"context"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
)

// SourceRepository exposes a source-agnostic catalog contract over exactly
// one injected source. There is no merge logic: a deployment is either
// table-backed or mock-remote, never both.
type SourceRepository struct {
	source domain.ProductSource
}

// NewSourceRepository creates a repository over the given source
func NewSourceRepository(source domain.ProductSource) *SourceRepository {
	return &SourceRepository{source: source}
}

func (r *SourceRepository) Products(ctx context.Context) <-chan domain.Snapshot {
	return r.source.Products(ctx)
}

func (r *SourceRepository) InsertProducts(ctx context.Context, products []domain.Product) error {
	return r.source.InsertProducts(ctx, products)
}

func (r *SourceRepository) InsertProduct(ctx context.Context, product domain.Product) error {
	return r.source.InsertProduct(ctx, product)
}

func (r *SourceRepository) SearchWithFilters(ctx context.Context, filters domain.SearchFilters) <-chan domain.Snapshot {
	return r.source.SearchWithFilters(ctx, filters)
}

// ProductByID passes the source's lookup behavior through unchanged,
// including its absent-vs-failure policy on a miss.
func (r *SourceRepository) ProductByID(ctx context.Context, id int) (*domain.Product, error) {
	return r.source.ProductByID(ctx, id)
}
