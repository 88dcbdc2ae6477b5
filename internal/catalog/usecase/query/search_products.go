package query

import (
	"context"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
)

// SearchProductsHandler handles the filtered product search query
type SearchProductsHandler struct {
	repo domain.ProductRepository
}

// NewSearchProductsHandler creates a new search products handler
func NewSearchProductsHandler(repo domain.ProductRepository) *SearchProductsHandler {
	return &SearchProductsHandler{repo: repo}
}

// Handle forwards the filters to the repository. On a table-backed
// deployment the stream fails with ErrSearchNotImplemented; callers must
// not treat that as an empty result.
func (h *SearchProductsHandler) Handle(ctx context.Context, filters domain.SearchFilters) <-chan domain.Snapshot {
	return h.repo.SearchWithFilters(ctx, filters)
}
