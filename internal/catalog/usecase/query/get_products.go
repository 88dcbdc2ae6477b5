package query

import (
	"context"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
)

// GetProductsHandler handles the product list query. It exists to keep the
// presentation layer decoupled from the repository shape.
type GetProductsHandler struct {
	repo domain.ProductRepository
}

// NewGetProductsHandler creates a new get products handler
func NewGetProductsHandler(repo domain.ProductRepository) *GetProductsHandler {
	return &GetProductsHandler{repo: repo}
}

// Handle returns the repository's reactive product stream unchanged.
func (h *GetProductsHandler) Handle(ctx context.Context) <-chan domain.Snapshot {
	return h.repo.Products(ctx)
}
