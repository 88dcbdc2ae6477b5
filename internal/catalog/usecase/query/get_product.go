package query

import (
	"context"
	"fmt"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
)

// GetProductHandler handles the point lookup of a single product
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle looks up a product by id. The repository's miss behavior is
// propagated unchanged: (nil, nil) on the local contract,
// ErrProductNotFound on the remote one.
func (h *GetProductHandler) Handle(ctx context.Context, id int) (*domain.Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid product id: %d", id)
	}
	return h.repo.ProductByID(ctx, id)
}
