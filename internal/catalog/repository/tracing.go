package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracingRepository wraps a ProductRepository with tracing
type TracingRepository struct {
	inner domain.ProductRepository
}

// NewTracingRepository creates a repository decorator emitting otel spans
func NewTracingRepository(inner domain.ProductRepository) *TracingRepository {
	return &TracingRepository{inner: inner}
}

// Products with tracing. The span covers the subscription, not the lifetime
// of the stream.
func (r *TracingRepository) Products(ctx context.Context) <-chan domain.Snapshot {
	ctx, span := tracer.Start(ctx, "repository.Products")
	defer span.End()

	return r.inner.Products(ctx)
}

// InsertProducts with tracing
func (r *TracingRepository) InsertProducts(ctx context.Context, products []domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.InsertProducts",
		trace.WithAttributes(
			attribute.Int("products.count", len(products)),
		),
	)
	defer span.End()

	err := r.inner.InsertProducts(ctx, products)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// InsertProduct with tracing
func (r *TracingRepository) InsertProduct(ctx context.Context, product domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.InsertProduct",
		trace.WithAttributes(
			attribute.Int("product.id", product.ID),
			attribute.String("product.title", product.Title),
			attribute.String("product.category", product.Category),
			attribute.Float64("product.price", product.Price),
		),
	)
	defer span.End()

	err := r.inner.InsertProduct(ctx, product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// SearchWithFilters with tracing
func (r *TracingRepository) SearchWithFilters(ctx context.Context, filters domain.SearchFilters) <-chan domain.Snapshot {
	ctx, span := tracer.Start(ctx, "repository.SearchWithFilters",
		trace.WithAttributes(
			attribute.String("search.query", filters.Query),
		),
	)
	defer span.End()

	return r.inner.SearchWithFilters(ctx, filters)
}

// ProductByID with tracing
func (r *TracingRepository) ProductByID(ctx context.Context, id int) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.ProductByID",
		trace.WithAttributes(
			attribute.Int("product.id", id),
		),
	)
	defer span.End()

	product, err := r.inner.ProductByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Bool("product.found", product != nil))
	return product, nil
}
