package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
)

func TestInitializeIfNeeded_SeedsEmptyStore(t *testing.T) {
	source := newMemorySource()
	versions := &memoryVersionStore{}
	init := NewInitializer(source, versions)

	require.NoError(t, init.InitializeIfNeeded(context.Background()))

	assert.Equal(t, len(Catalog()), source.size())
	version, _ := versions.Version(context.Background())
	assert.Equal(t, CurrentDataVersion, version)
}

func TestInitializeIfNeeded_SecondCallIsNoOp(t *testing.T) {
	source := newMemorySource()
	versions := &memoryVersionStore{}
	init := NewInitializer(source, versions)

	require.NoError(t, init.InitializeIfNeeded(context.Background()))
	sizeAfterFirst := source.size()

	require.NoError(t, init.InitializeIfNeeded(context.Background()))

	assert.Equal(t, 1, source.insertCount(), "second call must not insert again")
	assert.Equal(t, sizeAfterFirst, source.size())
}

func TestInitializeIfNeeded_ReseedsStaleVersion(t *testing.T) {
	source := newMemorySource()
	versions := &memoryVersionStore{version: CurrentDataVersion - 1}
	init := NewInitializer(source, versions)

	// Non-empty store, but the stored version is stale.
	require.NoError(t, source.InsertProduct(context.Background(), domain.Product{ID: 1, Title: "старый"}))

	require.NoError(t, init.InitializeIfNeeded(context.Background()))

	assert.Equal(t, len(Catalog()), source.size())
	product, err := source.ProductByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Зелёный чай Лунцзин", product.Title, "stale row must be overwritten by the upsert")
}

func TestInitializeIfNeeded_CurrentVersionNonEmptyIsSkipped(t *testing.T) {
	source := newMemorySource()
	versions := &memoryVersionStore{version: CurrentDataVersion}
	init := NewInitializer(source, versions)

	require.NoError(t, source.InsertProduct(context.Background(), domain.Product{ID: 42, Title: "свой товар"}))
	insertsBefore := source.insertCount()

	require.NoError(t, init.InitializeIfNeeded(context.Background()))

	assert.Equal(t, insertsBefore, source.insertCount())
	assert.Equal(t, 1, source.size())
}

func TestForceUpdate_AlwaysSeeds(t *testing.T) {
	source := newMemorySource()
	versions := &memoryVersionStore{version: CurrentDataVersion}
	init := NewInitializer(source, versions)

	require.NoError(t, init.ForceUpdate(context.Background()))
	require.NoError(t, init.ForceUpdate(context.Background()))

	assert.Equal(t, 2, source.insertCount())
	assert.Equal(t, len(Catalog()), source.size())
}

func TestInitializeIfNeeded_NilVersionStoreGatesOnContentsOnly(t *testing.T) {
	source := newMemorySource()
	init := NewInitializer(source, nil)

	require.NoError(t, init.InitializeIfNeeded(context.Background()))
	assert.Equal(t, len(Catalog()), source.size())

	// A populated table with no version store is left alone.
	require.NoError(t, init.InitializeIfNeeded(context.Background()))
	assert.Equal(t, 1, source.insertCount())
}

func TestUpsert_LastWriteWinsById(t *testing.T) {
	source := newMemorySource()

	require.NoError(t, source.InsertProducts(context.Background(), []domain.Product{
		{ID: 1, Title: "первый"},
		{ID: 2, Title: "второй"},
	}))
	require.NoError(t, source.InsertProduct(context.Background(), domain.Product{ID: 1, Title: "первый (обновлён)"}))

	snap := <-source.Products(context.Background())
	require.NoError(t, snap.Err)
	require.Len(t, snap.Products, 2)
	assert.Equal(t, "первый (обновлён)", snap.Products[0].Title)
}

func TestCatalog_ShapeIsValid(t *testing.T) {
	products := Catalog()

	require.Len(t, products, 12)
	seen := make(map[int]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Title)
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.GreaterOrEqual(t, p.Count, 0)
		assert.False(t, p.IsFavourite, "favourite state is never seeded")
	}
}
