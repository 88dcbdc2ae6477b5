package seed

import (
	"context"
	"fmt"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
	"github.com/samuelokello/teahouse/pkg/logger"
)

// CurrentDataVersion gates re-seeding. Bump it whenever the seed catalog
// changes; stores holding an older version are reseeded on startup.
const CurrentDataVersion = 6

// Initializer populates an empty or stale product store with the seed
// catalog exactly once per data version.
type Initializer struct {
	source   domain.ProductSource
	versions VersionStore
}

// NewInitializer creates an initializer over the given source. The version
// store may be nil; gating then falls back to "seed only when empty".
func NewInitializer(source domain.ProductSource, versions VersionStore) *Initializer {
	return &Initializer{source: source, versions: versions}
}

// InitializeIfNeeded seeds the store when it is empty or its stored data
// version is older than CurrentDataVersion. Re-invoking it after a
// successful run with no version bump is a no-op.
func (i *Initializer) InitializeIfNeeded(ctx context.Context) error {
	existing, err := i.firstSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to read current products: %w", err)
	}

	storedVersion := 0
	if i.versions != nil {
		storedVersion, err = i.versions.Version(ctx)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Version store unavailable, gating on table contents only")
			storedVersion = CurrentDataVersion
		}
	} else {
		storedVersion = CurrentDataVersion
	}

	if len(existing) > 0 && storedVersion >= CurrentDataVersion {
		logger.Logger.Debug().
			Int("products", len(existing)).
			Int("version", storedVersion).
			Msg("Seed data is current, skipping")
		return nil
	}

	return i.seed(ctx)
}

// ForceUpdate unconditionally repeats the upsert-and-version-write step.
func (i *Initializer) ForceUpdate(ctx context.Context) error {
	return i.seed(ctx)
}

func (i *Initializer) seed(ctx context.Context) error {
	products := Catalog()
	if err := i.source.InsertProducts(ctx, products); err != nil {
		return fmt.Errorf("failed to insert seed products: %w", err)
	}
	if i.versions != nil {
		if err := i.versions.SetVersion(ctx, CurrentDataVersion); err != nil {
			return fmt.Errorf("failed to store seed data version: %w", err)
		}
	}
	logger.Logger.Info().
		Int("products", len(products)).
		Int("version", CurrentDataVersion).
		Msg("Seed catalog applied")
	return nil
}

// firstSnapshot reads the first emission of the product stream.
func (i *Initializer) firstSnapshot(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	snap, ok := <-i.source.Products(ctx)
	if !ok {
		return nil, ctx.Err()
	}
	if snap.Err != nil {
		return nil, snap.Err
	}
	return snap.Products, nil
}
