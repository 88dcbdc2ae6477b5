package datasource

import (
	"context"
	"errors"

	"github.com/asaskevich/EventBus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
	"github.com/samuelokello/teahouse/pkg/logger"
)

// topicProductsChanged is published on the bus after every successful write.
const topicProductsChanged = "catalog:products:changed"

// LocalSource is the table-backed product source. Product streams re-emit
// the full table contents after every write that goes through this source.
type LocalSource struct {
	db  *gorm.DB
	bus EventBus.Bus
}

// NewLocalSource creates a new table-backed product source
func NewLocalSource(db *gorm.DB) *LocalSource {
	return &LocalSource{
		db:  db,
		bus: EventBus.New(),
	}
}

// AutoMigrate creates or updates the products table
func (s *LocalSource) AutoMigrate() error {
	return s.db.AutoMigrate(&ProductRecord{})
}

// Products emits the current table contents ordered by id, then re-emits
// after each change, until ctx is cancelled. A query failure terminates
// the stream with an error snapshot.
func (s *LocalSource) Products(ctx context.Context) <-chan domain.Snapshot {
	out := make(chan domain.Snapshot, 1)

	changed := make(chan struct{}, 1)
	notify := func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}
	if err := s.bus.Subscribe(topicProductsChanged, notify); err != nil {
		out <- domain.Snapshot{Err: err}
		close(out)
		return out
	}

	go func() {
		defer close(out)
		defer func() {
			if err := s.bus.Unsubscribe(topicProductsChanged, notify); err != nil {
				logger.Logger.Warn().Err(err).Msg("Failed to unsubscribe product stream")
			}
		}()

		for {
			snap := s.snapshot(ctx)
			select {
			case out <- snap:
			case <-ctx.Done():
				return
			}
			if snap.Err != nil {
				return
			}
			select {
			case <-changed:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (s *LocalSource) snapshot(ctx context.Context) domain.Snapshot {
	var records []ProductRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return domain.Snapshot{Err: err}
	}
	return domain.Snapshot{Products: RecordsToDomain(records)}
}

// InsertProducts upserts the batch by id in a single call. Re-applying the
// same batch yields the same table state.
func (s *LocalSource) InsertProducts(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	records := ProductsToRecords(products)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&records).Error
	if err != nil {
		return err
	}
	s.bus.Publish(topicProductsChanged)
	return nil
}

// InsertProduct upserts a single product by id.
func (s *LocalSource) InsertProduct(ctx context.Context, product domain.Product) error {
	return s.InsertProducts(ctx, []domain.Product{product})
}

// SearchWithFilters is a placeholder on the local source. It fails fast with
// ErrSearchNotImplemented so callers can tell "feature absent" apart from
// "no matches".
func (s *LocalSource) SearchWithFilters(ctx context.Context, filters domain.SearchFilters) <-chan domain.Snapshot {
	out := make(chan domain.Snapshot, 1)
	out <- domain.Snapshot{Err: domain.ErrSearchNotImplemented}
	close(out)
	return out
}

// ProductByID returns the matching product, or (nil, nil) when no row
// matches. Absence is not an error on the local contract.
func (s *LocalSource) ProductByID(ctx context.Context, id int) (*domain.Product, error) {
	var record ProductRecord
	err := s.db.WithContext(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	product := ToDomain(record)
	return &product, nil
}
