package view

import (
	"context"
	"sync"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
	"github.com/samuelokello/teahouse/internal/catalog/usecase/query"
	"github.com/samuelokello/teahouse/kafka"
	"github.com/samuelokello/teahouse/pkg/logger"
)

// CartPublisher publishes cart notifications to the event backbone.
type CartPublisher interface {
	PublishCartItemAdded(ctx context.Context, event kafka.CartItemAddedEvent) error
}

// DetailPresenter drives the product detail screen: a tri-state lookup plus
// a one-shot event side channel. Add-to-cart performs no persistence; the
// cart subsystem does not exist yet.
type DetailPresenter struct {
	getProduct *query.GetProductHandler
	publisher  CartPublisher

	root      context.Context
	closeRoot context.CancelFunc

	mu         sync.Mutex
	generation uint64
	cancelLoad context.CancelFunc
	closed     bool

	states chan DetailState
	events chan DetailEvent
}

// NewDetailPresenter creates a presenter scoped to ctx. The publisher may be
// nil; cart events are then delivered on the in-process channel only.
func NewDetailPresenter(ctx context.Context, getProduct *query.GetProductHandler, publisher CartPublisher) *DetailPresenter {
	root, closeRoot := context.WithCancel(ctx)
	return &DetailPresenter{
		getProduct: getProduct,
		publisher:  publisher,
		root:       root,
		closeRoot:  closeRoot,
		states:     make(chan DetailState, 16),
		events:     make(chan DetailEvent, 8),
	}
}

// States returns the detail screen's state stream.
func (p *DetailPresenter) States() <-chan DetailState {
	return p.states
}

// Events returns the one-shot event channel. Each event is consumed at most
// once; events emitted with no consumer attached are dropped.
func (p *DetailPresenter) Events() <-chan DetailEvent {
	return p.events
}

// Load looks the product up and folds the outcome into the tri-state.
// Both miss contracts (absent value and not-found failure) surface as the
// same user-facing error state.
func (p *DetailPresenter) Load(id int) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	if p.cancelLoad != nil {
		p.cancelLoad()
	}
	ctx, cancel := context.WithCancel(p.root)
	p.cancelLoad = cancel
	p.generation++
	gen := p.generation
	p.mu.Unlock()

	p.emit(gen, DetailState{Status: StatusLoading})

	go func() {
		product, err := p.getProduct.Handle(ctx, id)
		if err != nil {
			p.emit(gen, DetailState{Status: StatusError, Message: errorMessage(err)})
			return
		}
		if product == nil {
			p.emit(gen, DetailState{Status: StatusError, Message: domain.ErrProductNotFound.Error()})
			return
		}
		p.emit(gen, DetailState{Status: StatusSuccess, Product: product})
	}()
}

// AddToCart emits the one-shot notification and, when a publisher is wired,
// mirrors it onto the event backbone. Nothing is persisted.
func (p *DetailPresenter) AddToCart(product domain.Product) {
	event := DetailEvent{
		Type:      EventCartItemAdded,
		ProductID: product.ID,
		Title:     product.Title,
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	select {
	case p.events <- event:
	default:
	}
	p.mu.Unlock()

	if p.publisher == nil {
		return
	}
	go func() {
		err := p.publisher.PublishCartItemAdded(p.root, kafka.CartItemAddedEvent{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Price,
		})
		if err != nil {
			logger.Logger.Error().
				Err(err).
				Int("product_id", product.ID).
				Msg("Failed to publish cart event")
		}
	}()
}

// Close cancels the screen scope and both channels.
func (p *DetailPresenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.generation++
	p.closeRoot()
	close(p.states)
	close(p.events)
}

func (p *DetailPresenter) emit(gen uint64, state DetailState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || gen != p.generation {
		return
	}
	select {
	case p.states <- state:
	default:
		select {
		case <-p.states:
		default:
		}
		select {
		case p.states <- state:
		default:
		}
	}
}
