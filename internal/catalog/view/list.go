package view

import (
	"context"
	"sync"

	"github.com/samuelokello/teahouse/internal/catalog/usecase/query"
)

// ListPresenter folds the product stream into the tri-state of the list
// screen. One presenter belongs to one screen scope; Close tears down the
// scope and every subscription it owns.
type ListPresenter struct {
	getProducts *query.GetProductsHandler

	root      context.Context
	closeRoot context.CancelFunc

	mu         sync.Mutex
	generation uint64
	cancelLoad context.CancelFunc
	closed     bool

	states chan ListState
}

// NewListPresenter creates a presenter scoped to ctx. Cancelling ctx (or
// calling Close) abandons any in-flight load.
func NewListPresenter(ctx context.Context, getProducts *query.GetProductsHandler) *ListPresenter {
	root, closeRoot := context.WithCancel(ctx)
	return &ListPresenter{
		getProducts: getProducts,
		root:        root,
		closeRoot:   closeRoot,
		states:      make(chan ListState, 16),
	}
}

// States returns the state stream the renderer consumes. Within one load
// attempt, Loading always precedes the first Success or Error.
func (p *ListPresenter) States() <-chan ListState {
	return p.states
}

// Load starts a fresh load attempt, superseding any in-flight one. The
// previous attempt's context is cancelled and its generation invalidated, so
// a stale emission can never race the fresh Loading state.
func (p *ListPresenter) Load() {
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

	p.emit(gen, ListState{Status: StatusLoading})

	stream := p.getProducts.Handle(ctx)
	go func() {
		for snap := range stream {
			if snap.Err != nil {
				p.emit(gen, ListState{Status: StatusError, Message: errorMessage(snap.Err)})
				return
			}
			p.emit(gen, ListState{Status: StatusSuccess, Products: snap.Products})
		}
	}()
}

// Close cancels the screen scope. No states are emitted afterwards.
func (p *ListPresenter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.generation++
	p.closeRoot()
	close(p.states)
}

// emit publishes a state unless the attempt has been superseded. When the
// renderer lags, the oldest buffered state is conflated away so the screen
// always converges on the latest state.
func (p *ListPresenter) emit(gen uint64, state ListState) {
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
