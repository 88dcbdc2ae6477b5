package view

import (
	"fmt"

	"github.com/samuelokello/teahouse/internal/catalog/domain"
)

// Status is the tri-state driving screen rendering.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalJSON renders the status as its lowercase name.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// ListState is one rendering state of the product list screen.
type ListState struct {
	Status   Status           `json:"status"`
	Products []domain.Product `json:"products,omitempty"`
	Message  string           `json:"message,omitempty"`
}

// DetailState is one rendering state of the product detail screen.
type DetailState struct {
	Status  Status          `json:"status"`
	Product *domain.Product `json:"product,omitempty"`
	Message string          `json:"message,omitempty"`
}

// EventCartItemAdded is the one-shot notification the detail screen emits
// when a product is added to the cart.
const EventCartItemAdded = "cart_item_added"

// DetailEvent is a one-shot side-channel event, consumed at most once per
// emission, independent of the Loading/Success/Error state.
type DetailEvent struct {
	Type      string `json:"type"`
	ProductID int    `json:"product_id"`
	Title     string `json:"title"`
}

// errorMessage extracts a user-facing message from a stream failure.
func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Unknown error"
	}
	return err.Error()
}
