package kafka

import "time"

// CartItemAddedEvent notifies downstream systems that a product was added
// to a cart. No cart state exists yet; the event is the whole operation.
type CartItemAddedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID int       `json:"product_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeCartItemAdded = "cart.item_added"
)

// Kafka topics
const (
	TopicCartItemAdded = "cart-item-added"
)
