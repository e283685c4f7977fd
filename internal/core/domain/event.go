package domain

// EventType classifies a client activity event.
type EventType string

const (
	EventProductViewed     EventType = "product_viewed"
	EventCartItemAdded     EventType = "cart_item_added"
	EventCartItemRemoved   EventType = "cart_item_removed"
	EventCartFormatChanged EventType = "cart_format_changed"
	EventCheckoutCompleted EventType = "checkout_completed"
)

// ClientEvent is a best-effort activity event emitted to the
// analytics stream; losing one never fails a user operation.
type ClientEvent struct {
	UserID    string
	Type      EventType
	ProductID string
	Name      string
	Price     float64
	Format    Format
	Quantity  int
	UnixTS    int64
}
