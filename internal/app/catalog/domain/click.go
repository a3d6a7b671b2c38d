package domain

import "time"

// EventCheckoutClick tags a storefront visitor initiating checkout contact.
const EventCheckoutClick = "checkout_click"

// ClickEvent is an append-only storefront event. The product reference may be
// cleared later if the product is deleted; the event itself is never removed.
type ClickEvent struct {
	id        string
	productID string
	eventType string
	createdAt time.Time
}

// NewClickEvent creates a checkout click event for a product.
func NewClickEvent(id, productID string, now time.Time) (*ClickEvent, error) {
	if productID == "" {
		return nil, ErrMissingProductRef
	}
	return &ClickEvent{
		id:        id,
		productID: productID,
		eventType: EventCheckoutClick,
		createdAt: now,
	}, nil
}

// Getters
func (c *ClickEvent) ID() string           { return c.id }
func (c *ClickEvent) ProductID() string    { return c.productID }
func (c *ClickEvent) EventType() string    { return c.eventType }
func (c *ClickEvent) CreatedAt() time.Time { return c.createdAt }
