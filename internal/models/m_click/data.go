package m_click

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the click_events table. The product reference is
// nullable: deleting a product clears it without touching the event.
type Data struct {
	ClickID   string
	ProductID spanner.NullString
	EventType string
	CreatedAt time.Time
}
