package m_click

// Field name constants for the click_events table.
const (
	TableName = "click_events"

	ClickID   = "click_id"
	ProductID = "product_id"
	EventType = "event_type"
	CreatedAt = "created_at"
)

// Columns lists every column of the click_events table, in schema order.
var Columns = []string{
	ClickID,
	ProductID,
	EventType,
	CreatedAt,
}
