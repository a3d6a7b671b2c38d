package m_click

import (
	"cloud.google.com/go/spanner"
)

// Model provides mutation factories for the click_events table.
// Events are append-only; they are never updated or deleted by the service.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a click event.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.ClickID,
			data.ProductID,
			data.EventType,
			data.CreatedAt,
		},
	)
}
