package m_session

import (
	"cloud.google.com/go/spanner"
)

// Model provides mutation factories for the sessions table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a session.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.Token,
			data.Email,
			data.ExpiresAt,
			data.CreatedAt,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a session.
func (m *Model) DeleteMut(token string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{token})
}
