package m_admin_user

import (
	"cloud.google.com/go/spanner"
)

// Model provides mutation factories for the admin_users table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an admin user.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.Email,
			data.PasswordHash,
			data.CreatedAt,
		},
	)
}
