package m_admin_user

// Field name constants for the admin_users table.
const (
	TableName = "admin_users"

	Email        = "email"
	PasswordHash = "password_hash"
	CreatedAt    = "created_at"
)

// Columns lists every column of the admin_users table, in schema order.
var Columns = []string{
	Email,
	PasswordHash,
	CreatedAt,
}
