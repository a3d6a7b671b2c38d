package m_session

// Field name constants for the sessions table.
const (
	TableName = "sessions"

	Token     = "token"
	Email     = "email"
	ExpiresAt = "expires_at"
	CreatedAt = "created_at"
)

// Columns lists every column of the sessions table, in schema order.
var Columns = []string{
	Token,
	Email,
	ExpiresAt,
	CreatedAt,
}
