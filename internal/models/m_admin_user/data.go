package m_admin_user

import "time"

// Data represents a row of the admin_users table.
type Data struct {
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
