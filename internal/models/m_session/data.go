package m_session

import "time"

// Data represents a row of the sessions table.
type Data struct {
	Token     string
	Email     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
