package domain

import "time"

// SessionClaims is the decoded payload of a session token: who the session
// belongs to and when it stops being valid.
type SessionClaims struct {
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
