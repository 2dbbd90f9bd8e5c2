package entity

import (
	"time"
)

// Session proves that a user authenticated. It references its user,
// it does not own it. There is no refresh or revocation path; rows
// simply outlive ExpiresAt until swept externally.
type Session struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
