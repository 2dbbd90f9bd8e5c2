package entity

import (
	"time"
)

// User is the identity record for the auth flow.
// Password holds a bcrypt hash, never the plaintext.
type User struct {
	ID        int64
	Email     string
	Password  string
	Name      string
	CreatedAt time.Time
}
