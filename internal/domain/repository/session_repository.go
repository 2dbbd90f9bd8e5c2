package repository

import (
	"context"

	"github.com/sessionworks/go-auth-api/internal/domain/entity"
)

// SessionRepository persists sessions. Signin is the only writer; no
// read, refresh or cleanup path exists in this scope.
type SessionRepository interface {
	Create(ctx context.Context, s *entity.Session) error
}
