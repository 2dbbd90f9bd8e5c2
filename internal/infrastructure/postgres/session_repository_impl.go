package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sessionworks/go-auth-api/internal/domain/entity"
	"github.com/sessionworks/go-auth-api/internal/domain/repository"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Create(ctx context.Context, s *entity.Session) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO sessions (user_id, token, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, s.UserID, s.Token, s.ExpiresAt)

	return row.Scan(&s.ID, &s.CreatedAt)
}

var _ repository.SessionRepository = (*SessionRepository)(nil)
