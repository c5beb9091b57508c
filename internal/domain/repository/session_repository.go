package repository

import (
	"context"
	"time"

	"foodstall-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionRepository stores login sessions keyed by session ID.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session, ttl time.Duration) error
	FindByID(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
