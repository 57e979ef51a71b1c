package repository

import (
	"context"
	"time"

	"go-medical-console/internal/domain/entity"
)

// SessionRepository persists the two session keys: the access token and
// the serialized user. Find returns nil, nil for an unknown or expired id.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session, ttl time.Duration) error
	Find(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
}
