package repositories

import (
	"context"
	"time"

	"coursehub/domain/dto"
)

// SessionRepository เก็บ session ตาม opaque session id
// implementation หลักคือ Redis (TTL ตาม config)
type SessionRepository interface {
	Save(ctx context.Context, sid string, user *dto.SessionUser, ttl time.Duration) error
	Get(ctx context.Context, sid string) (*dto.SessionUser, error)
	Delete(ctx context.Context, sid string) error
}
