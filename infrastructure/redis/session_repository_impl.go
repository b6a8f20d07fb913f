package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"coursehub/domain/dto"
	"coursehub/domain/errs"
	"coursehub/domain/repositories"
)

const sessionKeyPrefix = "session:"

// SessionRepositoryImpl เก็บ session เป็น JSON ใน Redis
// หมดอายุด้วย TTL ของ key เอง ไม่ต้องมี cleanup job
type SessionRepositoryImpl struct {
	client *Client
}

func NewSessionRepository(client *Client) repositories.SessionRepository {
	return &SessionRepositoryImpl{client: client}
}

func (r *SessionRepositoryImpl) Save(ctx context.Context, sid string, user *dto.SessionUser, ttl time.Duration) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.client.Set(ctx, sessionKeyPrefix+sid, data, ttl)
}

func (r *SessionRepositoryImpl) Get(ctx context.Context, sid string) (*dto.SessionUser, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+sid)
	if err != nil {
		if IsNil(err) {
			return nil, fmt.Errorf("session %s: %w", sid, errs.ErrUnauthorized)
		}
		return nil, err
	}

	var user dto.SessionUser
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &user, nil
}

func (r *SessionRepositoryImpl) Delete(ctx context.Context, sid string) error {
	return r.client.Del(ctx, sessionKeyPrefix+sid)
}
