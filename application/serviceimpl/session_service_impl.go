package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"coursehub/domain/dto"
	"coursehub/domain/models"
	"coursehub/domain/repositories"
	"coursehub/pkg/logger"
)

type SessionServiceImpl struct {
	sessionRepo repositories.SessionRepository
	ttl         time.Duration
}

func NewSessionService(sessionRepo repositories.SessionRepository, ttl time.Duration) *SessionServiceImpl {
	return &SessionServiceImpl{
		sessionRepo: sessionRepo,
		ttl:         ttl,
	}
}

func (s *SessionServiceImpl) Start(ctx context.Context, user *models.User) (string, error) {
	// session id เป็น opaque UUID ไม่มีข้อมูล user ใน cookie
	sid := uuid.NewString()

	if err := s.sessionRepo.Save(ctx, sid, dto.UserToSessionUser(user), s.ttl); err != nil {
		logger.ErrorContext(ctx, "Failed to save session", "error", err)
		return "", err
	}

	logger.InfoContext(ctx, "Session started", "user_id", user.ID.Hex())
	return sid, nil
}

func (s *SessionServiceImpl) Verify(ctx context.Context, sid string) (*dto.SessionUser, error) {
	return s.sessionRepo.Get(ctx, sid)
}

func (s *SessionServiceImpl) Destroy(ctx context.Context, sid string) error {
	return s.sessionRepo.Delete(ctx, sid)
}

func (s *SessionServiceImpl) TTL() time.Duration {
	return s.ttl
}
