package services

import (
	"context"
	"time"

	"coursehub/domain/dto"
	"coursehub/domain/models"
)

// SessionService คือ session-verification interface ที่ auth gate ใช้
// handler ไม่แตะ cookie/Redis เอง
type SessionService interface {
	// Start สร้าง session ใหม่ คืน opaque session id สำหรับใส่ cookie
	Start(ctx context.Context, user *models.User) (string, error)
	// Verify resolve session id เป็น identity (errs.ErrUnauthorized ถ้าไม่เจอ/หมดอายุ)
	Verify(ctx context.Context, sid string) (*dto.SessionUser, error)
	Destroy(ctx context.Context, sid string) error
	TTL() time.Duration
}
