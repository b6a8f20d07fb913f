package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"coursehub/domain/dto"
	"coursehub/domain/models"
)

type StoryService interface {
	// Create stamp user+course ฝั่ง server เสมอ ไม่เชื่อค่าจาก form
	Create(ctx context.Context, courseID string, userID primitive.ObjectID, req *dto.CreateStoryRequest) (*models.Story, error)

	// ListPublic คืน story ที่ status == public ใน course เรียงใหม่สุดก่อน
	// พร้อม resolve owner ของแต่ละ story
	ListPublic(ctx context.Context, courseID string) ([]*models.Story, error)
	ListPublicByUser(ctx context.Context, courseID, userID string) ([]*models.Story, error)

	// Get คืน story พร้อม owner (errs.ErrNotFound ถ้าไม่มี)
	Get(ctx context.Context, id string) (*models.Story, error)

	// GetForEdit โหลด story สำหรับหน้า edit (errs.ErrForbidden ถ้า caller ไม่ใช่เจ้าของ)
	GetForEdit(ctx context.Context, id string, caller *dto.SessionUser) (*models.Story, error)

	// Update เป็น full update + re-validate; ownership guard เหมือน edit
	Update(ctx context.Context, id string, caller *dto.SessionUser, req *dto.UpdateStoryRequest) (*models.Story, error)

	// Delete คืน story ที่ลบไป เพื่อให้ handler redirect กลับ dashboard ของ course ได้
	Delete(ctx context.Context, id string, caller *dto.SessionUser) (*models.Story, error)
}
