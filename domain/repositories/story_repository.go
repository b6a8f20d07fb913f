package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"coursehub/domain/models"
)

// StoryFilter เงื่อนไข query ที่ route layer ใช้
// zero value = ไม่ filter field นั้น
type StoryFilter struct {
	CourseID *primitive.ObjectID
	UserID   *primitive.ObjectID
	Status   string
	// SortByCreatedDesc เรียงใหม่สุดก่อน
	SortByCreatedDesc bool
}

type StoryRepository interface {
	Create(ctx context.Context, story *models.Story) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Story, error)
	Find(ctx context.Context, filter StoryFilter) ([]*models.Story, error)
	Update(ctx context.Context, id primitive.ObjectID, story *models.Story) error
	SetFileLink(ctx context.Context, id primitive.ObjectID, link string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}
