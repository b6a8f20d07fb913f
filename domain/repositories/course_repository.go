package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"coursehub/domain/models"
)

type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	CreateMany(ctx context.Context, courses []*models.Course) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
	DeleteAll(ctx context.Context) (int64, error)
}
