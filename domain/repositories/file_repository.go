package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"coursehub/domain/models"
)

type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	GetByUUID(ctx context.Context, token string) (*models.File, error)
	GetByStoryID(ctx context.Context, storyID primitive.ObjectID) ([]*models.File, error)
	List(ctx context.Context) ([]*models.File, error)
	TouchDownload(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
