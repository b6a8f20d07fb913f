package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"coursehub/domain/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByIDs resolve หลาย user ในครั้งเดียว (ใช้เติม owner ให้ story list)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.User, error)
}
