package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"coursehub/domain/models"
)

type RegisterRequest struct {
	Email       string `form:"email" validate:"required,email,max=255"`
	DisplayName string `form:"displayName" validate:"required,min=1,max=50"`
	Password    string `form:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// SessionUser คือ identity ที่ auth gate ส่งต่อให้ handler
// เก็บเป็น JSON ใน Redis ตาม session id
type SessionUser struct {
	ID          primitive.ObjectID `json:"id"`
	Email       string             `json:"email"`
	DisplayName string             `json:"displayName"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func UserToSessionUser(u *models.User) *SessionUser {
	return &SessionUser{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}
