package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StoryStatusPublic  = "public"
	StoryStatusPrivate = "private"
)

type Story struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	CourseID  primitive.ObjectID `bson:"course" json:"course"`
	Title     string             `bson:"title,omitempty" json:"title"`
	Body      string             `bson:"body" json:"body"`
	Status    string             `bson:"status" json:"status"` // public, private
	FileLink  string             `bson:"fileLink,omitempty" json:"fileLink,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`

	// เติมตอน resolve จาก users collection ไม่ได้เก็บลง document
	User *User `bson:"-" json:"-"`
}

func (Story) CollectionName() string {
	return "stories"
}

// IsPublic ตรวจสอบว่า story เปิด public ไหม
func (s *Story) IsPublic() bool {
	return s.Status == StoryStatusPublic
}
