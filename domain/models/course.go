package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course สร้างผ่าน seeder เท่านั้น ไม่มีหน้า create ใน web
type Course struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func (Course) CollectionName() string {
	return "courses"
}
