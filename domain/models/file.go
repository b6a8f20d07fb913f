package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// File คือ metadata ของไฟล์ที่แนบกับ story
// UUID เป็น handle เดียวที่ resolve จากภายนอกได้ ห้าม expose Path ตรงๆ
type File struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UUID           string             `bson:"uuid" json:"uuid"`
	Filename       string             `bson:"filename" json:"filename"` // ชื่อไฟล์ที่ generate ตอนเก็บ
	OriginalName   string             `bson:"originalName" json:"originalName"`
	Path           string             `bson:"path" json:"-"` // เส้นทางใน storage backend
	Size           int64              `bson:"size" json:"size"`
	StoryID        primitive.ObjectID `bson:"story" json:"story"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	LastDownloadAt *time.Time         `bson:"lastDownloadAt,omitempty" json:"lastDownloadAt,omitempty"`
}

func (File) CollectionName() string {
	return "files"
}
