package dto

import "go.mongodb.org/mongo-driver/bson/primitive"

// UploadResult ส่งกลับจาก file service หลังอัปโหลดสำเร็จ
type UploadResult struct {
	FileID       primitive.ObjectID `json:"fileId"`
	CourseID     primitive.ObjectID `json:"courseId"`
	Token        string             `json:"token"`
	Filename     string             `json:"filename"`
	OriginalName string             `json:"originalName"`
	Size         int64              `json:"size"`
	DownloadURL  string             `json:"downloadUrl"`
}
