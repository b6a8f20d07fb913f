package services

import (
	"context"
	"io"
	"mime/multipart"

	"coursehub/domain/dto"
	"coursehub/domain/models"
)

type FileService interface {
	// GetStoryForUpload โหลด story พร้อม owner สำหรับหน้า upload form
	GetStoryForUpload(ctx context.Context, storyID string) (*models.Story, error)

	// Upload รับไฟล์เดียวจาก multipart form เขียนลง storage ก่อน
	// แล้วค่อย insert File metadata และอัปเดต fileLink บน story
	// (สอง write แยกกัน ไม่ atomic)
	// ขนาดเกิน limit → errs.ErrUploadRejected
	Upload(ctx context.Context, storyID string, fileHeader *multipart.FileHeader) (*dto.UploadResult, error)

	// Download resolve ไฟล์จาก token อย่างเดียว (story id ไม่ใช่ authorization input)
	// คืน metadata + stream สำหรับส่งเป็น attachment
	Download(ctx context.Context, token string) (*models.File, io.ReadCloser, error)
}
