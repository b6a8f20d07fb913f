package ports

import "io"

// StoragePort คือ interface หลักสำหรับเก็บไฟล์แนบ
// ทำให้เปลี่ยน storage provider ได้ง่าย (Local, S3/MinIO)
type StoragePort interface {
	// UploadFile เขียนไฟล์ลง storage
	// path: เส้นทางที่จะเก็บไฟล์ (เช่น "stories/<storyID>/report-1700000000.pdf")
	// คืน path ที่เก็บจริง
	UploadFile(file io.Reader, path string, size int64, contentType string) (string, error)

	// GetFileContent อ่านไฟล์จาก storage สำหรับ stream เป็น download
	GetFileContent(path string) (io.ReadCloser, error)

	// DeleteFile ลบไฟล์ (ไฟล์ไม่มีอยู่ = สำเร็จ)
	DeleteFile(path string) error

	// GetProviderName ชื่อ provider (local, s3)
	GetProviderName() string
}
