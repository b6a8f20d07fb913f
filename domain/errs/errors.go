package errs

import "errors"

// Error kinds ที่ service layer ใช้ตอบกลับ handler
// handler เป็นคนตัดสินใจว่าจะ render หน้า error หรือ redirect
var (
	ErrNotFound       = errors.New("resource not found")
	ErrForbidden      = errors.New("not the owner of this resource")
	ErrUnauthorized   = errors.New("authentication required")
	ErrValidation     = errors.New("validation failed")
	ErrUploadRejected = errors.New("upload rejected")
	ErrConflict       = errors.New("resource already exists")
)

// IsNotFound ตรวจสอบ error chain ว่าเป็น not-found ไหม
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsForbidden ตรวจสอบ error chain ว่าเป็น ownership failure ไหม
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsUploadRejected ตรวจสอบ error chain ว่าเป็น upload limit ไหม
func IsUploadRejected(err error) bool {
	return errors.Is(err, ErrUploadRejected)
}
