package serviceimpl

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"

	"github.com/google/uuid"

	"coursehub/domain/dto"
	"coursehub/domain/errs"
	"coursehub/domain/models"
	"coursehub/domain/ports"
	"coursehub/domain/repositories"
	"coursehub/pkg/logger"
	"coursehub/pkg/utils"
)

type FileServiceImpl struct {
	fileRepo  repositories.FileRepository
	storyRepo repositories.StoryRepository
	userRepo  repositories.UserRepository
	storage   ports.StoragePort
	baseURL   string
	maxSize   int64
}

func NewFileService(
	fileRepo repositories.FileRepository,
	storyRepo repositories.StoryRepository,
	userRepo repositories.UserRepository,
	storage ports.StoragePort,
	baseURL string,
	maxSize int64,
) *FileServiceImpl {
	return &FileServiceImpl{
		fileRepo:  fileRepo,
		storyRepo: storyRepo,
		userRepo:  userRepo,
		storage:   storage,
		baseURL:   baseURL,
		maxSize:   maxSize,
	}
}

func (s *FileServiceImpl) GetStoryForUpload(ctx context.Context, storyID string) (*models.Story, error) {
	oid, err := parseObjectID(storyID)
	if err != nil {
		return nil, err
	}

	story, err := s.storyRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if user, err := s.userRepo.GetByID(ctx, story.UserID); err == nil {
		story.User = user
	}
	return story, nil
}

func (s *FileServiceImpl) Upload(ctx context.Context, storyID string, fileHeader *multipart.FileHeader) (*dto.UploadResult, error) {
	oid, err := parseObjectID(storyID)
	if err != nil {
		return nil, err
	}

	story, err := s.storyRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if fileHeader.Size > s.maxSize {
		logger.WarnContext(ctx, "Upload rejected: file too large",
			"story_id", storyID, "size", fileHeader.Size, "max", s.maxSize)
		return nil, fmt.Errorf("file size %d exceeds limit %d: %w", fileHeader.Size, s.maxSize, errs.ErrUploadRejected)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	storedName := utils.StoredFileName(fileHeader.Filename)
	storagePath := path.Join("stories", oid.Hex(), storedName)
	contentType := fileHeader.Header.Get("Content-Type")

	// เขียนไฟล์ให้ durable ก่อน แล้วค่อยออก metadata + link
	storedPath, err := s.storage.UploadFile(src, storagePath, fileHeader.Size, contentType)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to store upload", "story_id", storyID, "error", err)
		return nil, err
	}

	token := uuid.NewString()

	file := &models.File{
		UUID:         token,
		Filename:     storedName,
		OriginalName: fileHeader.Filename,
		Path:         storedPath,
		Size:         fileHeader.Size,
		StoryID:      oid,
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		logger.ErrorContext(ctx, "Failed to save file metadata", "story_id", storyID, "error", err)
		return nil, err
	}

	// สอง write นี้ไม่ atomic: ถ้า crash ระหว่างทาง story จะไม่มี fileLink
	// แต่ไฟล์ยัง resolve ผ่าน token ได้ (ยอมรับได้ตาม guarantee ของระบบ)
	downloadURL := fmt.Sprintf("%s/course/stories/%s/files/%s", s.baseURL, oid.Hex(), token)
	if err := s.storyRepo.SetFileLink(ctx, oid, downloadURL); err != nil {
		logger.ErrorContext(ctx, "Failed to attach file link", "story_id", storyID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "File uploaded",
		"story_id", storyID, "file_id", file.ID.Hex(), "token", token, "size", file.Size,
		"provider", s.storage.GetProviderName(), "course_id", story.CourseID.Hex())

	return &dto.UploadResult{
		FileID:       file.ID,
		CourseID:     story.CourseID,
		Token:        token,
		Filename:     storedName,
		OriginalName: fileHeader.Filename,
		Size:         file.Size,
		DownloadURL:  downloadURL,
	}, nil
}

func (s *FileServiceImpl) Download(ctx context.Context, token string) (*models.File, io.ReadCloser, error) {
	file, err := s.fileRepo.GetByUUID(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	content, err := s.storage.GetFileContent(file.Path)
	if err != nil {
		logger.ErrorContext(ctx, "File metadata exists but blob is missing",
			"token", token, "path", file.Path, "error", err)
		return nil, nil, fmt.Errorf("file blob %s: %w", token, errs.ErrNotFound)
	}

	// บันทึกเวลา download ล่าสุด พลาดก็ไม่เป็นไร
	if err := s.fileRepo.TouchDownload(ctx, file.ID); err != nil {
		logger.WarnContext(ctx, "Failed to record download time", "token", token, "error", err)
	}

	return file, content, nil
}
