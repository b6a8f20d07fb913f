package serviceimpl

import (
	"context"

	"coursehub/domain/ports"
	"coursehub/domain/repositories"
	"coursehub/pkg/logger"
	"coursehub/pkg/scheduler"
)

// OrphanSweepConfig การตั้งค่าสำหรับ sweep job
type OrphanSweepConfig struct {
	Cron string // cron expression (default: "0 3 * * *" = ตี 3 ทุกวัน)
}

// OrphanSweepService เก็บกวาด File ที่ story ของมันถูกลบไปแล้ว
// (story delete ไม่ cascade ไปหา File ตาม flow ปกติ)
type OrphanSweepService struct {
	config    OrphanSweepConfig
	fileRepo  repositories.FileRepository
	storyRepo repositories.StoryRepository
	storage   ports.StoragePort
	scheduler scheduler.EventScheduler
}

func NewOrphanSweepService(
	config OrphanSweepConfig,
	fileRepo repositories.FileRepository,
	storyRepo repositories.StoryRepository,
	storage ports.StoragePort,
	eventScheduler scheduler.EventScheduler,
) *OrphanSweepService {
	service := &OrphanSweepService{
		config:    config,
		fileRepo:  fileRepo,
		storyRepo: storyRepo,
		storage:   storage,
		scheduler: eventScheduler,
	}

	if service.config.Cron == "" {
		service.config.Cron = "0 3 * * *"
	}

	return service
}

// RegisterSweepJob ลงทะเบียน job กับ scheduler
func (s *OrphanSweepService) RegisterSweepJob() error {
	return s.scheduler.AddJob("orphan_file_sweep", s.config.Cron, func() {
		ctx := context.Background()
		if _, err := s.RunSweep(ctx); err != nil {
			logger.ErrorContext(ctx, "Orphan sweep failed", "error", err)
		}
	})
}

// RunSweep ไล่ดู File ทุกตัว ลบตัวที่ story หายไปแล้ว
// ลบ blob ก่อนค่อยลบ metadata จะได้ไม่มี doc ที่ชี้ไฟล์ผี
func (s *OrphanSweepService) RunSweep(ctx context.Context) (int, error) {
	logger.InfoContext(ctx, "Starting orphan file sweep")

	files, err := s.fileRepo.List(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, file := range files {
		exists, err := s.storyRepo.ExistsByID(ctx, file.StoryID)
		if err != nil {
			logger.WarnContext(ctx, "Sweep: story lookup failed", "file_id", file.ID.Hex(), "error", err)
			continue
		}
		if exists {
			continue
		}

		if err := s.storage.DeleteFile(file.Path); err != nil {
			logger.WarnContext(ctx, "Sweep: failed to delete blob", "file_id", file.ID.Hex(), "path", file.Path, "error", err)
			continue
		}

		if err := s.fileRepo.Delete(ctx, file.ID); err != nil {
			logger.WarnContext(ctx, "Sweep: failed to delete file doc", "file_id", file.ID.Hex(), "error", err)
			continue
		}

		removed++
		logger.InfoContext(ctx, "Sweep: orphan file removed",
			"file_id", file.ID.Hex(), "story_id", file.StoryID.Hex(), "path", file.Path)
	}

	logger.InfoContext(ctx, "Orphan file sweep finished", "checked", len(files), "removed", removed)
	return removed, nil
}
