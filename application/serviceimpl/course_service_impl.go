package serviceimpl

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"coursehub/domain/errs"
	"coursehub/domain/models"
	"coursehub/domain/repositories"
	"coursehub/pkg/logger"
)

type CourseServiceImpl struct {
	courseRepo repositories.CourseRepository
	storyRepo  repositories.StoryRepository
}

func NewCourseService(courseRepo repositories.CourseRepository, storyRepo repositories.StoryRepository) *CourseServiceImpl {
	return &CourseServiceImpl{
		courseRepo: courseRepo,
		storyRepo:  storyRepo,
	}
}

func (s *CourseServiceImpl) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.List(ctx)
}

func (s *CourseServiceImpl) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.courseRepo.GetByID(ctx, oid)
}

func (s *CourseServiceImpl) Dashboard(ctx context.Context, courseID string, userID primitive.ObjectID) (*models.Course, []*models.Story, error) {
	oid, err := parseObjectID(courseID)
	if err != nil {
		return nil, nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, nil, err
	}

	// dashboard เห็น story ของตัวเองทุก status
	stories, err := s.storyRepo.Find(ctx, repositories.StoryFilter{
		CourseID: &oid,
		UserID:   &userID,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load dashboard stories", "course_id", courseID, "error", err)
		return nil, nil, err
	}

	return course, stories, nil
}

// parseObjectID แปลง id จาก URL; id ผิดรูป = ไม่มี document นั้นอยู่แล้ว
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid id %q: %w", id, errs.ErrNotFound)
	}
	return oid, nil
}
