package serviceimpl

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"coursehub/domain/dto"
	"coursehub/domain/errs"
	"coursehub/domain/models"
	"coursehub/domain/repositories"
	"coursehub/pkg/logger"
	"coursehub/pkg/utils"
)

type StoryServiceImpl struct {
	storyRepo repositories.StoryRepository
	userRepo  repositories.UserRepository
}

func NewStoryService(storyRepo repositories.StoryRepository, userRepo repositories.UserRepository) *StoryServiceImpl {
	return &StoryServiceImpl{
		storyRepo: storyRepo,
		userRepo:  userRepo,
	}
}

func (s *StoryServiceImpl) Create(ctx context.Context, courseID string, userID primitive.ObjectID, req *dto.CreateStoryRequest) (*models.Story, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	courseOID, err := parseObjectID(courseID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StoryStatusPrivate
	}

	// user/course มาจาก session + URL เท่านั้น
	story := &models.Story{
		UserID:   userID,
		CourseID: courseOID,
		Title:    req.Title,
		Body:     req.Body,
		Status:   status,
	}

	if err := s.storyRepo.Create(ctx, story); err != nil {
		logger.ErrorContext(ctx, "Failed to create story", "course_id", courseID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Story created", "story_id", story.ID.Hex(), "course_id", courseID)
	return story, nil
}

func (s *StoryServiceImpl) ListPublic(ctx context.Context, courseID string) ([]*models.Story, error) {
	courseOID, err := parseObjectID(courseID)
	if err != nil {
		return nil, err
	}

	stories, err := s.storyRepo.Find(ctx, repositories.StoryFilter{
		CourseID:          &courseOID,
		Status:            models.StoryStatusPublic,
		SortByCreatedDesc: true,
	})
	if err != nil {
		return nil, err
	}

	return s.resolveUsers(ctx, stories)
}

func (s *StoryServiceImpl) ListPublicByUser(ctx context.Context, courseID, userID string) ([]*models.Story, error) {
	courseOID, err := parseObjectID(courseID)
	if err != nil {
		return nil, err
	}
	userOID, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	stories, err := s.storyRepo.Find(ctx, repositories.StoryFilter{
		CourseID:          &courseOID,
		UserID:            &userOID,
		Status:            models.StoryStatusPublic,
		SortByCreatedDesc: true,
	})
	if err != nil {
		return nil, err
	}

	return s.resolveUsers(ctx, stories)
}

func (s *StoryServiceImpl) Get(ctx context.Context, id string) (*models.Story, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	story, err := s.storyRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, story.UserID)
	if err == nil {
		story.User = user
	}
	return story, nil
}

func (s *StoryServiceImpl) GetForEdit(ctx context.Context, id string, caller *dto.SessionUser) (*models.Story, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	story, err := s.storyRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if !utils.SameID(story.UserID, caller.ID) {
		logger.WarnContext(ctx, "Edit blocked: not the owner", "story_id", id, "caller_id", caller.ID.Hex())
		// คืน story ด้วย handler จะได้รู้ว่าต้อง redirect ไป course ไหน
		return story, fmt.Errorf("story %s: %w", id, errs.ErrForbidden)
	}

	return story, nil
}

func (s *StoryServiceImpl) Update(ctx context.Context, id string, caller *dto.SessionUser, req *dto.UpdateStoryRequest) (*models.Story, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	story, err := s.storyRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if !utils.SameID(story.UserID, caller.ID) {
		logger.WarnContext(ctx, "Update blocked: not the owner", "story_id", id, "caller_id", caller.ID.Hex())
		return story, fmt.Errorf("story %s: %w", id, errs.ErrForbidden)
	}

	// full update + re-validate เหมือนตอน create
	if err := utils.ValidateStruct(req); err != nil {
		return story, err
	}

	status := req.Status
	if status == "" {
		status = models.StoryStatusPrivate
	}

	story.Title = req.Title
	story.Body = req.Body
	story.Status = status

	if err := s.storyRepo.Update(ctx, oid, story); err != nil {
		logger.ErrorContext(ctx, "Failed to update story", "story_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Story updated", "story_id", id)
	return story, nil
}

func (s *StoryServiceImpl) Delete(ctx context.Context, id string, caller *dto.SessionUser) (*models.Story, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	story, err := s.storyRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if !utils.SameID(story.UserID, caller.ID) {
		logger.WarnContext(ctx, "Delete blocked: not the owner", "story_id", id, "caller_id", caller.ID.Hex())
		return story, fmt.Errorf("story %s: %w", id, errs.ErrForbidden)
	}

	// ไม่ cascade ลบ File ที่แนบอยู่ ปล่อยให้ sweep job เก็บ
	if err := s.storyRepo.Delete(ctx, oid); err != nil {
		logger.ErrorContext(ctx, "Failed to delete story", "story_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Story deleted", "story_id", id)
	return story, nil
}

// resolveUsers เติม owner ให้ story list ด้วย $in query ครั้งเดียว
func (s *StoryServiceImpl) resolveUsers(ctx context.Context, stories []*models.Story) ([]*models.Story, error) {
	if len(stories) == 0 {
		return stories, nil
	}

	seen := make(map[primitive.ObjectID]bool)
	ids := make([]primitive.ObjectID, 0, len(stories))
	for _, st := range stories {
		if !seen[st.UserID] {
			seen[st.UserID] = true
			ids = append(ids, st.UserID)
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, st := range stories {
		st.User = users[st.UserID]
	}
	return stories, nil
}
