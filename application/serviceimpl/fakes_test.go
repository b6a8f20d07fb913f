package serviceimpl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"coursehub/domain/dto"
	"coursehub/domain/errs"
	"coursehub/domain/models"
	"coursehub/domain/repositories"
)

// -------- in-memory fakes --------

func readerOf(s string) io.Reader {
	return strings.NewReader(s)
}

type memStoryRepo struct {
	mu      sync.Mutex
	stories []*models.Story
}

func newMemStoryRepo() *memStoryRepo {
	return &memStoryRepo{}
}

func copyStory(s *models.Story) *models.Story {
	cp := *s
	return &cp
}

func (r *memStoryRepo) Create(ctx context.Context, story *models.Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if story.ID.IsZero() {
		story.ID = primitive.NewObjectID()
	}
	if story.CreatedAt.IsZero() {
		story.CreatedAt = time.Now().UTC()
	}
	story.UpdatedAt = story.CreatedAt

	r.stories = append(r.stories, copyStory(story))
	return nil
}

func (r *memStoryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.stories {
		if s.ID == id {
			return copyStory(s), nil
		}
	}
	return nil, fmt.Errorf("story %s: %w", id.Hex(), errs.ErrNotFound)
}

func (r *memStoryRepo) Find(ctx context.Context, filter repositories.StoryFilter) ([]*models.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*models.Story
	for _, s := range r.stories {
		if filter.CourseID != nil && s.CourseID != *filter.CourseID {
			continue
		}
		if filter.UserID != nil && s.UserID != *filter.UserID {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		result = append(result, copyStory(s))
	}

	if filter.SortByCreatedDesc {
		sort.Slice(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}
	return result, nil
}

func (r *memStoryRepo) Update(ctx context.Context, id primitive.ObjectID, story *models.Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.stories {
		if s.ID == id {
			cp := copyStory(story)
			cp.ID = id
			cp.CreatedAt = s.CreatedAt
			cp.UpdatedAt = time.Now().UTC()
			r.stories[i] = cp
			return nil
		}
	}
	return fmt.Errorf("story %s: %w", id.Hex(), errs.ErrNotFound)
}

func (r *memStoryRepo) SetFileLink(ctx context.Context, id primitive.ObjectID, link string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.stories {
		if s.ID == id {
			s.FileLink = link
			s.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return fmt.Errorf("story %s: %w", id.Hex(), errs.ErrNotFound)
}

func (r *memStoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.stories {
		if s.ID == id {
			r.stories = append(r.stories[:i], r.stories[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("story %s: %w", id.Hex(), errs.ErrNotFound)
}

func (r *memStoryRepo) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.stories {
		if s.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type memCourseRepo struct {
	mu      sync.Mutex
	courses []*models.Course
}

func newMemCourseRepo() *memCourseRepo {
	return &memCourseRepo{}
}

func (r *memCourseRepo) Create(ctx context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	cp := *course
	r.courses = append(r.courses, &cp)
	return nil
}

func (r *memCourseRepo) CreateMany(ctx context.Context, courses []*models.Course) error {
	for _, c := range courses {
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *memCourseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.courses {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("course %s: %w", id.Hex(), errs.ErrNotFound)
}

func (r *memCourseRepo) List(ctx context.Context) ([]*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*models.Course, 0, len(r.courses))
	for _, c := range r.courses {
		cp := *c
		result = append(result, &cp)
	}
	return result, nil
}

func (r *memCourseRepo) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.courses))
	r.courses = nil
	return n, nil
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id.Hex(), errs.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, errs.ErrNotFound)
}

func (r *memUserRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[primitive.ObjectID]*models.User, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			cp := *u
			result[id] = &cp
		}
	}
	return result, nil
}

type memFileRepo struct {
	mu    sync.Mutex
	files []*models.File
}

func newMemFileRepo() *memFileRepo {
	return &memFileRepo{}
}

func copyFile(f *models.File) *models.File {
	cp := *f
	return &cp
}

func (r *memFileRepo) Create(ctx context.Context, file *models.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if file.ID.IsZero() {
		file.ID = primitive.NewObjectID()
	}
	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now().UTC()
	}
	r.files = append(r.files, copyFile(file))
	return nil
}

func (r *memFileRepo) GetByUUID(ctx context.Context, token string) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.files {
		if f.UUID == token {
			return copyFile(f), nil
		}
	}
	return nil, fmt.Errorf("file %s: %w", token, errs.ErrNotFound)
}

func (r *memFileRepo) GetByStoryID(ctx context.Context, storyID primitive.ObjectID) ([]*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*models.File
	for _, f := range r.files {
		if f.StoryID == storyID {
			result = append(result, copyFile(f))
		}
	}
	return result, nil
}

func (r *memFileRepo) List(ctx context.Context) ([]*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*models.File, 0, len(r.files))
	for _, f := range r.files {
		result = append(result, copyFile(f))
	}
	return result, nil
}

func (r *memFileRepo) TouchDownload(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.files {
		if f.ID == id {
			now := time.Now().UTC()
			f.LastDownloadAt = &now
			return nil
		}
	}
	return fmt.Errorf("file %s: %w", id.Hex(), errs.ErrNotFound)
}

func (r *memFileRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, f := range r.files {
		if f.ID == id {
			r.files = append(r.files[:i], r.files[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("file %s: %w", id.Hex(), errs.ErrNotFound)
}

// memStorage เก็บ blob ใน map แทน disk/S3
type memStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{blobs: make(map[string][]byte)}
}

func (s *memStorage) UploadFile(file io.Reader, path string, size int64, contentType string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[path] = data
	return path, nil
}

func (s *memStorage) GetFileContent(path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.blobs[path]
	if !ok {
		return nil, fmt.Errorf("blob %s: %w", path, errs.ErrNotFound)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStorage) DeleteFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, path)
	return nil
}

func (s *memStorage) GetProviderName() string {
	return "memory"
}

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*dto.SessionUser
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*dto.SessionUser)}
}

func (r *memSessionRepo) Save(ctx context.Context, sid string, user *dto.SessionUser, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *user
	r.sessions[sid] = &cp
	return nil
}

func (r *memSessionRepo) Get(ctx context.Context, sid string) (*dto.SessionUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.sessions[sid]
	if !ok {
		return nil, errs.ErrUnauthorized
	}
	cp := *user
	return &cp, nil
}

func (r *memSessionRepo) Delete(ctx context.Context, sid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sid)
	return nil
}
