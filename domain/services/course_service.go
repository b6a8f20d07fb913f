package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"coursehub/domain/models"
)

type CourseService interface {
	// ListCourses คืน course ทั้งหมด ไม่ filter ไม่ paginate
	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	// Dashboard คืน course พร้อม story ทั้งหมดของ caller ใน course นั้น (ทุก status)
	Dashboard(ctx context.Context, courseID string, userID primitive.ObjectID) (*models.Course, []*models.Story, error)
}
