package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"coursehub/domain/errs"
	"coursehub/domain/models"
	"coursehub/domain/repositories"
)

type CourseRepositoryImpl struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) repositories.CourseRepository {
	return &CourseRepositoryImpl{coll: db.Collection(models.Course{}.CollectionName())}
}

func (r *CourseRepositoryImpl) Create(ctx context.Context, course *models.Course) error {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}

	_, err := r.coll.InsertOne(ctx, course)
	return err
}

func (r *CourseRepositoryImpl) CreateMany(ctx context.Context, courses []*models.Course) error {
	if len(courses) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(courses))
	for _, c := range courses {
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now().UTC()
		}
		docs = append(docs, c)
	}

	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *CourseRepositoryImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var course models.Course
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("course %s: %w", id.Hex(), errs.ErrNotFound)
		}
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepositoryImpl) List(ctx context.Context) ([]*models.Course, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []*models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
