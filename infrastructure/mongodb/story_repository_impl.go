package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coursehub/domain/errs"
	"coursehub/domain/models"
	"coursehub/domain/repositories"
)

type StoryRepositoryImpl struct {
	coll *mongo.Collection
}

func NewStoryRepository(db *mongo.Database) repositories.StoryRepository {
	return &StoryRepositoryImpl{coll: db.Collection(models.Story{}.CollectionName())}
}

func (r *StoryRepositoryImpl) Create(ctx context.Context, story *models.Story) error {
	if story.ID.IsZero() {
		story.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if story.CreatedAt.IsZero() {
		story.CreatedAt = now
	}
	story.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, story)
	return err
}

func (r *StoryRepositoryImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Story, error) {
	var story models.Story
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&story)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("story %s: %w", id.Hex(), errs.ErrNotFound)
		}
		return nil, err
	}
	return &story, nil
}

func (r *StoryRepositoryImpl) Find(ctx context.Context, filter repositories.StoryFilter) ([]*models.Story, error) {
	query := bson.M{}
	if filter.CourseID != nil {
		query["course"] = *filter.CourseID
	}
	if filter.UserID != nil {
		query["user"] = *filter.UserID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find()
	if filter.SortByCreatedDesc {
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stories []*models.Story
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *StoryRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, story *models.Story) error {
	story.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"title":     story.Title,
		"body":      story.Body,
		"status":    story.Status,
		"updatedAt": story.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("story %s: %w", id.Hex(), errs.ErrNotFound)
	}
	return nil
}

func (r *StoryRepositoryImpl) SetFileLink(ctx context.Context, id primitive.ObjectID, link string) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"fileLink":  link,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("story %s: %w", id.Hex(), errs.ErrNotFound)
	}
	return nil
}

func (r *StoryRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("story %s: %w", id.Hex(), errs.ErrNotFound)
	}
	return nil
}

func (r *StoryRepositoryImpl) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
