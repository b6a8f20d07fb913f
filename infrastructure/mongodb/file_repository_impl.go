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

type FileRepositoryImpl struct {
	coll *mongo.Collection
}

func NewFileRepository(db *mongo.Database) repositories.FileRepository {
	return &FileRepositoryImpl{coll: db.Collection(models.File{}.CollectionName())}
}

func (r *FileRepositoryImpl) Create(ctx context.Context, file *models.File) error {
	if file.ID.IsZero() {
		file.ID = primitive.NewObjectID()
	}
	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now().UTC()
	}

	_, err := r.coll.InsertOne(ctx, file)
	return err
}

func (r *FileRepositoryImpl) GetByUUID(ctx context.Context, token string) (*models.File, error) {
	var file models.File
	err := r.coll.FindOne(ctx, bson.M{"uuid": token}).Decode(&file)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("file token %s: %w", token, errs.ErrNotFound)
		}
		return nil, err
	}
	return &file, nil
}

func (r *FileRepositoryImpl) GetByStoryID(ctx context.Context, storyID primitive.ObjectID) ([]*models.File, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"story": storyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var files []*models.File
	if err := cursor.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (r *FileRepositoryImpl) List(ctx context.Context) ([]*models.File, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var files []*models.File
	if err := cursor.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (r *FileRepositoryImpl) TouchDownload(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"lastDownloadAt": time.Now().UTC(),
	}})
	return err
}

func (r *FileRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
