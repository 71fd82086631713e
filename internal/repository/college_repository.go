package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ayushqc/college-info-api/internal/model"
)

type CollegeRepository struct {
	col *mongo.Collection
}

func NewCollegeRepository(db *mongo.Database) *CollegeRepository {
	return &CollegeRepository{col: db.Collection("colleges")}
}

// Find returns all colleges matching the given filter document.
func (r *CollegeRepository) Find(ctx context.Context, filter bson.M) ([]model.College, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find colleges: %w", err)
	}
	defer cursor.Close(ctx)

	var colleges []model.College
	if err := cursor.All(ctx, &colleges); err != nil {
		return nil, fmt.Errorf("decode colleges: %w", err)
	}
	return colleges, nil
}

func (r *CollegeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.College, error) {
	var college model.College
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&college)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find college: %w", err)
	}
	return &college, nil
}

// FindByIDs returns the colleges with the given ids, keyed by id. Missing ids
// are silently absent from the map (dangling timeline references).
func (r *CollegeRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.College, error) {
	if len(ids) == 0 {
		return map[primitive.ObjectID]model.College{}, nil
	}

	colleges, err := r.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]model.College, len(colleges))
	for _, c := range colleges {
		byID[c.ID] = c
	}
	return byID, nil
}

// Insert stores a new college and fills in its assigned id.
func (r *CollegeRepository) Insert(ctx context.Context, college *model.College) error {
	res, err := r.col.InsertOne(ctx, college)
	if err != nil {
		return fmt.Errorf("insert college: %w", err)
	}
	college.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Replace swaps the entire document body for the given id, keeping the id,
// and returns the document as stored after the replacement.
func (r *CollegeRepository) Replace(ctx context.Context, id primitive.ObjectID, college *model.College) (*model.College, error) {
	college.ID = id

	var updated model.College
	err := r.col.FindOneAndReplace(
		ctx,
		bson.M{"_id": id},
		college,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("replace college: %w", err)
	}
	return &updated, nil
}

// Delete removes the college with the given id and returns the deleted
// document.
func (r *CollegeRepository) Delete(ctx context.Context, id primitive.ObjectID) (*model.College, error) {
	var deleted model.College
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete college: %w", err)
	}
	return &deleted, nil
}
