package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ayushqc/college-info-api/internal/model"
)

type TimelineRepository struct {
	col *mongo.Collection
}

func NewTimelineRepository(db *mongo.Database) *TimelineRepository {
	return &TimelineRepository{col: db.Collection("timeline_events")}
}

// FindAll returns every timeline event ordered by start date.
func (r *TimelineRepository) FindAll(ctx context.Context) ([]model.TimelineEvent, error) {
	return r.find(ctx, bson.M{})
}

// FindByColleges returns events referencing any of the given colleges.
func (r *TimelineRepository) FindByColleges(ctx context.Context, collegeIDs []primitive.ObjectID) ([]model.TimelineEvent, error) {
	if len(collegeIDs) == 0 {
		return []model.TimelineEvent{}, nil
	}
	return r.find(ctx, bson.M{"college_id": bson.M{"$in": collegeIDs}})
}

// FindByCollege returns events referencing a single college.
func (r *TimelineRepository) FindByCollege(ctx context.Context, collegeID primitive.ObjectID) ([]model.TimelineEvent, error) {
	return r.find(ctx, bson.M{"college_id": collegeID})
}

// Insert stores a new event and fills in its assigned id.
func (r *TimelineRepository) Insert(ctx context.Context, event *model.TimelineEvent) error {
	res, err := r.col.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("insert timeline event: %w", err)
	}
	event.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *TimelineRepository) find(ctx context.Context, filter bson.M) ([]model.TimelineEvent, error) {
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find timeline events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []model.TimelineEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode timeline events: %w", err)
	}
	return events, nil
}
