package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ayushqc/college-info-api/internal/model"
	"github.com/ayushqc/college-info-api/internal/repository"
)

// TimelineStore is the persistence surface for timeline events.
type TimelineStore interface {
	FindAll(ctx context.Context) ([]model.TimelineEvent, error)
	FindByColleges(ctx context.Context, collegeIDs []primitive.ObjectID) ([]model.TimelineEvent, error)
	FindByCollege(ctx context.Context, collegeID primitive.ObjectID) ([]model.TimelineEvent, error)
	Insert(ctx context.Context, event *model.TimelineEvent) error
}

type TimelineService struct {
	events   TimelineStore
	colleges CollegeStore
}

func NewTimelineService(events TimelineStore, colleges CollegeStore) *TimelineService {
	return &TimelineService{events: events, colleges: colleges}
}

// List returns timeline events with their college references resolved. A
// non-empty district restricts results to events whose referenced college
// belongs to that district; events with dangling references are kept (with a
// nil college) only in the unfiltered listing.
func (s *TimelineService) List(ctx context.Context, district string) ([]model.TimelineEvent, error) {
	if district != "" {
		colleges, err := s.colleges.Find(ctx, repository.CollegeFilter{District: district}.Document())
		if err != nil {
			return nil, err
		}

		ids := make([]primitive.ObjectID, 0, len(colleges))
		byID := make(map[primitive.ObjectID]model.College, len(colleges))
		for _, c := range colleges {
			ids = append(ids, c.ID)
			byID[c.ID] = c
		}

		events, err := s.events.FindByColleges(ctx, ids)
		if err != nil {
			return nil, err
		}
		resolveColleges(events, byID)
		return events, nil
	}

	events, err := s.events.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(events))
	for _, ev := range events {
		if !ev.CollegeID.IsZero() {
			ids = append(ids, ev.CollegeID)
		}
	}
	byID, err := s.colleges.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	resolveColleges(events, byID)
	return events, nil
}

// ListByCollege returns the events referencing a single college. The college
// itself is not required to exist.
func (s *TimelineService) ListByCollege(ctx context.Context, collegeID primitive.ObjectID) ([]model.TimelineEvent, error) {
	return s.events.FindByCollege(ctx, collegeID)
}

func (s *TimelineService) Create(ctx context.Context, event *model.TimelineEvent) error {
	return s.events.Insert(ctx, event)
}

func resolveColleges(events []model.TimelineEvent, byID map[primitive.ObjectID]model.College) {
	for i := range events {
		if college, ok := byID[events[i].CollegeID]; ok {
			c := college
			events[i].College = &c
		}
	}
}
