package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ayushqc/college-info-api/internal/model"
	"github.com/ayushqc/college-info-api/internal/repository"
)

// CollegeStore is the persistence surface for college documents.
type CollegeStore interface {
	Find(ctx context.Context, filter bson.M) ([]model.College, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.College, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.College, error)
	Insert(ctx context.Context, college *model.College) error
	Replace(ctx context.Context, id primitive.ObjectID, college *model.College) (*model.College, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*model.College, error)
}

type CollegeService struct {
	colleges CollegeStore
}

func NewCollegeService(colleges CollegeStore) *CollegeService {
	return &CollegeService{colleges: colleges}
}

// List fetches colleges matching the filter, then narrows embedded program
// lists to the requested program substring.
func (s *CollegeService) List(ctx context.Context, filter repository.CollegeFilter) ([]model.College, error) {
	colleges, err := s.colleges.Find(ctx, filter.Document())
	if err != nil {
		return nil, err
	}
	return filter.Narrow(colleges), nil
}

func (s *CollegeService) Get(ctx context.Context, id primitive.ObjectID) (*model.College, error) {
	return s.colleges.FindByID(ctx, id)
}

func (s *CollegeService) Create(ctx context.Context, college *model.College) error {
	return s.colleges.Insert(ctx, college)
}

// Replace implements full-document update semantics: the stored document is
// swapped wholesale for the new body, keeping only the id.
func (s *CollegeService) Replace(ctx context.Context, id primitive.ObjectID, college *model.College) (*model.College, error) {
	return s.colleges.Replace(ctx, id, college)
}

func (s *CollegeService) Delete(ctx context.Context, id primitive.ObjectID) (*model.College, error) {
	return s.colleges.Delete(ctx, id)
}
