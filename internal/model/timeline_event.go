package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event categories.
const (
	EventAdmission    = "admission"
	EventScholarship  = "scholarship"
	EventEntranceTest = "entrance_test"
	EventCounseling   = "counseling"
)

// TimelineEvent is a dated event weakly linked to a college. The referenced
// college may have been deleted; reads tolerate a dangling reference.
type TimelineEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CollegeID   primitive.ObjectID `bson:"college_id,omitempty" json:"college_id,omitempty"`
	Type        string             `bson:"type" json:"type"`
	Title       string             `bson:"title" json:"title"`
	StartDate   time.Time          `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate     time.Time          `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	// College is the resolved reference, populated on reads only.
	College *College `bson:"-" json:"college,omitempty"`
}

// TimelineEventRequest is the payload for creating a timeline event.
// CollegeID is optional; when present it must be a 24-char hex ObjectID.
type TimelineEventRequest struct {
	CollegeID   string    `json:"college_id" binding:"omitempty,len=24,hexadecimal"`
	Type        string    `json:"type" binding:"required,oneof=admission scholarship entrance_test counseling"`
	Title       string    `json:"title" binding:"required,min=2,max=200"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description string    `json:"description" binding:"max=2000"`
}

// ToEvent builds a TimelineEvent document from the request payload.
// The college reference has already been validated as hex by binding.
func (r *TimelineEventRequest) ToEvent() *TimelineEvent {
	ev := &TimelineEvent{
		Type:        r.Type,
		Title:       r.Title,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Description: r.Description,
	}
	if r.CollegeID != "" {
		if id, err := primitive.ObjectIDFromHex(r.CollegeID); err == nil {
			ev.CollegeID = id
		}
	}
	return ev
}
