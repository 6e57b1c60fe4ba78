package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Feedback is one anonymous submission. Once stored it is never changed.
// ID is only assigned by the document store.
type Feedback struct {
	ID        *bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string         `bson:"name" json:"name" validate:"required"`
	Email     string         `bson:"email" json:"email" validate:"required"`
	Mobile    string         `bson:"mobile" json:"mobile" validate:"required"`
	Message   string         `bson:"message" json:"message" validate:"required"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}

// FeedbackListing is what a store returns for a full read. Text stores fill
// Content/Location, document stores fill Records.
type FeedbackListing struct {
	Records []Feedback

	Content  string
	Location string
	// Missing is set by the text store when the log file does not exist.
	Missing bool
}
