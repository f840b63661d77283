package models

import "time"

// JobApplication records that a user applied to a job. The jobId is
// not validated against the catalog: catalog identifiers are ephemeral
// and regenerate on every request.
type JobApplication struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"userId" bson:"userId"`
	JobID     string    `json:"jobId" bson:"jobId"`
	AppliedAt time.Time `json:"appliedAt" bson:"appliedAt"`
	Status    string    `json:"status" bson:"status"`
}
