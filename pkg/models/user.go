package models

import "time"

// Skill is a single entry of a user's skill vector
type Skill struct {
	Name  string `json:"name" bson:"name"`
	Level int    `json:"level" bson:"level"`
}

// User represents a registered user document in the users collection.
// The document intentionally carries no credential material: the
// password from the registration payload is validated but never stored.
type User struct {
	ID                  string                 `json:"id" bson:"id"`
	Name                string                 `json:"name" bson:"name"`
	Email               string                 `json:"email" bson:"email"`
	Phone               string                 `json:"phone" bson:"phone"`
	Location            string                 `json:"location,omitempty" bson:"location,omitempty"`
	Experience          string                 `json:"experience,omitempty" bson:"experience,omitempty"`
	SkillVector         []Skill                `json:"skillVector" bson:"skillVector"`
	AssessmentData      map[string]interface{} `json:"assessmentData,omitempty" bson:"assessmentData,omitempty"`
	AssessmentCompleted bool                   `json:"assessmentCompleted" bson:"assessmentCompleted"`
	CreatedAt           time.Time              `json:"createdAt" bson:"createdAt"`
	UpdatedAt           *time.Time             `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// SkillRecord is one per-skill document in the user_skills collection.
// The set for a user is fully replaced on every assessment submission.
type SkillRecord struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"userId" bson:"userId"`
	SkillName string    `json:"skillName" bson:"skillName"`
	Level     int       `json:"level" bson:"level"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
