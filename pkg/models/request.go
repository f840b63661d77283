package models

// RegisterRequest represents the payload for user registration.
// Presence is the only validation: the contract rejects a missing
// field with 400 but never checks formats.
type RegisterRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Location   string `json:"location,omitempty"`
	Experience string `json:"experience,omitempty"`
}

// AssessmentRequest represents submitted assessment answers. The
// skill and interest tags drive the skill-vector rule table.
type AssessmentRequest struct {
	Skills    []string `json:"skills,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// ChatRequest represents one chat turn from the client.
type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	Language  string `json:"language,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// ApplyRequest represents a job application. JobID is required but
// deliberately not checked against the catalog (ephemeral ids).
type ApplyRequest struct {
	JobID string `json:"jobId" validate:"required"`
}
