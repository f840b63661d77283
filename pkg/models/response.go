package models

import "time"

// ErrorResponse is the single error body shape for every failure
// branch, paired with the appropriate HTTP status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RootResponse is the unauthenticated liveness message at GET /.
type RootResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned from registration: the created user plus
// an issued bearer token.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// AssessmentResponse carries the derived skill vector back to the client.
type AssessmentResponse struct {
	Success     bool    `json:"success"`
	SkillVector []Skill `json:"skillVector"`
}

// Progress holds the dashboard progress block. CoursesCompleted and
// JobApplications are randomized display values, not derived from
// persisted records.
type Progress struct {
	ProfileCompletion int `json:"profileCompletion"`
	CoursesCompleted  int `json:"coursesCompleted"`
	JobApplications   int `json:"jobApplications"`
}

// DashboardResponse aggregates everything the dashboard view renders.
type DashboardResponse struct {
	Skills             []Skill  `json:"skills"`
	JobMatches         []Job    `json:"jobMatches"`
	Jobs               []Job    `json:"jobs"`
	Courses            []Course `json:"courses"`
	RecommendedCourses []Course `json:"recommendedCourses"`
	Progress           Progress `json:"progress"`
}

// ChatResponse is one bot reply plus the session grouping id.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"sessionId"`
}

// JobsResponse wraps the static job catalog.
type JobsResponse struct {
	Jobs []Job `json:"jobs"`
}

// CoursesResponse wraps the static course catalog.
type CoursesResponse struct {
	Courses []Course `json:"courses"`
}

// ApplyResponse acknowledges a job application.
type ApplyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}
