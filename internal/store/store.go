package store

import (
	"context"
	"errors"

	"empoweryouth-api/pkg/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// Store is the document-store surface the handlers depend on. It is
// constructed once at startup and injected into the router, so tests
// can substitute the in-memory implementation.
//
// Operations are thin pass-throughs with no transactions: a multi-step
// caller (delete-then-insert skill replacement) that fails partway
// leaves whatever intermediate state the completed steps produced.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUserAssessment(ctx context.Context, userID string, vector []models.Skill, answers map[string]interface{}) error

	ReplaceUserSkills(ctx context.Context, userID string, records []models.SkillRecord) error
	ListUserSkills(ctx context.Context, userID string) ([]models.SkillRecord, error)

	InsertChatMessage(ctx context.Context, msg *models.ChatMessage) error
	InsertApplication(ctx context.Context, app *models.JobApplication) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
