package store

import (
	"context"
	"sync"

	"empoweryouth-api/pkg/models"
)

// MemoryStore is an in-process Store used by tests and local runs
// without a database. It mirrors the pass-through semantics of the
// mongo implementation, including the unisolated skill replacement.
type MemoryStore struct {
	mu           sync.RWMutex
	users        map[string]*models.User // keyed by user id
	skills       map[string][]models.SkillRecord
	chatMessages []models.ChatMessage
	applications []models.JobApplication
	ops          int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[string]*models.User),
		skills: make(map[string][]models.SkillRecord),
	}
}

// Ops reports how many store operations have been executed. Tests use
// it to assert that rejected requests never touch the store.
func (s *MemoryStore) Ops() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ops
}

// Applications returns a copy of the recorded applications.
func (s *MemoryStore) Applications() []models.JobApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.JobApplication, len(s.applications))
	copy(out, s.applications)
	return out
}

// ChatMessages returns a copy of the recorded chat turns.
func (s *MemoryStore) ChatMessages() []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ChatMessage, len(s.chatMessages))
	copy(out, s.chatMessages)
	return out
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *MemoryStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++
	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *MemoryStore) UpdateUserAssessment(_ context.Context, userID string, vector []models.Skill, answers map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++
	user, ok := s.users[userID]
	if !ok {
		return nil // mirrors UpdateOne matching zero documents
	}
	user.SkillVector = vector
	user.AssessmentData = answers
	user.AssessmentCompleted = true
	return nil
}

func (s *MemoryStore) ReplaceUserSkills(_ context.Context, userID string, records []models.SkillRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++
	replaced := make([]models.SkillRecord, len(records))
	copy(replaced, records)
	s.skills[userID] = replaced
	return nil
}

func (s *MemoryStore) ListUserSkills(_ context.Context, userID string) ([]models.SkillRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++
	records := s.skills[userID]
	out := make([]models.SkillRecord, len(records))
	copy(out, records)
	return out, nil
}

func (s *MemoryStore) InsertChatMessage(_ context.Context, msg *models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++
	s.chatMessages = append(s.chatMessages, *msg)
	return nil
}

func (s *MemoryStore) InsertApplication(_ context.Context, app *models.JobApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++
	s.applications = append(s.applications, *app)
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) Close(_ context.Context) error {
	return nil
}
