package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"empoweryouth-api/internal/config"
	"empoweryouth-api/pkg/models"
)

const (
	usersCollection        = "users"
	userSkillsCollection   = "user_skills"
	chatMessagesCollection = "chat_messages"
	applicationsCollection = "job_applications"
)

// MongoStore implements Store against a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the MongoDB connection and verifies it with a
// ping. The returned handle is safe for concurrent use; lifecycle is
// owned by the caller.
func Connect(ctx context.Context, cfg *config.Config) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.Timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(cfg.Mongo.Database),
	}, nil
}

// CreateUser inserts a new user document.
func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) error {
	if _, err := s.db.Collection(usersCollection).InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// FindUserByEmail looks a user up by email, returning ErrNotFound when absent.
func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"email": email})
}

// FindUserByID looks a user up by its opaque id, returning ErrNotFound when absent.
func (s *MongoStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"id": id})
}

func (s *MongoStore) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := s.db.Collection(usersCollection).FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// UpdateUserAssessment stores the derived skill vector and raw answers
// on the user document and marks the assessment completed.
func (s *MongoStore) UpdateUserAssessment(ctx context.Context, userID string, vector []models.Skill, answers map[string]interface{}) error {
	update := bson.M{"$set": bson.M{
		"skillVector":         vector,
		"assessmentData":      answers,
		"assessmentCompleted": true,
		"updatedAt":           time.Now(),
	}}

	if _, err := s.db.Collection(usersCollection).UpdateOne(ctx, bson.M{"id": userID}, update); err != nil {
		return fmt.Errorf("failed to update user assessment: %w", err)
	}
	return nil
}

// ReplaceUserSkills deletes the user's skill records and inserts the
// new set. There is no isolation between the two steps: concurrent
// submissions for the same user race last-write-wins, possibly
// interleaved.
func (s *MongoStore) ReplaceUserSkills(ctx context.Context, userID string, records []models.SkillRecord) error {
	coll := s.db.Collection(userSkillsCollection)

	if _, err := coll.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("failed to delete user skills: %w", err)
	}

	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, len(records))
	for i := range records {
		docs[i] = records[i]
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert user skills: %w", err)
	}
	return nil
}

// ListUserSkills returns all skill records for a user.
func (s *MongoStore) ListUserSkills(ctx context.Context, userID string) ([]models.SkillRecord, error) {
	cursor, err := s.db.Collection(userSkillsCollection).Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to query user skills: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.SkillRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode user skills: %w", err)
	}
	return records, nil
}

// InsertChatMessage appends one chat turn.
func (s *MongoStore) InsertChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	if _, err := s.db.Collection(chatMessagesCollection).InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

// InsertApplication records a job application.
func (s *MongoStore) InsertApplication(ctx context.Context, app *models.JobApplication) error {
	if _, err := s.db.Collection(applicationsCollection).InsertOne(ctx, app); err != nil {
		return fmt.Errorf("failed to insert application: %w", err)
	}
	return nil
}

// Ping verifies the connection is alive.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
