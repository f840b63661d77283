package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"empoweryouth-api/internal/config"
	"empoweryouth-api/internal/logging"
	"empoweryouth-api/pkg/models"
)

// HistoryEntry is one cached chat turn.
type HistoryEntry struct {
	ID          string    `json:"id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Timestamp   time.Time `json:"timestamp"`
}

// SessionHistory is the cached conversation for one session id.
type SessionHistory struct {
	SessionID string         `json:"session_id"`
	UserID    string         `json:"user_id"`
	Entries   []HistoryEntry `json:"entries"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// HistoryClient caches recent conversation turns per session in Redis
// with a sliding TTL. The document store stays the system of record;
// the cache is best-effort and callers treat failures as soft.
type HistoryClient struct {
	client *redis.Client
	ttl    time.Duration
	logger logging.Logger
}

// NewHistoryClient creates a Redis-backed session history cache.
func NewHistoryClient(cfg *config.Config) *HistoryClient {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	return &HistoryClient{
		client: redis.NewClient(opts),
		ttl:    cfg.Chat.HistoryTTL,
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (h *HistoryClient) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (h *HistoryClient) Close() error {
	return h.client.Close()
}

// AppendTurn records one chat turn in the session's cached history,
// creating the session entry when absent and refreshing its TTL.
func (h *HistoryClient) AppendTurn(ctx context.Context, msg *models.ChatMessage) error {
	key := h.sessionKey(msg.SessionID)

	history, err := h.getHistory(ctx, key)
	if err != nil {
		return err
	}
	if history == nil {
		history = &SessionHistory{
			SessionID: msg.SessionID,
			UserID:    msg.UserID,
			CreatedAt: time.Now(),
		}
	}

	history.Entries = append(history.Entries, HistoryEntry{
		ID:          msg.ID,
		UserMessage: msg.UserMessage,
		BotResponse: msg.BotResponse,
		Timestamp:   msg.Timestamp,
	})
	history.UpdatedAt = time.Now()

	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal session history: %w", err)
	}

	if err := h.client.Set(ctx, key, data, h.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session history: %w", err)
	}
	return nil
}

// GetSession returns the cached history for a session id, or nil when
// the session has no cached turns.
func (h *HistoryClient) GetSession(ctx context.Context, sessionID string) (*SessionHistory, error) {
	return h.getHistory(ctx, h.sessionKey(sessionID))
}

func (h *HistoryClient) getHistory(ctx context.Context, key string) (*SessionHistory, error) {
	data, err := h.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session history: %w", err)
	}

	var history SessionHistory
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session history: %w", err)
	}
	return &history, nil
}

func (h *HistoryClient) sessionKey(sessionID string) string {
	return fmt.Sprintf("chat:session:%s", sessionID)
}
