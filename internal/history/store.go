// Package history persists conversation messages per session so clients
// can resume chats. The AI engine itself stays persistence-ignorant;
// handlers load a trailing window from here and pass it in.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"disha-utils/internal/config"
	"disha-utils/internal/logging"
	"disha-utils/pkg/models"
)

// Store is the conversation-history backend
type Store interface {
	// Append adds a message to the session's history
	Append(ctx context.Context, sessionID string, msg models.ConversationMessage) error

	// Recent returns the trailing window of at most limit messages in
	// chronological order
	Recent(ctx context.Context, sessionID string, limit int) ([]models.ConversationMessage, error)

	// Ping checks backend availability
	Ping(ctx context.Context) error

	// Close releases backend resources
	Close() error
}

// NewStore creates the configured history backend, falling back to the
// in-memory store when Redis is unreachable.
func NewStore(cfg *config.Config) Store {
	logger := logging.GetGlobalLogger()

	if cfg.History.Backend == "memory" {
		return NewMemoryStore(cfg.History.Window)
	}

	store := NewRedisStore(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		logger.Warn("Redis unavailable - conversation history will not survive restarts", map[string]interface{}{
			"error": err.Error(),
		})
		_ = store.Close()
		return NewMemoryStore(cfg.History.Window)
	}

	logger.Info("Conversation history store ready", map[string]interface{}{
		"backend": "redis",
	})
	return store
}

// RedisStore keeps per-session history in Redis lists with a TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger logging.Logger
}

// NewRedisStore creates a new Redis-backed history store
func NewRedisStore(cfg *config.Config) *RedisStore {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		opts = &redis.Options{
			Addr: "localhost:6379",
		}
	}

	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	return &RedisStore{
		client: redis.NewClient(opts),
		ttl:    cfg.History.TTL,
		logger: logging.GetGlobalLogger(),
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("disha:session:%s:messages", sessionID)
}

// Append adds a message to the session list and refreshes its TTL
func (s *RedisStore) Append(ctx context.Context, sessionID string, msg models.ConversationMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	key := sessionKey(sessionID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// Recent returns the last limit messages in chronological order
func (s *RedisStore) Recent(ctx context.Context, sessionID string, limit int) ([]models.ConversationMessage, error) {
	if limit <= 0 {
		return nil, nil
	}

	entries, err := s.client.LRange(ctx, sessionKey(sessionID), int64(-limit), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	messages := make([]models.ConversationMessage, 0, len(entries))
	for _, entry := range entries {
		var msg models.ConversationMessage
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			s.logger.Warn("Skipping corrupt history entry", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// Ping tests the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// MemoryStore is the in-process fallback backend. Sessions are capped at
// maxMessages entries, oldest dropped first.
type MemoryStore struct {
	mu          sync.RWMutex
	sessions    map[string][]models.ConversationMessage
	maxMessages int
}

// NewMemoryStore creates a new in-memory history store
func NewMemoryStore(maxMessages int) *MemoryStore {
	if maxMessages <= 0 {
		maxMessages = 50
	}
	return &MemoryStore{
		sessions:    make(map[string][]models.ConversationMessage),
		maxMessages: maxMessages,
	}
}

// Append adds a message to the session's history
func (s *MemoryStore) Append(ctx context.Context, sessionID string, msg models.ConversationMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := append(s.sessions[sessionID], msg)
	if len(msgs) > s.maxMessages {
		msgs = msgs[len(msgs)-s.maxMessages:]
	}
	s.sessions[sessionID] = msgs
	return nil
}

// Recent returns the trailing window of at most limit messages
func (s *MemoryStore) Recent(ctx context.Context, sessionID string, limit int) ([]models.ConversationMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.sessions[sessionID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}

	out := make([]models.ConversationMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

// Ping always succeeds for the in-memory store
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close clears all sessions
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string][]models.ConversationMessage)
	return nil
}
