package conversation

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/schema"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "conversation:"

// History is the transcript of one ordering session
type History struct {
	Messages []*schema.Message `json:"messages"`
}

type Repository interface {
	Load(ctx context.Context, sessionID string) (*History, error)
	Save(ctx context.Context, sessionID string, history *History) error
	AddMessage(ctx context.Context, sessionID string, message *schema.Message) error
	Delete(ctx context.Context, sessionID string) error
}

// ====================== Redis ======================

type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository connects to redisURL, or to REDIS_URL when redisURL is empty
func NewRedisRepository(ctx context.Context, redisURL string, ttl time.Duration) (*RedisRepository, error) {
	if redisURL == "" {
		redisURL = os.Getenv("REDIS_URL")
	}
	if redisURL == "" {
		return nil, fmt.Errorf("TRANSCRIPT_REDIS_URL or REDIS_URL environment variable is required")
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisRepository{
		client: client,
		ttl:    ttl,
	}, nil
}

func (r *RedisRepository) Load(ctx context.Context, sessionID string) (*History, error) {
	key := keyPrefix + sessionID
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return &History{Messages: []*schema.Message{}}, nil
		}
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	var history History
	if err := sonic.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}

	// Refresh TTL
	if r.ttl > 0 {
		r.client.Expire(ctx, key, r.ttl)
	}
	return &history, nil
}

func (r *RedisRepository) Save(ctx context.Context, sessionID string, history *History) error {
	data, err := sonic.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	return r.client.Set(ctx, keyPrefix+sessionID, data, r.ttl).Err()
}

func (r *RedisRepository) AddMessage(ctx context.Context, sessionID string, message *schema.Message) error {
	history, err := r.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	history.Messages = append(history.Messages, message)
	return r.Save(ctx, sessionID, history)
}

func (r *RedisRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, keyPrefix+sessionID).Err()
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// ====================== Memory ======================

// MemoryRepository keeps transcripts in process memory. Used when no Redis
// is configured and in tests.
type MemoryRepository struct {
	mu        sync.Mutex
	histories map[string][]*schema.Message
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{histories: make(map[string][]*schema.Message)}
}

func (m *MemoryRepository) Load(ctx context.Context, sessionID string) (*History, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	msgs := m.histories[sessionID]
	return &History{Messages: append([]*schema.Message{}, msgs...)}, nil
}

func (m *MemoryRepository) Save(ctx context.Context, sessionID string, history *History) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if history == nil {
		delete(m.histories, sessionID)
		return nil
	}
	m.histories[sessionID] = append([]*schema.Message{}, history.Messages...)
	return nil
}

func (m *MemoryRepository) AddMessage(ctx context.Context, sessionID string, message *schema.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.histories[sessionID] = append(m.histories[sessionID], message)
	return nil
}

func (m *MemoryRepository) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.histories, sessionID)
	return nil
}
