package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// HistoryStore keeps the last turns of each chat session
type HistoryStore interface {
	Append(ctx context.Context, session string, msgs ...Message) error
	Load(ctx context.Context, session string) ([]Message, error)
	Clear(ctx context.Context, session string) error
}

type MemoryHistory struct {
	mu       sync.Mutex
	max      int
	sessions map[string][]Message
}

func NewMemoryHistory(max int) *MemoryHistory {
	return &MemoryHistory{max: max, sessions: make(map[string][]Message)}
}

func (h *MemoryHistory) Append(_ context.Context, session string, msgs ...Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	history := append(h.sessions[session], msgs...)
	if h.max > 0 && len(history) > h.max {
		history = append([]Message(nil), history[len(history)-h.max:]...)
	}
	h.sessions[session] = history
	return nil
}

func (h *MemoryHistory) Load(_ context.Context, session string) ([]Message, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Message{}, h.sessions[session]...), nil
}

func (h *MemoryHistory) Clear(_ context.Context, session string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, session)
	return nil
}

// RedisHistory stores each session as a capped list shared by every instance
type RedisHistory struct {
	client redis.Cmdable
	max    int64
	ttl    time.Duration
}

func NewRedisHistory(client redis.Cmdable, max int, ttl time.Duration) *RedisHistory {
	return &RedisHistory{client: client, max: int64(max), ttl: ttl}
}

func (h *RedisHistory) key(session string) string {
	return "assistant:history:" + session
}

func (h *RedisHistory) Append(ctx context.Context, session string, msgs ...Message) error {
	if len(msgs) == 0 {
		return nil
	}
	values := make([]any, 0, len(msgs))
	for _, m := range msgs {
		data, err := json.Marshal(m)
		if err != nil {
			return err
		}
		values = append(values, data)
	}

	key := h.key(session)
	pipe := h.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	if h.max > 0 {
		pipe.LTrim(ctx, key, -h.max, -1)
	}
	if h.ttl > 0 {
		pipe.Expire(ctx, key, h.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (h *RedisHistory) Load(ctx context.Context, session string) ([]Message, error) {
	raw, err := h.client.LRange(ctx, h.key(session), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	msgs := make([]Message, 0, len(raw))
	for _, item := range raw {
		var m Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			continue
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (h *RedisHistory) Clear(ctx context.Context, session string) error {
	return h.client.Del(ctx, h.key(session)).Err()
}
