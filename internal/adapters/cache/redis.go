package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect initializes a Redis client from URL or host:port input.
// Supporting both formats keeps local/dev and container config paths simple.
func Connect(_ context.Context, redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") {
		opt, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			return nil, fmt.Errorf("parse redis url: %w", parseErr)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

// RedisEventDedupStore records processed gateway event ids under a ttl so a
// redelivered webhook is handled exactly once per window.
type RedisEventDedupStore struct {
	client *redis.Client
}

func NewRedisEventDedupStore(client *redis.Client) *RedisEventDedupStore {
	return &RedisEventDedupStore{client: client}
}

func (s *RedisEventDedupStore) MarkSeen(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	firstSeen, err := s.client.SetNX(ctx, dedupKey(eventID), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("mark event seen: %w", err)
	}
	return firstSeen, nil
}

func dedupKey(eventID string) string {
	return "payment:event:" + eventID
}
