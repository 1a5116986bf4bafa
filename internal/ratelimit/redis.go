package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/logger"
)

// RedisLimiter is a fixed-window counter shared by every instance. Redis
// errors fail open.
type RedisLimiter struct {
	client  redis.Cmdable
	limit   int64
	window  time.Duration
	prefix  string
	timeout time.Duration
	now     func() time.Time
	log     *logger.Logger
}

func NewRedisLimiter(client redis.Cmdable, limit int, size time.Duration, prefix string, log *logger.Logger) *RedisLimiter {
	if log == nil {
		log = logger.Nop()
	}
	return &RedisLimiter{
		client:  client,
		limit:   int64(limit),
		window:  size,
		prefix:  prefix,
		timeout: 200 * time.Millisecond,
		now:     time.Now,
		log:     log,
	}
}

func (l *RedisLimiter) Allow(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	slot := l.now().UnixNano() / int64(l.window)
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, slot)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		l.log.Warn(ctx, "rate limiter unavailable, allowing request", zap.String("prefix", l.prefix), zap.Error(err))
		return true
	}
	return incr.Val() <= l.limit
}
