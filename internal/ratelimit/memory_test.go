package ratelimit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/logger"
)

func TestFixedWindow_Allow(t *testing.T) {
	clock := time.Unix(1_700_000_000, 0)
	l := NewFixedWindow(3, time.Minute)
	l.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("1.2.3.4"), "request %d", i)
	}
	assert.False(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("5.6.7.8"), "keys are independent")

	clock = clock.Add(time.Minute)
	assert.True(t, l.Allow("1.2.3.4"), "new window resets the budget")
}

func TestFixedWindow_EvictsStaleWindows(t *testing.T) {
	clock := time.Unix(1_700_000_000, 0)
	l := NewFixedWindow(10, time.Minute)
	l.now = func() time.Time { return clock }

	l.Allow("a")
	l.Allow("b")
	assert.Equal(t, 2, l.Len())

	clock = clock.Add(2 * time.Minute)
	l.Allow("c")
	assert.Equal(t, 1, l.Len())
}

func TestFixedWindow_Concurrent(t *testing.T) {
	l := NewFixedWindow(50, time.Hour)

	var allowed int64
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("shared") {
				atomic.AddInt64(&allowed, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(50), allowed)
}

func TestUnlimited(t *testing.T) {
	var l Limiter = Unlimited{}
	for i := 0; i < 1000; i++ {
		assert.True(t, l.Allow("k"))
	}
}

func TestRedisLimiter_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	core, logs := observer.New(zap.WarnLevel)
	l := NewRedisLimiter(client, 1, time.Minute, "test", logger.Wrap(zap.New(core)))
	assert.True(t, l.Allow("k"))
	assert.True(t, l.Allow("k"))

	entries := logs.FilterMessage("rate limiter unavailable, allowing request").All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "test", entries[0].ContextMap()["prefix"])
}
