package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/logger"
)

type stubClient struct {
	reply   string
	err     error
	calls   int
	block   bool
	history []Message
}

func (c *stubClient) Complete(ctx context.Context, history []Message, _ string) (string, error) {
	c.calls++
	c.history = history
	if c.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return c.reply, c.err
}

func TestService_Chat(t *testing.T) {
	client := &stubClient{reply: "Use a base case."}
	svc := NewService(client, NewMemoryHistory(20), time.Second, logger.Nop())
	ctx := context.Background()

	reply, err := svc.Chat(ctx, "user:1", "  How does recursion work?  ")
	assert.Nil(t, err)
	require.NotNil(t, reply)
	assert.Equal(t, "Use a base case.", reply.Reply)
	assert.False(t, reply.Fallback)
	assert.NotEmpty(t, reply.Suggestions)

	_, err = svc.Chat(ctx, "user:1", "And a loop?")
	assert.Nil(t, err)
	assert.Len(t, client.history, 2, "second call sees the first turn")

	history, err := svc.History(ctx, "user:1")
	assert.Nil(t, err)
	assert.Len(t, history, 4)
	assert.Equal(t, RoleUser, history[0].Role)
	assert.Equal(t, "How does recursion work?", history[0].Content)

	assert.Nil(t, svc.ClearHistory(ctx, "user:1"))
	history, _ = svc.History(ctx, "user:1")
	assert.Empty(t, history)
}

func TestService_ChatFallback(t *testing.T) {
	tests := []struct {
		name   string
		client *stubClient
	}{
		{"upstream error", &stubClient{err: errors.New("503 service unavailable")}},
		{"timeout", &stubClient{block: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := NewMemoryHistory(20)
			svc := NewService(tt.client, history, 20*time.Millisecond, logger.Nop())

			reply, err := svc.Chat(context.Background(), "session-x", "hello")
			assert.Nil(t, err)
			require.NotNil(t, reply)
			assert.True(t, reply.Fallback)
			assert.Equal(t, FallbackReply, reply.Reply)
			assert.Equal(t, 1, tt.client.calls, "no retries")

			saved, _ := history.Load(context.Background(), "session-x")
			assert.Empty(t, saved, "failed turns are not recorded")
		})
	}
}

func TestService_ChatValidation(t *testing.T) {
	svc := NewService(SimulatedClient{}, NewMemoryHistory(20), time.Second, nil)

	_, err := svc.Chat(context.Background(), "s", "   ")
	require.NotNil(t, err)
	assert.Equal(t, 400, err.HTTPStatus())

	_, err = svc.Chat(context.Background(), "s", strings.Repeat("a", MaxPromptLength+1))
	require.NotNil(t, err)
	assert.Equal(t, 400, err.HTTPStatus())
}

func TestMemoryHistory_Bounded(t *testing.T) {
	h := NewMemoryHistory(3)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, h.Append(ctx, "s", Message{Role: RoleUser, Content: string(rune('a' + i))}))
	}
	msgs, err := h.Load(ctx, "s")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "c", msgs[0].Content)
	assert.Equal(t, "e", msgs[2].Content)
}

func TestSimulatedClient(t *testing.T) {
	var c SimulatedClient
	reply, err := c.Complete(context.Background(), nil, "How do I SUBMIT my assignment?")
	require.NoError(t, err)
	assert.Contains(t, reply, "Submissions")

	reply, err = c.Complete(context.Background(), nil, "hi")
	require.NoError(t, err)
	assert.Equal(t, simulatedDefault, reply)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Complete(ctx, nil, "hi")
	assert.Error(t, err)
}

func TestSuggestions(t *testing.T) {
	assert.Contains(t, Suggestions("my grade"), "Where do I see tutor feedback?")
	assert.Equal(t, defaultSuggestions, Suggestions("hello"))
}
