package assistant

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/logger"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

const (
	MaxPromptLength = 2000

	FallbackReply = "I can't reach the study assistant right now. Please try again in a moment, or post your question so a tutor can help."
)

var defaultSuggestions = []string{
	"How do I submit an assignment?",
	"How do I ask a tutor a question?",
	"Where can I find my upcoming consultations?",
	"Explain recursion with a simple example",
}

type Reply struct {
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions"`
	Fallback    bool     `json:"fallback"`
}

type Service struct {
	client  Client
	history HistoryStore
	timeout time.Duration
	log     *logger.Logger
}

func NewService(client Client, history HistoryStore, timeout time.Duration, log *logger.Logger) *Service {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{client: client, history: history, timeout: timeout, log: log}
}

// Chat calls the backend once under the configured timeout. Any upstream
// failure degrades to FallbackReply; nothing is retried.
func (s *Service) Chat(ctx context.Context, session, prompt string) (*Reply, *response.BusinessError) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, response.ErrValidation("message is required", nil)
	}
	if utf8.RuneCountInString(prompt) > MaxPromptLength {
		return nil, response.ErrValidation("message is too long", nil)
	}

	history, err := s.history.Load(ctx, session)
	if err != nil {
		s.log.Warn(ctx, "failed to load assistant history", zap.String("session", session), zap.Error(err))
		history = nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	text, err := s.client.Complete(callCtx, history, prompt)
	cancel()

	if err != nil {
		s.log.Warn(ctx, "upstream assistant failure, using fallback reply",
			zap.String("session", session),
			zap.Error(err),
		)
		return &Reply{Reply: FallbackReply, Suggestions: Suggestions(prompt), Fallback: true}, nil
	}

	if err := s.history.Append(ctx, session,
		Message{Role: RoleUser, Content: prompt},
		Message{Role: RoleAssistant, Content: text},
	); err != nil {
		s.log.Warn(ctx, "failed to save assistant history", zap.String("session", session), zap.Error(err))
	}

	return &Reply{Reply: text, Suggestions: Suggestions(prompt), Fallback: false}, nil
}

func (s *Service) History(ctx context.Context, session string) ([]Message, *response.BusinessError) {
	msgs, err := s.history.Load(ctx, session)
	if err != nil {
		return nil, response.ErrInternal(err)
	}
	return msgs, nil
}

func (s *Service) ClearHistory(ctx context.Context, session string) *response.BusinessError {
	if err := s.history.Clear(ctx, session); err != nil {
		return response.ErrInternal(err)
	}
	return nil
}

// Suggestions follow-up prompts for the last user message
func Suggestions(prompt string) []string {
	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(lower, "submi") || strings.Contains(lower, "grade"):
		return []string{
			"When will my submission be graded?",
			"Can I resubmit after it is returned?",
			"Where do I see tutor feedback?",
		}
	case strings.Contains(lower, "calendar") || strings.Contains(lower, "consultation"):
		return []string{
			"How do I accept an invitation?",
			"Who can create calendar events?",
			"Will I be told if an event is cancelled?",
		}
	case strings.Contains(lower, "recurs"):
		return []string{
			"What is a base case?",
			"Show recursion versus a loop",
			"Why does my recursion overflow the stack?",
		}
	}
	return append([]string(nil), defaultSuggestions...)
}
