// Package assistant adapts the study assistant chat to a generative AI
// backend, with a local keyword responder when no API key is configured.
package assistant

import "context"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client produces the assistant's reply to prompt given the prior turns
type Client interface {
	Complete(ctx context.Context, history []Message, prompt string) (string, error)
}
