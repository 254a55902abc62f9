// Package agent abstracts the generative model provider behind a small
// completion client. Domain code depends on the Client interface; the
// OpenAI-backed implementation lives alongside it.
package agent

import "context"

// Role identifies the author of a prompt message.
type Role string

// Prompt message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged content block of a prompt. ImageURL, when
// set on a user message, attaches an image to the text content.
type Message struct {
	Role     Role
	Content  string
	ImageURL string
}

// Request carries a full completion request: the ordered prompt and the
// sampling parameters for this call type.
type Request struct {
	Model            string
	Messages         []Message
	MaxTokens        int
	Temperature      float32
	PresencePenalty  float32
	FrequencyPenalty float32
}

// Completion is the model's reply along with its token usage.
type Completion struct {
	Text       string
	TokensUsed int
}

// Client is the single suspension point of the service: one blocking
// completion call per classification, chat turn, or summary.
type Client interface {
	Complete(ctx context.Context, req Request) (*Completion, error)
}
