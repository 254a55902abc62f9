// Package conversations manages assistant chat sessions: lifecycle,
// bounded history, the send-message model flow, and summarization.
package conversations

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/greenswap/greenbot/internal/agent"
)

// Type categorizes a conversation and selects its welcome message and
// context prompt.
type Type string

// The five recognized conversation types.
const (
	TypeWasteInquiry       Type = "waste_inquiry"
	TypeRecyclingAdvice    Type = "recycling_advice"
	TypePriceEstimation    Type = "price_estimation"
	TypeGeneralSupport     Type = "general_support"
	TypeItemRecommendation Type = "item_recommendation"
)

var types = []Type{
	TypeWasteInquiry,
	TypeRecyclingAdvice,
	TypePriceEstimation,
	TypeGeneralSupport,
	TypeItemRecommendation,
}

// UnmarshalJSON validates that the decoded string is a known type.
func (t *Type) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Type(raw)
	if !slices.Contains(types, v) {
		return ErrInvalidType
	}
	*t = v
	return nil
}

// Session is one assistant conversation owned by a user. ContextData
// carries type-specific context, e.g. the item id for a waste inquiry.
type Session struct {
	ID          uuid.UUID      `json:"id"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	Type        Type           `json:"conversation_type"`
	Title       string         `json:"title"`
	Active      bool           `json:"is_active"`
	Model       string         `json:"model"`
	ContextData map[string]any `json:"context_data"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Attachment is an opaque reference carried on a user message.
type Attachment struct {
	Ref         string `json:"ref"`
	ContentType string `json:"content_type"`
}

// Message is one turn of a session. Confidence, ProcessingTime, and
// TokensUsed are assistant-only; Rating and Helpful are set after the
// fact by the rating flow. Everything else is immutable once written.
type Message struct {
	ID             uuid.UUID    `json:"id"`
	SessionID      uuid.UUID    `json:"session_id"`
	Seq            int64        `json:"seq"`
	Role           agent.Role   `json:"role"`
	Content        string       `json:"content"`
	Confidence     *float64     `json:"confidence"`
	ProcessingTime *float64     `json:"processing_time"`
	TokensUsed     *int         `json:"tokens_used"`
	Attachments    []Attachment `json:"attachments"`
	Rating         *int         `json:"rating"`
	Helpful        *bool        `json:"is_helpful"`
	CreatedAt      time.Time    `json:"created_at"`
}

// CreateCommand carries the inputs for opening a session.
type CreateCommand struct {
	OwnerID     uuid.UUID      `json:"owner_id"`
	Type        Type           `json:"conversation_type"`
	Title       string         `json:"title"`
	ContextData map[string]any `json:"context_data"`

	// When set, the message is processed as the first user turn right
	// after the welcome message.
	InitialMessage string `json:"initial_message"`
}

// SendCommand carries one user message into a session.
type SendCommand struct {
	Content     string       `json:"content"`
	Attachments []Attachment `json:"attachments"`
}

// AssistantCommand records an assistant-authored turn directly,
// bypassing the model.
type AssistantCommand struct {
	Content        string   `json:"content"`
	Confidence     *float64 `json:"confidence"`
	ProcessingTime *float64 `json:"processing_time"`
	TokensUsed     *int     `json:"tokens_used"`
}

// RateCommand carries a user rating of an assistant message.
type RateCommand struct {
	Rating  int   `json:"rating"`
	Helpful *bool `json:"is_helpful"`
}

// Stats aggregates a user's conversation activity.
type Stats struct {
	TotalSessions  int `json:"total_sessions"`
	ActiveSessions int `json:"active_sessions"`
	TotalMessages  int `json:"total_messages"`
}
