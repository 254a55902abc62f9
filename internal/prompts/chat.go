package prompts

import (
	"fmt"

	"github.com/greenswap/greenbot/internal/agent"
)

// HistoryLimit bounds the number of prior turns replayed into a chat prompt.
const HistoryLimit = 10

// Turn is one prior exchange entry from a conversation's history.
// System-authored turns are never replayed into prompts.
type Turn struct {
	Role    agent.Role
	Content string
}

// BuildChat constructs the prompt for the next chat turn: the assistant
// persona, an optional conversation-type context block, up to the last
// HistoryLimit prior user/assistant turns oldest-first, and finally the
// new user message.
func BuildChat(conversationType string, contextData map[string]any, history []Turn, next string) []agent.Message {
	messages := []agent.Message{
		{Role: agent.RoleSystem, Content: assistantPersona},
	}

	if ctx := contextBlock(conversationType, contextData); ctx != "" {
		messages = append(messages, agent.Message{Role: agent.RoleSystem, Content: ctx})
	}

	for _, t := range window(history) {
		messages = append(messages, agent.Message{Role: t.Role, Content: t.Content})
	}

	return append(messages, agent.Message{Role: agent.RoleUser, Content: next})
}

func contextBlock(conversationType string, contextData map[string]any) string {
	switch conversationType {
	case "waste_inquiry":
		if itemID, ok := contextData["item_id"]; ok {
			return fmt.Sprintf(wasteInquiryContext, fmt.Sprint(itemID))
		}
	case "price_estimation":
		return priceEstimationContext
	case "recycling_advice":
		return recyclingAdviceContext
	}
	return ""
}

func window(history []Turn) []Turn {
	replayable := make([]Turn, 0, len(history))
	for _, t := range history {
		if t.Role == agent.RoleSystem {
			continue
		}
		replayable = append(replayable, t)
	}

	if len(replayable) > HistoryLimit {
		replayable = replayable[len(replayable)-HistoryLimit:]
	}
	return replayable
}
