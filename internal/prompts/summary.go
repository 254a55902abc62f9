package prompts

import (
	"strings"

	"github.com/greenswap/greenbot/internal/agent"
)

// SummaryLimit bounds the number of trailing messages fed to summarization.
const SummaryLimit = 20

// BuildSummary constructs the prompt for summarizing a conversation from
// its last SummaryLimit turns, rendered as labeled transcript lines.
func BuildSummary(history []Turn) []agent.Message {
	if len(history) > SummaryLimit {
		history = history[len(history)-SummaryLimit:]
	}

	lines := make([]string, 0, len(history))
	for _, t := range history {
		speaker := "المساعد"
		if t.Role == agent.RoleUser {
			speaker = "المستخدم"
		}
		lines = append(lines, speaker+": "+t.Content)
	}

	return []agent.Message{
		{Role: agent.RoleSystem, Content: summaryInstructions},
		{Role: agent.RoleUser, Content: strings.Join(lines, "\n")},
	}
}
