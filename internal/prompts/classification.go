// Package prompts deterministically constructs the role-tagged content
// blocks sent to the model for classification, chat, and summarization.
// Every builder is a pure function of its inputs and the static
// instruction constants; none performs I/O.
package prompts

import (
	"fmt"

	"github.com/greenswap/greenbot/internal/agent"
)

// BuildClassification constructs the prompt for classifying a waste image:
// the fixed classifier system block followed by a user block carrying the
// item description and the image reference.
func BuildClassification(imageURL, description string) []agent.Message {
	return []agent.Message{
		{
			Role:    agent.RoleSystem,
			Content: classifierInstructions,
		},
		{
			Role:     agent.RoleUser,
			Content:  fmt.Sprintf("صنف هذه الصورة للمخلفات. الوصف المرفق: %s", description),
			ImageURL: imageURL,
		},
	}
}
