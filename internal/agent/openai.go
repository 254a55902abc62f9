package agent

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

type openAIClient struct {
	client *openai.Client
}

// NewOpenAI creates a Client backed by the OpenAI chat completions API
// (or any compatible endpoint via cfg.BaseURL). The request timeout from
// the config applies to every call.
func NewOpenAI(cfg *Config) Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.RequestTimeoutDuration()}

	return &openAIClient{
		client: openai.NewClientWithConfig(clientCfg),
	}
}

func (c *openAIClient) Complete(ctx context.Context, req Request) (*Completion, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:            req.Model,
		Messages:         convertMessages(req.Messages),
		MaxTokens:        req.MaxTokens,
		Temperature:      req.Temperature,
		PresencePenalty:  req.PresencePenalty,
		FrequencyPenalty: req.FrequencyPenalty,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelCall, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrModelCall)
	}

	return &Completion{
		Text:       resp.Choices[0].Message.Content,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}

func convertMessages(messages []Message) []openai.ChatCompletionMessage {
	converted := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		if m.ImageURL == "" {
			converted = append(converted, openai.ChatCompletionMessage{
				Role:    string(m.Role),
				Content: m.Content,
			})
			continue
		}

		converted = append(converted, openai.ChatCompletionMessage{
			Role: string(m.Role),
			MultiContent: []openai.ChatMessagePart{
				{
					Type: openai.ChatMessagePartTypeText,
					Text: m.Content,
				},
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL:    m.ImageURL,
						Detail: openai.ImageURLDetailHigh,
					},
				},
			},
		})
	}
	return converted
}
