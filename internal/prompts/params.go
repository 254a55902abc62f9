package prompts

// Params holds the sampling parameters for one call type.
type Params struct {
	MaxTokens        int
	Temperature      float32
	PresencePenalty  float32
	FrequencyPenalty float32
}

// Classification runs near-deterministic: structured output, low temperature.
func ClassificationParams() Params {
	return Params{MaxTokens: 1000, Temperature: 0.1}
}

// Chat allows a conversational temperature with light repetition penalties.
func ChatParams() Params {
	return Params{MaxTokens: 1000, Temperature: 0.7, PresencePenalty: 0.1, FrequencyPenalty: 0.1}
}

// Summaries are short and factual.
func SummaryParams() Params {
	return Params{MaxTokens: 150, Temperature: 0.3}
}
