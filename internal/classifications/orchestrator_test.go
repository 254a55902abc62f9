package classifications_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/greenswap/greenbot/internal/agent"
	"github.com/greenswap/greenbot/internal/classifications"
	"github.com/greenswap/greenbot/internal/taxonomy"
	"github.com/greenswap/greenbot/pkg/pagination"
)

type stubClient struct {
	completion *agent.Completion
	err        error
	requests   []agent.Request
}

func (s *stubClient) Complete(_ context.Context, req agent.Request) (*agent.Completion, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.completion, nil
}

func newTestSystem(client agent.Client) classifications.System {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	models := &agent.Config{APIKey: "test"}
	if err := models.Finalize(nil); err != nil {
		panic(err)
	}
	return classifications.NewSystem(nil, client, models, nil, logger, &pagination.Config{})
}

func TestClassify(t *testing.T) {
	t.Run("well-formed payload yields high-confidence result", func(t *testing.T) {
		client := &stubClient{completion: &agent.Completion{
			Text:       `{"category": "plastic", "confidence": 0.92, "recyclability_score": 0.8, "environmental_impact": "low"}`,
			TokensUsed: 200,
		}}

		outcome := newTestSystem(client).Classify(context.Background(), classifications.ClassifyCommand{
			ImageURL:    "http://x/img.jpg",
			Description: "plastic bottle",
		})

		if !outcome.Succeeded() {
			t.Fatalf("outcome failed: %+v", outcome.Failure)
		}
		result := outcome.Result
		if result.Category != taxonomy.Plastic {
			t.Errorf("Category = %s, want plastic", result.Category)
		}
		if result.ConfidenceLevel != classifications.ConfidenceHigh {
			t.Errorf("ConfidenceLevel = %s, want high", result.ConfidenceLevel)
		}
		if !classifications.AutoApplicable(result.Confidence) {
			t.Error("expected 0.92 to be auto-applicable")
		}
		if result.CategoryLabel != "بلاستيك" {
			t.Errorf("CategoryLabel = %q", result.CategoryLabel)
		}
		if result.ProcessingTime < 0 {
			t.Errorf("ProcessingTime = %v, want >= 0", result.ProcessingTime)
		}
	})

	t.Run("model error yields tagged failure with elapsed time", func(t *testing.T) {
		client := &stubClient{err: errors.New("request timeout")}

		outcome := newTestSystem(client).Classify(context.Background(), classifications.ClassifyCommand{
			ImageURL: "http://x/img.jpg",
		})

		if outcome.Succeeded() {
			t.Fatal("expected failure outcome")
		}
		if !strings.Contains(outcome.Failure.Message, "request timeout") {
			t.Errorf("Message = %q, want original error text", outcome.Failure.Message)
		}
		if outcome.Failure.ProcessingTime < 0 {
			t.Errorf("ProcessingTime = %v, want >= 0", outcome.Failure.ProcessingTime)
		}
		if len(client.requests) != 1 {
			t.Errorf("model called %d times, want 1 (no retry)", len(client.requests))
		}
	})

	t.Run("empty model tips backfill from category defaults", func(t *testing.T) {
		client := &stubClient{completion: &agent.Completion{
			Text: `{"category": "plastic", "confidence": 0.9}`,
		}}

		outcome := newTestSystem(client).Classify(context.Background(), classifications.ClassifyCommand{})

		if !outcome.Succeeded() {
			t.Fatalf("outcome failed: %+v", outcome.Failure)
		}
		if outcome.Result.RecyclingTips != taxonomy.RecyclingTips(taxonomy.Plastic) {
			t.Errorf("RecyclingTips = %q, want category default", outcome.Result.RecyclingTips)
		}
	})

	t.Run("prompt carries image and classification parameters", func(t *testing.T) {
		client := &stubClient{completion: &agent.Completion{Text: `{}`}}

		newTestSystem(client).Classify(context.Background(), classifications.ClassifyCommand{
			ImageURL:    "http://x/img.jpg",
			Description: "old chair",
		})

		req := client.requests[0]
		if req.MaxTokens != 1000 {
			t.Errorf("MaxTokens = %d, want 1000", req.MaxTokens)
		}
		if req.Temperature != 0.1 {
			t.Errorf("Temperature = %v, want 0.1", req.Temperature)
		}
		if len(req.Messages) != 2 {
			t.Fatalf("len(Messages) = %d, want 2", len(req.Messages))
		}
		if req.Messages[0].Role != agent.RoleSystem {
			t.Errorf("first message role = %s, want system", req.Messages[0].Role)
		}
		if req.Messages[1].ImageURL != "http://x/img.jpg" {
			t.Errorf("ImageURL = %q", req.Messages[1].ImageURL)
		}
		if !strings.Contains(req.Messages[1].Content, "old chair") {
			t.Errorf("user block missing description: %q", req.Messages[1].Content)
		}
	})
}
