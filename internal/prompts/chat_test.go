package prompts_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/greenswap/greenbot/internal/agent"
	"github.com/greenswap/greenbot/internal/prompts"
)

func TestBuildChat(t *testing.T) {
	t.Run("persona first, new message last", func(t *testing.T) {
		got := prompts.BuildChat("general_support", nil, nil, "مرحبا")

		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].Role != agent.RoleSystem {
			t.Errorf("first role = %s, want system", got[0].Role)
		}
		last := got[len(got)-1]
		if last.Role != agent.RoleUser || last.Content != "مرحبا" {
			t.Errorf("last block = %+v, want user مرحبا", last)
		}
	})

	t.Run("fifteen prior turns keep only the last ten", func(t *testing.T) {
		history := make([]prompts.Turn, 0, 15)
		for i := 0; i < 15; i++ {
			role := agent.RoleUser
			if i%2 == 1 {
				role = agent.RoleAssistant
			}
			history = append(history, prompts.Turn{Role: role, Content: fmt.Sprintf("turn-%d", i)})
		}

		got := prompts.BuildChat("general_support", nil, history, "next")

		// persona + 10 turns + new message
		if len(got) != 12 {
			t.Fatalf("len = %d, want 12", len(got))
		}
		if got[1].Content != "turn-5" {
			t.Errorf("first replayed turn = %q, want turn-5", got[1].Content)
		}
		if got[10].Content != "turn-14" {
			t.Errorf("last replayed turn = %q, want turn-14", got[10].Content)
		}
		if got[11].Content != "next" {
			t.Errorf("final block = %q, want next", got[11].Content)
		}
	})

	t.Run("fewer than ten turns are all included", func(t *testing.T) {
		history := []prompts.Turn{
			{Role: agent.RoleUser, Content: "a"},
			{Role: agent.RoleAssistant, Content: "b"},
		}

		got := prompts.BuildChat("general_support", nil, history, "c")

		if len(got) != 4 {
			t.Fatalf("len = %d, want 4", len(got))
		}
		if got[1].Content != "a" || got[2].Content != "b" {
			t.Errorf("replayed turns out of order: %+v", got[1:3])
		}
	})

	t.Run("system turns are never replayed", func(t *testing.T) {
		history := []prompts.Turn{
			{Role: agent.RoleSystem, Content: "internal"},
			{Role: agent.RoleUser, Content: "question"},
		}

		got := prompts.BuildChat("general_support", nil, history, "next")

		for _, m := range got[1 : len(got)-1] {
			if m.Content == "internal" {
				t.Error("system turn replayed into prompt")
			}
		}
	})

	t.Run("waste inquiry context requires item id", func(t *testing.T) {
		with := prompts.BuildChat("waste_inquiry", map[string]any{"item_id": "42"}, nil, "hi")
		without := prompts.BuildChat("waste_inquiry", map[string]any{}, nil, "hi")

		if len(with) != 3 {
			t.Fatalf("with item_id len = %d, want 3", len(with))
		}
		if !strings.Contains(with[1].Content, "42") {
			t.Errorf("context block missing item id: %q", with[1].Content)
		}
		if len(without) != 2 {
			t.Errorf("without item_id len = %d, want 2", len(without))
		}
	})

	t.Run("price estimation and recycling advice get context blocks", func(t *testing.T) {
		for _, typ := range []string{"price_estimation", "recycling_advice"} {
			got := prompts.BuildChat(typ, nil, nil, "hi")
			if len(got) != 3 {
				t.Errorf("%s: len = %d, want 3", typ, len(got))
			}
			if len(got) == 3 && got[1].Role != agent.RoleSystem {
				t.Errorf("%s: context block role = %s, want system", typ, got[1].Role)
			}
		}
	})

	t.Run("unrecognized type gets no context block", func(t *testing.T) {
		got := prompts.BuildChat("item_recommendation", nil, nil, "hi")
		if len(got) != 2 {
			t.Errorf("len = %d, want 2", len(got))
		}
	})
}
