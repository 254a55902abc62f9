package conversations

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestFiltersWhere(t *testing.T) {
	ownerID := uuid.New()
	active := true
	sessionType := TypeWasteInquiry

	tests := []struct {
		name      string
		filters   Filters
		wantWhere string
		wantArgs  int
	}{
		{
			name:      "owner only",
			filters:   Filters{},
			wantWhere: " WHERE owner_id = $1",
			wantArgs:  1,
		},
		{
			name:      "active filter uses is_active column",
			filters:   Filters{Active: &active},
			wantWhere: " WHERE owner_id = $1 AND is_active = $2",
			wantArgs:  2,
		},
		{
			name:      "type and active",
			filters:   Filters{Type: &sessionType, Active: &active},
			wantWhere: " WHERE owner_id = $1 AND conversation_type = $2 AND is_active = $3",
			wantArgs:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filters.where(ownerID)
			if where != tt.wantWhere {
				t.Errorf("where = %q, want %q", where, tt.wantWhere)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("args = %d, want %d", len(args), tt.wantArgs)
			}
			if args[0] != ownerID {
				t.Errorf("args[0] = %v, want owner id", args[0])
			}
		})
	}
}

func TestOldestFirstOrdersBySeq(t *testing.T) {
	created := time.Now()

	// Newest-first window with a shared created_at timestamp; seq alone
	// must decide the replay order.
	window := []Message{
		{Seq: 3, Content: "third", CreatedAt: created},
		{Seq: 2, Content: "second", CreatedAt: created},
		{Seq: 1, Content: "first", CreatedAt: created},
	}

	ordered := oldestFirst(window)

	want := []string{"first", "second", "third"}
	for i, content := range want {
		if ordered[i].Content != content {
			t.Errorf("ordered[%d] = %q, want %q", i, ordered[i].Content, content)
		}
	}
}
