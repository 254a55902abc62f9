package conversations

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/greenswap/greenbot/internal/agent"
	"github.com/greenswap/greenbot/pkg/pagination"
)

// System defines conversation operations: session lifecycle, the
// send-message flow, bounded history, and best-effort summarization.
type System interface {
	Handler() *Handler
	Create(ctx context.Context, cmd CreateCommand) (*Session, error)
	Find(ctx context.Context, id uuid.UUID) (*Session, error)
	List(ctx context.Context, ownerID uuid.UUID, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Session], error)
	Close(ctx context.Context, id uuid.UUID) (*Session, error)
	SendMessage(ctx context.Context, sessionID uuid.UUID, cmd SendCommand) (*Message, error)
	AppendUser(ctx context.Context, sessionID uuid.UUID, cmd SendCommand) (*Message, error)
	AppendAssistant(ctx context.Context, sessionID uuid.UUID, cmd AssistantCommand) (*Message, error)
	ContextWindow(ctx context.Context, sessionID uuid.UUID) ([]Message, error)
	Summarize(ctx context.Context, sessionID uuid.UUID) (string, error)
	Rate(ctx context.Context, messageID uuid.UUID, cmd RateCommand) (*Message, error)
	Stats(ctx context.Context, ownerID uuid.UUID) (*Stats, error)
}

// NewSystem creates the conversation system.
func NewSystem(
	db *sql.DB,
	client agent.Client,
	models *agent.Config,
	logger *slog.Logger,
	pages *pagination.Config,
) System {
	return &repo{
		db:     db,
		client: client,
		models: models,
		locks:  newSessionLocks(),
		logger: logger.With("system", "conversations"),
		pages:  pages,
	}
}
