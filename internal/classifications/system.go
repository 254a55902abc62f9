package classifications

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/greenswap/greenbot/internal/agent"
	"github.com/greenswap/greenbot/internal/items"
	"github.com/greenswap/greenbot/pkg/pagination"
)

// System defines classification operations: the orchestration flow plus
// queries over stored records.
type System interface {
	Handler() *Handler
	Classify(ctx context.Context, cmd ClassifyCommand) *Outcome
	ClassifyItem(ctx context.Context, itemID uuid.UUID) (*Classification, error)
	Find(ctx context.Context, id uuid.UUID) (*Classification, error)
	FindByItem(ctx context.Context, itemID uuid.UUID) (*Classification, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Classification], error)
	Feedback(ctx context.Context, id uuid.UUID, cmd FeedbackCommand) (*Classification, error)
	Stats(ctx context.Context, ownerID uuid.UUID) (*Stats, error)
}

// NewSystem creates the classification system. The item system is used to
// resolve classify-by-item inputs and to auto-apply predicted categories.
func NewSystem(
	db *sql.DB,
	client agent.Client,
	models *agent.Config,
	itemSystem items.System,
	logger *slog.Logger,
	pages *pagination.Config,
) System {
	return &repo{
		db:     db,
		client: client,
		models: models,
		items:  itemSystem,
		logger: logger.With("system", "classifications"),
		pages:  pages,
	}
}
