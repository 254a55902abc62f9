package items

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/greenswap/greenbot/internal/taxonomy"
	"github.com/greenswap/greenbot/pkg/pagination"
)

// System defines item operations consumed by handlers and by the
// classification auto-apply flow.
type System interface {
	Handler() *Handler
	Create(ctx context.Context, cmd CreateCommand) (*Item, error)
	Find(ctx context.Context, id uuid.UUID) (*Item, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Item], error)
	ReassignCategory(ctx context.Context, itemID uuid.UUID, category taxonomy.Category) error
}

// NewSystem creates the item system backed by a database connection.
func NewSystem(db *sql.DB, logger *slog.Logger, pages *pagination.Config) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "items"),
		pages:  pages,
	}
}
