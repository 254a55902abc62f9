package items

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/greenswap/greenbot/internal/taxonomy"
	"github.com/greenswap/greenbot/pkg/pagination"
	"github.com/greenswap/greenbot/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
	pages  *pagination.Config
}

const itemColumns = `
	i.id, i.owner_id, i.title, i.description,
	c.key, i.image_url, i.created_at, i.updated_at`

const itemFrom = `
	FROM items i
	LEFT JOIN categories c ON c.id = i.category_id`

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pages)
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Item, error) {
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, ErrInvalidTitle
	}
	if cmd.OwnerID == uuid.Nil {
		return nil, ErrInvalidOwner
	}

	query := `
		WITH inserted AS (
			INSERT INTO items (owner_id, title, description, image_url)
			VALUES ($1, $2, $3, $4)
			RETURNING *
		)
		SELECT i.id, i.owner_id, i.title, i.description,
		       c.key, i.image_url, i.created_at, i.updated_at
		FROM inserted i
		LEFT JOIN categories c ON c.id = i.category_id`

	item, err := repository.QueryOne(ctx, r.db, query,
		[]any{cmd.OwnerID, cmd.Title, cmd.Description, cmd.ImageURL},
		scanItem)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("item created", "item", item.ID, "owner", item.OwnerID)
	return &item, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Item, error) {
	query := `SELECT` + itemColumns + itemFrom + ` WHERE i.id = $1`

	item, err := repository.QueryOne(ctx, r.db, query, []any{id}, scanItem)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &item, nil
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Item], error) {
	page.Normalize(*r.pages)

	if filters.Search == nil {
		filters.Search = page.Search
	}
	where, args := filters.where()

	var total int
	countQuery := `SELECT COUNT(*)` + itemFrom + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, err
	}

	n := len(args)
	query := fmt.Sprintf(`SELECT%s%s%s ORDER BY i.created_at DESC LIMIT $%d OFFSET $%d`,
		itemColumns, itemFrom, where, n+1, n+2)
	args = append(args, page.PageSize, page.Offset())

	data, err := repository.QueryMany(ctx, r.db, query, args, scanItem)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(data, total, page.Page, page.PageSize)
	return &result, nil
}

// ReassignCategory sets an item's category by taxonomy key. The key must
// exist in the categories table; unseeded keys map to ErrCategoryNotFound
// so callers can skip them.
func (r *repo) ReassignCategory(ctx context.Context, itemID uuid.UUID, category taxonomy.Category) error {
	var categoryID uuid.UUID
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM categories WHERE key = $1`, string(category),
	).Scan(&categoryID)
	if err != nil {
		return repository.MapError(err, ErrCategoryNotFound, ErrDuplicate)
	}

	err = repository.ExecExpectOne(ctx, r.db,
		`UPDATE items SET category_id = $1, updated_at = now() WHERE id = $2`,
		categoryID, itemID)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("item category reassigned", "item", itemID, "category", category)
	return nil
}
