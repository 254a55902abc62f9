package items

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/greenswap/greenbot/pkg/repository"
)

// Filters narrows item listings.
type Filters struct {
	OwnerID  *uuid.UUID
	Category *string
	Search   *string
}

func (f Filters) where() (string, []any) {
	conditions := []string{}
	args := []any{}

	if f.OwnerID != nil {
		args = append(args, *f.OwnerID)
		conditions = append(conditions, fmt.Sprintf("i.owner_id = $%d", len(args)))
	}
	if f.Category != nil {
		args = append(args, *f.Category)
		conditions = append(conditions, fmt.Sprintf("c.key = $%d", len(args)))
	}
	if f.Search != nil {
		args = append(args, "%"+*f.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(i.title ILIKE $%d OR i.description ILIKE $%d)", len(args), len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func scanItem(s repository.Scanner) (Item, error) {
	var item Item
	err := s.Scan(
		&item.ID,
		&item.OwnerID,
		&item.Title,
		&item.Description,
		&item.CategoryKey,
		&item.ImageURL,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	return item, err
}
