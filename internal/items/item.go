// Package items manages marketplace item records and the category
// assignment that classification auto-applies.
package items

import (
	"time"

	"github.com/google/uuid"
)

// Item is a marketplace listing owned by a user. CategoryKey is nil until
// a category is assigned, either manually or by a high-confidence
// classification.
type Item struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CategoryKey *string   `json:"category_key"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommand carries the inputs for registering a new item.
type CreateCommand struct {
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
}
