package classifications

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/greenswap/greenbot/pkg/repository"
)

func scanClassification(s repository.Scanner) (Classification, error) {
	var (
		c         Classification
		materials []byte
		price     []byte
	)

	err := s.Scan(
		&c.ID,
		&c.ItemID,
		&c.ImageURL,
		&c.Category,
		&c.CategoryLabel,
		&c.ConfidenceScore,
		&c.ConfidenceLevel,
		&materials,
		&c.RecyclabilityScore,
		&c.EnvironmentalImpact,
		&price,
		&c.RecyclingTips,
		&c.SafetyWarnings,
		&c.Status,
		&c.ProcessingTime,
		&c.ErrorMessage,
		&c.UserFeedback,
		&c.ManualCorrection,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}

	if len(materials) > 0 {
		if err := json.Unmarshal(materials, &c.MaterialComposition); err != nil {
			return c, err
		}
	}
	if len(price) > 0 {
		var pr PriceRange
		if err := json.Unmarshal(price, &pr); err != nil {
			return c, err
		}
		c.PriceRange = &pr
	}

	return c, nil
}

// Filters narrows classification listings.
type Filters struct {
	ItemID *uuid.UUID
	Status *Status
	Level  *Confidence
}

func (f Filters) where() (string, []any) {
	conditions := []string{}
	args := []any{}

	if f.ItemID != nil {
		args = append(args, *f.ItemID)
		conditions = append(conditions, fmt.Sprintf("item_id = $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, string(*f.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Level != nil {
		args = append(args, string(*f.Level))
		conditions = append(conditions, fmt.Sprintf("confidence_level = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
