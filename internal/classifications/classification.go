// Package classifications implements the AI waste-classification domain:
// interpreting model output, bucketing confidence, orchestrating the
// classify → persist → auto-apply flow, and storing the results.
package classifications

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/greenswap/greenbot/internal/taxonomy"
)

// Status tracks a stored classification's processing state. The service
// only ever writes completed or failed; pending is the pre-processing
// default and reviewing is set by the feedback flow.
type Status string

// Valid classification statuses.
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusReviewing Status = "reviewing"
)

var statuses = []Status{
	StatusPending,
	StatusCompleted,
	StatusFailed,
	StatusReviewing,
}

// UnmarshalJSON validates that the decoded string is a known status value.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Status(raw)
	if !slices.Contains(statuses, v) {
		return ErrInvalidStatus
	}
	*s = v
	return nil
}

// PriceRange is a suggested min/max price pair in EGP.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Classification is a stored classification record for an item. Pointer
// fields are absent on failed records.
type Classification struct {
	ID                  uuid.UUID          `json:"id"`
	ItemID              uuid.UUID          `json:"item_id"`
	ImageURL            string             `json:"image_url"`
	Category            *string            `json:"category"`
	CategoryLabel       *string            `json:"category_label"`
	ConfidenceScore     *float64           `json:"confidence_score"`
	ConfidenceLevel     *Confidence        `json:"confidence_level"`
	MaterialComposition map[string]float64 `json:"material_composition"`
	RecyclabilityScore  *float64           `json:"recyclability_score"`
	EnvironmentalImpact *string            `json:"environmental_impact"`
	PriceRange          *PriceRange        `json:"price_range"`
	RecyclingTips       string             `json:"recycling_tips"`
	SafetyWarnings      string             `json:"safety_warnings"`
	Status              Status             `json:"status"`
	ProcessingTime      *float64           `json:"processing_time"`
	ErrorMessage        string             `json:"error_message"`
	UserFeedback        string             `json:"user_feedback"`
	ManualCorrection    string             `json:"manual_correction"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// Result is a successful classification outcome, assembled from the
// interpreted candidate and the confidence bucket. Immutable once returned.
type Result struct {
	Category            taxonomy.Category  `json:"category"`
	CategoryLabel       string             `json:"category_label"`
	Confidence          float64            `json:"confidence"`
	ConfidenceLevel     Confidence         `json:"confidence_level"`
	MaterialComposition map[string]float64 `json:"material_composition"`
	RecyclabilityScore  float64            `json:"recyclability_score"`
	EnvironmentalImpact string             `json:"environmental_impact"`
	PriceRange          PriceRange         `json:"price_range"`
	RecyclingTips       string             `json:"recycling_tips"`
	SafetyWarnings      string             `json:"safety_warnings"`
	ProcessingTime      float64            `json:"processing_time"`
}

// Failure captures a model-call failure as data: the provider's error
// message and the elapsed time before it surfaced.
type Failure struct {
	Message        string  `json:"message"`
	ProcessingTime float64 `json:"processing_time"`
}

// Outcome is the tagged result of one classification call: exactly one
// of Result or Failure is set. Model errors never escape as Go errors.
type Outcome struct {
	Result  *Result  `json:"result,omitempty"`
	Failure *Failure `json:"failure,omitempty"`
}

// Succeeded reports whether the classification produced a result.
func (o *Outcome) Succeeded() bool {
	return o.Result != nil
}

// ClassifyCommand carries the inputs for an ad-hoc classification.
type ClassifyCommand struct {
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

// FeedbackCommand carries user feedback on a stored classification.
// Feedback is "correct" or "incorrect"; CorrectCategory optionally names
// the category the classifier should have chosen.
type FeedbackCommand struct {
	Feedback        string  `json:"feedback"`
	CorrectCategory *string `json:"correct_category"`
}

// Stats aggregates a user's classification activity.
type Stats struct {
	Total          int     `json:"total"`
	Successful     int     `json:"successful"`
	HighConfidence int     `json:"high_confidence"`
	SuccessRate    float64 `json:"success_rate"`
}
