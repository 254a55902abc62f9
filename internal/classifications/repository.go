package classifications

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/greenswap/greenbot/internal/agent"
	"github.com/greenswap/greenbot/internal/items"
	"github.com/greenswap/greenbot/internal/prompts"
	"github.com/greenswap/greenbot/internal/taxonomy"
	"github.com/greenswap/greenbot/pkg/pagination"
	"github.com/greenswap/greenbot/pkg/repository"
)

type repo struct {
	db     *sql.DB
	client agent.Client
	models *agent.Config
	items  items.System
	logger *slog.Logger
	pages  *pagination.Config
}

const classificationColumns = `
	id, item_id, image_url, category, category_label,
	confidence_score, confidence_level, material_composition,
	recyclability_score, environmental_impact, price_range,
	recycling_tips, safety_warnings, status, processing_time,
	error_message, user_feedback, manual_correction,
	created_at, updated_at`

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pages)
}

// Classify runs one model call and interprets the reply. Model failures
// come back as a tagged Failure with the elapsed time; they are never
// returned as errors and never retried.
func (r *repo) Classify(ctx context.Context, cmd ClassifyCommand) *Outcome {
	start := time.Now()

	p := prompts.ClassificationParams()
	completion, err := r.client.Complete(ctx, agent.Request{
		Model:            r.models.VisionModel,
		Messages:         prompts.BuildClassification(cmd.ImageURL, cmd.Description),
		MaxTokens:        p.MaxTokens,
		Temperature:      p.Temperature,
		PresencePenalty:  p.PresencePenalty,
		FrequencyPenalty: p.FrequencyPenalty,
	})
	if err != nil {
		elapsed := time.Since(start).Seconds()
		r.logger.Warn("classification model call failed",
			"error", err,
			"elapsed", elapsed)
		return &Outcome{Failure: &Failure{
			Message:        err.Error(),
			ProcessingTime: elapsed,
		}}
	}

	candidate := Interpret(completion.Text)

	tips := candidate.RecyclingTips
	if tips == "" {
		tips = taxonomy.RecyclingTips(candidate.Category)
	}

	result := &Result{
		Category:            candidate.Category,
		CategoryLabel:       taxonomy.Label(candidate.Category),
		Confidence:          candidate.Confidence,
		ConfidenceLevel:     ClassifyScore(candidate.Confidence),
		MaterialComposition: candidate.MaterialComposition,
		RecyclabilityScore:  candidate.RecyclabilityScore,
		EnvironmentalImpact: candidate.EnvironmentalImpact,
		PriceRange:          candidate.PriceRange,
		RecyclingTips:       tips,
		SafetyWarnings:      candidate.SafetyWarnings,
		ProcessingTime:      time.Since(start).Seconds(),
	}

	r.logger.Info("classification completed",
		"category", result.Category,
		"confidence", result.Confidence,
		"level", result.ConfidenceLevel,
		"tokens", completion.TokensUsed)

	return &Outcome{Result: result}
}

// ClassifyItem classifies an item's primary image and persists the outcome,
// auto-applying the predicted category when confidence allows.
func (r *repo) ClassifyItem(ctx context.Context, itemID uuid.UUID) (*Classification, error) {
	item, err := r.items.Find(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.ImageURL == "" {
		return nil, ErrMissingImage
	}

	outcome := r.Classify(ctx, ClassifyCommand{
		ImageURL:    item.ImageURL,
		Description: item.Description,
	})

	return r.persist(ctx, item.ID, item.ImageURL, outcome)
}

// persist upserts the classification record for an item and, on a
// sufficiently confident success, reassigns the item's category. A
// category missing from the lookup table skips the reassignment silently.
func (r *repo) persist(ctx context.Context, itemID uuid.UUID, imageURL string, outcome *Outcome) (*Classification, error) {
	var record Classification
	var err error

	if outcome.Succeeded() {
		record, err = r.storeResult(ctx, itemID, imageURL, outcome.Result)
	} else {
		record, err = r.storeFailure(ctx, itemID, imageURL, outcome.Failure)
	}
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if outcome.Succeeded() && AutoApplicable(outcome.Result.Confidence) {
		if err := r.items.ReassignCategory(ctx, itemID, outcome.Result.Category); err != nil {
			if !errors.Is(err, items.ErrCategoryNotFound) {
				r.logger.Warn("category auto-apply failed",
					"item", itemID,
					"category", outcome.Result.Category,
					"error", err)
			}
		} else {
			r.logger.Info("category auto-applied",
				"item", itemID,
				"category", outcome.Result.Category)
		}
	}

	return &record, nil
}

func (r *repo) storeResult(ctx context.Context, itemID uuid.UUID, imageURL string, result *Result) (Classification, error) {
	materials, err := json.Marshal(result.MaterialComposition)
	if err != nil {
		return Classification{}, err
	}
	price, err := json.Marshal(result.PriceRange)
	if err != nil {
		return Classification{}, err
	}

	query := `
		INSERT INTO classifications (
			item_id, image_url, category, category_label,
			confidence_score, confidence_level, material_composition,
			recyclability_score, environmental_impact, price_range,
			recycling_tips, safety_warnings, status, processing_time,
			error_message
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, '')
		ON CONFLICT (item_id) DO UPDATE SET
			image_url = EXCLUDED.image_url,
			category = EXCLUDED.category,
			category_label = EXCLUDED.category_label,
			confidence_score = EXCLUDED.confidence_score,
			confidence_level = EXCLUDED.confidence_level,
			material_composition = EXCLUDED.material_composition,
			recyclability_score = EXCLUDED.recyclability_score,
			environmental_impact = EXCLUDED.environmental_impact,
			price_range = EXCLUDED.price_range,
			recycling_tips = EXCLUDED.recycling_tips,
			safety_warnings = EXCLUDED.safety_warnings,
			status = EXCLUDED.status,
			processing_time = EXCLUDED.processing_time,
			error_message = '',
			updated_at = now()
		RETURNING` + classificationColumns

	return repository.QueryOne(ctx, r.db, query, []any{
		itemID, imageURL, string(result.Category), result.CategoryLabel,
		result.Confidence, string(result.ConfidenceLevel), materials,
		result.RecyclabilityScore, result.EnvironmentalImpact, price,
		result.RecyclingTips, result.SafetyWarnings, string(StatusCompleted),
		result.ProcessingTime,
	}, scanClassification)
}

func (r *repo) storeFailure(ctx context.Context, itemID uuid.UUID, imageURL string, failure *Failure) (Classification, error) {
	query := `
		INSERT INTO classifications (
			item_id, image_url, status, processing_time, error_message
		)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (item_id) DO UPDATE SET
			image_url = EXCLUDED.image_url,
			category = NULL,
			category_label = NULL,
			confidence_score = NULL,
			confidence_level = NULL,
			material_composition = NULL,
			recyclability_score = NULL,
			environmental_impact = NULL,
			price_range = NULL,
			recycling_tips = '',
			safety_warnings = '',
			status = EXCLUDED.status,
			processing_time = EXCLUDED.processing_time,
			error_message = EXCLUDED.error_message,
			updated_at = now()
		RETURNING` + classificationColumns

	return repository.QueryOne(ctx, r.db, query, []any{
		itemID, imageURL, string(StatusFailed),
		failure.ProcessingTime, failure.Message,
	}, scanClassification)
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Classification, error) {
	query := `SELECT` + classificationColumns + ` FROM classifications WHERE id = $1`

	record, err := repository.QueryOne(ctx, r.db, query, []any{id}, scanClassification)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &record, nil
}

func (r *repo) FindByItem(ctx context.Context, itemID uuid.UUID) (*Classification, error) {
	query := `SELECT` + classificationColumns + ` FROM classifications WHERE item_id = $1`

	record, err := repository.QueryOne(ctx, r.db, query, []any{itemID}, scanClassification)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &record, nil
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Classification], error) {
	page.Normalize(*r.pages)

	where, args := filters.where()

	var total int
	countQuery := `SELECT COUNT(*) FROM classifications` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, err
	}

	n := len(args)
	query := fmt.Sprintf(`SELECT%s FROM classifications%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		classificationColumns, where, n+1, n+2)
	args = append(args, page.PageSize, page.Offset())

	data, err := repository.QueryMany(ctx, r.db, query, args, scanClassification)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(data, total, page.Page, page.PageSize)
	return &result, nil
}

// Feedback records a user verdict on a classification and moves the
// record to reviewing for manual follow-up.
func (r *repo) Feedback(ctx context.Context, id uuid.UUID, cmd FeedbackCommand) (*Classification, error) {
	if cmd.Feedback != "correct" && cmd.Feedback != "incorrect" {
		return nil, ErrInvalidFeedback
	}

	correction := ""
	if cmd.CorrectCategory != nil {
		if !taxonomy.Valid(taxonomy.Category(*cmd.CorrectCategory)) {
			return nil, taxonomy.ErrInvalidCategory
		}
		correction = *cmd.CorrectCategory
	}

	query := `
		UPDATE classifications SET
			user_feedback = $1,
			manual_correction = $2,
			status = $3,
			updated_at = now()
		WHERE id = $4
		RETURNING` + classificationColumns

	record, err := repository.QueryOne(ctx, r.db, query, []any{
		cmd.Feedback, correction, string(StatusReviewing), id,
	}, scanClassification)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("classification feedback recorded",
		"classification", id,
		"feedback", cmd.Feedback)
	return &record, nil
}

// Stats aggregates classification counts for one item owner.
func (r *repo) Stats(ctx context.Context, ownerID uuid.UUID) (*Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE cl.status = 'completed'),
			COUNT(*) FILTER (WHERE cl.confidence_score >= 0.85)
		FROM classifications cl
		JOIN items i ON i.id = cl.item_id
		WHERE i.owner_id = $1`

	var stats Stats
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(
		&stats.Total, &stats.Successful, &stats.HighConfidence)
	if err != nil {
		return nil, err
	}

	if stats.Total > 0 {
		stats.SuccessRate = float64(stats.Successful) / float64(stats.Total)
	}
	return &stats, nil
}
