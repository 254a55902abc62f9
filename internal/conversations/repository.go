package conversations

import (
	"cmp"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/greenswap/greenbot/internal/agent"
	"github.com/greenswap/greenbot/internal/prompts"
	"github.com/greenswap/greenbot/pkg/pagination"
	"github.com/greenswap/greenbot/pkg/repository"
)

// summaryFallback is returned whenever summarization cannot produce a
// model-written summary, for any reason.
const summaryFallback = "محادثة حول إعادة التدوير والمخلفات"

// chatConfidence is the fixed confidence recorded on successful
// assistant chat replies.
const chatConfidence = 0.9

type repo struct {
	db     *sql.DB
	client agent.Client
	models *agent.Config
	locks  *sessionLocks
	logger *slog.Logger
	pages  *pagination.Config
}

const sessionColumns = `
	id, owner_id, conversation_type, title, is_active,
	model, context_data, created_at, updated_at`

const messageColumns = `
	id, session_id, seq, role, content, confidence, processing_time,
	tokens_used, attachments, rating, is_helpful, created_at`

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pages)
}

// Create opens a session and appends exactly one assistant welcome
// message, chosen by conversation type. The welcome is never skipped.
func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Session, error) {
	if cmd.OwnerID == uuid.Nil {
		return nil, ErrInvalidOwner
	}
	if cmd.Type == "" {
		cmd.Type = TypeGeneralSupport
	}
	if cmd.ContextData == nil {
		cmd.ContextData = map[string]any{}
	}

	contextData, err := json.Marshal(cmd.ContextData)
	if err != nil {
		return nil, err
	}

	session, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Session, error) {
		query := `
			INSERT INTO conversation_sessions (
				owner_id, conversation_type, title, model, context_data
			)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING` + sessionColumns

		session, err := repository.QueryOne(ctx, tx, query, []any{
			cmd.OwnerID, string(cmd.Type), cmd.Title,
			r.models.ChatModel, contextData,
		}, scanSession)
		if err != nil {
			return Session{}, err
		}

		welcome := Welcome(cmd.Type)
		if _, err := insertMessage(ctx, tx, session.ID, agent.RoleAssistant, welcome, nil, messageMeta{}); err != nil {
			return Session{}, err
		}

		return session, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if cmd.InitialMessage != "" {
		if _, err := r.SendMessage(ctx, session.ID, SendCommand{Content: cmd.InitialMessage}); err != nil {
			return nil, err
		}
	}

	r.logger.Info("conversation created",
		"session", session.ID,
		"owner", session.OwnerID,
		"type", session.Type)
	return &session, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Session, error) {
	query := `SELECT` + sessionColumns + ` FROM conversation_sessions WHERE id = $1`

	session, err := repository.QueryOne(ctx, r.db, query, []any{id}, scanSession)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &session, nil
}

func (r *repo) List(ctx context.Context, ownerID uuid.UUID, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Session], error) {
	page.Normalize(*r.pages)

	where, args := filters.where(ownerID)

	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM conversation_sessions`+where, args...,
	).Scan(&total)
	if err != nil {
		return nil, err
	}

	n := len(args)
	query := fmt.Sprintf(`SELECT%s
		FROM conversation_sessions%s
		ORDER BY updated_at DESC
		LIMIT $%d OFFSET $%d`, sessionColumns, where, n+1, n+2)
	args = append(args, page.PageSize, page.Offset())

	data, err := repository.QueryMany(ctx, r.db, query, args, scanSession)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResult(data, total, page.Page, page.PageSize)
	return &result, nil
}

// Close deactivates a session. Closed sessions reject new messages but
// remain readable.
func (r *repo) Close(ctx context.Context, id uuid.UUID) (*Session, error) {
	query := `
		UPDATE conversation_sessions
		SET is_active = false, updated_at = now()
		WHERE id = $1
		RETURNING` + sessionColumns

	session, err := repository.QueryOne(ctx, r.db, query, []any{id}, scanSession)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("conversation closed", "session", id)
	return &session, nil
}

// SendMessage appends the user message, runs one chat completion over
// the bounded history, and appends the assistant reply. Model failures
// become an apologetic assistant message at zero confidence; they are
// never returned as errors. Appends to one session are serialized.
func (r *repo) SendMessage(ctx context.Context, sessionID uuid.UUID, cmd SendCommand) (*Message, error) {
	if cmd.Content == "" {
		return nil, ErrEmptyMessage
	}

	lock := r.locks.acquire(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := r.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Active {
		return nil, ErrSessionClosed
	}

	start := time.Now()

	history, err := r.window(ctx, sessionID, prompts.HistoryLimit)
	if err != nil {
		return nil, err
	}

	if _, err := insertMessage(ctx, r.db, sessionID, agent.RoleUser, cmd.Content, cmd.Attachments, messageMeta{}); err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	turns := make([]prompts.Turn, 0, len(history))
	for _, m := range history {
		turns = append(turns, prompts.Turn{Role: m.Role, Content: m.Content})
	}

	p := prompts.ChatParams()
	completion, err := r.client.Complete(ctx, agent.Request{
		Model:            session.Model,
		Messages:         prompts.BuildChat(string(session.Type), session.ContextData, turns, cmd.Content),
		MaxTokens:        p.MaxTokens,
		Temperature:      p.Temperature,
		PresencePenalty:  p.PresencePenalty,
		FrequencyPenalty: p.FrequencyPenalty,
	})

	if err != nil {
		elapsed := time.Since(start).Seconds()
		r.logger.Warn("chat model call failed",
			"session", sessionID,
			"error", err,
			"elapsed", elapsed)

		content := fmt.Sprintf("عذراً، حدث خطأ في معالجة رسالتك: %s", err)
		zero := 0.0
		reply, err := insertMessage(ctx, r.db, sessionID, agent.RoleAssistant, content, nil, messageMeta{
			Confidence:     &zero,
			ProcessingTime: &elapsed,
		})
		if err != nil {
			return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}
		return &reply, nil
	}

	elapsed := time.Since(start).Seconds()
	confidence := chatConfidence
	reply, err := insertMessage(ctx, r.db, sessionID, agent.RoleAssistant, completion.Text, nil, messageMeta{
		Confidence:     &confidence,
		ProcessingTime: &elapsed,
		TokensUsed:     &completion.TokensUsed,
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	err = repository.ExecExpectOne(ctx, r.db,
		`UPDATE conversation_sessions SET updated_at = $1 WHERE id = $2`,
		reply.CreatedAt, sessionID)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("chat turn completed",
		"session", sessionID,
		"tokens", completion.TokensUsed,
		"elapsed", elapsed)
	return &reply, nil
}

// AppendUser records a user turn without running a completion.
func (r *repo) AppendUser(ctx context.Context, sessionID uuid.UUID, cmd SendCommand) (*Message, error) {
	if cmd.Content == "" {
		return nil, ErrEmptyMessage
	}

	lock := r.locks.acquire(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := r.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Active {
		return nil, ErrSessionClosed
	}

	message, err := insertMessage(ctx, r.db, sessionID, agent.RoleUser, cmd.Content, cmd.Attachments, messageMeta{})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &message, nil
}

// AppendAssistant records an assistant turn and moves the session's
// last-activity marker to the new message's creation time.
func (r *repo) AppendAssistant(ctx context.Context, sessionID uuid.UUID, cmd AssistantCommand) (*Message, error) {
	if cmd.Content == "" {
		return nil, ErrEmptyMessage
	}

	lock := r.locks.acquire(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := r.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Active {
		return nil, ErrSessionClosed
	}

	message, err := insertMessage(ctx, r.db, sessionID, agent.RoleAssistant, cmd.Content, nil, messageMeta{
		Confidence:     cmd.Confidence,
		ProcessingTime: cmd.ProcessingTime,
		TokensUsed:     cmd.TokensUsed,
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	err = repository.ExecExpectOne(ctx, r.db,
		`UPDATE conversation_sessions SET updated_at = $1 WHERE id = $2`,
		message.CreatedAt, sessionID)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &message, nil
}

// ContextWindow returns the last messages of a session, oldest first,
// bounded to the chat history limit.
func (r *repo) ContextWindow(ctx context.Context, sessionID uuid.UUID) ([]Message, error) {
	if _, err := r.Find(ctx, sessionID); err != nil {
		return nil, err
	}
	return r.window(ctx, sessionID, prompts.HistoryLimit)
}

// Summarize asks the model for a short summary of the session's trailing
// messages. Any failure yields the fixed fallback text, never an error,
// except when the session itself does not exist.
func (r *repo) Summarize(ctx context.Context, sessionID uuid.UUID) (string, error) {
	if _, err := r.Find(ctx, sessionID); err != nil {
		return "", err
	}

	history, err := r.window(ctx, sessionID, prompts.SummaryLimit)
	if err != nil {
		r.logger.Warn("summary history fetch failed", "session", sessionID, "error", err)
		return summaryFallback, nil
	}

	turns := make([]prompts.Turn, 0, len(history))
	for _, m := range history {
		turns = append(turns, prompts.Turn{Role: m.Role, Content: m.Content})
	}

	summary := SummarizeTurns(ctx, r.client, r.models.SummaryModel, turns)
	if summary == summaryFallback {
		r.logger.Warn("summary fell back to default", "session", sessionID)
	}
	return summary, nil
}

// SummarizeTurns asks the model for a short summary of the given turns.
// Any failure, including empty model output, yields the fixed fallback
// text; this function never fails.
func SummarizeTurns(ctx context.Context, client agent.Client, model string, turns []prompts.Turn) string {
	p := prompts.SummaryParams()
	completion, err := client.Complete(ctx, agent.Request{
		Model:       model,
		Messages:    prompts.BuildSummary(turns),
		MaxTokens:   p.MaxTokens,
		Temperature: p.Temperature,
	})
	if err != nil || completion.Text == "" {
		return summaryFallback
	}
	return completion.Text
}

// Rate records a 1-5 rating and optional helpfulness flag on an
// assistant message.
func (r *repo) Rate(ctx context.Context, messageID uuid.UUID, cmd RateCommand) (*Message, error) {
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return nil, ErrInvalidRating
	}

	query := `SELECT` + messageColumns + ` FROM conversation_messages WHERE id = $1`
	message, err := repository.QueryOne(ctx, r.db, query, []any{messageID}, scanMessage)
	if err != nil {
		return nil, repository.MapError(err, ErrMessageNotFound, ErrDuplicate)
	}
	if message.Role != agent.RoleAssistant {
		return nil, ErrRatingTarget
	}

	update := `
		UPDATE conversation_messages
		SET rating = $1, is_helpful = $2
		WHERE id = $3
		RETURNING` + messageColumns

	rated, err := repository.QueryOne(ctx, r.db, update,
		[]any{cmd.Rating, cmd.Helpful, messageID}, scanMessage)
	if err != nil {
		return nil, repository.MapError(err, ErrMessageNotFound, ErrDuplicate)
	}

	return &rated, nil
}

// Stats aggregates session and message counts for one owner.
func (r *repo) Stats(ctx context.Context, ownerID uuid.UUID) (*Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE s.is_active),
			COALESCE(SUM((SELECT COUNT(*) FROM conversation_messages m WHERE m.session_id = s.id)), 0)
		FROM conversation_sessions s
		WHERE s.owner_id = $1`

	var stats Stats
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(
		&stats.TotalSessions, &stats.ActiveSessions, &stats.TotalMessages)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// window fetches the last limit messages of a session, oldest first.
// Ordering follows the monotonic seq column, so replay order stays the
// append order even when two messages share a created_at timestamp.
func (r *repo) window(ctx context.Context, sessionID uuid.UUID, limit int) ([]Message, error) {
	query := `
		SELECT` + messageColumns + `
		FROM conversation_messages
		WHERE session_id = $1
		ORDER BY seq DESC
		LIMIT $2`

	messages, err := repository.QueryMany(ctx, r.db, query, []any{sessionID, limit}, scanMessage)
	if err != nil {
		return nil, err
	}
	return oldestFirst(messages), nil
}

// oldestFirst re-sorts a newest-first window into replay order by seq.
func oldestFirst(messages []Message) []Message {
	slices.SortFunc(messages, func(a, b Message) int {
		return cmp.Compare(a.Seq, b.Seq)
	})
	return messages
}

// messageMeta carries the assistant-only columns of a message insert.
type messageMeta struct {
	Confidence     *float64
	ProcessingTime *float64
	TokensUsed     *int
}

func insertMessage(ctx context.Context, q repository.Querier, sessionID uuid.UUID, role agent.Role, content string, attachments []Attachment, meta messageMeta) (Message, error) {
	if attachments == nil {
		attachments = []Attachment{}
	}
	encoded, err := json.Marshal(attachments)
	if err != nil {
		return Message{}, err
	}

	query := `
		INSERT INTO conversation_messages (
			session_id, role, content, confidence, processing_time,
			tokens_used, attachments
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING` + messageColumns

	return repository.QueryOne(ctx, q, query, []any{
		sessionID, string(role), content,
		meta.Confidence, meta.ProcessingTime, meta.TokensUsed, encoded,
	}, scanMessage)
}
