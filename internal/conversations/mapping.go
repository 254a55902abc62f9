package conversations

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/greenswap/greenbot/pkg/repository"
)

// Filters narrows session listings.
type Filters struct {
	Type   *Type
	Active *bool
}

func (f Filters) where(ownerID uuid.UUID) (string, []any) {
	args := []any{ownerID}
	conditions := []string{"owner_id = $1"}

	if f.Type != nil {
		args = append(args, string(*f.Type))
		conditions = append(conditions, fmt.Sprintf("conversation_type = $%d", len(args)))
	}
	if f.Active != nil {
		args = append(args, *f.Active)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func scanSession(s repository.Scanner) (Session, error) {
	var (
		session     Session
		contextData []byte
	)

	err := s.Scan(
		&session.ID,
		&session.OwnerID,
		&session.Type,
		&session.Title,
		&session.Active,
		&session.Model,
		&contextData,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return session, err
	}

	session.ContextData = map[string]any{}
	if len(contextData) > 0 {
		if err := json.Unmarshal(contextData, &session.ContextData); err != nil {
			return session, err
		}
	}

	return session, nil
}

func scanMessage(s repository.Scanner) (Message, error) {
	var (
		message     Message
		attachments []byte
	)

	err := s.Scan(
		&message.ID,
		&message.SessionID,
		&message.Seq,
		&message.Role,
		&message.Content,
		&message.Confidence,
		&message.ProcessingTime,
		&message.TokensUsed,
		&attachments,
		&message.Rating,
		&message.Helpful,
		&message.CreatedAt,
	)
	if err != nil {
		return message, err
	}

	message.Attachments = []Attachment{}
	if len(attachments) > 0 {
		if err := json.Unmarshal(attachments, &message.Attachments); err != nil {
			return message, err
		}
	}

	return message, nil
}
