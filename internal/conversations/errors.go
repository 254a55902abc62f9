package conversations

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound        = errors.New("conversation not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrDuplicate       = errors.New("conversation already exists")
	ErrInvalidType     = errors.New("invalid conversation type")
	ErrInvalidOwner    = errors.New("conversation owner is required")
	ErrEmptyMessage    = errors.New("message content is required")
	ErrSessionClosed   = errors.New("conversation is closed")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrRatingTarget    = errors.New("only assistant messages can be rated")
)

// MapHTTPStatus translates domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrMessageNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrInvalidOwner),
		errors.Is(err, ErrEmptyMessage),
		errors.Is(err, ErrSessionClosed),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrRatingTarget):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
