package classifications

import (
	"errors"
	"net/http"

	"github.com/greenswap/greenbot/internal/items"
)

var (
	ErrNotFound        = errors.New("classification not found")
	ErrDuplicate       = errors.New("classification already exists")
	ErrInvalidStatus   = errors.New("invalid classification status")
	ErrInvalidFeedback = errors.New("feedback must be correct or incorrect")
	ErrMissingImage    = errors.New("item has no image to classify")
)

// MapHTTPStatus translates domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidFeedback),
		errors.Is(err, ErrMissingImage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// mapItemError maps errors from flows that traverse the item system,
// preferring the item domain's mapping when it recognizes the error.
func mapItemError(err error) int {
	if status := items.MapHTTPStatus(err); status != http.StatusInternalServerError {
		return status
	}
	return MapHTTPStatus(err)
}
