package items

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound         = errors.New("item not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicate        = errors.New("item already exists")
	ErrInvalidTitle     = errors.New("item title is required")
	ErrInvalidOwner     = errors.New("item owner is required")
)

// MapHTTPStatus translates domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidOwner):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
