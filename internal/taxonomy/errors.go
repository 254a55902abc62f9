package taxonomy

import "errors"

// ErrInvalidCategory indicates a key outside the closed ten-category enumeration.
var ErrInvalidCategory = errors.New("category is not in the waste taxonomy")
