package draft

import "errors"

var (
	ErrNotFound  = errors.New("draft not found")
	ErrInvalidID = errors.New("draft id is required")
)
