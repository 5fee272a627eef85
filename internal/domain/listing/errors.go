package listing

import "errors"

var (
	ErrNotFound     = errors.New("listing not found")
	ErrTitleMissing = errors.New("listing title is required")
	ErrSlugTaken    = errors.New("listing slug already taken")
)
