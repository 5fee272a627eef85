package flow

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidCatalog  = errors.New("invalid flow catalog")
)
