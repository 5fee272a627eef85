package wizard

import "errors"

var (
	ErrInvalidAnswerShape = errors.New("invalid answer shape")
	ErrStepNotReady       = errors.New("step not ready")
	ErrStepNotInFlow      = errors.New("step is not part of this flow")
	ErrInvalidState       = errors.New("invalid wizard state")

	ErrSessionNotFound   = errors.New("wizard session not found")
	ErrOperationInFlight = errors.New("another operation is still running")
	ErrForbidden         = errors.New("forbidden")
)
