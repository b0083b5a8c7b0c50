package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrInvalidPayload = errors.New("invalid navigation payload")
	ErrFlowFinished   = errors.New("cooking flow already finished")
)
