package contract

import "errors"

var (
	ErrToolNotFound = errors.New("tool not found")
	ErrNotFound     = errors.New("record not found")
	ErrValidation   = errors.New("validation failed")
	ErrModelInvoke  = errors.New("model invoke failed")
	ErrUnavailable  = errors.New("llm provider unavailable")
)
