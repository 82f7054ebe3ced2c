package domain

import "errors"

var (
	ErrMalformedPayload = errors.New("payload is not valid JSON")
	ErrPayloadNotArray  = errors.New("batch payload must be a top-level JSON array")
	ErrEmptyBatch       = errors.New("batch payload must contain at least one element")

	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)
