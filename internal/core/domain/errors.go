package domain

import (
	"errors"
	"fmt"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrTaskNotFound = errors.New("task not found")
)

// GenerationFormatError means the model responded but the response could
// not be turned into a plan (malformed JSON, missing tasks array, cyclic
// dependencies). Never retried.
type GenerationFormatError struct {
	Reason string
	Err    error
}

func (e *GenerationFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid plan response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid plan response: %s", e.Reason)
}

func (e *GenerationFormatError) Unwrap() error { return e.Err }

// GenerationProviderError means the model call itself failed. Credential
// distinguishes a missing/invalid API key from quota, network or timeout
// failures so the operator gets an actionable message.
type GenerationProviderError struct {
	Credential bool
	Err        error
}

func (e *GenerationProviderError) Error() string {
	if e.Credential {
		return fmt.Sprintf("llm credentials not configured: %v", e.Err)
	}
	return fmt.Sprintf("llm call failed: %v", e.Err)
}

func (e *GenerationProviderError) Unwrap() error { return e.Err }

// StoreError wraps persistence failures. Fatal for the current request.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
