package core

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyConversation = errors.New("conversation is empty")
	ErrInvalidRole       = errors.New("invalid role")
	ErrNoCandidates      = errors.New("completion returned no candidates")
)

// RetrievalError reports a failed call to the passage index.
type RetrievalError struct {
	Query string
	Err   error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval failed: %v", e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// CompletionError reports a failed call to the chat model.
type CompletionError struct {
	Provider string
	Err      error
}

func (e *CompletionError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("completion failed: %v", e.Err)
	}
	return fmt.Sprintf("completion failed (%s): %v", e.Provider, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}
