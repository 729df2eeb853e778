package core

import (
	"context"
	"time"
)

type MessagesRepository interface {
	AddTurn(ctx context.Context, sessionID string, turn Turn) error
	GetTurns(ctx context.Context, sessionID string, limit int) ([]Turn, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type UnansweredRepository interface {
	SaveUnanswered(ctx context.Context, q UnansweredQuestion) error
	// ListUnanswered lists the newest questions of sessionID, or of every
	// session when sessionID is empty.
	ListUnanswered(ctx context.Context, sessionID string, limit int) ([]UnansweredQuestion, error)
}

type UnansweredQuestion struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Author    string    `json:"author"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}
