package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/docbot/internal/core"
)

// UnansweredRepo stores questions the bot refused so a human can follow up.
type UnansweredRepo struct {
	db *sql.DB
}

func NewUnansweredRepo(db *sql.DB) *UnansweredRepo {
	return &UnansweredRepo{db: db}
}

func (r *UnansweredRepo) SaveUnanswered(ctx context.Context, q core.UnansweredQuestion) error {
	query := `INSERT INTO unanswered_questions (session_id, author, question, answer) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, q.SessionID, q.Author, q.Question, q.Answer); err != nil {
		return fmt.Errorf("failed to insert unanswered question: %w", err)
	}
	return nil
}

// ListUnanswered returns the most recent questions first. An empty
// sessionID lists every session.
func (r *UnansweredRepo) ListUnanswered(ctx context.Context, sessionID string, limit int) ([]core.UnansweredQuestion, error) {
	query := `
		SELECT id, session_id, author, question, answer, created_at
		FROM unanswered_questions
		WHERE ? = '' OR session_id = ?
		ORDER BY id DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, sessionID, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unanswered questions: %w", err)
	}
	defer rows.Close()

	var out []core.UnansweredQuestion
	for rows.Next() {
		var q core.UnansweredQuestion
		var answer sql.NullString
		if err := rows.Scan(&q.ID, &q.SessionID, &q.Author, &q.Question, &answer, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan unanswered question: %w", err)
		}
		q.Answer = answer.String
		out = append(out, q)
	}
	return out, rows.Err()
}
