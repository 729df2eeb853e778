package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/log"
)

type MessagesRepo struct {
	db *sql.DB
}

func NewMessagesRepo(db *sql.DB) *MessagesRepo {
	return &MessagesRepo{db: db}
}

func (h *MessagesRepo) AddTurn(ctx context.Context, sessionID string, turn core.Turn) error {
	if turn.Role != core.RoleUser && turn.Role != core.RoleAssistant {
		return fmt.Errorf("%w: %q", core.ErrInvalidRole, turn.Role)
	}

	query := `INSERT INTO messages (session_id, role, content) VALUES (?, ?, ?)`
	if _, err := h.db.ExecContext(ctx, query, sessionID, string(turn.Role), turn.Content); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// GetTurns returns the last limit turns of a session, oldest first.
func (h *MessagesRepo) GetTurns(ctx context.Context, sessionID string, limit int) ([]core.Turn, error) {
	if limit <= 0 {
		return nil, nil
	}

	// Fetch the LAST 'limit' messages by ordering DESC
	query := `SELECT role, content FROM messages WHERE session_id = ? ORDER BY id DESC LIMIT ?`

	rows, err := h.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var turns []core.Turn
	for rows.Next() {
		var role string
		var content sql.NullString
		if err := rows.Scan(&role, &content); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		turns = append(turns, core.Turn{Role: core.Role(role), Content: content.String})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Back to chronological order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	return turns, nil
}

func (h *MessagesRepo) DeleteSession(ctx context.Context, sessionID string) error {
	res, err := h.db.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	n, _ := res.RowsAffected()
	log.FromCtx(ctx).Debug().
		Str("session_id", sessionID).
		Int64("deleted", n).
		Msg("session history deleted")
	return nil
}
