package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_ConversationAppendsQuestion(t *testing.T) {
	repo := newMemRepo()
	m := NewMemory(repo, 2)
	ctx := context.Background()

	require.NoError(t, m.Remember(ctx, "s1", "first", "answer one"))
	require.NoError(t, m.Remember(ctx, "s1", "second", "answer two"))

	turns, err := m.Conversation(ctx, "s1", "third")
	require.NoError(t, err)

	assert.Equal(t, []core.Turn{
		{Role: core.RoleUser, Content: "second"},
		{Role: core.RoleAssistant, Content: "answer two"},
		{Role: core.RoleUser, Content: "third"},
	}, turns)
}

func TestMemory_RememberWithoutAnswer(t *testing.T) {
	repo := newMemRepo()
	m := NewMemory(repo, 10)

	require.NoError(t, m.Remember(context.Background(), "s1", "unanswered?", ""))
	assert.Equal(t, []core.Turn{{Role: core.RoleUser, Content: "unanswered?"}}, repo.turns["s1"])
}

func TestMemory_Forget(t *testing.T) {
	repo := newMemRepo()
	m := NewMemory(repo, 10)
	ctx := context.Background()

	require.NoError(t, m.Remember(ctx, "s1", "q", "a"))
	require.NoError(t, m.Forget(ctx, "s1"))

	turns, err := m.Conversation(ctx, "s1", "fresh")
	require.NoError(t, err)
	assert.Len(t, turns, 1)
	assert.Equal(t, []string{"s1"}, repo.deleted)
}

func TestMemory_RepositoryError(t *testing.T) {
	repo := newMemRepo()
	repo.err = errors.New("disk full")
	m := NewMemory(repo, 10)

	_, err := m.Conversation(context.Background(), "s1", "q")
	assert.ErrorContains(t, err, "disk full")
	assert.ErrorContains(t, m.Remember(context.Background(), "s1", "q", "a"), "disk full")
}
