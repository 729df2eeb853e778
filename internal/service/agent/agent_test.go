package agent

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/internal/service/brain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBrain struct {
	result core.ThinkResult
	got    [][]core.Turn
}

func (f *fakeBrain) Think(ctx context.Context, conversation []core.Turn) core.ThinkResult {
	f.got = append(f.got, conversation)
	return f.result
}

type fakeMemory struct {
	history   []core.Turn
	err       error
	remembers [][2]string
}

func (f *fakeMemory) Conversation(ctx context.Context, sessionID, question string) ([]core.Turn, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append(append([]core.Turn{}, f.history...), core.Turn{Role: core.RoleUser, Content: question}), nil
}

func (f *fakeMemory) Remember(ctx context.Context, sessionID, question, answer string) error {
	f.remembers = append(f.remembers, [2]string{question, answer})
	return nil
}

type fakeUnanswered struct {
	saved []core.UnansweredQuestion
}

func (f *fakeUnanswered) SaveUnanswered(ctx context.Context, q core.UnansweredQuestion) error {
	f.saved = append(f.saved, q)
	return nil
}

func (f *fakeUnanswered) ListUnanswered(ctx context.Context, sessionID string, limit int) ([]core.UnansweredQuestion, error) {
	return f.saved, nil
}

type fakeRouter struct{}

func (fakeRouter) Execute(ctx context.Context, sessionID, input string) (string, bool) {
	if input == "/help" {
		return "help text", true
	}
	return "", false
}

func (fakeRouter) ListCommands() []core.Command { return nil }

type fixture struct {
	brain      *fakeBrain
	memory     *fakeMemory
	unanswered *fakeUnanswered
	agent      *Agent
}

func newFixture(result core.ThinkResult, history []core.Turn) *fixture {
	f := &fixture{
		brain:      &fakeBrain{result: result},
		memory:     &fakeMemory{history: history},
		unanswered: &fakeUnanswered{},
	}
	f.agent = NewAgent(f.brain, brain.NewRefusalPolicy(brain.DefaultRefusalPhrases), f.memory, f.unanswered, fakeRouter{})
	return f
}

func TestAgent_AnswerQuestion(t *testing.T) {
	sources := []core.Source{{Title: "Docs", URL: "https://docs"}}
	f := newFixture(core.ThinkResult{Answer: "Use cog push.", Sources: sources}, []core.Turn{
		{Role: core.RoleAssistant, Content: "orphan answer"},
		{Role: core.RoleUser, Content: "earlier"},
		{Role: core.RoleAssistant, Content: "reply"},
	})

	reply, err := f.agent.Answer(context.Background(), "tg:1", "alice", "  how to push?  ")
	require.NoError(t, err)

	assert.True(t, reply.Answered)
	assert.False(t, reply.Unanswered)
	assert.False(t, reply.Command)
	assert.Equal(t, "Use cog push.", reply.Text)
	assert.Equal(t, sources, reply.Sources)
	assert.Len(t, reply.RequestID, 36)

	require.Len(t, f.brain.got, 1)
	assert.Equal(t, []core.Turn{
		{Role: core.RoleUser, Content: "earlier"},
		{Role: core.RoleAssistant, Content: "reply"},
		{Role: core.RoleUser, Content: "how to push?"},
	}, f.brain.got[0])

	assert.Equal(t, [][2]string{{"how to push?", "Use cog push."}}, f.memory.remembers)
	assert.Empty(t, f.unanswered.saved)
}

func TestAgent_RecordsUnanswered(t *testing.T) {
	f := newFixture(core.ThinkResult{Answer: brain.RefusalAnswer}, nil)

	reply, err := f.agent.Answer(context.Background(), "tg:1", "alice", "do you support TPUs?")
	require.NoError(t, err)

	assert.True(t, reply.Answered)
	assert.True(t, reply.Unanswered)
	require.Len(t, f.unanswered.saved, 1)
	assert.Equal(t, core.UnansweredQuestion{
		SessionID: "tg:1",
		Author:    "alice",
		Question:  "do you support TPUs?",
		Answer:    brain.RefusalAnswer,
	}, f.unanswered.saved[0])
}

func TestAgent_NoAnswer(t *testing.T) {
	f := newFixture(core.ThinkResult{}, nil)

	reply, err := f.agent.Answer(context.Background(), "tg:1", "alice", "q")
	require.NoError(t, err)

	assert.False(t, reply.Answered)
	assert.Empty(t, reply.Text)
	assert.Empty(t, f.memory.remembers, "failed exchanges are not persisted")
	assert.Empty(t, f.unanswered.saved)
}

func TestAgent_Command(t *testing.T) {
	f := newFixture(core.ThinkResult{Answer: "never"}, nil)

	reply, err := f.agent.Answer(context.Background(), "tg:1", "alice", "/help")
	require.NoError(t, err)

	assert.True(t, reply.Command)
	assert.Equal(t, "help text", reply.Text)
	assert.Empty(t, f.brain.got)
}

func TestAgent_EmptyInput(t *testing.T) {
	f := newFixture(core.ThinkResult{Answer: "never"}, nil)

	reply, err := f.agent.Answer(context.Background(), "tg:1", "alice", "   ")
	require.NoError(t, err)
	assert.False(t, reply.Answered)
	assert.Empty(t, f.brain.got)
}

func TestAgent_HistoryError(t *testing.T) {
	f := newFixture(core.ThinkResult{Answer: "never"}, nil)
	f.memory.err = errors.New("db closed")

	_, err := f.agent.Answer(context.Background(), "tg:1", "alice", "q")
	assert.ErrorContains(t, err, "db closed")
}

func TestAgent_ThinkIsStateless(t *testing.T) {
	f := newFixture(core.ThinkResult{Answer: "Sorry, I don't know how to help with that."}, nil)
	conversation := []core.Turn{{Role: core.RoleUser, Content: "q"}}

	reply := f.agent.Think(context.Background(), conversation)

	assert.True(t, reply.Unanswered)
	assert.NotEmpty(t, reply.RequestID)
	assert.Empty(t, f.memory.remembers)
	assert.Empty(t, f.unanswered.saved)
}

func TestSanitizeHistory(t *testing.T) {
	tests := []struct {
		name     string
		input    []core.Turn
		expected []core.Turn
	}{
		{
			name:     "empty",
			input:    []core.Turn{},
			expected: nil,
		},
		{
			name: "leading assistant turns dropped",
			input: []core.Turn{
				{Role: core.RoleAssistant, Content: "a0"},
				{Role: core.RoleUser, Content: "q1"},
				{Role: core.RoleAssistant, Content: "a1"},
			},
			expected: []core.Turn{
				{Role: core.RoleUser, Content: "q1"},
				{Role: core.RoleAssistant, Content: "a1"},
			},
		},
		{
			name: "blank turns dropped",
			input: []core.Turn{
				{Role: core.RoleUser, Content: "q1"},
				{Role: core.RoleAssistant, Content: "  "},
				{Role: core.RoleUser, Content: "q2"},
			},
			expected: []core.Turn{
				{Role: core.RoleUser, Content: "q1"},
				{Role: core.RoleUser, Content: "q2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeHistory(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("sanitizeHistory() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	short := "what is replicate?"
	assert.Equal(t, short, truncate(short))

	long := strings.Repeat("а", maxQuestionLen+100)
	got := truncate(long)
	assert.Contains(t, got, "[TRUNCATED 100 chars]")
	assert.True(t, strings.HasPrefix(got, strings.Repeat("а", 500)))
}

func TestAgent_ThinkDropsLeadingAssistantTurns(t *testing.T) {
	f := newFixture(core.ThinkResult{Answer: "Use cog push."}, nil)
	conversation := []core.Turn{
		{Role: core.RoleAssistant, Content: "Hi, I'm a support bot"},
		{Role: core.RoleUser, Content: "What is X?"},
	}

	reply := f.agent.Think(context.Background(), conversation)

	require.True(t, reply.Answered)
	require.Len(t, f.brain.got, 1)
	assert.Equal(t, []core.Turn{{Role: core.RoleUser, Content: "What is X?"}}, f.brain.got[0])
}
