package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/log"
)

// Thinker answers a full conversation.
type Thinker interface {
	Think(ctx context.Context, conversation []core.Turn) core.ThinkResult
}

// Classifier flags answers in which the model declined to answer.
type Classifier interface {
	IsUnanswered(answer string) bool
}

type SessionMemory interface {
	Conversation(ctx context.Context, sessionID, question string) ([]core.Turn, error)
	Remember(ctx context.Context, sessionID, question, answer string) error
}

// Reply is what a transport should show for one incoming message.
type Reply struct {
	RequestID string
	Text      string
	Sources   []core.Source

	// Command is set when the message was a slash command.
	Command bool
	// Answered is false when the pipeline produced nothing; transports stay
	// silent in that case.
	Answered   bool
	Unanswered bool
}

type Agent struct {
	brain      Thinker
	refusal    Classifier
	memory     SessionMemory
	unanswered core.UnansweredRepository
	router     core.CmdRouter
}

func NewAgent(
	brain Thinker,
	refusal Classifier,
	memory SessionMemory,
	unanswered core.UnansweredRepository,
	router core.CmdRouter,
) *Agent {
	return &Agent{
		brain:      brain,
		refusal:    refusal,
		memory:     memory,
		unanswered: unanswered,
		router:     router,
	}
}

// Answer handles one message of a chat session: commands are executed,
// questions are answered with the recent history of the session.
func (a *Agent) Answer(ctx context.Context, sessionID, author, input string) (Reply, error) {
	requestID := uuid.NewString()
	logger := log.FromCtx(ctx).With().
		Str("request_id", requestID).
		Str("session_id", sessionID).
		Logger()
	ctx = logger.WithContext(ctx)

	input = strings.TrimSpace(input)
	if input == "" {
		return Reply{RequestID: requestID}, nil
	}

	if a.router != nil {
		if out, ok := a.router.Execute(ctx, sessionID, input); ok {
			return Reply{RequestID: requestID, Text: out, Command: true, Answered: true}, nil
		}
	}

	question := truncate(input)
	conversation, err := a.memory.Conversation(ctx, sessionID, question)
	if err != nil {
		return Reply{RequestID: requestID}, fmt.Errorf("load conversation: %w", err)
	}
	conversation = sanitizeHistory(conversation)

	reply := a.think(ctx, conversation)
	reply.RequestID = requestID
	if !reply.Answered {
		logger.Warn().Msg("no answer produced")
		return reply, nil
	}

	if err := a.memory.Remember(ctx, sessionID, question, reply.Text); err != nil {
		logger.Error().Err(err).Msg("failed to save exchange")
	}

	if reply.Unanswered {
		q := core.UnansweredQuestion{
			SessionID: sessionID,
			Author:    author,
			Question:  question,
			Answer:    reply.Text,
		}
		if err := a.unanswered.SaveUnanswered(ctx, q); err != nil {
			logger.Error().Err(err).Msg("failed to record unanswered question")
		} else {
			logger.Info().Str("author", author).Msg("unanswered question recorded")
		}
	}

	return reply, nil
}

// Think answers a conversation supplied in full by the caller. Nothing is
// persisted.
func (a *Agent) Think(ctx context.Context, conversation []core.Turn) Reply {
	requestID := uuid.NewString()
	ctx = log.FromCtx(ctx).With().Str("request_id", requestID).Logger().WithContext(ctx)

	reply := a.think(ctx, sanitizeHistory(conversation))
	reply.RequestID = requestID
	return reply
}

func (a *Agent) think(ctx context.Context, conversation []core.Turn) Reply {
	res := a.brain.Think(ctx, conversation)
	if !res.HasAnswer() {
		return Reply{}
	}
	return Reply{
		Text:       res.Answer,
		Sources:    res.Sources,
		Answered:   true,
		Unanswered: a.refusal.IsUnanswered(res.Answer),
	}
}
