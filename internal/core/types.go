package core

import "fmt"

const (
	BotName          = "DocBot"
	BotUserAgent     = "DocBot-Agent/0.1"
	BotRepositoryURL = "https://github.com/sandevgo/docbot"
	BotVersion       = "0.1.0"
)

// Role is the author of a conversation turn or prompt message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ValidateConversation checks that turns is non-empty, holds only user and
// assistant turns, and ends with a user turn.
func ValidateConversation(turns []Turn) error {
	if len(turns) == 0 {
		return ErrEmptyConversation
	}
	for i, t := range turns {
		if t.Role != RoleUser && t.Role != RoleAssistant {
			return fmt.Errorf("%w: turn %d has role %q", ErrInvalidRole, i, t.Role)
		}
	}
	if turns[len(turns)-1].Role != RoleUser {
		return fmt.Errorf("%w: last turn must come from the user", ErrInvalidRole)
	}
	return nil
}

// Turn is one entry of a conversation as seen by the transport layer.
// Only user and assistant turns are meaningful here.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Message is a prompt message sent to the completion capability.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Passage is a chunk of indexed documentation returned for one query.
type Passage struct {
	Content    string  `json:"content"`
	URL        string  `json:"url"`
	Title      string  `json:"title,omitempty"`
	Similarity float64 `json:"similarity"`
}

type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ThinkResult is the outcome of answering a conversation.
// An empty Answer means no answer was produced.
type ThinkResult struct {
	Answer  string   `json:"answer,omitempty"`
	Sources []Source `json:"sources"`
}

func (r ThinkResult) HasAnswer() bool {
	return r.Answer != ""
}

type RetrieveOptions struct {
	Threshold float64
	Limit     int
}

// Sampling configures a completion request.
type Sampling struct {
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
	Candidates       int
}

// DeterministicSampling is the lowest-variance configuration used for answers.
func DeterministicSampling() Sampling {
	return Sampling{
		Temperature:      0,
		TopP:             1,
		FrequencyPenalty: 0,
		PresencePenalty:  0,
		Candidates:       1,
	}
}

type Candidate struct {
	Content string
}
