package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConversation(t *testing.T) {
	tests := []struct {
		name  string
		turns []Turn
		want  error
	}{
		{"empty", nil, ErrEmptyConversation},
		{"single question", []Turn{{Role: RoleUser, Content: "q"}}, nil},
		{"history", []Turn{
			{Role: RoleAssistant, Content: "hi"},
			{Role: RoleUser, Content: "q"},
		}, nil},
		{"system turn", []Turn{
			{Role: RoleSystem, Content: "be nice"},
			{Role: RoleUser, Content: "q"},
		}, ErrInvalidRole},
		{"unknown role", []Turn{{Role: "bot", Content: "q"}}, ErrInvalidRole},
		{"ends with assistant", []Turn{
			{Role: RoleUser, Content: "q"},
			{Role: RoleAssistant, Content: "a"},
		}, ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConversation(tt.turns)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
