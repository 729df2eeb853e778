package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefusalPolicy_IsUnanswered(t *testing.T) {
	policy := NewRefusalPolicy(DefaultRefusalPhrases)

	tests := []struct {
		answer string
		want   bool
	}{
		{RefusalAnswer, true},
		{"Sorry, I don't know how to help with that.", true},
		{"i DON'T KNOW.", true},
		{"sorry for the confusion", true},
		{"X is a Y used for Z.", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.IsUnanswered(tt.answer))
		})
	}
}

func TestRefusalPolicy_CustomPhrases(t *testing.T) {
	policy := NewRefusalPolicy([]string{"  ", "Not documented"})

	assert.True(t, policy.IsUnanswered("That is not documented anywhere."))
	assert.False(t, policy.IsUnanswered("Sorry, I don't know."))
}

func TestRefusalPolicy_Empty(t *testing.T) {
	assert.False(t, NewRefusalPolicy(nil).IsUnanswered("I don't know"))
}
