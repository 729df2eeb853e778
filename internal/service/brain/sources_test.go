package brain

import (
	"testing"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestSources(t *testing.T) {
	tests := []struct {
		name     string
		passages []core.Passage
		want     []core.Source
	}{
		{
			name: "first occurrence wins",
			passages: []core.Passage{
				{Title: "A", URL: "u1"},
				{Title: "B", URL: "u2"},
				{Title: "A", URL: "u3"},
			},
			want: []core.Source{{Title: "A", URL: "u1"}, {Title: "B", URL: "u2"}},
		},
		{
			name: "untitled passages dedupe by url",
			passages: []core.Passage{
				{URL: "u1"},
				{URL: "u2"},
				{URL: "u1"},
			},
			want: []core.Source{{URL: "u1"}, {URL: "u2"}},
		},
		{
			name:     "empty",
			passages: nil,
			want:     []core.Source{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sources(tt.passages))
		})
	}
}
