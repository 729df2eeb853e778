package brain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPreamble(t *testing.T) {
	msgs := DefaultPreamble().Messages()

	require.Len(t, msgs, 3)
	assert.Equal(t, []core.Role{core.RoleSystem, core.RoleUser, core.RoleAssistant},
		[]core.Role{msgs[0].Role, msgs[1].Role, msgs[2].Role})
	assert.Contains(t, msgs[0].Content, RefusalAnswer)
	assert.Contains(t, msgs[1].Content, "CONTEXT:")
	assert.Contains(t, msgs[1].Content, "QUESTION:")
}

func TestLoadPreamble(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		p, err := LoadPreamble(filepath.Join(t.TempDir(), "prompt.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultPreamble(), p)
	})

	t.Run("partial override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prompt.yaml")
		require.NoError(t, os.WriteFile(path, []byte("system: |\n  You answer questions about Acme.\n"), 0644))

		p, err := LoadPreamble(path)
		require.NoError(t, err)
		assert.Equal(t, "You answer questions about Acme.\n", p.System)
		assert.Equal(t, DefaultPreamble().User, p.User)
		assert.Equal(t, DefaultPreamble().Assistant, p.Assistant)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prompt.yaml")
		require.NoError(t, os.WriteFile(path, []byte("system: [unclosed"), 0644))

		_, err := LoadPreamble(path)
		assert.ErrorContains(t, err, "parse prompt file")
	})
}
