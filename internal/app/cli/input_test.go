package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_PromptLine(t *testing.T) {
	t.Run("trims the trailing newline", func(t *testing.T) {
		app, out := newTestApp("Tokyo\n", nil, nil, nil, nil)

		got, err := app.promptLine("Enter city: ")

		require.NoError(t, err)
		assert.Equal(t, "Tokyo", got)
		assert.Equal(t, "Enter city: ", out.String())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		app, _ := newTestApp("  Tokyo \n", nil, nil, nil, nil)

		got, err := app.promptLine("> ")

		require.NoError(t, err)
		assert.Equal(t, "Tokyo", got)
	})

	t.Run("partial line at EOF is returned", func(t *testing.T) {
		app := NewApp(&stubAuth{}, &stubWeather{}, &stubHistory{}, &stubAdmin{},
			strings.NewReader("Tokyo"), &bytes.Buffer{})

		got, err := app.promptLine("> ")

		require.NoError(t, err)
		assert.Equal(t, "Tokyo", got)
	})

	t.Run("bare EOF is an error", func(t *testing.T) {
		app, _ := newTestApp("", nil, nil, nil, nil)

		_, err := app.promptLine("> ")

		assert.Error(t, err)
	})
}

func TestApp_PromptPassword_NonTerminalFallback(t *testing.T) {
	// Under go test stdin is not a terminal, so the prompt falls back to a
	// plain line read from the injected reader.
	app, out := newTestApp("pw1\n", nil, nil, nil, nil)

	got, err := app.promptPassword("Enter password: ")

	require.NoError(t, err)
	assert.Equal(t, "pw1", got)
	assert.Contains(t, out.String(), "Enter password: ")
}
