package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_Default(t *testing.T) {
	tmpl, err := Parse("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(&buf, []string{"hi", "<there>", ""}))
	require.Equal(t, "hi\n<there>\n\n", buf.String())
}

func TestRender_Fields(t *testing.T) {
	tmpl, err := Parse("{{index}} {{length}} {{{value}}}")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(&buf, []string{"a", "世界"}))
	require.Equal(t, "0 1 a\n1 6 世界\n", buf.String())
}

func TestRender_EscapesDoubleBraces(t *testing.T) {
	tmpl, err := Parse("{{value}}")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(&buf, []string{"a&b"}))
	require.Equal(t, "a&amp;b\n", buf.String())
}

func TestRender_NoRecords(t *testing.T) {
	tmpl, err := Parse("{{value}}")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(&buf, nil))
	require.Empty(t, buf.String())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("{{#open}}")
	require.ErrorContains(t, err, "invalid template")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriteError(t *testing.T) {
	tmpl, err := Parse("x")
	require.NoError(t, err)
	require.Error(t, tmpl.Render(failingWriter{}, []string{"a"}))
}
