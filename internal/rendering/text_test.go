package rendering

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderText_Article(t *testing.T) {
	e, err := BuildEmbed(articlePayload())
	require.NoError(t, err)

	out, err := RenderText(e, "")
	require.NoError(t, err)
	want := "Quantum mechanics\n" +
		"<https://en.wikipedia.org/wiki/Quantum_mechanics>\n" +
		"\n" +
		"Quantum mechanics is a theory. It describes nature.\n" +
		"\n" +
		"Image: https://upload.wikimedia.org/b.jpg\n" +
		"\n" +
		"Requested by: alice\n"
	assert.Equal(t, want, out)
}

func TestRenderText_Fields(t *testing.T) {
	e := &Embed{
		Title:  "Article Options",
		Fields: []EmbedField{{Name: "Possible entries: ", Value: "A\nB"}},
		Footer: "Requested by: bob",
	}

	out, err := RenderText(e, "")
	require.NoError(t, err)
	assert.Equal(t, "Article Options\n\nPossible entries: \n  A\n  B\n\nRequested by: bob\n", out)
}

func TestRenderText_CustomTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("{{ escape .Title }} | {{ .Footer }}"), 0o600))

	out, err := RenderText(&Embed{Title: "a_b", Footer: "f"}, path)
	require.NoError(t, err)
	assert.Equal(t, `a\_b | f`, out)
}

func TestRenderText_MissingTemplate(t *testing.T) {
	_, err := RenderText(&Embed{}, filepath.Join(t.TempDir(), "missing.tmpl"))
	require.Error(t, err)
	var tmplErr *TemplateError
	require.True(t, errors.As(err, &tmplErr))
	assert.Contains(t, tmplErr.Error(), "template file not found")
}

func TestRenderText_InvalidTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("{{ .Title "), 0o600))

	_, err := RenderText(&Embed{}, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse template")
}

func TestRenderText_ExecuteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exec.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("{{ .Missing }}"), 0o600))

	_, err := RenderText(&Embed{}, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute template")
}

func TestRenderText_Nil(t *testing.T) {
	_, err := RenderText(nil, "")
	assert.Error(t, err)
}
