package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"fixhtml"}, args...))
	return out.String(), err
}

func TestFixAction(t *testing.T) {
	root := t.TempDir()
	page := filepath.Join(root, "site_20251025_165706", "index.html")
	require.NoError(t, os.MkdirAll(filepath.Dir(page), 0o755))
	require.NoError(t, os.WriteFile(page, []byte(`<p>x</p><meta name="viewport" content="width=device-width">`), 0o644))

	out, err := runApp(t, "--root", root, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Fixed: "+page)
	raw, _ := os.ReadFile(page)
	assert.NotContains(t, string(raw), "<head>")

	out, err = runApp(t, "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Fixed: "+page)
	raw, _ = os.ReadFile(page)
	assert.Equal(t, "<head>\n<meta name=\"viewport\" content=\"width=device-width\">\n</head>\n<p>x</p>", string(raw))

	out, err = runApp(t, "-r", root)
	require.NoError(t, err)
	assert.Contains(t, out, "OK: "+page)
}

func TestFixAction_Empty(t *testing.T) {
	out, err := runApp(t, "--root", t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, out, "No generated index.html files found.")
}

func TestFixAction_MissingRoot(t *testing.T) {
	_, err := runApp(t, "--root", filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
}
