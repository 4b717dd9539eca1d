package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestBooksCommands(t *testing.T) {
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "cli.db"))
	owner := "--owner=ana@example.com"

	out := run(t, "books", "list", owner)
	assert.Contains(t, out, "3 match(es)")

	out = run(t, "books", "add", owner,
		"--title", "Neuromancer",
		"--author", "William Gibson",
		"--category", "fiction",
		"--isbn", "0441569595",
	)
	assert.Contains(t, out, "added #4 Neuromancer")

	out = run(t, "books", "toggle", "--owner=Ana@Example.com", "4")
	assert.Contains(t, out, "is now reading")

	out = run(t, "books", "list", owner, "--search", "gibson", "--page", "9")
	assert.Contains(t, out, "Neuromancer")
	assert.Contains(t, out, "page 1 of 1, 1 match(es)")

	out = run(t, "books", "rm", owner, "4")
	assert.Contains(t, out, "deleted #4")

	out = run(t, "books", "stats", owner)
	assert.Contains(t, out, "total: 3")
}

func TestBooksRequireOwner(t *testing.T) {
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "cli.db"))
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"books", "stats"})
	require.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestParseID(t *testing.T) {
	id, err := parseID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, bad := range []string{"", "0", "-1", "abc"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}
