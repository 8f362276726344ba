package vcs

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	if !Available() {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# demo\n"), 0644))

	// Commit needs an identity; keep it local to the test repo.
	t.Setenv("GIT_AUTHOR_NAME", "test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")

	err := Snapshot(dir)
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(dir, ".git"))

	out, err := exec.Command("git", "-C", dir, "log", "--oneline").Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Initial commit")
}

func TestSnapshot_NotADirectory(t *testing.T) {
	if !Available() {
		t.Skip("git not installed")
	}

	err := Snapshot(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}
