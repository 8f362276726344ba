// Package vcs creates the initial git snapshot for generated projects.
package vcs

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/HartBrook/apiforge/internal/errors"
)

const initialCommitMessage = "Initial commit: FastAPI project boilerplate"

// Available reports whether a git binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Snapshot runs git init, add and commit in dir. Callers treat failures as
// warnings: the generated tree is complete and usable without history.
func Snapshot(dir string) error {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return errors.GitUnavailable()
	}

	steps := []struct {
		name string
		args []string
	}{
		{"init", []string{"init"}},
		{"add", []string{"add", "."}},
		{"commit", []string{"commit", "-m", initialCommitMessage}},
	}

	for _, step := range steps {
		cmd := exec.Command(gitPath, step.args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			return errors.GitFailed(step.name, fmt.Errorf("%w: %s", err, bytes.TrimSpace(out)))
		}
	}

	return nil
}
