package scaffold

import (
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(features Features) *ProjectConfig {
	return &ProjectConfig{
		Name:        "My API",
		Slug:        "my-api",
		Author:      DefaultAuthor,
		Email:       DefaultEmail,
		Description: DefaultDescription,
		Features:    features,
		Secret:      strings.Repeat("ab", 32),
	}
}

func artifactPaths(cfg *ProjectConfig) []string {
	var paths []string
	for _, a := range Resolved(cfg) {
		paths = append(paths, a.Path)
	}
	return paths
}

func TestCatalog_RelativePaths(t *testing.T) {
	for _, a := range Catalog() {
		assert.False(t, path.IsAbs(a.Path), "artifact paths are root-relative: %s", a.Path)
		assert.NotNil(t, a.When, "%s has no predicate", a.Path)
		assert.NotNil(t, a.Render, "%s has no renderer", a.Path)
	}
}

func TestCatalog_StableOrder(t *testing.T) {
	first := artifactPaths(testConfig(DefaultFeatures()))
	second := artifactPaths(testConfig(DefaultFeatures()))
	assert.Equal(t, first, second)

	// Dependency manifests come before the files that mention installing them.
	idx := make(map[string]int, len(first))
	for i, p := range first {
		idx[p] = i
	}
	assert.Less(t, idx["requirements.txt"], idx["README.md"])
	assert.Less(t, idx["requirements.txt"], idx["Makefile"])
}

func TestResolved_AllDefaults(t *testing.T) {
	paths := artifactPaths(testConfig(DefaultFeatures()))

	for _, want := range []string{
		"requirements.txt", "app/core/config.py", ".env", ".env.example",
		"Dockerfile", "docker-compose.yml", ".dockerignore",
		"alembic.ini", "alembic/env.py", "alembic/versions/.gitkeep",
		"app/db/base.py", "app/db/session.py",
		".github/workflows/ci.yml", "README.md", "Makefile",
	} {
		assert.Contains(t, paths, want)
	}
}

func TestResolved_NoDocker(t *testing.T) {
	features := DefaultFeatures()
	features.Docker = false
	paths := artifactPaths(testConfig(features))

	assert.NotContains(t, paths, "Dockerfile")
	assert.NotContains(t, paths, "docker-compose.yml")
	assert.NotContains(t, paths, ".dockerignore")
	assert.Contains(t, paths, "README.md")
}

func TestResolved_NoDatabase(t *testing.T) {
	features := DefaultFeatures()
	features.Database = false
	paths := artifactPaths(testConfig(features))

	for _, p := range paths {
		assert.False(t, strings.HasPrefix(p, "alembic"), "unexpected %s", p)
		assert.False(t, strings.HasPrefix(p, "app/db/"), "unexpected %s", p)
	}
	assert.NotContains(t, paths, "alembic.ini")
}

func TestDirectories_Gated(t *testing.T) {
	all := Directories(testConfig(DefaultFeatures()))
	assert.Contains(t, all, "alembic/versions")
	assert.Contains(t, all, "app/db/models")

	features := DefaultFeatures()
	features.Database = false
	trimmed := Directories(testConfig(features))
	assert.NotContains(t, trimmed, "alembic")
	assert.NotContains(t, trimmed, "alembic/versions")
	assert.NotContains(t, trimmed, "app/db")
	assert.Contains(t, trimmed, "app/core")
	assert.Contains(t, trimmed, ".github/workflows")
}

func TestDirectories_ParentFirst(t *testing.T) {
	dirs := Directories(testConfig(DefaultFeatures()))
	seen := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		parent := path.Dir(d)
		if parent != "." {
			require.True(t, seen[parent], "parent %s must precede %s", parent, d)
		}
		seen[d] = true
	}
}
