package scaffold

import (
	"os"
	"path/filepath"

	"github.com/HartBrook/apiforge/internal/errors"
)

// File permissions for generated trees.
const (
	dirPerm  = 0755
	filePerm = 0644
)

// Result summarizes a materialization run.
type Result struct {
	CreatedDirs  []string // relative to RootPath
	CreatedFiles []string // relative to RootPath, catalog order
}

// Materialize writes the resolved artifact set under cfg.RootPath.
// Directory creation is idempotent; file writes truncate and overwrite, so
// regenerating into an existing target directory is destructive. The first
// unrecoverable filesystem failure aborts the run; already-written files
// are left in place (regeneration is the recovery path, not rollback).
func Materialize(cfg *ProjectConfig) (*Result, error) {
	result := &Result{}

	if err := os.MkdirAll(cfg.RootPath, dirPerm); err != nil {
		return nil, errors.WriteFailed(cfg.RootPath, err)
	}

	for _, dir := range Directories(cfg) {
		if err := os.MkdirAll(filepath.Join(cfg.RootPath, dir), dirPerm); err != nil {
			return nil, errors.WriteFailed(dir, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, dir)
	}

	for _, artifact := range Resolved(cfg) {
		content, err := artifact.Render(cfg)
		if err != nil {
			return nil, errors.RenderFailed(artifact.Path, err)
		}

		fullPath := filepath.Join(cfg.RootPath, artifact.Path)
		if err := os.MkdirAll(filepath.Dir(fullPath), dirPerm); err != nil {
			return nil, errors.WriteFailed(artifact.Path, err)
		}
		if err := os.WriteFile(fullPath, content, filePerm); err != nil {
			return nil, errors.WriteFailed(artifact.Path, err)
		}
		result.CreatedFiles = append(result.CreatedFiles, artifact.Path)
	}

	return result, nil
}
