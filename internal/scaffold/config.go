// Package scaffold generates FastAPI project trees from a resolved configuration.
package scaffold

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/HartBrook/apiforge/internal/errors"
)

// Default values for optional fields.
const (
	DefaultAuthor      = "Your Name"
	DefaultEmail       = "your.email@example.com"
	DefaultDescription = "A FastAPI project"

	// secretBytes is the entropy of the generated SECRET_KEY (rendered as hex).
	secretBytes = 32
)

// Features holds the four independent generation toggles.
type Features struct {
	Database bool // PostgreSQL, SQLAlchemy, Alembic
	Cache    bool // Redis, rate limiting
	Docker   bool // Dockerfile, docker-compose, .dockerignore
	Celery   bool // background task workers
}

// Options is the raw user input before resolution.
type Options struct {
	Name        string
	Author      string
	Email       string
	Description string
	Features    Features
}

// ProjectConfig is the canonical, immutable generation configuration.
// All renderers read from one shared instance; nothing mutates it after
// Resolve returns.
type ProjectConfig struct {
	Name        string // raw display name, as given
	Slug        string // derived identifier, used for paths and container names
	Author      string
	Email       string
	Description string
	Features    Features

	// Secret is a random token generated once per run. Every artifact that
	// embeds a secret interpolates this same value.
	Secret string

	// RootPath is the output directory: cwd joined with Slug.
	RootPath string
}

// DefaultFeatures returns the built-in toggle policy: database, cache and
// docker on, celery off.
func DefaultFeatures() Features {
	return Features{Database: true, Cache: true, Docker: true, Celery: false}
}

// Slugify derives the project slug from a display name: lower-case, then
// each space and underscore becomes a hyphen. No other characters are
// altered, so punctuation survives as-is.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "_", "-")
	return slug
}

// Resolve validates options and builds the canonical ProjectConfig,
// deriving the slug, the secret and the output path exactly once.
func Resolve(opts Options) (*ProjectConfig, error) {
	if strings.TrimSpace(opts.Name) == "" {
		return nil, errors.NameRequired()
	}

	secret, err := newSecret()
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to generate secret key", "", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to resolve working directory", "", err)
	}

	cfg := &ProjectConfig{
		Name:        opts.Name,
		Slug:        Slugify(opts.Name),
		Author:      opts.Author,
		Email:       opts.Email,
		Description: opts.Description,
		Features:    opts.Features,
		Secret:      secret,
	}
	cfg.RootPath = filepath.Join(cwd, cfg.Slug)

	if cfg.Author == "" {
		cfg.Author = DefaultAuthor
	}
	if cfg.Email == "" {
		cfg.Email = DefaultEmail
	}
	if cfg.Description == "" {
		cfg.Description = DefaultDescription
	}

	return cfg, nil
}

// newSecret returns a cryptographically random token as lowercase hex.
func newSecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
