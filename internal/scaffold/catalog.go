package scaffold

// RenderFunc produces the content of a single artifact from the shared
// configuration. Renderers are pure: same config, byte-identical output
// (the secret is part of the config, not regenerated per call).
type RenderFunc func(*ProjectConfig) ([]byte, error)

// Artifact describes one generated file: where it lives relative to the
// project root, whether it is emitted for a given configuration, and how
// its content is produced.
type Artifact struct {
	Path   string
	When   func(*ProjectConfig) bool
	Render RenderFunc
}

// Predicates over the feature toggles. Render functions that branch on a
// feature use the same ProjectConfig fields these read; there is no second
// copy of the toggle state anywhere.
func always(*ProjectConfig) bool         { return true }
func withDatabase(c *ProjectConfig) bool { return c.Features.Database }
func withDocker(c *ProjectConfig) bool   { return c.Features.Docker }

// Directories returns the directory tree to create under the project root,
// in parent-first order. Database-specific trees are omitted when the
// toggle is off.
func Directories(cfg *ProjectConfig) []string {
	dirs := []string{
		"app",
		"app/api",
		"app/api/v1",
		"app/api/v1/endpoints",
		"app/core",
	}
	if cfg.Features.Database {
		dirs = append(dirs, "app/db", "app/db/models")
	}
	dirs = append(dirs,
		"app/schemas",
		"app/services",
		"app/utils",
		"app/middleware",
		"tests",
		"tests/api",
		"tests/services",
	)
	if cfg.Features.Database {
		dirs = append(dirs, "alembic", "alembic/versions")
	}
	dirs = append(dirs,
		"scripts",
		"docs",
		"logs",
		".github",
		".github/workflows",
	)
	return dirs
}

// Catalog returns the full ordered artifact list. The order matters only
// for generation-log readability: dependency files come before the files
// that mention installing them, and package markers sit next to the code
// they accompany. Materialization of one artifact never reads another.
func Catalog() []Artifact {
	return []Artifact{
		// Dependency manifests
		{Path: "requirements.txt", When: always, Render: fromTemplate("requirements.txt.tmpl")},
		{Path: "requirements-dev.txt", When: always, Render: fromTemplate("requirements-dev.txt.tmpl")},

		// Application core
		{Path: "app/__init__.py", When: always, Render: emptyFile},
		{Path: "app/core/__init__.py", When: always, Render: emptyFile},
		{Path: "app/core/config.py", When: always, Render: fromTemplate("config.py.tmpl")},
		{Path: "app/core/security.py", When: always, Render: fromTemplate("security.py.tmpl")},
		{Path: "app/core/logger.py", When: always, Render: fromTemplate("logger.py.tmpl")},
		{Path: "logs/.gitkeep", When: always, Render: emptyFile},

		// Database layer
		{Path: "app/db/__init__.py", When: withDatabase, Render: emptyFile},
		{Path: "app/db/models/__init__.py", When: withDatabase, Render: emptyFile},
		{Path: "app/db/base.py", When: withDatabase, Render: fromTemplate("db_base.py.tmpl")},
		{Path: "app/db/session.py", When: withDatabase, Render: fromTemplate("db_session.py.tmpl")},

		// API layer
		{Path: "app/api/__init__.py", When: always, Render: emptyFile},
		{Path: "app/api/deps.py", When: always, Render: fromTemplate("deps.py.tmpl")},
		{Path: "app/api/v1/__init__.py", When: always, Render: emptyFile},
		{Path: "app/api/v1/api.py", When: always, Render: fromTemplate("api_router.py.tmpl")},
		{Path: "app/api/v1/endpoints/__init__.py", When: always, Render: emptyFile},
		{Path: "app/api/v1/endpoints/health.py", When: always, Render: fromTemplate("health.py.tmpl")},
		{Path: "app/main.py", When: always, Render: fromTemplate("main.py.tmpl")},
		{Path: "app/schemas/__init__.py", When: always, Render: emptyFile},
		{Path: "app/services/__init__.py", When: always, Render: emptyFile},
		{Path: "app/utils/__init__.py", When: always, Render: emptyFile},
		{Path: "app/middleware/__init__.py", When: always, Render: emptyFile},

		// Environment files: two artifacts, one rendering path. Both embed
		// the identical generated secret because both read cfg.Secret.
		{Path: ".env.example", When: always, Render: fromTemplate("env.tmpl")},
		{Path: ".env", When: always, Render: fromTemplate("env.tmpl")},

		// Containerization
		{Path: "Dockerfile", When: withDocker, Render: fromTemplate("dockerfile.tmpl")},
		{Path: "docker-compose.yml", When: withDocker, Render: renderCompose},
		{Path: ".dockerignore", When: withDocker, Render: fromTemplate("dockerignore.tmpl")},

		{Path: ".gitignore", When: always, Render: fromTemplate("gitignore.tmpl")},

		// Migrations
		{Path: "alembic.ini", When: withDatabase, Render: fromTemplate("alembic.ini.tmpl")},
		{Path: "alembic/env.py", When: withDatabase, Render: fromTemplate("alembic_env.py.tmpl")},
		{Path: "alembic/script.py.mako", When: withDatabase, Render: fromTemplate("script.py.mako.tmpl")},
		{Path: "alembic/versions/.gitkeep", When: withDatabase, Render: emptyFile},

		// Tests
		{Path: "tests/__init__.py", When: always, Render: emptyFile},
		{Path: "tests/api/__init__.py", When: always, Render: emptyFile},
		{Path: "tests/services/__init__.py", When: always, Render: emptyFile},
		{Path: "tests/conftest.py", When: always, Render: fromTemplate("conftest.py.tmpl")},
		{Path: "tests/test_health.py", When: always, Render: fromTemplate("test_health.py.tmpl")},
		{Path: "pytest.ini", When: always, Render: fromTemplate("pytest.ini.tmpl")},

		// Tooling and CI
		{Path: ".pre-commit-config.yaml", When: always, Render: fromTemplate("pre-commit-config.yaml.tmpl")},
		{Path: ".github/workflows/ci.yml", When: always, Render: renderCIWorkflow},

		// Docs
		{Path: "README.md", When: always, Render: fromTemplate("readme.md.tmpl")},
		{Path: "Makefile", When: always, Render: fromTemplate("makefile.tmpl")},
	}
}

// Resolved filters the catalog down to the artifacts emitted for cfg.
func Resolved(cfg *ProjectConfig) []Artifact {
	var out []Artifact
	for _, a := range Catalog() {
		if a.When(cfg) {
			out = append(out, a)
		}
	}
	return out
}
