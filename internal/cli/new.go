package cli

import (
	"fmt"

	"github.com/HartBrook/apiforge/internal/config"
	"github.com/HartBrook/apiforge/internal/scaffold"
	"github.com/HartBrook/apiforge/internal/vcs"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type newOptions struct {
	author      string
	email       string
	description string
	noPostgres  bool
	noRedis     bool
	noDocker    bool
	celery      bool
	skipGit     bool
}

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new <project-name>",
		Short: "Generate a new FastAPI project",
		Long: `Generate a complete FastAPI project in a directory named after
the project slug (lower-cased name with spaces and underscores replaced
by hyphens).

PostgreSQL, Redis and Docker support are included by default; disable
them with the --no-* flags. Celery background tasks are opt-in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.author, "author", "", "author name")
	cmd.Flags().StringVar(&opts.email, "email", "", "author email")
	cmd.Flags().StringVar(&opts.description, "description", "", "project description")
	cmd.Flags().BoolVar(&opts.noPostgres, "no-postgres", false, "skip PostgreSQL setup")
	cmd.Flags().BoolVar(&opts.noRedis, "no-redis", false, "skip Redis setup")
	cmd.Flags().BoolVar(&opts.noDocker, "no-docker", false, "skip Docker setup")
	cmd.Flags().BoolVar(&opts.celery, "celery", false, "include Celery for background tasks")
	cmd.Flags().BoolVar(&opts.skipGit, "skip-git", false, "skip the initial git commit")

	return cmd
}

func runNew(name string, opts *newOptions) error {
	// Defaults file is optional; flags always win.
	defaults, err := config.Load()
	if err != nil {
		return err
	}

	cfg, err := scaffold.Resolve(resolveOptions(name, opts, defaults))
	if err != nil {
		return err
	}

	title := cases.Title(language.English).String(cfg.Name)
	fmt.Printf("Generating FastAPI project: %s\n", info(title))
	fmt.Printf("  %s %s\n\n", dim("Output:"), cfg.RootPath)

	result, err := scaffold.Materialize(cfg)
	if err != nil {
		return err
	}

	printSuccess("Created %d directories and %d files", len(result.CreatedDirs), len(result.CreatedFiles))

	if opts.skipGit {
		fmt.Printf("  %s\n", dim("Skipped git initialization"))
	} else if err := vcs.Snapshot(cfg.RootPath); err != nil {
		// Best-effort: the scaffold is complete without version history.
		printWarning("Git initialization failed: %v", err)
	} else {
		printSuccess("Git repository initialized")
	}

	printNextSteps(cfg)
	return nil
}

// resolveOptions merges flag values over defaults-file values over the
// built-in toggle policy.
func resolveOptions(name string, opts *newOptions, defaults *config.Config) scaffold.Options {
	features := scaffold.DefaultFeatures()
	if defaults.Features.Postgres != nil {
		features.Database = *defaults.Features.Postgres
	}
	if defaults.Features.Redis != nil {
		features.Cache = *defaults.Features.Redis
	}
	if defaults.Features.Docker != nil {
		features.Docker = *defaults.Features.Docker
	}
	if defaults.Features.Celery != nil {
		features.Celery = *defaults.Features.Celery
	}

	if opts.noPostgres {
		features.Database = false
	}
	if opts.noRedis {
		features.Cache = false
	}
	if opts.noDocker {
		features.Docker = false
	}
	if opts.celery {
		features.Celery = true
	}

	author := opts.author
	if author == "" {
		author = defaults.Author
	}
	email := opts.email
	if email == "" {
		email = defaults.Email
	}
	description := opts.description
	if description == "" {
		description = defaults.Description
	}

	return scaffold.Options{
		Name:        name,
		Author:      author,
		Email:       email,
		Description: description,
		Features:    features,
	}
}

func printNextSteps(cfg *scaffold.ProjectConfig) {
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  1. cd %s\n", cfg.Slug)
	fmt.Println("  2. Create a virtual environment: python -m venv venv")
	fmt.Println("  3. Activate it: source venv/bin/activate")
	fmt.Printf("  4. Install dependencies: %s\n", info("make dev-install"))
	fmt.Println("  5. Update .env with your configuration")
	if cfg.Features.Database {
		fmt.Printf("  6. Run migrations: %s\n", info("make migrate"))
		fmt.Printf("  7. Start development server: %s\n", info("make run"))
	} else {
		fmt.Printf("  6. Start development server: %s\n", info("make run"))
	}
	fmt.Println()
	fmt.Println("API will be available at: http://localhost:8000")
	fmt.Println("Documentation: http://localhost:8000/api/v1/docs")
}
