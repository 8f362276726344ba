// Package cli implements the apiforge command-line interface.
package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/HartBrook/apiforge/internal/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Output helpers.
	successIcon = color.New(color.FgGreen).Sprint("✓")
	warningIcon = color.New(color.FgYellow).Sprint("⚠")
	errorIcon   = color.New(color.FgRed).Sprint("✗")

	info = color.New(color.FgCyan).SprintFunc()
	dim  = color.New(color.Faint).SprintFunc()
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "apiforge",
		Short: "Generate production-ready FastAPI projects",
		Long: `Apiforge generates a complete FastAPI project skeleton.

One command produces the application source tree, tests, dependency
manifests, environment files, Docker setup, database migrations, CI
workflow, and docs - all kept consistent with each other through four
feature toggles (PostgreSQL, Redis, Docker, Celery).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("apiforge %s\n", Version)
		},
	}
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print error with hint if available
		fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, err.Error())
		var fe *errors.ForgeError
		if stderrors.As(err, &fe) && fe.Hint != "" {
			fmt.Fprintf(os.Stderr, "  %s\n", dim(fe.Hint))
		}
		return err
	}
	return nil
}

// printSuccess prints a success message.
func printSuccess(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", successIcon, fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", warningIcon, fmt.Sprintf(format, args...))
}
