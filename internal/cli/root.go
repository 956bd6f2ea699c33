package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/showdiff/internal/gitctx"
	"github.com/dshills/showdiff/internal/revrange"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitConfigError  = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "showdiff",
	Short: "Render git diffs into Markdown notes",
	Long: "Showdiff replaces show-diff blocks in Markdown notes with HTML diffs of the " +
		"surrounding git repository, selected by commit or by date.",
	SilenceUsage: true,
}

// Run executes the root command and returns an exit code.
func Run(ctx context.Context) int {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(blockCmd)
	rootCmd.AddCommand(argsCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// fail reports err on stderr and records the matching exit code.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exitCode = exitCodeFor(err)
}

func exitCodeFor(err error) int {
	var cfgErr *revrange.ConfigError
	var toolErr *gitctx.ToolError
	var usage *usageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cfgErr):
		return ExitConfigError
	case errors.As(err, &usage):
		return ExitUsageError
	case errors.As(err, &toolErr):
		return ExitRuntimeError
	default:
		return ExitRuntimeError
	}
}

// usageError marks invalid settings or arguments.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print showdiff version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "showdiff version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagVault, "vault", "", "Repository root for diffs (default: the note's repository)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the render cache")
}
