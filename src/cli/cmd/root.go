package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vigilhq/vigil/src/config"
	"github.com/vigilhq/vigil/src/output"
)

// Exit codes shared by all commands.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var (
	cfgFile     string
	orgFlag     string
	jsonOut     bool
	markdownOut bool
	verbose     bool
	cfg         *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vigil",
	Short: "Vigil platform CLI",
	Long:  "vigil — command-line client for the Vigil security-scanning platform.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if jsonOut && markdownOut {
			return usageErrorf("--json and --markdown are mutually exclusive")
		}
		// Skip config loading for commands that don't need it.
		if cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .vigil.yml)")
	rootCmd.PersistentFlags().StringVar(&orgFlag, "org", "", "organization slug (default: org from config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output the result envelope as JSON")
	rootCmd.PersistentFlags().BoolVar(&markdownOut, "markdown", false, "output as markdown")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// ExitError wraps an error with a process exit code. A nil Err means
// the failure was already rendered by the output layer.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// usageErrorf builds an invalid-input failure (exit code 2).
func usageErrorf(format string, args ...any) error {
	return &ExitError{Code: exitUsage, Err: fmt.Errorf(format, args...)}
}

// finish converts an output-layer exit code into the command result.
func finish(code int) error {
	if code == exitOK {
		return nil
	}
	return &ExitError{Code: code}
}

// outputFormat resolves the persistent format flags.
func outputFormat() output.Format {
	switch {
	case jsonOut:
		return output.FormatJSON
	case markdownOut:
		return output.FormatMarkdown
	default:
		return output.FormatText
	}
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", exitErr.Err)
			}
			return exitErr.Code
		}
		fmt.Fprintln(os.Stderr, err)
		return exitFailure
	}
	return exitOK
}
