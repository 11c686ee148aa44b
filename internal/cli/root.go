package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/infovalid/internal/config"
	"github.com/dmitrymomot/infovalid/pkg/logger"
	"github.com/dmitrymomot/infovalid/pkg/validator"
)

const serviceName = "infovalid"

// Exit codes returned by Execute.
const (
	ExitOK     = 0
	ExitFailed = 1 // at least one value did not conform
	ExitError  = 2 // usage, input or configuration error
)

// ErrChecksFailed is returned by commands when at least one value failed.
var ErrChecksFailed = errors.New("one or more values failed validation")

var validOutputFormats = []string{config.OutputText, config.OutputJSON}

// app carries per-invocation state shared by the subcommands.
type app struct {
	log    *slog.Logger
	in     io.Reader
	out    io.Writer
	output string
}

// NewRootCmd builds the command tree. stdin and stdout are injected so tests
// can drive the commands without touching the process streams.
func NewRootCmd(cfg config.Config, log *slog.Logger, stdin io.Reader, stdout io.Writer) *cobra.Command {
	a := &app{log: log, in: stdin, out: stdout, output: cfg.Output}

	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Validate form input against fixed formats",
		Long:          "Check usernames, passwords, mobile numbers, email addresses, Chinese text, ID numbers, URLs, IP octets, school codes, license plates and letter-start strings.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(validOutputFormats, a.output) {
				return fmt.Errorf("invalid output format: %s (valid: %v)", a.output, validOutputFormats)
			}
			a.log.Debug("running command", logger.Command(cmd.CommandPath()))
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.PersistentFlags().StringVarP(&a.output, "output", "o", cfg.Output, "output format (text|json)")

	root.AddCommand(
		newCheckCmd(a),
		newBatchCmd(a),
		newKindsCmd(a),
	)
	return root
}

// Execute loads configuration, runs the command line in args and returns the
// process exit code.
func Execute(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return ExitError
	}

	log := cfg.Logger(serviceName)
	validator.SetLogger(log)

	root := NewRootCmd(cfg, log, os.Stdin, os.Stdout)
	root.SetArgs(args)
	root.SetErr(os.Stderr)
	return exitCode(root.Execute(), os.Stderr)
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrChecksFailed):
		return ExitFailed
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}
}
