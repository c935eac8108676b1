// Command spritenorm audits an event sprite tree and renames its sprites into
// the canonical "<Event>_<Category>_<index>" scheme.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/spritenorm/internal/config"
	"github.com/backmassage/spritenorm/internal/display"
	"github.com/backmassage/spritenorm/internal/logging"
	"github.com/backmassage/spritenorm/internal/pipeline"
)

// version and commit are set at build time via -ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

// Exit codes.
const (
	exitFindings = 1 // audit findings or rename problems
	exitUsage    = 2 // invalid flags or configuration
)

type exitError struct {
	Code int
	Err  error
}

func (e *exitError) Error() string {
	if e == nil || e.Err == nil {
		return "command failed"
	}
	return e.Err.Error()
}

func (e *exitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var coded *exitError
		if errors.As(err, &coded) {
			if coded.Err != nil {
				_, _ = fmt.Fprintln(os.Stderr, "spritenorm:", coded.Err)
			}
			os.Exit(coded.Code)
		}
		_, _ = fmt.Fprintln(os.Stderr, "spritenorm:", err)
		os.Exit(1)
	}
}

// app is the configuration shared by the subcommands of one invocation.
type app struct {
	cfg   config.Config
	flags *config.Flags
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.DefaultConfig()}
	root := &cobra.Command{
		Use:           "spritenorm",
		Short:         "Audit and normalize event sprite folders",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	a.flags = config.BindFlags(root.PersistentFlags(), &a.cfg)

	root.AddCommand(
		newVersionCmd(),
		newAuditCmd(a),
		newRenameCmd(a),
		newCleanCmd(a),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print spritenorm version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "spritenorm %s (%s)\n", version, commit)
			return err
		},
	}
}

// start finishes the configuration for rootDir, opens the logger and prints
// the banner. The returned function closes the logger.
func (a *app) start(cmd *cobra.Command, rootDir string) (*pipeline.Runner, func(), error) {
	a.cfg.RootDir = rootDir
	a.flags.Apply(&a.cfg)
	if err := a.cfg.Validate(); err != nil {
		return nil, nil, &exitError{Code: exitUsage, Err: err}
	}

	log, err := logging.NewLogger(&a.cfg)
	if err != nil {
		return nil, nil, err
	}
	display.PrintBanner(cmd.OutOrStdout())

	runner := pipeline.NewRunner(&a.cfg, log, pipeline.Prompt{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
	log.SetRunID(runner.RunID())
	log.Debug("spritenorm %s, run %s", version, runner.RunID())
	return runner, func() { _ = log.Close() }, nil
}
