// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielhkuo/apportion/apportionment"
	"github.com/danielhkuo/apportion/cliparse"
	"github.com/danielhkuo/apportion/electionio"
	"github.com/danielhkuo/apportion/logging"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// Exit codes
const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
	exitUnresolved   = 3
)

// app carries what every subcommand needs once flags are resolved
type app struct {
	cfg    cliparse.Config
	logger *zap.Logger
	stdin  io.Reader
	stderr io.Writer
}

func main() {
	// signal.NotifyContext stops in-flight batches on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line and turns a failure into an error
// response on stderr plus an exit code.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{logger: zap.NewNop(), stdin: stdin, stderr: stderr}

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	a.logger.Error("command failed", zap.Error(err))
	_ = a.logger.Sync()
	if werr := electionio.WriteError(stderr, electionio.NewErrorResponse(failedFile(err), err)); werr != nil {
		return exitFailure
	}
	return exitCode(err)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "apportion",
		Short: "Allocate council seats to party lists",
		Long: `apportion allocates the seats of a municipal council to party lists.

Full seats go to every list whose votes reach the electoral quota. Residual
seats go by largest remainder (councils under 19 seats) or largest surplus
(19 seats and up), then by largest averages. Every residual seat is recorded
with the method, the tied candidates and the decisive value, in exact
fractions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliparse.Load(cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg

			logCfg := logging.DefaultConfig()
			logCfg.Level = cfg.LogLevel
			logCfg.Format = cfg.LogFormat
			logCfg.File = cfg.LogFile
			logger, err := logging.New(logCfg, a.stderr)
			if err != nil {
				return err
			}
			a.logger = logger.With(zap.String("run_id", uuid.NewString()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	cliparse.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newRunCmd(a), newVerifyCmd(a), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "apportion "+version)
			return nil
		},
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, apportionment.ErrUnresolvedTie):
		return exitUnresolved
	case errors.Is(err, apportionment.ErrInvalidInput):
		return exitInvalidInput
	}
	return exitFailure
}

// failedFile names the election file behind err, if any
func failedFile(err error) string {
	var jobErr *apportionment.JobError
	if errors.As(err, &jobErr) {
		return jobErr.Name
	}
	return ""
}
