package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	fslinestore "github.com/Overland-East-Bay/name-sorter/internal/adapters/filesystem/linestore"
	"github.com/Overland-East-Bay/name-sorter/internal/app/names"
	"github.com/Overland-East-Bay/name-sorter/internal/platform/logging"
	"github.com/Overland-East-Bay/name-sorter/internal/ports/out/linestore"
)

const usage = "Usage: name-sorter <path-to-unsorted-names-file>"

type options struct {
	stdout     io.Writer
	stderr     io.Writer
	store      linestore.Store
	outputPath string
	logLevel   string
}

func defaultOptions() options {
	return options{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		store:      fslinestore.NewStore(),
		outputPath: names.DefaultOutputPath,
		logLevel:   "warn",
	}
}

func newRootCmd(opts options) *cobra.Command {
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "name-sorter <path-to-unsorted-names-file>",
		Short: "Sort a list of names by last name, then given names",
		Long: `Reads one full name per line, sorts the names by last name and then by
given names, writes the result to ` + names.DefaultOutputPath + ` in the working
directory and prints it to standard output.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = logging.New(opts.logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				fmt.Fprintln(opts.stdout, usage)
				return nil
			}
			return runSort(cmd, opts, logger, args[0])
		},
	}
	cmd.SetOut(opts.stdout)
	cmd.SetErr(opts.stderr)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintln(opts.stderr, usage)
		return err
	})
	return cmd
}

func runSort(cmd *cobra.Command, opts options, logger *zap.Logger, inputPath string) error {
	svc := names.NewService(opts.store, logger)

	sorted, err := svc.SortFile(cmd.Context(), inputPath, opts.outputPath)
	if err != nil {
		if errors.Is(err, names.ErrInputNotFound) {
			fmt.Fprintf(opts.stdout, "Error: The file '%s' does not exist.\n", inputPath)
			return nil
		}
		logger.Error("sort failed", zap.String("input", inputPath), zap.Error(err))
		return err
	}

	for _, n := range sorted {
		fmt.Fprintln(opts.stdout, n.String())
	}
	return nil
}
