package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type options struct {
	output  string
	pkg     string
	seed    uint64
	rows    int
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:           "hwytables",
		Short:         "Generate literal lane tables for the oracle package",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return run(cmd, opts, logger)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "tables_gen.go", `output file, or "-" for stdout`)
	f.StringVar(&opts.pkg, "package", "oracle", "package name of the generated file")
	f.Uint64Var(&opts.seed, "seed", 1, "SplitMix64 seed for the random rows")
	f.IntVar(&opts.rows, "rows", 3, "random rows per operation and lane type")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log each generated table")
	return cmd
}

func run(cmd *cobra.Command, opts options, logger *slog.Logger) error {
	if opts.rows < 0 {
		return fmt.Errorf("--rows must not be negative, got %d", opts.rows)
	}
	tables := generate(opts.seed, opts.rows)
	for _, t := range tables {
		logger.Debug("generated table", "type", t.Type, "rows", len(t.Rows))
	}

	src, err := render(opts.pkg, tables)
	if err != nil {
		return err
	}
	if opts.output == "-" {
		_, err = cmd.OutOrStdout().Write(src)
		return err
	}
	if err := os.WriteFile(opts.output, src, 0o644); err != nil {
		return fmt.Errorf("write tables: %w", err)
	}
	logger.Info("wrote tables", "path", opts.output, "types", len(tables))
	return nil
}
