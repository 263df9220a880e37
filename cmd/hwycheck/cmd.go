package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-highway/fixedvec/hwy"
	"github.com/go-highway/fixedvec/hwy/oracle"
)

// errFailed reports that at least one check failed. The failures themselves
// have already been printed.
var errFailed = errors.New("hwycheck: checks failed")

type options struct {
	seed       uint64
	iterations int
	suites     []string
	jsonOut    bool
	verbose    bool
	list       bool
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "hwycheck",
		Short:        "Verify hwy vector operations against per-lane reference semantics",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.Uint64Var(&opts.seed, "seed", oracle.DefaultSeed, "random seed")
	f.IntVar(&opts.iterations, "iterations", oracle.DefaultIterations, "random inputs per suite")
	f.StringSliceVar(&opts.suites, "suite", nil,
		"suites to run, repeatable (default all: "+strings.Join(oracle.SuiteNames(), ", ")+")")
	f.BoolVar(&opts.jsonOut, "json", false, "print reports and logs as JSON")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log per-suite progress")
	f.BoolVar(&opts.list, "list", false, "list the available suites and exit")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	out := cmd.OutOrStdout()
	if opts.list {
		for _, name := range oracle.SuiteNames() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	hwy.SetLogger(newLogger(cmd.ErrOrStderr(), opts))
	defer hwy.SetLogger(nil)

	cfg := oracle.NewConfig(
		oracle.WithSeed(opts.seed),
		oracle.WithIterations(opts.iterations),
		oracle.WithSuites(opts.suites...),
	)
	reports, err := oracle.RunAll(cmd.Context(), cfg)
	if err != nil && !errors.Is(err, oracle.ErrMismatch) {
		return err
	}

	if opts.jsonOut {
		if err := writeJSON(out, cfg, reports); err != nil {
			return err
		}
	} else {
		writeTable(out, reports)
	}
	if err != nil {
		return errFailed
	}
	return nil
}

func newLogger(w io.Writer, opts options) *slog.Logger {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	if opts.jsonOut {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

type summary struct {
	Level      string          `json:"level"`
	Seed       uint64          `json:"seed"`
	Iterations int             `json:"iterations"`
	Passed     bool            `json:"passed"`
	Reports    []oracle.Report `json:"reports"`
}

func writeJSON(w io.Writer, cfg oracle.Config, reports []oracle.Report) error {
	s := summary{
		Level:      hwy.CurrentName(),
		Seed:       cfg.Seed,
		Iterations: cfg.Iterations,
		Passed:     true,
		Reports:    reports,
	}
	for _, r := range reports {
		if r.Failures > 0 {
			s.Passed = false
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func writeTable(w io.Writer, reports []oracle.Report) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "SUITE\tCHECKS\tFAILURES\tSTATUS\n")
	for _, r := range reports {
		status := "ok"
		if r.Failures > 0 {
			status = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.Suite, r.Checks, r.Failures, status)
	}
	tw.Flush()
	for _, r := range reports {
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}
}
