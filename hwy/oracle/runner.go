package oracle

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/go-highway/fixedvec/hwy"
)

// Suite is a named group of checks. Run performs one iteration.
type Suite struct {
	Name string
	Run  func(tc *Context, rng *rand.Rand)
	// Once marks suites whose inputs are fixed, which run a single time
	// regardless of Config.Iterations.
	Once bool
}

// Suites returns every registered suite in a fixed order. A suite's
// position determines its random stream, so the order must stay stable.
func Suites() []Suite {
	return []Suite{
		{Name: "tables", Run: func(tc *Context, _ *rand.Rand) { RunTables(tc) }, Once: true},
		{Name: "arith", Run: runArith},
		{Name: "bitwise", Run: runBitwise},
		{Name: "shift", Run: runShift},
		{Name: "compare", Run: runCompare},
		{Name: "reduce", Run: runReduce},
		{Name: "fused", Run: runFused},
		{Name: "convert", Run: runConvert},
		{Name: "classify", Run: runClassify},
		{Name: "memory", Run: runMemory},
		{Name: "mask", Run: runMask},
		{Name: "math", Run: runMath},
	}
}

// SuiteNames returns the names of all registered suites.
func SuiteNames() []string {
	return lo.Map(Suites(), func(s Suite, _ int) string { return s.Name })
}

// Run executes one suite with its own Context and random stream.
func Run(ctx context.Context, s Suite, seed, stream uint64, iterations int) (*Context, error) {
	tc := NewContext(s.Name)
	rng := NewRNG(seed, stream)
	if s.Once {
		iterations = 1
	}
	for range iterations {
		if err := ctx.Err(); err != nil {
			return tc, err
		}
		s.Run(tc, rng)
	}
	return tc, nil
}

// RunAll runs the suites selected by cfg concurrently and returns one
// Report per suite in registry order. The error joins every recorded
// failure; use errors.Is(err, ErrMismatch) to tell them from cancellation.
func RunAll(ctx context.Context, cfg Config) ([]Report, error) {
	all := Suites()
	indices, err := selectSuites(all, cfg.Suites)
	if err != nil {
		return nil, err
	}

	logger := hwy.Logger()
	logger.Info("oracle run",
		"seed", cfg.Seed,
		"iterations", cfg.Iterations,
		"suites", len(indices),
		"level", hwy.CurrentName())

	contexts := make([]*Context, len(indices))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for slot, idx := range indices {
		g.Go(func() error {
			start := time.Now()
			tc, err := Run(gctx, all[idx], cfg.Seed, uint64(idx), cfg.Iterations)
			contexts[slot] = tc
			logger.Debug("suite done",
				"suite", tc.Suite(),
				"checks", tc.Checks(),
				"failures", tc.Failures(),
				"elapsed", time.Since(start))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("oracle: %w", err)
	}

	reports := lo.Map(contexts, func(tc *Context, _ int) Report { return tc.Report() })
	errs := lo.Map(contexts, func(tc *Context, _ int) error { return tc.Err() })
	return reports, errors.Join(errs...)
}

// selectSuites maps names to registry indices, keeping registry order.
// No names selects everything.
func selectSuites(all []Suite, names []string) ([]int, error) {
	if len(names) == 0 {
		return lo.Range(len(all)), nil
	}
	known := lo.Map(all, func(s Suite, _ int) string { return s.Name })
	if unknown, _ := lo.Difference(lo.Uniq(names), known); len(unknown) > 0 {
		return nil, fmt.Errorf("oracle: unknown suites %v (known: %v)", unknown, known)
	}
	return lo.FilterMap(all, func(s Suite, i int) (int, bool) {
		return i, lo.Contains(names, s.Name)
	}), nil
}
