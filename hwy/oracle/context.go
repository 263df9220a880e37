// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package oracle verifies hwy vectors against per-lane reference semantics.
//
// Each suite draws random inputs, calls the vector operation under test and
// re-derives the expected value of every lane independently. Masked forms are
// additionally checked to leave their mask-false lanes untouched. Results are
// collected in a Context owned by the suite; nothing is global, so suites can
// run concurrently.
//
// Basic usage:
//
//	reports, err := oracle.RunAll(ctx, oracle.NewConfig(oracle.WithSeed(7)))
//	if err != nil {
//	    // errors.Is(err, oracle.ErrMismatch) for lane mismatches
//	}
package oracle

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/go-highway/fixedvec/hwy"
	"github.com/go-highway/fixedvec/hwy/lane"
)

// ErrMismatch is wrapped by every failure a Context records.
var ErrMismatch = errors.New("oracle: mismatch")

// maxRecorded bounds the failures kept per Context; all are still counted.
const maxRecorded = 32

// Context accumulates the outcome of one suite run.
//
// A Context is not safe for concurrent use. Give each goroutine its own and
// combine the results with Report and Err.
type Context struct {
	suite    string
	logger   *slog.Logger
	checks   int
	failures int
	errs     []error
}

// NewContext returns an empty Context for the named suite. Failures are
// logged at warn level through hwy.Logger.
func NewContext(suite string) *Context {
	return &Context{
		suite:  suite,
		logger: hwy.Logger().With(slog.String("suite", suite)),
	}
}

// Suite returns the suite name given to NewContext.
func (tc *Context) Suite() string { return tc.suite }

// Checks returns the number of checks performed so far.
func (tc *Context) Checks() int { return tc.checks }

// Failures returns the number of failed checks so far.
func (tc *Context) Failures() int { return tc.failures }

// Failed reports whether any check failed.
func (tc *Context) Failed() bool { return tc.failures > 0 }

// Check records a single check. When ok is false the failure is described
// by format and args.
func (tc *Context) Check(name string, ok bool, format string, args ...any) bool {
	tc.checks++
	if !ok {
		tc.fail(fmt.Errorf("%s/%s: %s: %w", tc.suite, name, fmt.Sprintf(format, args...), ErrMismatch))
	}
	return ok
}

func (tc *Context) fail(err error) {
	tc.failures++
	if len(tc.errs) < maxRecorded {
		tc.errs = append(tc.errs, err)
	}
	tc.logger.Warn("check failed", slog.Any("err", err))
}

// Err returns the recorded failures joined into one error, or nil.
func (tc *Context) Err() error {
	return errors.Join(tc.errs...)
}

// Report summarizes a Context.
type Report struct {
	Suite    string   `json:"suite"`
	Checks   int      `json:"checks"`
	Failures int      `json:"failures"`
	Errors   []string `json:"errors,omitempty"`
}

// Report returns a summary of the checks recorded so far.
func (tc *Context) Report() Report {
	r := Report{Suite: tc.suite, Checks: tc.checks, Failures: tc.failures}
	for _, err := range tc.errs {
		r.Errors = append(r.Errors, err.Error())
	}
	return r
}

// CheckLanes compares got against want lane by lane and records one check.
// Lanes match when their bit patterns are equal or both are NaN, so -0 and
// +0 are distinct.
func CheckLanes[T hwy.Lanes](tc *Context, name string, got, want []T) bool {
	tc.checks++
	if len(got) != len(want) {
		tc.fail(fmt.Errorf("%s/%s: %d lanes, want %d: %w", tc.suite, name, len(got), len(want), ErrMismatch))
		return false
	}
	for i := range want {
		if !sameLane(got[i], want[i]) {
			tc.fail(fmt.Errorf("%s/%s lane %d: got %v, want %v: %w", tc.suite, name, i, got[i], want[i], ErrMismatch))
			return false
		}
	}
	return true
}

// CheckMask compares a mask against the expected lane values.
func CheckMask[N hwy.LaneCount](tc *Context, name string, got hwy.Mask[N], want []bool) bool {
	tc.checks++
	for i := range want {
		if got.Extract(i) != want[i] {
			tc.fail(fmt.Errorf("%s/%s lane %d: got %s, want %v: %w", tc.suite, name, i, got, want, ErrMismatch))
			return false
		}
	}
	return true
}

// CheckWithin compares float lanes with a relative tolerance. Values below
// one in magnitude are compared with tol as an absolute bound. NaN matches
// NaN and infinities must match exactly.
func CheckWithin[T hwy.Floats](tc *Context, name string, got, want []T, tol float64) bool {
	tc.checks++
	for i := range want {
		g, w := float64(got[i]), float64(want[i])
		switch {
		case math.IsNaN(g) && math.IsNaN(w):
			continue
		case math.IsInf(w, 0) || math.IsNaN(w):
			if g == w {
				continue
			}
		case math.Abs(g-w) <= tol*max(1, math.Abs(w)):
			continue
		}
		tc.fail(fmt.Errorf("%s/%s lane %d: got %v, want %v within %g: %w", tc.suite, name, i, got[i], want[i], tol, ErrMismatch))
		return false
	}
	return true
}

func sameLane[T hwy.Lanes](a, b T) bool {
	// x != x only holds for NaN.
	return lane.ToBits(a) == lane.ToBits(b) || (a != a && b != b)
}
