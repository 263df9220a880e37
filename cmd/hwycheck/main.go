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

// Command hwycheck runs the oracle suites against the hwy vector operations
// and reports the outcome per suite.
//
// Usage:
//
//	hwycheck                              # all suites, default seed
//	hwycheck --seed 42 --iterations 1000
//	hwycheck --suite arith --suite shift --json
//	HWY_NO_SIMD=1 hwycheck                # force the scalar dispatch level
//
// The exit code is 1 when any check fails.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
