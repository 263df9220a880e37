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

// Command hwytables generates the literal test tables used by package oracle.
//
// Usage:
//
//	hwytables --output hwy/oracle/tables_gen.go
//	hwytables --seed 7 --rows 5 --output -        # print to stdout
//
// Or via go:generate in package oracle:
//
//	//go:generate go run ../../cmd/hwytables --output tables_gen.go
//
// Inputs come from a SplitMix64 stream so the tables are identical on every
// platform. Expected lanes are computed with package lane, one scalar at a
// time, and checked later against the vector operations.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
