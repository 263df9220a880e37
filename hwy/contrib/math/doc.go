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

// Package math provides transcendental functions on hwy vectors.
//
// Exp and Log use range reduction followed by a polynomial, built entirely
// from hwy operations so they run lane-parallel on any dispatch level.
// Sin and Cos evaluate each lane with the standard library.
//
// Accuracy in the tested domains:
//   - float32: relative error within 1e-5
//   - float64: relative error within 1e-6
//
// Example:
//
//	x := hwy.Load[float32, hwy.N8](input)
//	y := math.Exp(x)
//	y.Store(output)
package math
