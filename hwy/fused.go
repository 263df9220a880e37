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

package hwy

import "github.com/go-highway/fixedvec/hwy/lane"

// Fused operations round float lanes exactly once, as a hardware FMA does,
// and wrap integer lanes like the unfused expression.

// MulAdd returns v*b + c.
// For float64 this is math.FMA.
func (v Vec[T, N]) MulAdd(b, c Vec[T, N]) Vec[T, N] {
	return zip3(v, b, c, lane.MulAdd[T])
}

// MaskedMulAdd applies MulAdd on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedMulAdd(m Mask[N], b, c Vec[T, N]) Vec[T, N] {
	return zip3Masked(m, v, b, c, lane.MulAdd[T])
}

// MulSub returns v*b - c.
func (v Vec[T, N]) MulSub(b, c Vec[T, N]) Vec[T, N] {
	return zip3(v, b, c, lane.MulSub[T])
}

// MaskedMulSub applies MulSub on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedMulSub(m Mask[N], b, c Vec[T, N]) Vec[T, N] {
	return zip3Masked(m, v, b, c, lane.MulSub[T])
}

// AddMul returns (v+b) * c.
func (v Vec[T, N]) AddMul(b, c Vec[T, N]) Vec[T, N] {
	return zip3(v, b, c, lane.AddMul[T])
}

// MaskedAddMul applies AddMul on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedAddMul(m Mask[N], b, c Vec[T, N]) Vec[T, N] {
	return zip3Masked(m, v, b, c, lane.AddMul[T])
}

// SubMul returns (v-b) * c.
func (v Vec[T, N]) SubMul(b, c Vec[T, N]) Vec[T, N] {
	return zip3(v, b, c, lane.SubMul[T])
}

// MaskedSubMul applies SubMul on mask-true lanes and keeps v elsewhere.
func (v Vec[T, N]) MaskedSubMul(m Mask[N], b, c Vec[T, N]) Vec[T, N] {
	return zip3Masked(m, v, b, c, lane.SubMul[T])
}
