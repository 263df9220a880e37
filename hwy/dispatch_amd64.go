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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

// CPU feature flags consulted by detectCPUFeatures.
var (
	hasAVX2     bool
	hasAVX512F  bool
	hasAVX512BW bool
	hasFMA      bool
)

func init() {
	hasAVX2 = cpu.X86.HasAVX2
	hasFMA = cpu.X86.HasFMA
	hasAVX512F = cpu.X86.HasAVX512F
	hasAVX512BW = cpu.X86.HasAVX512BW

	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	detectCPUFeatures()
}

func detectCPUFeatures() {
	switch {
	case hasAVX512F && hasAVX512BW:
		setLevel(DispatchAVX512, 64)
	case hasAVX2 && hasFMA:
		setLevel(DispatchAVX2, 32)
	default:
		// SSE2 is part of the x86-64 baseline.
		setLevel(DispatchSSE2, 16)
	}
}

// HasFMA returns true if the CPU supports fused multiply-add instructions.
func HasFMA() bool {
	return hasFMA
}
