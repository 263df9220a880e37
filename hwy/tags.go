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

// MaxLanes is the largest supported lane count.
const MaxLanes = 64

// LaneCount is a tag type that fixes the number of lanes of a Vec or Mask
// at compile time.
//
// Usage:
//
//	var v hwy.Vec[float32, hwy.N8]
//	n := v.NumLanes() // 8
type LaneCount interface {
	// Count returns the number of lanes, between 1 and MaxLanes.
	Count() int
}

// N1 selects a single lane.
type N1 struct{}

// Count returns 1.
func (N1) Count() int { return 1 }

// N2 selects two lanes.
type N2 struct{}

// Count returns 2.
func (N2) Count() int { return 2 }

// N4 selects four lanes.
type N4 struct{}

// Count returns 4.
func (N4) Count() int { return 4 }

// N8 selects eight lanes.
type N8 struct{}

// Count returns 8.
func (N8) Count() int { return 8 }

// N16 selects sixteen lanes.
type N16 struct{}

// Count returns 16.
func (N16) Count() int { return 16 }

// N32 selects 32 lanes.
type N32 struct{}

// Count returns 32.
func (N32) Count() int { return 32 }

// N64 selects 64 lanes, the widest supported vector.
type N64 struct{}

// Count returns 64.
func (N64) Count() int { return 64 }

// numLanes returns the lane count selected by N.
func numLanes[N LaneCount]() int {
	var n N
	return n.Count()
}
