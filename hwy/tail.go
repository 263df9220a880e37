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

// TailMask creates a mask with the first 'count' lanes active.
// This is useful for handling the tail (remainder) of an array
// when the size is not a multiple of the vector width.
//
// Example:
//
//	remaining := len(data) % 8
//	if remaining > 0 {
//	    mask := hwy.TailMask[hwy.N8](remaining)
//	    var v hwy.Vec[float32, hwy.N8]
//	    v.MaskedLoad(mask, tail)
//	    // ... process tail
//	    v.MaskedStore(mask, out)
//	}
//
// The tail slices must still hold N elements; pad them with AlignedSize.
func TailMask[N LaneCount](count int) Mask[N] {
	return FirstN[N](count)
}

// ProcessWithTail is a helper for processing arrays with vectors that
// handles both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of N
//
// Example:
//
//	hwy.ProcessWithTail[hwy.N8](len(data),
//	    func(offset int) {
//	        v := hwy.Load[float32, hwy.N8](data[offset:])
//	        v.Add(v).Store(output[offset:])
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            output[i] = data[i] + data[i]
//	        }
//	    },
//	)
func ProcessWithTail[N LaneCount](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := numLanes[N]()

	// Process full vectors
	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	// Process tail if any
	remaining := size % lanes
	if remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

// ProcessWithTailNoMask is similar to ProcessWithTail but doesn't require
// a tail function. Instead, it processes overlapping vectors for the tail.
// This is simpler but may do redundant work for the last few elements,
// so fullFn must be idempotent. size must be at least N.
func ProcessWithTailNoMask[N LaneCount](size int, fullFn func(offset int)) {
	lanes := numLanes[N]()

	// Process full vectors
	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	// Process tail with overlapping vector if needed
	if size%lanes > 0 && fullVectors > 0 {
		// Process last full vector, which overlaps with the previous one
		fullFn(size - lanes)
	}
}

// AlignedSize rounds up size to the next multiple of N.
// This is useful for allocating buffers that will be processed with vectors.
func AlignedSize[N LaneCount](size int) int {
	lanes := numLanes[N]()
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of N.
func IsAligned[N LaneCount](size int) bool {
	return size%numLanes[N]() == 0
}
