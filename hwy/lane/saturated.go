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

package lane

// SatAdd returns a + b clamped to [MinValue, MaxValue].
// Floats behave as a plain addition.
func SatAdd[T Lanes](a, b T) T {
	r := a + b
	switch KindOf[T]() {
	case F32, F64:
		return r
	case I8, I16, I32, I64:
		if b > 0 && r < a {
			return MaxValue[T]()
		}
		if b < 0 && r > a {
			return MinValue[T]()
		}
		return r
	default:
		if r < a {
			return MaxValue[T]()
		}
		return r
	}
}

// SatSub returns a - b clamped to [MinValue, MaxValue].
// Floats behave as a plain subtraction.
func SatSub[T Lanes](a, b T) T {
	r := a - b
	switch KindOf[T]() {
	case F32, F64:
		return r
	case I8, I16, I32, I64:
		if b < 0 && r < a {
			return MaxValue[T]()
		}
		if b > 0 && r > a {
			return MinValue[T]()
		}
		return r
	default:
		if b > a {
			return 0
		}
		return r
	}
}
