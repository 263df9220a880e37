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

import (
	"math"
	"testing"
)

type myInt16 int16

func TestKindOf(t *testing.T) {
	checks := []struct {
		got, want Kind
	}{
		{KindOf[uint8](), U8},
		{KindOf[int8](), I8},
		{KindOf[uint16](), U16},
		{KindOf[int16](), I16},
		{KindOf[myInt16](), I16},
		{KindOf[uint32](), U32},
		{KindOf[int32](), I32},
		{KindOf[uint64](), U64},
		{KindOf[int64](), I64},
		{KindOf[float32](), F32},
		{KindOf[float64](), F64},
	}
	for i, c := range checks {
		if c.got != c.want {
			t.Errorf("KindOf #%d: got %v, want %v", i, c.got, c.want)
		}
	}
	if F32.Bits() != 32 || I8.Bits() != 8 || U64.Bits() != 64 {
		t.Errorf("Bits: unexpected widths")
	}
	if U16.Signed() || !I16.Signed() || !F64.Signed() {
		t.Errorf("Signed: unexpected result")
	}
}

func TestTraits(t *testing.T) {
	if got := MinValue[int8](); got != math.MinInt8 {
		t.Errorf("MinValue[int8]: got %v", got)
	}
	if got := MaxValue[int64](); got != math.MaxInt64 {
		t.Errorf("MaxValue[int64]: got %v", got)
	}
	if got := MaxValue[uint16](); got != math.MaxUint16 {
		t.Errorf("MaxValue[uint16]: got %v", got)
	}
	if got := MinValue[uint32](); got != 0 {
		t.Errorf("MinValue[uint32]: got %v", got)
	}
	if got := MaxValue[float32](); got != math.MaxFloat32 {
		t.Errorf("MaxValue[float32]: got %v", got)
	}
	if got := MinValue[float64](); got != -math.MaxFloat64 {
		t.Errorf("MinValue[float64]: got %v", got)
	}
	if got := AllOnes[int32](); got != -1 {
		t.Errorf("AllOnes[int32]: got %v", got)
	}
	if got := MaxIdentity[float64](); !math.IsInf(got, -1) {
		t.Errorf("MaxIdentity[float64]: got %v", got)
	}
	if got := MinIdentity[float32](); !math.IsInf(float64(got), 1) {
		t.Errorf("MinIdentity[float32]: got %v", got)
	}
}

func TestWraparound(t *testing.T) {
	a := []int16{11410, -30737, 1891, -27538}
	b := []int16{6160, -17357, 5265, -7340}
	want := []int16{17570, 17442, 7156, 30658}
	for i := range a {
		if got := Add(a[i], b[i]); got != want[i] {
			t.Errorf("Add(%d, %d): got %d, want %d", a[i], b[i], got, want[i])
		}
	}
	if got := Mul[uint8](200, 2); got != 144 {
		t.Errorf("Mul[uint8](200, 2): got %d, want 144", got)
	}
	if got := Div[int8](math.MinInt8, -1); got != math.MinInt8 {
		t.Errorf("Div(MinInt8, -1): got %d", got)
	}
	if got := Neg[uint32](1); got != math.MaxUint32 {
		t.Errorf("Neg[uint32](1): got %d", got)
	}
	if got := Abs[int16](math.MinInt16); got != math.MinInt16 {
		t.Errorf("Abs(MinInt16): got %d", got)
	}
}

func TestRemAndRcp(t *testing.T) {
	if got := Rem[int32](-7, 3); got != -1 {
		t.Errorf("Rem(-7, 3): got %d, want -1", got)
	}
	if got := Rem[uint64](math.MaxUint64, 10); got != 5 {
		t.Errorf("Rem(MaxUint64, 10): got %d, want 5", got)
	}
	if got := Rem[float64](-7.5, 2); got != -1.5 {
		t.Errorf("Rem(-7.5, 2): got %v, want -1.5", got)
	}
	rcp := []struct{ in, want int8 }{{1, 1}, {-1, -1}, {2, 0}, {-5, 0}, {127, 0}}
	for _, c := range rcp {
		if got := Rcp(c.in); got != c.want {
			t.Errorf("Rcp(%d): got %d, want %d", c.in, got, c.want)
		}
	}
	if got := Rcp[float32](4); got != 0.25 {
		t.Errorf("Rcp[float32](4): got %v", got)
	}
}

func TestShifts(t *testing.T) {
	if Shl[int16](1, 19) != Shl[int16](1, 3) {
		t.Errorf("Shl by 19 must equal Shl by 3")
	}
	if got := Shl[int16](1, 19); got != 8 {
		t.Errorf("Shl(1, 19): got %d, want 8", got)
	}
	if got := Shr[int8](-128, 1); got != -64 {
		t.Errorf("Shr[int8](-128, 1): got %d, want -64", got)
	}
	if got := Shr[uint8](0x80, 9); got != 0x40 {
		t.Errorf("Shr[uint8](0x80, 9): got %#x, want 0x40", got)
	}
	if got := Rol[uint8](0x81, 1); got != 0x03 {
		t.Errorf("Rol[uint8](0x81, 1): got %#x, want 0x03", got)
	}
	if got := Ror[uint16](0x0001, 1); got != 0x8000 {
		t.Errorf("Ror[uint16](1, 1): got %#x, want 0x8000", got)
	}
	if got := Rol[int32](-2, 32); got != -2 {
		t.Errorf("Rol by width must be identity: got %d", got)
	}
	if got := Ror[uint64](1, 65); got != 1<<63 {
		t.Errorf("Ror[uint64](1, 65): got %#x", got)
	}
}

func TestBitwiseFloat(t *testing.T) {
	if got := Xor[float64](-2, 2); math.Float64bits(got) != 1<<63 {
		t.Errorf("Xor(-2, 2): got bits %#x", math.Float64bits(got))
	}
	negZero := float32(math.Copysign(0, -1))
	if got := AndNot(-3, negZero); got != 3 {
		t.Errorf("AndNot(-3, -0): got %v, want 3", got)
	}
	if got := Not[uint8](0x0F); got != 0xF0 {
		t.Errorf("Not(0x0F): got %#x", got)
	}
}

func TestSaturated(t *testing.T) {
	if got := SatAdd[int8](100, 100); got != 127 {
		t.Errorf("SatAdd[int8](100, 100): got %d", got)
	}
	if got := SatAdd[int8](-100, -100); got != -128 {
		t.Errorf("SatAdd[int8](-100, -100): got %d", got)
	}
	if got := SatAdd[uint16](65000, 1000); got != math.MaxUint16 {
		t.Errorf("SatAdd[uint16]: got %d", got)
	}
	if got := SatSub[uint8](3, 5); got != 0 {
		t.Errorf("SatSub[uint8](3, 5): got %d", got)
	}
	if got := SatSub[int32](math.MinInt32, 1); got != math.MinInt32 {
		t.Errorf("SatSub[int32](MinInt32, 1): got %d", got)
	}
	if got := SatSub[int64](math.MaxInt64, -1); got != math.MaxInt64 {
		t.Errorf("SatSub[int64](MaxInt64, -1): got %d", got)
	}
	if got := SatAdd[float32](1.5, 2); got != 3.5 {
		t.Errorf("SatAdd[float32]: got %v", got)
	}
}

func TestFusedSingleRounding(t *testing.T) {
	a := float32(1 + 1.0/4096)
	if got, want := MulSub(a, a, 1), float32(1.0/2048+1.0/16777216); got != want {
		t.Errorf("MulSub[float32]: got %v, want %v", got, want)
	}
	if got := AddMul[float32](16777216, 1, 3); got != 50331652 {
		t.Errorf("AddMul[float32]: got %v, want 50331652", got)
	}
	if got := MulAdd(0.1, 10, -1.0); got != math.FMA(0.1, 10, -1) {
		t.Errorf("MulAdd[float64]: got %v", got)
	}
	if got := SubMul[int8](100, -100, 2); got != -112 {
		t.Errorf("SubMul[int8]: got %d, want -112", got)
	}
	if got := MulAdd[float64](math.Inf(1), 2, 1); !math.IsInf(got, 1) {
		t.Errorf("MulAdd with Inf: got %v", got)
	}
}

func TestConvert(t *testing.T) {
	if got := Convert[int8](float32(-3.9)); got != -3 {
		t.Errorf("Convert[int8](-3.9): got %d", got)
	}
	if got := Convert[uint8](float64(300)); got != 44 {
		t.Errorf("Convert[uint8](300): got %d, want 44", got)
	}
	if got := Convert[int32](math.NaN()); got != 0 {
		t.Errorf("Convert[int32](NaN): got %d", got)
	}
	if got := Convert[int64](math.Inf(-1)); got != 0 {
		t.Errorf("Convert[int64](-Inf): got %d", got)
	}
	if got := Convert[uint64](float64(1 << 64)); got != 0 {
		t.Errorf("Convert[uint64](2^64): got %d", got)
	}
	if got := Convert[uint64](float64(3 << 62)); got != 3<<62 {
		t.Errorf("Convert[uint64](3*2^62): got %d", got)
	}
	if got := Convert[int16](int32(70000)); got != 4464 {
		t.Errorf("Convert[int16](70000): got %d", got)
	}
	if got := Convert[float32](int64(16777217)); got != 16777216 {
		t.Errorf("Convert[float32](16777217): got %v", got)
	}
	if got := Trunc[int16](float64(-32769.5)); got != 32767 {
		t.Errorf("Trunc[int16](-32769.5): got %d, want 32767", got)
	}
}

func TestClassify(t *testing.T) {
	sub32 := math.Float32frombits(1)
	if !IsSubnormal(sub32) || IsNormal(sub32) || IsZero(sub32) {
		t.Errorf("float32 subnormal misclassified")
	}
	if !IsZeroOrSubnormal(sub32) || !IsFinite(sub32) {
		t.Errorf("float32 subnormal: IsZeroOrSubnormal/IsFinite")
	}
	if !IsZero(math.Copysign(0, -1)) {
		t.Errorf("-0 must be zero")
	}
	if !IsNaN(math.NaN()) || IsFinite(math.NaN()) || IsInf(math.NaN()) {
		t.Errorf("NaN misclassified")
	}
	if !IsInf(float32(math.Inf(-1))) || IsNaN(float32(math.Inf(1))) {
		t.Errorf("Inf misclassified")
	}
	if !IsNormal(float32(math.SmallestNonzeroFloat32*(1<<23))) {
		t.Errorf("smallest normal float32 misclassified")
	}
}

func TestRounding(t *testing.T) {
	checks := []struct {
		name      string
		got, want float64
	}{
		{"Round(2.5)", Round(2.5), 3},
		{"Round(-2.5)", Round(-2.5), -3},
		{"RoundToEven(2.5)", RoundToEven(2.5), 2},
		{"Floor(-1.5)", Floor(-1.5), -2},
		{"Ceil(-1.5)", Ceil(-1.5), -1},
		{"Sqrt(2)", Sqrt(2.0), math.Sqrt2},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
	if got := Sqrt[uint64](math.MaxUint64); got != math.MaxUint32 {
		t.Errorf("Sqrt[uint64](MaxUint64): got %d", got)
	}
	if got := Sqrt[int32](99); got != 9 {
		t.Errorf("Sqrt[int32](99): got %d", got)
	}
	if got := Sqrt[int8](-4); got != 0 {
		t.Errorf("Sqrt[int8](-4): got %d", got)
	}
	if got := Floor[int16](-7); got != -7 {
		t.Errorf("Floor[int16](-7): got %d", got)
	}
}

func TestMinMaxNaN(t *testing.T) {
	nan := math.NaN()
	if got := Min(nan, 1.0); got != 1 {
		t.Errorf("Min(NaN, 1): got %v", got)
	}
	if got := Max(1.0, nan); !math.IsNaN(got) {
		t.Errorf("Max(1, NaN): got %v", got)
	}
}
