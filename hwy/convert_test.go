package hwy

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvertFloatToInt(t *testing.T) {
	f := Of[float32, N4](1.9, -1.9, 300, float32(math.NaN()))
	if diff := cmp.Diff([]uint8{1, 255, 44, 0}, Convert[uint8](f).Lanes()); diff != "" {
		t.Errorf("Convert[uint8] mismatch (-want +got):\n%s", diff)
	}

	d := Of[float64, N4](3e9, -3e9, math.Inf(1), math.Inf(-1))
	if diff := cmp.Diff([]int32{-1294967296, 1294967296, 0, 0}, Convert[int32](d).Lanes()); diff != "" {
		t.Errorf("Convert[int32] mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertIntegers(t *testing.T) {
	wide := Of[int32, N4](300, -1, 127, -129)
	if diff := cmp.Diff([]int8{44, -1, 127, 127}, Convert[int8](wide).Lanes()); diff != "" {
		t.Errorf("narrowing mismatch (-want +got):\n%s", diff)
	}

	narrow := Of[int8, N4](-1, 0, 1, -128)
	if diff := cmp.Diff([]uint16{0xFFFF, 0, 1, 0xFF80}, Convert[uint16](narrow).Lanes()); diff != "" {
		t.Errorf("sign extension mismatch (-want +got):\n%s", diff)
	}

	big := Of[int64, N2](16777217, -3)
	if diff := cmp.Diff([]float32{16777216, -3}, Convert[float32](big).Lanes()); diff != "" {
		t.Errorf("Convert[float32] mismatch (-want +got):\n%s", diff)
	}
}

func TestTrunc(t *testing.T) {
	f := Of[float32, N4](-2.7, 2.7, 40000, float32(math.Inf(1)))
	if diff := cmp.Diff([]int16{-2, 2, -25536, 0}, Trunc[int16](f).Lanes()); diff != "" {
		t.Errorf("Trunc mismatch (-want +got):\n%s", diff)
	}

	got := TruncFloat(Of[float64, N4](-2.7, 2.7, 0.5, -0.5))
	if diff := cmp.Diff([]float64{-2, 2, 0, 0}, got.Lanes()); diff != "" {
		t.Errorf("TruncFloat mismatch (-want +got):\n%s", diff)
	}
}

func TestBitCast(t *testing.T) {
	f := Of[float32, N2](1, float32(math.Copysign(0, -1)))
	if diff := cmp.Diff([]uint32{0x3F800000, 0x80000000}, BitCast[uint32](f).Lanes()); diff != "" {
		t.Errorf("BitCast mismatch (-want +got):\n%s", diff)
	}

	back := BitCast[float32](BitCast[uint32](f))
	if math.Signbit(float64(back.Extract(1))) != true {
		t.Errorf("BitCast round trip lost the sign of -0")
	}
}

func TestPromoteDemote(t *testing.T) {
	f := Of[float32, N2](0.1, -2.5)
	if diff := cmp.Diff([]float64{float64(float32(0.1)), -2.5}, Promote(f).Lanes()); diff != "" {
		t.Errorf("Promote mismatch (-want +got):\n%s", diff)
	}

	d := Of[float64, N2](1e300, 0.1)
	got := Demote(d)
	if !math.IsInf(float64(got.Extract(0)), 1) {
		t.Errorf("Demote(1e300) = %v, want +Inf", got.Extract(0))
	}
	if got.Extract(1) != float32(0.1) {
		t.Errorf("Demote(0.1) = %v, want %v", got.Extract(1), float32(0.1))
	}
}

func TestSaturatingDemote(t *testing.T) {
	s := Of[int16, N4](300, -300, 5, -5)
	if diff := cmp.Diff([]int8{127, -128, 5, -5}, SaturatingDemote[int8](s).Lanes()); diff != "" {
		t.Errorf("int16->int8 mismatch (-want +got):\n%s", diff)
	}

	w := Of[int32, N4](-1, 256, 200, 0)
	if diff := cmp.Diff([]uint8{0, 255, 200, 0}, SaturatingDemote[uint8](w).Lanes()); diff != "" {
		t.Errorf("int32->uint8 mismatch (-want +got):\n%s", diff)
	}

	u := Of[uint16, N4](200, 127, 0, math.MaxUint16)
	if diff := cmp.Diff([]int8{127, 127, 0, 127}, SaturatingDemote[int8](u).Lanes()); diff != "" {
		t.Errorf("uint16->int8 mismatch (-want +got):\n%s", diff)
	}
}
