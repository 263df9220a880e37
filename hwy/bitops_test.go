package hwy

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBitwise(t *testing.T) {
	a := Of[uint8, N4](0xF0, 0xAA, 0x0F, 0xFF)
	b := Of[uint8, N4](0x3C, 0x55, 0x0F, 0x00)

	tests := []struct {
		name string
		got  Vec[uint8, N4]
		want []uint8
	}{
		{"And", a.And(b), []uint8{0x30, 0x00, 0x0F, 0x00}},
		{"Or", a.Or(b), []uint8{0xFC, 0xFF, 0x0F, 0xFF}},
		{"Xor", a.Xor(b), []uint8{0xCC, 0xFF, 0x00, 0xFF}},
		{"AndNot", a.AndNot(b), []uint8{0xC0, 0xAA, 0x00, 0xFF}},
		{"Not", a.Not(), []uint8{0x0F, 0x55, 0xF0, 0x00}},
		{"XorScalar", a.XorScalar(0xFF), []uint8{0x0F, 0x55, 0xF0, 0x00}},
		{"MaskedOr", a.MaskedOr(MaskOf[N4](false, true), b), []uint8{0xF0, 0xFF, 0x0F, 0xFF}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.got.Lanes()); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestBitwiseFloat(t *testing.T) {
	v := Of[float64, N2](-1.5, 2)
	abs := v.AndNot(SignBit[float64, N2]())
	if diff := cmp.Diff([]float64{1.5, 2}, abs.Lanes()); diff != "" {
		t.Errorf("AndNot(SignBit) mismatch (-want +got):\n%s", diff)
	}
	neg := v.Xor(SignBit[float64, N2]())
	if diff := cmp.Diff([]float64{1.5, -2}, neg.Lanes()); diff != "" {
		t.Errorf("Xor(SignBit) mismatch (-want +got):\n%s", diff)
	}
	if got := v.Not().Not(); !got.Cmpe(v) {
		t.Errorf("Not(Not(v)) = %v, want %v", got.Lanes(), v.Lanes())
	}
}

func TestShiftModuloWidth(t *testing.T) {
	v := Of[int16, N4](1, -1, 0x0101, math.MinInt16)
	by19 := ShlScalar(v, 19)
	by3 := ShlScalar(v, 3)
	if !by19.Cmpe(by3) {
		t.Errorf("Shl by 19 = %v, Shl by 3 = %v", by19.Lanes(), by3.Lanes())
	}

	amounts := Of[uint8, N4](16, 17, 255, 0)
	got := Shl(v, amounts)
	// 0x0101 << 15 keeps only the low bit, which lands in the sign bit.
	want := []int16{1, -2, math.MinInt16, math.MinInt16}
	if diff := cmp.Diff(want, got.Lanes()); diff != "" {
		t.Errorf("Shl mismatch (-want +got):\n%s", diff)
	}
}

func TestShr(t *testing.T) {
	s := Of[int8, N4](-128, -1, 64, 127)
	u := Of[uint8, N4](0x80, 0xFF, 64, 127)
	n := Set[uint32, N4](9) // 9 % 8 == 1

	if diff := cmp.Diff([]int8{-64, -1, 32, 63}, Shr(s, n).Lanes()); diff != "" {
		t.Errorf("signed Shr mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint8{0x40, 0x7F, 32, 63}, Shr(u, n).Lanes()); diff != "" {
		t.Errorf("unsigned Shr mismatch (-want +got):\n%s", diff)
	}

	m := MaskOf[N4](true, false, true, false)
	if diff := cmp.Diff([]int8{-64, -1, 32, 127}, MaskedShrScalar(m, s, 1).Lanes()); diff != "" {
		t.Errorf("MaskedShrScalar mismatch (-want +got):\n%s", diff)
	}
}

func TestRotate(t *testing.T) {
	v := Of[uint16, N4](0x8001, 0x1234, 0xFFFF, 0x0001)

	if diff := cmp.Diff([]uint16{0x0003, 0x2468, 0xFFFF, 0x0002}, RolScalar(v, 1).Lanes()); diff != "" {
		t.Errorf("RolScalar mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint16{0xC000, 0x091A, 0xFFFF, 0x8000}, RorScalar(v, 17).Lanes()); diff != "" {
		t.Errorf("RorScalar mismatch (-want +got):\n%s", diff)
	}

	amounts := Of[uint64, N4](4, 8, 0, 16)
	if diff := cmp.Diff([]uint16{0x0018, 0x3412, 0xFFFF, 0x0001}, Rol(v, amounts).Lanes()); diff != "" {
		t.Errorf("Rol mismatch (-want +got):\n%s", diff)
	}
	// Rotating left then right by the same amount is the identity.
	if back := Ror(Rol(v, amounts), amounts); !back.Cmpe(v) {
		t.Errorf("Ror(Rol(v)) = %v, want %v", back.Lanes(), v.Lanes())
	}

	m := MaskOf[N4](false, true, false, false)
	if diff := cmp.Diff([]uint16{0x8001, 0x3412, 0xFFFF, 0x0001}, MaskedRol(m, v, amounts).Lanes()); diff != "" {
		t.Errorf("MaskedRol mismatch (-want +got):\n%s", diff)
	}
}

func TestPopCount(t *testing.T) {
	tests := []struct {
		name  string
		input []uint8
		want  []uint8
	}{
		{"zeros", []uint8{0, 0, 0, 0}, []uint8{0, 0, 0, 0}},
		{"ones", []uint8{0xFF, 0xFF, 0xFF, 0xFF}, []uint8{8, 8, 8, 8}},
		{"mixed", []uint8{0x01, 0x03, 0x07, 0x0F}, []uint8{1, 2, 3, 4}},
		{"alternating", []uint8{0xAA, 0x55, 0x0A, 0x50}, []uint8{4, 4, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PopCount(Load[uint8, N4](tt.input))
			if diff := cmp.Diff(tt.want, got.Lanes()); diff != "" {
				t.Errorf("PopCount mismatch (-want +got):\n%s", diff)
			}
		})
	}

	s := Of[int32, N2](-1, math.MinInt32)
	if diff := cmp.Diff([]int32{32, 1}, PopCount(s).Lanes()); diff != "" {
		t.Errorf("PopCount int32 mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroCounts(t *testing.T) {
	v := Of[int16, N4](0, 1, -1, 0x0100)
	if diff := cmp.Diff([]int16{16, 15, 0, 7}, LeadingZeroCount(v).Lanes()); diff != "" {
		t.Errorf("LeadingZeroCount mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int16{16, 0, 0, 8}, TrailingZeroCount(v).Lanes()); diff != "" {
		t.Errorf("TrailingZeroCount mismatch (-want +got):\n%s", diff)
	}
	u := Of[uint8, N2](0x01, 0xF0)
	if diff := cmp.Diff([]uint8{0x80, 0x0F}, ReverseBits(u).Lanes()); diff != "" {
		t.Errorf("ReverseBits mismatch (-want +got):\n%s", diff)
	}
}
