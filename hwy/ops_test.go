package hwy

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load[float32, N8](data)

	if v.NumLanes() != 8 {
		t.Errorf("Load: got %d lanes, want 8", v.NumLanes())
	}
	for i := range v.NumLanes() {
		if v.Extract(i) != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.Extract(i), data[i])
		}
	}
	// Lanes beyond N stay zero.
	if v.data[8] != 0 {
		t.Errorf("Load: lane beyond N written: %v", v.data[8])
	}
}

func TestSet(t *testing.T) {
	v := Set[float32, N16](42.0)

	for i := range v.NumLanes() {
		if v.data[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v.data[i], 42.0)
		}
	}
}

func TestZeroValue(t *testing.T) {
	var v Vec[int32, N4]
	if diff := cmp.Diff([]int32{0, 0, 0, 0}, v.Lanes()); diff != "" {
		t.Errorf("zero value mismatch (-want +got):\n%s", diff)
	}
	var m Mask[N4]
	if m.AnyTrue() {
		t.Errorf("zero mask has true lanes: %v", m)
	}
}

func TestOfAndIota(t *testing.T) {
	v := Of[int8, N4](1, 2)
	if diff := cmp.Diff([]int8{1, 2, 0, 0}, v.Lanes()); diff != "" {
		t.Errorf("Of mismatch (-want +got):\n%s", diff)
	}
	io := Iota[uint8, N4]()
	if diff := cmp.Diff([]uint8{0, 1, 2, 3}, io.Lanes()); diff != "" {
		t.Errorf("Iota mismatch (-want +got):\n%s", diff)
	}
}

func TestAddInt16(t *testing.T) {
	a := Of[int16, N4](11410, -30737, 1891, -27538)
	b := Of[int16, N4](6160, -17357, 5265, -7340)

	got := a.Add(b)
	want := []int16{17570, 17442, 7156, 30658}
	if diff := cmp.Diff(want, got.Lanes()); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}

	m := MaskOf[N4](false, true, true, false)
	masked := a.MaskedAdd(m, b)
	wantMasked := []int16{11410, 17442, 7156, -27538}
	if diff := cmp.Diff(wantMasked, masked.Lanes()); diff != "" {
		t.Errorf("MaskedAdd mismatch (-want +got):\n%s", diff)
	}
}

func TestBinaryForms(t *testing.T) {
	a := Of[int32, N4](10, 20, 30, 40)
	b := Of[int32, N4](1, 2, 3, 4)
	m := MaskOf[N4](true, false, true, false)

	tests := []struct {
		name string
		got  Vec[int32, N4]
		want []int32
	}{
		{"Sub", a.Sub(b), []int32{9, 18, 27, 36}},
		{"SubScalar", a.SubScalar(5), []int32{5, 15, 25, 35}},
		{"SubFrom", a.SubFrom(b), []int32{-9, -18, -27, -36}},
		{"SubFromScalar", a.SubFromScalar(100), []int32{90, 80, 70, 60}},
		{"Mul", a.Mul(b), []int32{10, 40, 90, 160}},
		{"Div", a.Div(b), []int32{10, 10, 10, 10}},
		{"RemScalar", a.RemScalar(7), []int32{3, 6, 2, 5}},
		{"MinScalar", a.MinScalar(25), []int32{10, 20, 25, 25}},
		{"MaxScalar", a.MaxScalar(25), []int32{25, 25, 30, 40}},
		{"MaskedMul", a.MaskedMul(m, b), []int32{10, 20, 90, 40}},
		{"MaskedDivScalar", a.MaskedDivScalar(m, 10), []int32{1, 20, 3, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Lanes()); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestAssignForms(t *testing.T) {
	v := Of[uint8, N4](250, 1, 2, 3)
	v.AddAssignScalar(10)
	if diff := cmp.Diff([]uint8{4, 11, 12, 13}, v.Lanes()); diff != "" {
		t.Errorf("AddAssignScalar mismatch (-want +got):\n%s", diff)
	}

	v.MulAssign(Of[uint8, N4](2, 2, 2, 2))
	if diff := cmp.Diff([]uint8{8, 22, 24, 26}, v.Lanes()); diff != "" {
		t.Errorf("MulAssign mismatch (-want +got):\n%s", diff)
	}

	v.AssignMaskedScalar(MaskOf[N4](false, false, true, true), 7)
	if diff := cmp.Diff([]uint8{8, 22, 7, 7}, v.Lanes()); diff != "" {
		t.Errorf("AssignMaskedScalar mismatch (-want +got):\n%s", diff)
	}

	v.AssignMasked(MaskOf[N4](true), Set[uint8, N4](99))
	if diff := cmp.Diff([]uint8{99, 22, 7, 7}, v.Lanes()); diff != "" {
		t.Errorf("AssignMasked mismatch (-want +got):\n%s", diff)
	}

	m := MaskOf[N4](false, true, false, true)
	w := v
	w.AssignMasked(m, w.SatAdd(Set[uint8, N4](240)))
	if diff := cmp.Diff([]uint8{99, 255, 7, 247}, w.Lanes()); diff != "" {
		t.Errorf("masked in-place SatAdd mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(v.MaskedSatAdd(m, Set[uint8, N4](240)).Lanes(), w.Lanes()); diff != "" {
		t.Errorf("masked in-place disagrees with MaskedSatAdd (-want +got):\n%s", diff)
	}

	v.AssignScalar(1)
	v.Insert(3, 5)
	if v.Extract(3) != 5 || v.Extract(0) != 1 {
		t.Errorf("Insert/Extract: got %v", v.Lanes())
	}
}

func TestIncDec(t *testing.T) {
	v := Of[int8, N2](126, -128)

	old := v.PostInc()
	if diff := cmp.Diff([]int8{126, -128}, old.Lanes()); diff != "" {
		t.Errorf("PostInc result mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int8{127, -127}, v.Lanes()); diff != "" {
		t.Errorf("PostInc state mismatch (-want +got):\n%s", diff)
	}

	upd := v.PreInc()
	if diff := cmp.Diff([]int8{-128, -126}, upd.Lanes()); diff != "" {
		t.Errorf("PreInc mismatch (-want +got):\n%s", diff)
	}

	if got := v.PostDec(); got.Extract(0) != -128 || v.Extract(0) != 127 {
		t.Errorf("PostDec: got %v, state %v", got.Lanes(), v.Lanes())
	}
	if got := v.PreDec(); got.Extract(0) != 126 {
		t.Errorf("PreDec: got %v", got.Lanes())
	}
}

func TestUnary(t *testing.T) {
	f := Of[float64, N4](-2.5, 2.5, 9, -0.5)

	tests := []struct {
		name string
		got  Vec[float64, N4]
		want []float64
	}{
		{"Neg", f.Neg(), []float64{2.5, -2.5, -9, 0.5}},
		{"Abs", f.Abs(), []float64{2.5, 2.5, 9, 0.5}},
		{"Sqr", f.Sqr(), []float64{6.25, 6.25, 81, 0.25}},
		{"Round", f.Round(), []float64{-3, 3, 9, math.Copysign(1, -1)}},
		{"RoundToEven", f.RoundToEven(), []float64{-2, 2, 9, math.Copysign(0, -1)}},
		{"Floor", f.Floor(), []float64{-3, 2, 9, -1}},
		{"Ceil", f.Ceil(), []float64{-2, 3, 9, math.Copysign(0, -1)}},
		{"Rcp", f.Rcp(), []float64{-0.4, 0.4, 1.0 / 9, -2}},
		{"MaskedSqrt", f.MaskedSqrt(MaskOf[N4](false, false, true, false)), []float64{-2.5, 2.5, 3, -0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Lanes()); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}

	i := Of[int16, N4](1, -1, 2, math.MinInt16)
	if diff := cmp.Diff([]int16{1, -1, 0, 0}, i.Rcp().Lanes()); diff != "" {
		t.Errorf("integer Rcp mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int16{1, 1, 2, math.MinInt16}, i.Abs().Lanes()); diff != "" {
		t.Errorf("integer Abs mismatch (-want +got):\n%s", diff)
	}
	i.NegAssign()
	if diff := cmp.Diff([]int16{-1, 1, -2, math.MinInt16}, i.Lanes()); diff != "" {
		t.Errorf("NegAssign mismatch (-want +got):\n%s", diff)
	}
}

func TestCompare(t *testing.T) {
	a := Of[float32, N4](1, 2, float32(math.NaN()), 4)
	b := Of[float32, N4](1, 3, float32(math.NaN()), 3)

	tests := []struct {
		name string
		got  Mask[N4]
		want string
	}{
		{"CmpEq", a.CmpEq(b), "TFFF"},
		{"CmpNe", a.CmpNe(b), "FTTT"},
		{"CmpLt", a.CmpLt(b), "FTFF"},
		{"CmpGt", a.CmpGt(b), "FFFT"},
		{"CmpLe", a.CmpLe(b), "TTFF"},
		{"CmpGe", a.CmpGe(b), "TFFT"},
		{"CmpGtScalar", a.CmpGtScalar(1.5), "FTFT"},
		{"ScalarCmpGt", ScalarCmpGt(1.5, a), "TFFF"},
		{"ScalarCmpLe", ScalarCmpLe(2, a), "FTFT"},
	}
	for _, tt := range tests {
		if got := tt.got.String(); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestCmpeDuality(t *testing.T) {
	a := Of[uint16, N8](1, 2, 3, 4, 5, 6, 7, 8)
	b := a
	if !a.Cmpe(b) || !a.CmpEq(b).HAnd() {
		t.Errorf("equal vectors: Cmpe=%v HAnd=%v", a.Cmpe(b), a.CmpEq(b).HAnd())
	}
	b.Insert(7, 0)
	if a.Cmpe(b) || a.CmpEq(b).HAnd() {
		t.Errorf("unequal vectors: Cmpe=%v HAnd=%v", a.Cmpe(b), a.CmpEq(b).HAnd())
	}
}

func TestReductions(t *testing.T) {
	v := Of[int8, N4](100, 100, -3, 5)
	if got := v.HAdd(); got != -54 {
		t.Errorf("HAdd: got %d, want -54 (wraparound)", got)
	}
	if got := v.HMax(); got != 100 {
		t.Errorf("HMax: got %d", got)
	}
	if got := v.HMin(); got != -3 {
		t.Errorf("HMin: got %d", got)
	}
	// 100*100*-3*5 = -150000, which wraps to 16 in int8.
	if got := v.HMul(); got != 16 {
		t.Errorf("HMul: got %d, want 16", got)
	}

	none := MaskSet[N4](false)
	if got := v.MaskedHMin(none); got != math.MaxInt8 {
		t.Errorf("MaskedHMin with empty mask: got %d, want MaxInt8", got)
	}
	if got := v.MaskedHMax(none); got != math.MinInt8 {
		t.Errorf("MaskedHMax with empty mask: got %d, want MinInt8", got)
	}
	if got := v.MaskedHAnd(none); got != -1 {
		t.Errorf("MaskedHAnd with empty mask: got %d, want -1", got)
	}
	if got := v.MaskedHMul(none); got != 1 {
		t.Errorf("MaskedHMul with empty mask: got %d, want 1", got)
	}

	m := MaskOf[N4](false, false, true, true)
	if got := v.MaskedHAdd(m); got != 2 {
		t.Errorf("MaskedHAdd: got %d, want 2", got)
	}
	if got := v.MaskedHMax(m); got != 5 {
		t.Errorf("MaskedHMax: got %d, want 5", got)
	}

	u := Of[uint8, N4](0xF0, 0x3C, 0x0F, 0xFF)
	if got := u.HOr(); got != 0xFF {
		t.Errorf("HOr: got %#x", got)
	}
	if got := u.HAnd(); got != 0x00 {
		t.Errorf("HAnd: got %#x", got)
	}
	if got := u.HXor(); got != 0xF0^0x3C^0x0F^0xFF {
		t.Errorf("HXor: got %#x", got)
	}

	f := Of[float64, N2](1, 2)
	if got := f.MaskedHMax(MaskSet[N2](false)); !math.IsInf(got, -1) {
		t.Errorf("float MaskedHMax identity: got %v, want -Inf", got)
	}
}

func TestFused(t *testing.T) {
	a := Of[float64, N2](0.1, 2)
	b := Set[float64, N2](10)
	c := Set[float64, N2](-1)

	got := a.MulAdd(b, c)
	if got.Extract(0) != math.FMA(0.1, 10, -1) {
		t.Errorf("MulAdd: lane 0: got %v, want %v", got.Extract(0), math.FMA(0.1, 10, -1))
	}
	if got.Extract(1) != 19 {
		t.Errorf("MulAdd: lane 1: got %v, want 19", got.Extract(1))
	}

	i := Of[int32, N4](1, 2, 3, 4)
	j := Set[int32, N4](10)
	k := Set[int32, N4](2)
	m := MaskOf[N4](true, false, true, false)
	tests := []struct {
		name string
		got  Vec[int32, N4]
		want []int32
	}{
		{"MulSub", i.MulSub(j, k), []int32{8, 18, 28, 38}},
		{"AddMul", i.AddMul(j, k), []int32{22, 24, 26, 28}},
		{"SubMul", i.SubMul(j, k), []int32{-18, -16, -14, -12}},
		{"MaskedAddMul", i.MaskedAddMul(m, j, k), []int32{22, 2, 26, 4}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.got.Lanes()); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestClassify(t *testing.T) {
	v := Of[float32, N8](
		1,
		0,
		float32(math.Copysign(0, -1)),
		math.Float32frombits(1),
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
		float32(math.NaN()),
		-math.MaxFloat32,
	)
	tests := []struct {
		name string
		got  Mask[N8]
		want string
	}{
		{"IsFinite", IsFinite(v), "TTTTFFFT"},
		{"IsInf", IsInf(v), "FFFFTTFF"},
		{"IsNaN", IsNaN(v), "FFFFFFTF"},
		{"IsAN", IsAN(v), "TTTTTTFT"},
		{"IsNormal", IsNormal(v), "TFFFFFFT"},
		{"IsSubnormal", IsSubnormal(v), "FFFTFFFF"},
		{"IsZero", IsZero(v), "FTTFFFFF"},
		{"IsZeroOrSubnormal", IsZeroOrSubnormal(v), "FTTTFFFF"},
	}
	for _, tt := range tests {
		if got := tt.got.String(); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestIfThenElse(t *testing.T) {
	a := Set[int64, N4](1)
	b := Set[int64, N4](2)
	m := MaskOf[N4](true, false, false, true)

	if diff := cmp.Diff([]int64{1, 2, 2, 1}, IfThenElse(m, a, b).Lanes()); diff != "" {
		t.Errorf("IfThenElse mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{1, 2, 2, 1}, Merge(a, b, m).Lanes()); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{1, 0, 0, 1}, IfThenElseZero(m, a).Lanes()); diff != "" {
		t.Errorf("IfThenElseZero mismatch (-want +got):\n%s", diff)
	}
	neg := Of[int64, N4](-1, 5, -7, 0)
	if diff := cmp.Diff([]int64{0, 5, 0, 0}, ZeroIfNegative(neg).Lanes()); diff != "" {
		t.Errorf("ZeroIfNegative mismatch (-want +got):\n%s", diff)
	}
}

func TestNoAliasing(t *testing.T) {
	a := Set[float32, N4](1)
	b := a
	b.Insert(0, 2)
	if a.Extract(0) != 1 {
		t.Errorf("copy aliases original: a[0] = %v", a.Extract(0))
	}
}
