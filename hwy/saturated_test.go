package hwy

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSatAddUint8(t *testing.T) {
	a := Of[uint8, N4](250, 100, 0, 255)
	b := Of[uint8, N4](10, 50, 100, 1)
	result := a.SatAdd(b)

	expected := []uint8{255, 150, 100, 255} // 250+10 saturates to 255
	for i := range expected {
		if result.data[i] != expected[i] {
			t.Errorf("SatAdd uint8: lane %d: got %d, want %d", i, result.data[i], expected[i])
		}
	}
}

func TestSatAddInt8(t *testing.T) {
	a := Of[int8, N4](120, -120, 50, -50)
	b := Of[int8, N4](10, -10, 50, -50)
	result := a.SatAdd(b)

	expected := []int8{127, -128, 100, -100} // 120+10=130 saturates to 127
	for i := range expected {
		if result.data[i] != expected[i] {
			t.Errorf("SatAdd int8: lane %d: got %d, want %d", i, result.data[i], expected[i])
		}
	}
}

func TestSatSub(t *testing.T) {
	u := Of[uint16, N4](10, 1000, 0, math.MaxUint16)
	if diff := cmp.Diff([]uint16{0, 980, 0, math.MaxUint16 - 20}, u.SatSubScalar(20).Lanes()); diff != "" {
		t.Errorf("SatSubScalar uint16 mismatch (-want +got):\n%s", diff)
	}

	s := Of[int64, N2](math.MinInt64+1, math.MaxInt64-1)
	d := Of[int64, N2](5, -5)
	if diff := cmp.Diff([]int64{math.MinInt64, math.MaxInt64}, s.SatSub(d).Lanes()); diff != "" {
		t.Errorf("SatSub int64 mismatch (-want +got):\n%s", diff)
	}

	m := MaskOf[N2](false, true)
	if diff := cmp.Diff([]int64{math.MinInt64 + 1, math.MaxInt64}, s.MaskedSatSub(m, d).Lanes()); diff != "" {
		t.Errorf("MaskedSatSub mismatch (-want +got):\n%s", diff)
	}

	s.SatAddAssignScalar(math.MaxInt64)
	if diff := cmp.Diff([]int64{0, math.MaxInt64}, s.Lanes()); diff != "" {
		t.Errorf("SatAddAssignScalar mismatch (-want +got):\n%s", diff)
	}
}

func TestClamp(t *testing.T) {
	v := Of[float32, N4](-5, 0.5, 3, 10)
	got := Clamp(v, Set[float32, N4](0), Set[float32, N4](1))
	if diff := cmp.Diff([]float32{0, 0.5, 1, 1}, got.Lanes()); diff != "" {
		t.Errorf("Clamp mismatch (-want +got):\n%s", diff)
	}
}

func TestAbsDiffAndAvg(t *testing.T) {
	a := Of[uint8, N4](10, 200, 0, 255)
	b := Of[uint8, N4](20, 100, 255, 255)
	if diff := cmp.Diff([]uint8{10, 100, 255, 0}, AbsDiff(a, b).Lanes()); diff != "" {
		t.Errorf("AbsDiff mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint8{15, 150, 128, 255}, Avg(a, b).Lanes()); diff != "" {
		t.Errorf("Avg mismatch (-want +got):\n%s", diff)
	}

	x := Of[uint64, N2](math.MaxUint64, 1)
	y := Of[uint64, N2](math.MaxUint64, 2)
	if diff := cmp.Diff([]uint64{math.MaxUint64, 2}, Avg(x, y).Lanes()); diff != "" {
		t.Errorf("Avg uint64 mismatch (-want +got):\n%s", diff)
	}
}
