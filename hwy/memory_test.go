package hwy

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	src := []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	v := Load[uint32, N8](src)
	dst := make([]uint32, 9)
	v.Store(dst)
	if diff := cmp.Diff([]uint32{1, 2, 3, 4, 5, 6, 7, 8, 0}, dst); diff != "" {
		t.Errorf("Store mismatch (-want +got):\n%s", diff)
	}
}

func TestMaskedLoadMerges(t *testing.T) {
	v := Set[int16, N4](-7)
	m := MaskOf[N4](true, false, true, false)
	v.MaskedLoad(m, []int16{10, 20, 30, 40})
	if diff := cmp.Diff([]int16{10, -7, 30, -7}, v.Lanes()); diff != "" {
		t.Errorf("MaskedLoad mismatch (-want +got):\n%s", diff)
	}
}

func TestMaskedStoreLeavesMemory(t *testing.T) {
	v := Of[float64, N4](1, 2, 3, 4)
	dst := []float64{-1, -2, -3, -4}
	v.MaskedStore(MaskOf[N4](false, true, false, true), dst)
	if diff := cmp.Diff([]float64{-1, 2, -3, 4}, dst); diff != "" {
		t.Errorf("MaskedStore mismatch (-want +got):\n%s", diff)
	}

	v.MaskedStore(MaskSet[N4](false), dst)
	if diff := cmp.Diff([]float64{-1, 2, -3, 4}, dst); diff != "" {
		t.Errorf("empty MaskedStore wrote memory (-want +got):\n%s", diff)
	}
}

func TestAlignedSlice(t *testing.T) {
	for _, n := range []int{1, 3, 16, 100} {
		s := AlignedSlice[float32](n)
		if len(s) != n {
			t.Fatalf("AlignedSlice(%d): len = %d", n, len(s))
		}
		if addr := uintptr(unsafe.Pointer(&s[0])); addr%MaxAlignment != 0 {
			t.Errorf("AlignedSlice(%d): address %#x not aligned to %d", n, addr, MaxAlignment)
		}
		if !IsAlignedSlice(s) {
			t.Errorf("IsAlignedSlice(AlignedSlice(%d)) = false", n)
		}
	}
	if AlignedSlice[int8](0) != nil {
		t.Errorf("AlignedSlice(0) should be nil")
	}

	s := AlignedSlice[uint8](2 * MaxAlignment)
	if IsAlignedSlice(s[1:]) {
		t.Errorf("IsAlignedSlice of an offset slice = true")
	}
}

func TestAlignedLoadStore(t *testing.T) {
	buf := AlignedSlice[int32](8)
	for i := range buf {
		buf[i] = int32(i * i)
	}
	v := LoadAligned[int32, N8](buf)
	v.AddAssignScalar(1)
	v.StoreAligned(buf)
	if diff := cmp.Diff([]int32{1, 2, 5, 10, 17, 26, 37, 50}, buf); diff != "" {
		t.Errorf("aligned round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestInterleaved2(t *testing.T) {
	src := []uint8{1, 10, 2, 20, 3, 30, 4, 40}
	a, b := LoadInterleaved2[uint8, N4](src)
	if diff := cmp.Diff([]uint8{1, 2, 3, 4}, a.Lanes()); diff != "" {
		t.Errorf("LoadInterleaved2 a mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint8{10, 20, 30, 40}, b.Lanes()); diff != "" {
		t.Errorf("LoadInterleaved2 b mismatch (-want +got):\n%s", diff)
	}

	dst := make([]uint8, 8)
	StoreInterleaved2(a, b, dst)
	if diff := cmp.Diff(src, dst); diff != "" {
		t.Errorf("StoreInterleaved2 mismatch (-want +got):\n%s", diff)
	}
}
