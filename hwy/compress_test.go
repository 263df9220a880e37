package hwy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompress(t *testing.T) {
	v := Of[int32, N4](1, 2, 3, 4)
	m := MaskOf[N4](true, false, true, false)

	got, count := Compress(v, m)
	if count != 2 {
		t.Errorf("Compress count = %d, want 2", count)
	}
	if diff := cmp.Diff([]int32{1, 3, 0, 0}, got.Lanes()); diff != "" {
		t.Errorf("Compress mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]int32{1, 0, 3, 0}, Expand(got, m).Lanes()); diff != "" {
		t.Errorf("Expand mismatch (-want +got):\n%s", diff)
	}
}

func TestCompressStore(t *testing.T) {
	v := Of[float32, N8](1, 2, 3, 4, 5, 6, 7, 8)
	m := MaskFromBits[N8](0b1100_1010)

	dst := make([]float32, 8)
	n := CompressStore(v, m, dst)
	if n != 4 {
		t.Errorf("CompressStore count = %d, want 4", n)
	}
	if diff := cmp.Diff([]float32{2, 4, 7, 8, 0, 0, 0, 0}, dst); diff != "" {
		t.Errorf("CompressStore mismatch (-want +got):\n%s", diff)
	}

	short := make([]float32, 2)
	if n := CompressStore(v, m, short); n != 2 {
		t.Errorf("CompressStore into short slice stored %d", n)
	}
	if diff := cmp.Diff([]float32{2, 4}, short); diff != "" {
		t.Errorf("short CompressStore mismatch (-want +got):\n%s", diff)
	}
}
