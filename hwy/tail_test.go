package hwy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProcessWithTail(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	out := make([]float32, len(data))

	var full, tail int
	ProcessWithTail[N4](len(data),
		func(offset int) {
			full++
			v := Load[float32, N4](data[offset:])
			v.Add(v).Store(out[offset:])
		},
		func(offset, count int) {
			tail++
			buf := make([]float32, 4)
			copy(buf, data[offset:offset+count])
			m := TailMask[N4](count)
			var v Vec[float32, N4]
			v.MaskedLoad(m, buf)
			v.Add(v).MaskedStore(m, buf)
			copy(out[offset:], buf[:count])
		},
	)

	if full != 2 || tail != 1 {
		t.Errorf("calls: full=%d tail=%d, want 2 and 1", full, tail)
	}
	if diff := cmp.Diff([]float32{2, 4, 6, 8, 10, 12, 14, 16, 18, 20}, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessWithTailNoMask(t *testing.T) {
	var offsets []int
	ProcessWithTailNoMask[N4](10, func(offset int) {
		offsets = append(offsets, offset)
	})
	if diff := cmp.Diff([]int{0, 4, 6}, offsets); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestAlignedSize(t *testing.T) {
	tests := []struct {
		size, want int
		aligned    bool
	}{
		{0, 0, true},
		{1, 8, false},
		{8, 8, true},
		{9, 16, false},
	}
	for _, tt := range tests {
		if got := AlignedSize[N8](tt.size); got != tt.want {
			t.Errorf("AlignedSize(%d) = %d, want %d", tt.size, got, tt.want)
		}
		if got := IsAligned[N8](tt.size); got != tt.aligned {
			t.Errorf("IsAligned(%d) = %v, want %v", tt.size, got, tt.aligned)
		}
	}
}
