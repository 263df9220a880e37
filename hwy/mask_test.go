package hwy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMaskLogic(t *testing.T) {
	a := MaskOf[N2](true, false)
	b := MaskOf[N2](false, false)

	if got := a.And(b).String(); got != "FF" {
		t.Errorf("(T,F) land (F,F) = %s, want FF", got)
	}
	if got := a.Or(b).String(); got != "TF" {
		t.Errorf("(T,F) lor (F,F) = %s, want TF", got)
	}
	if got := a.Xor(MaskSet[N2](true)).String(); got != "FT" {
		t.Errorf("(T,F) lxor (T,T) = %s, want FT", got)
	}
	if got := MaskSet[N2](true).AndNot(a).String(); got != "FT" {
		t.Errorf("(T,T) andnot (T,F) = %s, want FT", got)
	}
	if got := a.Not().String(); got != "FT" {
		t.Errorf("not (T,F) = %s, want FT", got)
	}
	if got := a.OrScalar(true).String(); got != "TT" {
		t.Errorf("OrScalar(true) = %s, want TT", got)
	}
	if got := a.AndScalar(false).String(); got != "FF" {
		t.Errorf("AndScalar(false) = %s, want FF", got)
	}
	if got := a.XorScalar(true).String(); got != "FT" {
		t.Errorf("XorScalar(true) = %s, want FT", got)
	}
}

func TestMaskAssign(t *testing.T) {
	m := MaskOf[N4](true, true, false, false)
	m.AndAssign(MaskOf[N4](true, false, true, false))
	if got := m.String(); got != "TFFF" {
		t.Errorf("AndAssign = %s, want TFFF", got)
	}
	m.OrAssign(MaskOf[N4](false, false, false, true))
	if got := m.String(); got != "TFFT" {
		t.Errorf("OrAssign = %s, want TFFT", got)
	}
	m.XorAssign(MaskSet[N4](true))
	if got := m.String(); got != "FTTF" {
		t.Errorf("XorAssign = %s, want FTTF", got)
	}
	m.NotAssign()
	if got := m.String(); got != "TFFT" {
		t.Errorf("NotAssign = %s, want TFFT", got)
	}
	m.XorAssignScalar(true)
	if got := m.String(); got != "FTTF" {
		t.Errorf("XorAssignScalar(true) = %s, want FTTF", got)
	}
	m.OrAssignScalar(false)
	if got := m.String(); got != "FTTF" {
		t.Errorf("OrAssignScalar(false) = %s, want FTTF", got)
	}
	m.AndAssignScalar(true)
	if got := m.String(); got != "FTTF" {
		t.Errorf("AndAssignScalar(true) = %s, want FTTF", got)
	}
	m.OrAssignScalar(true)
	if got := m.String(); got != "TTTT" {
		t.Errorf("OrAssignScalar(true) = %s, want TTTT", got)
	}
	m.AndAssignScalar(false)
	if got := m.String(); got != "FFFF" {
		t.Errorf("AndAssignScalar(false) = %s, want FFFF", got)
	}
}

func TestMaskReductions(t *testing.T) {
	tests := []struct {
		mask             Mask[N4]
		all, any, parity bool
		count            int
		first, last      int
	}{
		{MaskSet[N4](false), false, false, false, 0, -1, -1},
		{MaskSet[N4](true), true, true, false, 4, 0, 3},
		{MaskOf[N4](false, true, false, false), false, true, true, 1, 1, 1},
		{MaskOf[N4](true, false, true, true), false, true, true, 3, 0, 3},
	}
	for _, tt := range tests {
		m := tt.mask
		if m.HAnd() != tt.all || m.AllTrue() != tt.all {
			t.Errorf("%s: HAnd = %v, want %v", m, m.HAnd(), tt.all)
		}
		if m.HOr() != tt.any || m.AnyTrue() != tt.any {
			t.Errorf("%s: HOr = %v, want %v", m, m.HOr(), tt.any)
		}
		if m.HXor() != tt.parity {
			t.Errorf("%s: HXor = %v, want %v", m, m.HXor(), tt.parity)
		}
		if m.CountTrue() != tt.count {
			t.Errorf("%s: CountTrue = %d, want %d", m, m.CountTrue(), tt.count)
		}
		if m.FindFirstTrue() != tt.first || m.FindLastTrue() != tt.last {
			t.Errorf("%s: first/last = %d/%d, want %d/%d", m, m.FindFirstTrue(), m.FindLastTrue(), tt.first, tt.last)
		}
	}
}

func TestMaskLoadStore(t *testing.T) {
	src := []bool{true, false, false, true, true}
	m := MaskLoad[N4](src)
	if got := m.String(); got != "TFFT" {
		t.Errorf("MaskLoad = %s, want TFFT", got)
	}
	dst := make([]bool, 5)
	dst[4] = true
	m.Store(dst)
	if diff := cmp.Diff([]bool{true, false, false, true, true}, dst); diff != "" {
		t.Errorf("Store mismatch (-want +got):\n%s", diff)
	}

	m.Insert(1, true)
	if !m.Extract(1) || m.NumLanes() != 4 {
		t.Errorf("Insert/Extract failed: %s", m)
	}
}

func TestMaskConstructors(t *testing.T) {
	if got := FirstN[N8](3).String(); got != "TTTFFFFF" {
		t.Errorf("FirstN(3) = %s", got)
	}
	if got := FirstN[N4](-1).String(); got != "FFFF" {
		t.Errorf("FirstN(-1) = %s", got)
	}
	if got := FirstN[N4](99).String(); got != "TTTT" {
		t.Errorf("FirstN(99) = %s", got)
	}
	if got := LastN[N4](1).String(); got != "FFFT" {
		t.Errorf("LastN(1) = %s", got)
	}

	m := MaskFromBits[N8](0b1010_0101)
	if got := m.String(); got != "TFTFFTFT" {
		t.Errorf("MaskFromBits = %s", got)
	}
	if m.Bits() != 0b1010_0101 {
		t.Errorf("Bits = %b", m.Bits())
	}
	if got := MaskFromBits[N4](0xFF).Bits(); got != 0xF {
		t.Errorf("MaskFromBits ignores lanes beyond N: got %#x", got)
	}
	if !MaskOf[N4](true).Equal(FirstN[N4](1)) {
		t.Errorf("MaskOf(true) should equal FirstN(1)")
	}
}

func TestMaskWideLanes(t *testing.T) {
	m := MaskFromBits[N64](1<<63 | 1)
	if m.CountTrue() != 2 || m.FindLastTrue() != 63 {
		t.Errorf("N64 mask: count %d last %d", m.CountTrue(), m.FindLastTrue())
	}
	if m.Bits() != 1<<63|1 {
		t.Errorf("N64 Bits = %#x", m.Bits())
	}
}
