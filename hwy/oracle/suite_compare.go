package oracle

import (
	"math/rand/v2"

	"github.com/go-highway/fixedvec/hwy"
)

func runCompare(tc *Context, rng *rand.Rand) {
	compare[int8, hwy.N8](tc, rng)
	compare[uint8, hwy.N16](tc, rng)
	compare[int16, hwy.N32](tc, rng)
	compare[uint16, hwy.N2](tc, rng)
	compare[int32, hwy.N64](tc, rng)
	compare[uint32, hwy.N4](tc, rng)
	compare[int64, hwy.N8](tc, rng)
	compare[uint64, hwy.N1](tc, rng)
	compare[float32, hwy.N16](tc, rng)
	compare[float64, hwy.N4](tc, rng)
}

func compare[T hwy.Lanes, N hwy.LaneCount](tc *Context, rng *rand.Rand) {
	a, b := RandomVec[T, N](rng), RandomVec[T, N](rng)
	// Mix in equal lanes so equality is not vanishingly rare.
	m := RandomMask[N](rng)
	b = hwy.IfThenElse(m, a, b)
	s := Random[T](rng)
	bs := hwy.Set[T, N](s)

	expectCompare(tc, "CmpEq", a, b, a.CmpEq(b), func(x, y T) bool { return x == y })
	expectCompare(tc, "CmpNe", a, b, a.CmpNe(b), func(x, y T) bool { return x != y })
	expectCompare(tc, "CmpLt", a, b, a.CmpLt(b), func(x, y T) bool { return x < y })
	expectCompare(tc, "CmpGt", a, b, a.CmpGt(b), func(x, y T) bool { return x > y })
	expectCompare(tc, "CmpLe", a, b, a.CmpLe(b), func(x, y T) bool { return x <= y })
	expectCompare(tc, "CmpGe", a, b, a.CmpGe(b), func(x, y T) bool { return x >= y })
	expectCompare(tc, "CmpLtScalar", a, bs, a.CmpLtScalar(s), func(x, y T) bool { return x < y })
	expectCompare(tc, "ScalarCmpLt", bs, a, hwy.ScalarCmpLt(s, a), func(x, y T) bool { return x < y })
	expectCompare(tc, "ScalarCmpGe", bs, a, hwy.ScalarCmpGe(s, a), func(x, y T) bool { return x >= y })

	want := true
	for i, x := range a.Lanes() {
		want = want && x == b.Extract(i)
	}
	tc.Check(label[T, N]("Cmpe"), a.Cmpe(b) == want, "got %v, want %v", a.Cmpe(b), want)
	tc.Check(label[T, N]("Cmpe/CmpEq"), a.Cmpe(b) == a.CmpEq(b).AllTrue(), "Cmpe disagrees with CmpEq().AllTrue()")

	sel := RandomMask[N](rng)
	picked := b.Lanes()
	for i, x := range a.Lanes() {
		if sel.Extract(i) {
			picked[i] = x
		}
	}
	CheckLanes(tc, label[T, N]("IfThenElse"), hwy.IfThenElse(sel, a, b).Lanes(), picked)
	CheckLanes(tc, label[T, N]("Merge"), hwy.Merge(a, b, sel).Lanes(), picked)
}
