package oracle

import (
	"math/bits"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/go-highway/fixedvec/hwy"
)

func runMemory(tc *Context, rng *rand.Rand) {
	memory[int8, hwy.N64](tc, rng)
	memory[uint16, hwy.N8](tc, rng)
	memory[int32, hwy.N16](tc, rng)
	memory[uint64, hwy.N2](tc, rng)
	memory[float32, hwy.N4](tc, rng)
	memory[float64, hwy.N32](tc, rng)
}

func memory[T hwy.Lanes, N hwy.LaneCount](tc *Context, rng *rand.Rand) {
	n := lanesOf[N]()
	src := lo.Times(n, func(int) T { return Random[T](rng) })
	m := RandomMask[N](rng)

	v := hwy.Load[T, N](src)
	CheckLanes(tc, label[T, N]("Load"), v.Lanes(), src)

	// Merge masking: unselected lanes keep the previous contents.
	old := RandomVec[T, N](rng)
	merged := old
	merged.MaskedLoad(m, src)
	want := old.Lanes()
	for i := range want {
		if m.Extract(i) {
			want[i] = src[i]
		}
	}
	CheckLanes(tc, label[T, N]("MaskedLoad"), merged.Lanes(), want)

	// A masked store leaves the unselected elements of memory untouched.
	dst := lo.Times(n, func(int) T { return Random[T](rng) })
	before := append([]T(nil), dst...)
	v.MaskedStore(m, dst)
	for i := range before {
		if m.Extract(i) {
			before[i] = src[i]
		}
	}
	CheckLanes(tc, label[T, N]("MaskedStore"), dst, before)

	aligned := hwy.AlignedSlice[T](n)
	tc.Check(label[T, N]("AlignedSlice"), hwy.IsAlignedSlice(aligned), "slice not aligned to %d bytes", hwy.Alignment())
	v.StoreAligned(aligned)
	CheckLanes(tc, label[T, N]("StoreAligned"), hwy.LoadAligned[T, N](aligned).Lanes(), src)

	pairs := make([]T, 2*n)
	hwy.StoreInterleaved2(v, old, pairs)
	a, b := hwy.LoadInterleaved2[T, N](pairs)
	CheckLanes(tc, label[T, N]("Interleaved2/a"), a.Lanes(), src)
	CheckLanes(tc, label[T, N]("Interleaved2/b"), b.Lanes(), old.Lanes())

	packed, count := hwy.Compress(v, m)
	kept := lo.Filter(src, func(_ T, i int) bool { return m.Extract(i) })
	tc.Check(label[T, N]("Compress/count"), count == len(kept), "count %d, want %d", count, len(kept))
	CheckLanes(tc, label[T, N]("Compress"), packed.Lanes()[:count], kept)
}

func runMask(tc *Context, rng *rand.Rand) {
	maskOps[hwy.N1](tc, rng)
	maskOps[hwy.N2](tc, rng)
	maskOps[hwy.N4](tc, rng)
	maskOps[hwy.N8](tc, rng)
	maskOps[hwy.N16](tc, rng)
	maskOps[hwy.N32](tc, rng)
	maskOps[hwy.N64](tc, rng)
}

func maskOps[N hwy.LaneCount](tc *Context, rng *rand.Rand) {
	n := lanesOf[N]()
	a, b := RandomMask[N](rng), RandomMask[N](rng)
	name := func(op string) string { return label[uint8, N](op) }

	lanewise := func(f func(x, y bool) bool) []bool {
		return lo.Times(n, func(i int) bool { return f(a.Extract(i), b.Extract(i)) })
	}
	CheckMask(tc, name("And"), a.And(b), lanewise(func(x, y bool) bool { return x && y }))
	CheckMask(tc, name("Or"), a.Or(b), lanewise(func(x, y bool) bool { return x || y }))
	CheckMask(tc, name("Xor"), a.Xor(b), lanewise(func(x, y bool) bool { return x != y }))
	CheckMask(tc, name("AndNot"), a.AndNot(b), lanewise(func(x, y bool) bool { return x && !y }))
	CheckMask(tc, name("Not"), a.Not(), lanewise(func(x, _ bool) bool { return !x }))

	c := a
	c.OrAssign(b)
	tc.Check(name("OrAssign"), c.Equal(a.Or(b)), "got %s, want %s", c, a.Or(b))

	count := bits.OnesCount64(a.Bits())
	tc.Check(name("CountTrue"), a.CountTrue() == count, "got %d, want %d", a.CountTrue(), count)
	tc.Check(name("HAnd"), a.HAnd() == (count == n), "got %v with %d of %d set", a.HAnd(), count, n)
	tc.Check(name("HOr"), a.HOr() == (count > 0), "got %v with %d set", a.HOr(), count)
	tc.Check(name("HXor"), a.HXor() == (count%2 == 1), "got %v with %d set", a.HXor(), count)

	k := rng.IntN(n + 1)
	first := hwy.FirstN[N](k)
	CheckMask(tc, name("FirstN"), first, lo.Times(n, func(i int) bool { return i < k }))

	// Setting a lane through a comparison agrees with Insert.
	v := hwy.Iota[uint8, N]()
	i := rng.IntN(n)
	var single hwy.Mask[N]
	single.Insert(i, true)
	tc.Check(name("CmpEqScalar"), v.CmpEqScalar(uint8(i)).Equal(single), "lane %d", i)
}
