package oracle

import (
	"fmt"

	"github.com/go-highway/fixedvec/hwy"
	"github.com/go-highway/fixedvec/hwy/lane"
)

// The expect helpers derive the wanted lanes from the inputs with a scalar
// function and compare them with what the vector operation produced. The
// masked variants want the first operand on every mask-false lane.

func label[T hwy.Lanes, N hwy.LaneCount](op string) string {
	return fmt.Sprintf("%s[%s x%d]", op, lane.KindOf[T](), lanesOf[N]())
}

func expectUnary[T hwy.Lanes, N hwy.LaneCount](tc *Context, op string, a, got hwy.Vec[T, N], f func(T) T) {
	want := a.Lanes()
	for i := range want {
		want[i] = f(want[i])
	}
	CheckLanes(tc, label[T, N](op), got.Lanes(), want)
}

func expectUnaryMasked[T hwy.Lanes, N hwy.LaneCount](tc *Context, op string, m hwy.Mask[N], a, got hwy.Vec[T, N], f func(T) T) {
	want := a.Lanes()
	for i := range want {
		if m.Extract(i) {
			want[i] = f(want[i])
		}
	}
	CheckLanes(tc, label[T, N](op), got.Lanes(), want)
}

func expectBinary[T hwy.Lanes, N hwy.LaneCount](tc *Context, op string, a, b, got hwy.Vec[T, N], f func(T, T) T) {
	want, bl := a.Lanes(), b.Lanes()
	for i := range want {
		want[i] = f(want[i], bl[i])
	}
	CheckLanes(tc, label[T, N](op), got.Lanes(), want)
}

func expectBinaryMasked[T hwy.Lanes, N hwy.LaneCount](tc *Context, op string, m hwy.Mask[N], a, b, got hwy.Vec[T, N], f func(T, T) T) {
	want, bl := a.Lanes(), b.Lanes()
	for i := range want {
		if m.Extract(i) {
			want[i] = f(want[i], bl[i])
		}
	}
	CheckLanes(tc, label[T, N](op), got.Lanes(), want)
}

func expectTernary[T hwy.Lanes, N hwy.LaneCount](tc *Context, op string, m hwy.Mask[N], a, b, c, got hwy.Vec[T, N], f func(T, T, T) T) {
	want, bl, cl := a.Lanes(), b.Lanes(), c.Lanes()
	for i := range want {
		if m.Extract(i) {
			want[i] = f(want[i], bl[i], cl[i])
		}
	}
	CheckLanes(tc, label[T, N](op), got.Lanes(), want)
}

func expectCompare[T hwy.Lanes, N hwy.LaneCount](tc *Context, op string, a, b hwy.Vec[T, N], got hwy.Mask[N], f func(T, T) bool) {
	al, bl := a.Lanes(), b.Lanes()
	want := make([]bool, len(al))
	for i := range want {
		want[i] = f(al[i], bl[i])
	}
	CheckMask(tc, label[T, N](op), got, want)
}

func expectTest[T hwy.Lanes, N hwy.LaneCount](tc *Context, op string, a hwy.Vec[T, N], got hwy.Mask[N], f func(T) bool) {
	al := a.Lanes()
	want := make([]bool, len(al))
	for i := range want {
		want[i] = f(al[i])
	}
	CheckMask(tc, label[T, N](op), got, want)
}

func expectShift[T hwy.Integers, N hwy.LaneCount](tc *Context, op string, m hwy.Mask[N], a hwy.Vec[T, N], n hwy.Vec[uint8, N], got hwy.Vec[T, N], f func(T, uint64) T) {
	want, nl := a.Lanes(), n.Lanes()
	for i := range want {
		if m.Extract(i) {
			want[i] = f(want[i], uint64(nl[i]))
		}
	}
	CheckLanes(tc, label[T, N](op), got.Lanes(), want)
}

// expectFold checks a horizontal reduction against a left fold over the
// selected lanes, with excluded lanes contributing id.
func expectFold[T hwy.Lanes, N hwy.LaneCount](tc *Context, op string, m hwy.Mask[N], a hwy.Vec[T, N], id, got T, f func(T, T) T) {
	acc := id
	for i, x := range a.Lanes() {
		if !m.Extract(i) {
			x = id
		}
		acc = f(acc, x)
	}
	CheckLanes(tc, label[T, N](op), []T{got}, []T{acc})
}
