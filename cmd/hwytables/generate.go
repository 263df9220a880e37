package main

import (
	"fmt"
	"math/big"

	"github.com/go-highway/fixedvec/hwy"
)

// lanes is the lane count of every row; it matches oracle.TableLanes.
const lanes = 4

// ops lists the generated operations in output order.
var ops = []string{
	"add", "sub", "mul", "satadd", "satsub", "min", "max",
	"shl", "shr", "rol", "ror", "maskedadd",
}

// splitMix is the SplitMix64 generator. It is tiny and fully specified,
// which keeps the tables reproducible outside of Go as well.
type splitMix struct {
	state uint64
}

func (s *splitMix) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// table is the rendered form of one lane type's rows.
type table struct {
	Type string
	Var  string
	Rows []row
}

type row struct {
	Op    string
	A, B  []string
	Shift uint64
	Mask  []bool
	Want  []string
}

// input is an unevaluated row.
type input[T hwy.Integers] struct {
	op    string
	a, b  [lanes]T
	shift uint64
	mask  [lanes]bool
}

// generate builds the tables for every integer lane type from one stream.
func generate(seed uint64, rows int) []table {
	src := &splitMix{state: seed}
	return []table{
		build[int8](src, rows),
		build[uint8](src, rows),
		build[int16](src, rows),
		build[uint16](src, rows),
		build[int32](src, rows),
		build[uint32](src, rows),
		build[int64](src, rows),
		build[uint64](src, rows),
	}
}

func build[T hwy.Integers](src *splitMix, rows int) table {
	name := typeName[T]()
	t := table{Type: name, Var: tableVar(name)}
	for _, in := range fixedInputs[T]() {
		t.Rows = append(t.Rows, evaluate(in))
	}
	bits := uint64(widthOf[T]())
	for _, op := range ops {
		for range rows {
			in := input[T]{op: op}
			for i := range in.a {
				in.a[i] = T(src.next())
			}
			for i := range in.b {
				in.b[i] = T(src.next())
			}
			// Amounts up to twice the width exercise the modulo rule.
			in.shift = src.next() % (2 * bits)
			m := src.next()
			for i := range in.mask {
				in.mask[i] = m>>i&1 == 1
			}
			t.Rows = append(t.Rows, evaluate(in))
		}
	}
	return t
}

// fixedInputs returns hand-picked rows placed ahead of the random ones.
func fixedInputs[T hwy.Integers]() []input[T] {
	if typeName[T]() != "int16" {
		return nil
	}
	// Converting from a variable truncates to the lane width.
	of := func(v int64) T { return T(v) }
	a := [lanes]T{of(11410), of(-30737), of(1891), of(-27538)}
	b := [lanes]T{of(6160), of(-17357), of(5265), of(-7340)}
	small := [lanes]T{of(1), of(-1), of(0x0101), of(3)}
	return []input[T]{
		{op: "add", a: a, b: b},
		{op: "maskedadd", a: a, b: b, mask: [lanes]bool{false, true, true, false}},
		// 19 is 3 modulo the 16-bit width.
		{op: "shl", a: small, shift: 19},
	}
}

func evaluate[T hwy.Integers](in input[T]) row {
	var want [lanes]T
	for i := range want {
		want[i] = apply(in.op, in.a[i], in.b[i], in.shift, in.mask[i])
	}
	return row{
		Op:    in.op,
		A:     format(in.a[:]),
		B:     format(in.b[:]),
		Shift: in.shift,
		Mask:  in.mask[:],
		Want:  format(want[:]),
	}
}

// apply derives the expected lane with arbitrary-precision arithmetic on
// the mathematical values of a and b, reduced to the lane width at the end.
// It shares no code with the vector package.
func apply[T hwy.Integers](op string, a, b T, shift uint64, m bool) T {
	w := widthOf[T]()
	x, y := value(a), value(b)
	s := uint(shift % uint64(w))
	switch op {
	case "add":
		return wrap[T](x.Add(x, y))
	case "sub":
		return wrap[T](x.Sub(x, y))
	case "mul":
		return wrap[T](x.Mul(x, y))
	case "satadd":
		return clamp[T](x.Add(x, y))
	case "satsub":
		return clamp[T](x.Sub(x, y))
	case "min":
		if x.Cmp(y) <= 0 {
			return a
		}
		return b
	case "max":
		if x.Cmp(y) >= 0 {
			return a
		}
		return b
	case "shl":
		return wrap[T](x.Lsh(x, s))
	case "shr":
		// Rsh on a negative big.Int rounds toward -Inf, which is the
		// arithmetic shift of the two's complement pattern.
		return wrap[T](x.Rsh(x, s))
	case "rol":
		return rotate[T](x, s)
	case "ror":
		return rotate[T](x, (w-s)%w)
	case "maskedadd":
		if m {
			return wrap[T](x.Add(x, y))
		}
		return a
	}
	panic(fmt.Sprintf("hwytables: unknown op %q", op))
}

// rotate rotates the w-bit pattern of x left by s, with 0 <= s < w.
func rotate[T hwy.Integers](x *big.Int, s uint) T {
	w := widthOf[T]()
	u := x.Mod(x, modulus[T]())
	hi := new(big.Int).Lsh(u, s)
	lo := new(big.Int).Rsh(u, w-s)
	return wrap[T](hi.Add(hi, lo))
}

// value returns the mathematical value of v.
func value[T hwy.Integers](v T) *big.Int {
	if isSigned[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

// wrap reduces x modulo 2^w and returns the lane with that bit pattern.
func wrap[T hwy.Integers](x *big.Int) T {
	r := new(big.Int).Mod(x, modulus[T]())
	return T(r.Uint64())
}

// clamp limits x to the representable range of T.
func clamp[T hwy.Integers](x *big.Int) T {
	w := widthOf[T]()
	lo, hi := big.NewInt(0), new(big.Int).Sub(modulus[T](), big.NewInt(1))
	if isSigned[T]() {
		half := new(big.Int).Lsh(big.NewInt(1), w-1)
		lo = new(big.Int).Neg(half)
		hi = half.Sub(half, big.NewInt(1))
	}
	switch {
	case x.Cmp(lo) < 0:
		return wrap[T](lo)
	case x.Cmp(hi) > 0:
		return wrap[T](hi)
	}
	return wrap[T](x)
}

func modulus[T hwy.Integers]() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), widthOf[T]())
}

// widthOf counts the bits of T by shifting a one out of the lane.
func widthOf[T hwy.Integers]() uint {
	var w uint
	for x := T(1); x != 0; x <<= 1 {
		w++
	}
	return w
}

func isSigned[T hwy.Integers]() bool {
	var zero T
	return ^zero < 0
}

func typeName[T hwy.Integers]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

func format[T hwy.Integers](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = fmt.Sprint(v)
	}
	return out
}
