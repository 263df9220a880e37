package oracle

import (
	"math"
	"math/rand/v2"

	"github.com/go-highway/fixedvec/hwy"
	hmath "github.com/go-highway/fixedvec/hwy/contrib/math"
)

// Tolerances for the polynomial approximations in contrib/math.
const (
	tolFloat32 = 1e-5
	tolFloat64 = 1e-6
)

func runMath(tc *Context, rng *rand.Rand) {
	transcendental[float32, hwy.N8](tc, rng, tolFloat32)
	transcendental[float32, hwy.N64](tc, rng, tolFloat32)
	transcendental[float64, hwy.N4](tc, rng, tolFloat64)
	transcendental[float64, hwy.N16](tc, rng, tolFloat64)
}

func transcendental[T hwy.Floats, N hwy.LaneCount](tc *Context, rng *rand.Rand, tol float64) {
	// Exp inputs stay inside the float32 normal range for both kinds.
	x := vecFrom[T, N](rng, func(r *rand.Rand) T { return T(r.Float64()*160 - 80) })
	expectWithin(tc, "Exp", x, hmath.Exp(x), math.Exp, tol)

	pos := vecFrom[T, N](rng, func(r *rand.Rand) T { return T(math.Ldexp(0.5+r.Float64(), r.IntN(200)-100)) })
	expectWithin(tc, "Log", pos, hmath.Log(pos), math.Log, tol)

	expectWithin(tc, "Sin", x, hmath.Sin(x), math.Sin, tol)
	expectWithin(tc, "Cos", x, hmath.Cos(x), math.Cos, tol)
	expectWithin(tc, "Sigmoid", x, hmath.Sigmoid(x), func(f float64) float64 {
		return 1 / (1 + math.Exp(-f))
	}, tol)
}

func expectWithin[T hwy.Floats, N hwy.LaneCount](tc *Context, op string, x, got hwy.Vec[T, N], f func(float64) float64, tol float64) {
	want := x.Lanes()
	for i, v := range want {
		want[i] = T(f(float64(v)))
	}
	CheckWithin(tc, label[T, N](op), got.Lanes(), want, tol)
}
