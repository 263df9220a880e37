package math

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-highway/fixedvec/hwy"
)

func relErr(got, want float64) float64 {
	return stdmath.Abs(got-want) / stdmath.Max(1, stdmath.Abs(want))
}

func TestExpFloat32(t *testing.T) {
	for x := float32(-80); x <= 80; x += 0.37 {
		v := Exp(hwy.Of[float32, hwy.N4](x, -x, x/10, -x/10))
		for i, in := range []float32{x, -x, x / 10, -x / 10} {
			want := stdmath.Exp(float64(in))
			got := float64(v.Extract(i))
			assert.InDelta(t, 0, stdmath.Abs(got-want)/want, 1e-5, "Exp(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestExpFloat64(t *testing.T) {
	for x := -700.0; x <= 700; x += 1.3 {
		got := Exp(hwy.Set[float64, hwy.N2](x)).Extract(0)
		want := stdmath.Exp(x)
		assert.InDelta(t, 0, stdmath.Abs(got-want)/want, 1e-6, "Exp(%v)", x)
	}
}

func TestExpSpecialCases(t *testing.T) {
	v := Exp(hwy.Of[float32, hwy.N4](0, 200, -200, float32(stdmath.NaN())))
	assert.Equal(t, float32(1), v.Extract(0))
	assert.True(t, stdmath.IsInf(float64(v.Extract(1)), 1))
	assert.Equal(t, float32(0), v.Extract(2))
	assert.True(t, stdmath.IsNaN(float64(v.Extract(3))))

	d := Exp(hwy.Of[float64, hwy.N2](stdmath.Inf(1), stdmath.Inf(-1)))
	assert.True(t, stdmath.IsInf(d.Extract(0), 1))
	assert.Equal(t, 0.0, d.Extract(1))
}

func TestLog(t *testing.T) {
	for _, x := range []float64{1e-30, 1e-5, 0.1, 0.5, 0.9999, 1, 1.0001, 2, 3.5, 10, 1e5, 1e30} {
		got32 := float64(Log(hwy.Set[float32, hwy.N8](float32(x))).Extract(7))
		want32 := stdmath.Log(float64(float32(x)))
		assert.LessOrEqual(t, relErr(got32, want32), 1e-5, "Log[float32](%v) = %v, want %v", x, got32, want32)

		got64 := Log(hwy.Set[float64, hwy.N1](x)).Extract(0)
		assert.LessOrEqual(t, relErr(got64, stdmath.Log(x)), 1e-6, "Log[float64](%v) = %v", x, got64)
	}
}

func TestLogSpecialCases(t *testing.T) {
	v := Log(hwy.Of[float64, hwy.N8](0, -1, stdmath.Inf(1), stdmath.NaN(), 1, stdmath.SmallestNonzeroFloat64))
	assert.True(t, stdmath.IsInf(v.Extract(0), -1), "Log(0)")
	assert.True(t, stdmath.IsNaN(v.Extract(1)), "Log(-1)")
	assert.True(t, stdmath.IsInf(v.Extract(2), 1), "Log(+Inf)")
	assert.True(t, stdmath.IsNaN(v.Extract(3)), "Log(NaN)")
	assert.Equal(t, 0.0, v.Extract(4), "Log(1)")
	assert.InDelta(t, -1074*stdmath.Ln2, v.Extract(5), 1e-9, "Log(SmallestNonzeroFloat64)")
}

func TestLogSubnormal(t *testing.T) {
	// Expected values are exact: log(m * 2^e) = log(m) + e*ln(2).
	cases := []struct {
		m float64
		e int
	}{
		{1, -1074}, {3, -1074}, {1, -1060}, {1.5, -1040}, {1, -1023}, {0.75, -1022},
	}
	for _, c := range cases {
		x := stdmath.Ldexp(c.m, c.e)
		want := stdmath.Log(c.m) + float64(c.e)*stdmath.Ln2
		got := Log(hwy.Set[float64, hwy.N2](x)).Extract(1)
		assert.LessOrEqual(t, relErr(got, want), 1e-9, "Log(%v * 2^%d) = %v, want %v", c.m, c.e, got, want)
	}

	for _, c := range []struct {
		m float64
		e int
	}{
		{1, -149}, {5, -149}, {1, -140}, {1.25, -130}, {1, -127},
	} {
		x := float32(stdmath.Ldexp(c.m, c.e))
		want := stdmath.Log(c.m) + float64(c.e)*stdmath.Ln2
		got := float64(Log(hwy.Set[float32, hwy.N4](x)).Extract(3))
		assert.LessOrEqual(t, relErr(got, want), 1e-5, "Log[float32](%v * 2^%d) = %v, want %v", c.m, c.e, got, want)
	}
}

func TestExpLogRoundTrip(t *testing.T) {
	in := []float32{0.25, 1.5, 7, 42, 1000, 1e4, 3e-3, 0.9}
	x := hwy.Load[float32, hwy.N8](in)
	got := Exp(Log(x))
	for i, want := range in {
		assert.InDelta(t, 0, relErr(float64(got.Extract(i)), float64(want)), 1e-5, "Exp(Log(%v))", want)
	}
}

func TestSigmoidTanh(t *testing.T) {
	x := hwy.Of[float64, hwy.N4](-50, -1, 0, 2)
	s := Sigmoid(x)
	th := Tanh(x)
	for i, in := range x.Lanes() {
		want := 1 / (1 + stdmath.Exp(-in))
		assert.InDelta(t, want, s.Extract(i), 1e-6, "Sigmoid(%v)", in)
		assert.InDelta(t, stdmath.Tanh(in), th.Extract(i), 1e-6, "Tanh(%v)", in)
	}
	require.True(t, stdmath.IsNaN(float64(Tanh(hwy.Set[float32, hwy.N1](float32(stdmath.NaN()))).Extract(0))))
}

func TestSinCos(t *testing.T) {
	for x := -100.0; x <= 100; x += 0.173 {
		in := []float32{float32(x), float32(x / 7), float32(x * 3), float32(-x / 31)}
		v := hwy.Load[float32, hwy.N4](in)
		s, c := Sin(v), Cos(v)
		s2, c2 := SinCos(v)
		for i, xi := range in {
			wantS, wantC := stdmath.Sincos(float64(xi))
			assert.LessOrEqual(t, relErr(float64(s.Extract(i)), wantS), 1e-5, "Sin[float32](%v)", xi)
			assert.LessOrEqual(t, relErr(float64(c.Extract(i)), wantC), 1e-5, "Cos[float32](%v)", xi)
			assert.Equal(t, s.Extract(i), s2.Extract(i))
			assert.Equal(t, c.Extract(i), c2.Extract(i))
		}

		d := hwy.Of[float64, hwy.N2](x, x*1e3)
		ds, dc := Sin(d), Cos(d)
		for i, xi := range d.Lanes() {
			assert.LessOrEqual(t, relErr(ds.Extract(i), stdmath.Sin(xi)), 1e-6, "Sin[float64](%v)", xi)
			assert.LessOrEqual(t, relErr(dc.Extract(i), stdmath.Cos(xi)), 1e-6, "Cos[float64](%v)", xi)
		}
	}
}

func TestSinCosQuadrants(t *testing.T) {
	// Multiples of pi/2 land on each quadrant, including negative k.
	in := []float64{0, stdmath.Pi / 2, stdmath.Pi, 3 * stdmath.Pi / 2, -stdmath.Pi / 2, -stdmath.Pi, -3 * stdmath.Pi / 2, 2 * stdmath.Pi}
	wantS := []float64{0, 1, 0, -1, -1, 0, 1, 0}
	wantC := []float64{1, 0, -1, 0, 0, -1, 0, 1}
	v := hwy.Load[float64, hwy.N8](in)
	s, c := SinCos(v)
	for i := range in {
		assert.InDelta(t, wantS[i], s.Extract(i), 1e-12, "Sin(%v)", in[i])
		assert.InDelta(t, wantC[i], c.Extract(i), 1e-12, "Cos(%v)", in[i])
	}
}

func TestSinCosSpecialCases(t *testing.T) {
	negZero := stdmath.Copysign(0, -1)
	v := hwy.Of[float64, hwy.N4](negZero, stdmath.Inf(1), stdmath.Inf(-1), stdmath.NaN())
	s, c := Sin(v), Cos(v)
	assert.True(t, stdmath.Signbit(s.Extract(0)), "Sin(-0) keeps the sign")
	assert.Equal(t, 1.0, c.Extract(0))
	for i := 1; i < 4; i++ {
		assert.True(t, stdmath.IsNaN(s.Extract(i)), "Sin(%v)", v.Extract(i))
		assert.True(t, stdmath.IsNaN(c.Extract(i)), "Cos(%v)", v.Extract(i))
	}
	f := Sin(hwy.Set[float32, hwy.N2](float32(stdmath.Inf(1))))
	assert.True(t, stdmath.IsNaN(float64(f.Extract(0))))
}
