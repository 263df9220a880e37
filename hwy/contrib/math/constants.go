package math

// =============================================================================
// Constants for mathematical functions
// =============================================================================

// Exp: ln(2) split into a high part with trailing zero bits and a low
// correction, so k*ln2Hi is exact for the reduced range of k.
var (
	expLn2Hi_f32  float32 = 0.693359375
	expLn2Lo_f32  float32 = -2.12194440e-4
	expInvLn2_f32 float32 = 1.44269504088896341

	expOverflow_f32  float32 = 88.72283905206835
	expUnderflow_f32 float32 = -87.33654475055310

	expLn2Hi_f64  float64 = 0.6931471803691238
	expLn2Lo_f64  float64 = 1.9082149292705877e-10
	expInvLn2_f64 float64 = 1.4426950408889634

	expOverflow_f64  float64 = 709.782712893384
	expUnderflow_f64 float64 = -708.3964185322641
)

// Taylor coefficients 1/k! for k = 1.., lowest order first.
var (
	expCoeffs_f32 = []float64{
		1.0,
		0.5,
		0.16666666666666666,
		0.041666666666666664,
		0.008333333333333333,
		0.001388888888888889,
	}
	expCoeffs_f64 = []float64{
		1.0,
		0.5,
		0.16666666666666666,
		0.041666666666666664,
		0.008333333333333333,
		0.001388888888888889,
		0.0001984126984126984,
		2.48015873015873e-05,
		2.7557319223985893e-06,
		2.755731922398589e-07,
	}
)

// Log: coefficients of log(m) = 2y * (c1 + c2*y^2 + c3*y^4 + ...) with
// y = (m-1)/(m+1).
var (
	logCoeffs_f32 = []float64{
		1.0,
		0.3333333333333367565,
		0.1999999999970470954,
		0.1428571437183119574,
		0.1111109921607489198,
	}
	logCoeffs_f64 = []float64{
		1.0,
		0.3333333333333367565,
		0.1999999999970470954,
		0.1428571437183119574,
		0.1111109921607489198,
		0.0909178608080902506,
		0.0765691884960468666,
	}

	logLn2Hi_f32 float32 = 0.693359375
	logLn2Lo_f32 float32 = -2.12194440e-4
	logLn2Hi_f64 float64 = 0.6931471803691238
	logLn2Lo_f64 float64 = 1.9082149292705877e-10

	sqrt2 = 1.4142135623730951
)

// floatLayout describes the IEEE 754 fields of a float kind.
type floatLayout struct {
	mantBits uint64
	expMask  uint64
	bias     uint64
}

var (
	layout_f32 = floatLayout{mantBits: 23, expMask: 0xFF, bias: 127}
	layout_f64 = floatLayout{mantBits: 52, expMask: 0x7FF, bias: 1023}
)

// Sin/Cos: x = k*(pi/2) + r with |r| <= pi/4. The reduction constant is
// split so that k*trigPiOver2Hi is subtracted with a single rounding.
const (
	trig2OverPi_f32   float32 = 0.6366197723675814
	trigPiOver2Hi_f32 float32 = 1.5707963705062866
	trigPiOver2Lo_f32 float32 = -4.371139000186241e-08

	trig2OverPi_f64   float64 = 0.6366197723675814
	trigPiOver2Hi_f64 float64 = 1.5707963267948966192313216916398
	trigPiOver2Lo_f64 float64 = 6.123233995736766035868820147292e-17
)

// sin(r) = r * (1 + s1*r^2 + s2*r^4 + ...) and
// cos(r) = 1 + c1*r^2 + c2*r^4 + ..., lowest order first.
var (
	trigSinCoeffs_f32 = []float64{
		1.0,
		-0.16666666641626524,
		0.008333329385889463,
		-0.00019839334836096632,
		2.718311493989822e-6,
	}
	trigCosCoeffs_f32 = []float64{
		1.0,
		-0.4999999963229337,
		0.04166662453689337,
		-0.001388731625493765,
		2.443315711809948e-5,
	}
	trigSinCoeffs_f64 = []float64{
		1.0,
		-0.16666666666666632,
		0.008333333333332249,
		-0.00019841269840885721,
		2.7557316103728803e-6,
		-2.5051132068021698e-8,
		1.5896230157221844e-10,
	}
	trigCosCoeffs_f64 = []float64{
		1.0,
		-0.5,
		0.04166666666666621,
		-0.001388888888887411,
		2.4801587288851704e-5,
		-2.7557314351390663e-7,
		2.0875723212981748e-9,
	}
)
