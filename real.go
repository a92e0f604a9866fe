package sdrdsp

import (
	"math"

	"github.com/kb9dsp/sdrdsp/util"
)

// Real is a single-precision real-valued sample. It is the scalar type
// shared by every audio-rate DSP block in this package; IQ composes two
// Reals into a complex baseband sample.
type Real float32

// Math constants shared by the filter designer and the oscillators.
const (
	PI     Real = math.Pi
	TAU    Real = 2 * math.Pi
	SQRT_2 Real = math.Sqrt2
)

// Add returns r+o.
func (r Real) Add(o Real) Real { return r + o }

// Sub returns r-o.
func (r Real) Sub(o Real) Real { return r - o }

// Scale returns r*k. Real's "scale by Real" and "multiply by Real" are
// the same operation since Real multiplies with itself.
func (r Real) Scale(k Real) Real { return r * k }

// Mag returns |r|.
func (r Real) Mag() Real { return util.Abs(r) }

// Sin and Cos wrap the standard trig functions at Real's precision.
func Sin(x Real) Real { return Real(math.Sin(float64(x))) }
func Cos(x Real) Real { return Real(math.Cos(float64(x))) }

// Atan2 wraps math.Atan2 at Real's precision.
func Atan2(y, x Real) Real { return Real(math.Atan2(float64(y), float64(x))) }

// Sqrt wraps math.Sqrt at Real's precision.
func Sqrt(x Real) Real { return Real(math.Sqrt(float64(x))) }

// Exp wraps math.Exp at Real's precision.
func Exp(x Real) Real { return Real(math.Exp(float64(x))) }

// Sinc computes the unnormalized sinc function: 1 at x=0, else
// sin(pi*x)/(pi*x).
func Sinc(x Real) Real {
	if x == 0 {
		return 1
	}
	px := float64(PI) * float64(x)
	return Real(math.Sin(px) / px)
}

// RaisedCosine evaluates the raised-cosine pulse shape at time t (in
// samples), for rolloff beta and samples-per-symbol sps. d=2*beta*t/sps
// is the location of the filter's characteristic singularity; a
// tolerance window around |d|=1 is used instead of an exact equality
// test (see spec's note on avoiding silent floating-point fallthrough).
func RaisedCosine(t, beta, sps Real) Real {
	d := 2 * beta * t / sps
	if (d.Mag() - 1).Mag() < 1e-7 {
		return (PI / (4 * sps)) * Sinc(1/(2*beta))
	}
	num := Sinc(t/sps) * Cos(PI*beta*t/sps)
	den := sps * (1 - d*d)
	return num / den
}

// RootRaisedCosine evaluates the root-raised-cosine pulse shape at time
// t (in samples), for rolloff beta and samples-per-symbol sps. Provided
// for future matched-filter designs that want the root rather than the
// full raised-cosine response; the BPSK31 modem in sdrdsp/modem uses
// RaisedCosine on both ends (a common PSK31 simplification), not RRC on
// each end.
func RootRaisedCosine(t, beta, sps Real) Real {
	if t == 0 {
		return (1 + beta*(4/PI-1)) / sps
	}
	d := 4 * beta * t / sps
	if (d.Mag() - 1).Mag() < 1e-7 {
		arg := PI / (4 * beta)
		return (beta / (sps * SQRT_2)) * ((1+2/PI)*Sin(arg) + (1-2/PI)*Cos(arg))
	}
	pt := PI * t / sps
	num := Sin(pt*(1-beta)) + 4*beta*t/sps*Cos(pt*(1+beta))
	den := pt * (1 - (4*beta*t/sps)*(4*beta*t/sps)) * sps
	return num / den
}
