package filter

import (
	"errors"
	"math"

	"github.com/kb9dsp/sdrdsp"
)

// ErrInvalidTapCount indicates an effective tap count that is not a
// positive integer once the designer's num-taps/transition-width rule
// has been applied.
var ErrInvalidTapCount = errors.New("filter: effective tap count must be > 0")

// PassbandKind selects the analytic shape of the designed filter.
type PassbandKind int

const (
	LowPassKind PassbandKind = iota
	HighPassKind
	BandPassKind
	BandRejectKind
)

// Passband describes the frequency selector for a window-method filter
// design: a low-pass/high-pass cutoff, or a band-pass/band-reject pair.
type Passband struct {
	Kind   PassbandKind
	Cutoff sdrdsp.Real // LowPassKind, HighPassKind
	Lo, Hi sdrdsp.Real // BandPassKind, BandRejectKind
}

func LowPass(cutoff sdrdsp.Real) Passband  { return Passband{Kind: LowPassKind, Cutoff: cutoff} }
func HighPass(cutoff sdrdsp.Real) Passband { return Passband{Kind: HighPassKind, Cutoff: cutoff} }
func BandPass(lo, hi sdrdsp.Real) Passband { return Passband{Kind: BandPassKind, Lo: lo, Hi: hi} }
func BandReject(lo, hi sdrdsp.Real) Passband {
	return Passband{Kind: BandRejectKind, Lo: lo, Hi: hi}
}

// sample evaluates the passband's analytic form at tap index x, for a
// filter with N taps at sample rate fs. xc is the centered normalized
// variable 2x/N-1.
func (p Passband) sample(xc, fs sdrdsp.Real) sdrdsp.Real {
	switch p.Kind {
	case LowPassKind:
		return sdrdsp.Sinc(xc * fs / p.Cutoff)
	case HighPassKind:
		xs := xc * fs / p.Cutoff
		return sdrdsp.Sinc(xc) - sdrdsp.Sinc(xs)
	case BandPassKind:
		return sdrdsp.Sinc(xc*fs/p.Hi) - sdrdsp.Sinc(xc*fs/p.Lo)
	case BandRejectKind:
		return sdrdsp.Sinc(xc) - sdrdsp.Sinc(xc*fs/p.Hi) + sdrdsp.Sinc(xc*fs/p.Lo)
	default:
		return 0
	}
}

// WindowKind selects the window function applied over the tap index.
type WindowKind int

const (
	Rectangular WindowKind = iota
	Bartlett
	Welch
	Gaussian
	Tukey
	Exponential
	CosineSumK
)

// Window describes a window function and its parameters. Named presets
// (Hann, Hamming, Blackman, Nuttall, Blackman-Nuttall, Blackman-Harris,
// Flat-Top) are CosineSumK windows with their coefficients stored
// verbatim, as spec.md requires.
type Window struct {
	Kind   WindowKind
	Sigma  sdrdsp.Real   // Gaussian
	Alpha  sdrdsp.Real   // Tukey
	Tau    sdrdsp.Real   // Exponential
	Coeffs []sdrdsp.Real // CosineSumK: a_0, a_1, ...
}

func NewGaussian(sigma sdrdsp.Real) Window   { return Window{Kind: Gaussian, Sigma: sigma} }
func NewTukey(alpha sdrdsp.Real) Window      { return Window{Kind: Tukey, Alpha: alpha} }
func NewExponential(tau sdrdsp.Real) Window  { return Window{Kind: Exponential, Tau: tau} }
func NewCosineSumK(coeffs []sdrdsp.Real) Window {
	cp := make([]sdrdsp.Real, len(coeffs))
	copy(cp, coeffs)
	return Window{Kind: CosineSumK, Coeffs: cp}
}

// Named cosine-sum presets, coefficients reproduced verbatim from the
// standard tables.
func HannWindow() Window    { return NewCosineSumK([]sdrdsp.Real{0.5, 0.5}) }
func HammingWindow() Window { return NewCosineSumK([]sdrdsp.Real{0.54, 0.46}) }
func BlackmanWindow() Window {
	return NewCosineSumK([]sdrdsp.Real{0.42, 0.5, 0.08})
}
func NuttallWindow() Window {
	return NewCosineSumK([]sdrdsp.Real{0.355768, 0.487396, 0.144232, 0.012604})
}
func BlackmanNuttallWindow() Window {
	return NewCosineSumK([]sdrdsp.Real{0.3635819, 0.4891775, 0.1365995, 0.0106411})
}
func BlackmanHarrisWindow() Window {
	return NewCosineSumK([]sdrdsp.Real{0.35875, 0.48829, 0.14128, 0.01168})
}
func FlatTopWindow() Window {
	return NewCosineSumK([]sdrdsp.Real{0.21557895, 0.41663158, 0.277263158, 0.083578947, 0.006947368})
}

// sample evaluates the window at tap index x of N, where xc=2x/N-1 and
// xn=x/N.
func (w Window) sample(x, n int) sdrdsp.Real {
	xc := sdrdsp.Real(2*x)/sdrdsp.Real(n) - 1
	xn := sdrdsp.Real(x) / sdrdsp.Real(n)
	switch w.Kind {
	case Rectangular:
		return 1
	case Bartlett:
		return 1 - xc.Mag()
	case Welch:
		return 1 - xc*xc
	case Gaussian:
		r := xc / w.Sigma
		return sdrdsp.Real(math.Exp(-0.5 * float64(r*r)))
	case Tukey:
		if xc.Mag() <= w.Alpha {
			return 1
		}
		return 0.5 * (1 - sdrdsp.Cos(sdrdsp.PI*xc/w.Alpha))
	case Exponential:
		r := (xn - 0.5).Mag() / w.Tau
		return sdrdsp.Exp(-r)
	case CosineSumK:
		var sum sdrdsp.Real
		sign := sdrdsp.Real(1)
		for k, a := range w.Coeffs {
			sum += sign * a * sdrdsp.Cos(sdrdsp.TAU*sdrdsp.Real(k)*xn)
			sign = -sign
		}
		return sum
	default:
		return 1
	}
}

// Designer builds FIR tap vectors from a gain, sample rate, passband
// selector, window, and either an explicit tap count or a target
// transition width.
type Designer struct {
	Gain            sdrdsp.Real
	SampleRate      sdrdsp.Real
	Passband        Passband
	TransitionWidth sdrdsp.Real // 0 means unset
	NumTaps         int         // 0 means unset
	Window          Window
}

// numTaps computes the effective, always-odd tap count: the larger of
// the explicit NumTaps and the transition-width-derived count, OR'd
// with 1.
func (d Designer) numTaps() (int, error) {
	n := d.NumTaps
	if d.TransitionWidth > 0 {
		derived := int(math.Ceil(float64(4 * d.SampleRate / d.TransitionWidth)))
		if derived > n {
			n = derived
		}
	}
	if n <= 0 {
		return 0, ErrInvalidTapCount
	}
	n |= 1
	return n, nil
}

// Build generates the tap vector taps[x] = gain * passband(x,N,fs) *
// window(x,N) for x in [0,N).
func (d Designer) Build() ([]sdrdsp.Real, error) {
	n, err := d.numTaps()
	if err != nil {
		return nil, err
	}
	taps := make([]sdrdsp.Real, n)
	for x := 0; x < n; x++ {
		xc := sdrdsp.Real(2*x)/sdrdsp.Real(n) - 1
		taps[x] = d.Gain * d.Passband.sample(xc, d.SampleRate) * d.Window.sample(x, n)
	}
	return taps, nil
}

// LinearInterp builds a 2P-1 tap triangular (linear interpolation)
// kernel: values 1-|t|/P for t in [-(P-1), P-1].
func LinearInterp(p int) []sdrdsp.Real {
	if p <= 0 {
		return nil
	}
	n := 2*p - 1
	taps := make([]sdrdsp.Real, n)
	for i := 0; i < n; i++ {
		t := sdrdsp.Real(i - (p - 1))
		taps[i] = 1 - t.Mag()/sdrdsp.Real(p)
	}
	return taps
}

// RaisedCosineTaps builds a matched-filter/pulse-shaping tap vector from
// the raised-cosine impulse response: N forced odd, taps[x] =
// rc(t,beta,sps) for t = -floor(N/2)..floor(N/2).
func RaisedCosineTaps(n int, beta, sps sdrdsp.Real) []sdrdsp.Real {
	n |= 1
	half := n / 2
	taps := make([]sdrdsp.Real, n)
	for i := 0; i < n; i++ {
		t := sdrdsp.Real(i - half)
		taps[i] = sdrdsp.RaisedCosine(t, beta, sps)
	}
	return taps
}
