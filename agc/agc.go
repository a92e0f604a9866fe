// Package agc implements a gradient-descent automatic gain controller:
// a scalar gain applied to every sample, updated by feedback called only
// on decision-point samples.
package agc

import "github.com/kb9dsp/sdrdsp"

// AGC holds the current scalar gain, step size, and target magnitude.
type AGC struct {
	gain   sdrdsp.Real
	mu     sdrdsp.Real
	target sdrdsp.Real
}

// New builds an AGC with unit initial gain, step size mu, and target
// magnitude target.
func New(mu, target sdrdsp.Real) *AGC {
	return &AGC{gain: 1.0, mu: mu, target: target}
}

// Gain returns the current scalar gain.
func (a *AGC) Gain() sdrdsp.Real { return a.gain }

// ProcessSample returns s scaled by the current gain.
func (a *AGC) ProcessSample(s sdrdsp.Real) sdrdsp.Real {
	return s * a.gain
}

// ProcessInplace scales every element of buf by the current gain.
func (a *AGC) ProcessInplace(buf []sdrdsp.Real) {
	for i := range buf {
		buf[i] = a.ProcessSample(buf[i])
	}
}

// Feedback updates the gain from the magnitude of a decision-point
// sample: a <- a - mu*sign(a)*(mag^2 - target^2). Feedback must be
// called only on decision samples (real or IQ, via their Mag()); the
// gain is held constant between calls. Callers pass mag = x.Mag() for
// whatever Sample type x is, which keeps AGC itself non-generic.
func (a *AGC) Feedback(mag sdrdsp.Real) {
	err := mag*mag - a.target*a.target
	a.gain -= a.mu * sign(a.gain) * err
}

func sign(x sdrdsp.Real) sdrdsp.Real {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
