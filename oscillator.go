package sdrdsp

// Oscillator is a phase-accumulator local oscillator. Phase is stored as
// a count of samples in [0, Period) rather than as a radian angle, which
// keeps long runs at integer periods free of radian-accumulation drift
// and makes period-exact wraparound a plain modulo.
type Oscillator struct {
	Period Real
	phase  Real // invariant: 0 <= phase < Period
}

// NewOscillator builds an Oscillator with the given period, in samples
// (period = sampleRate/frequency). The initial phase is 0.
func NewOscillator(period Real) *Oscillator {
	return &Oscillator{Period: period}
}

// Phase returns the current phase count in [0, Period).
func (o *Oscillator) Phase() Real { return o.phase }

// SetPhase sets the phase count directly, wrapping into [0, Period).
func (o *Oscillator) SetPhase(phase Real) {
	o.phase = wrapPhase(phase, o.Period)
}

// angle converts a phase count plus an additional phase offset (in
// radians) to a radian angle.
func (o *Oscillator) angle(offset Real) Real {
	return TAU*o.phase/o.Period + offset
}

// NextWithOffset returns a unit-magnitude IQ sample at the current
// phase plus an additional radian offset, then advances the phase by
// one sample, modulo Period.
func (o *Oscillator) NextWithOffset(offset Real) IQ {
	out := Polar(o.angle(offset), 1)
	o.phase = wrapPhase(o.phase+1, o.Period)
	return out
}

// Next returns NextWithOffset(0).
func (o *Oscillator) Next() IQ {
	return o.NextWithOffset(0)
}

func wrapPhase(phase, period Real) Real {
	if period <= 0 {
		return 0
	}
	for phase >= period {
		phase -= period
	}
	for phase < 0 {
		phase += period
	}
	return phase
}

// Sine wraps an Oscillator and returns only its imaginary (Q) component:
// phase 0 corresponds to IQ (1, 0), so Q = sin(angle) — a sine, not a
// cosine.
type Sine struct {
	osc *Oscillator
}

// NewSine builds a Sine oscillator with the given period, in samples.
func NewSine(period Real) *Sine {
	return &Sine{osc: NewOscillator(period)}
}

// Next returns the next real-valued sine sample and advances phase.
func (s *Sine) Next() Real {
	return s.osc.Next().Q
}
