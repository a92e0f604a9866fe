// Package costas implements a Costas carrier-tracking phase-locked
// loop: the product of in-phase and quadrature filtered signals,
// normalized, drives the phase error.
package costas

import (
	"github.com/kb9dsp/sdrdsp"
	"github.com/kb9dsp/sdrdsp/filter"
)

// Step is the result of one Costas loop update.
type Step struct {
	Baseband sdrdsp.IQ   // loop-filtered mixer output
	Carrier  sdrdsp.IQ   // reference oscillator sample used this step
	Error    sdrdsp.Real // normalized I*Q phase error
}

// Costas locks to a BPSK-modulated carrier at a known nominal frequency.
// The loop filter is a single IQ FIR (both I and Q filtered by the same
// taps), which is the numerically better-behaved of the two historical
// Costas shapes (see spec's design notes) and pairs cleanly with an
// upstream AGC.
type Costas struct {
	osc        *sdrdsp.Oscillator
	k          sdrdsp.Real
	loopFilter *filter.FIR[sdrdsp.IQ]
	theta      sdrdsp.Real
}

// New builds a Costas loop locking to frequency f (normalized
// cycles/sample, so the internal oscillator period is 1/f), with loop
// gain k and loop-filter taps (design this as a low-pass with a cutoff
// around half the symbol-chain output rate).
func New(f, k sdrdsp.Real, loopFilterTaps []sdrdsp.Real) (*Costas, error) {
	fir, err := filter.NewFIR[sdrdsp.IQ](loopFilterTaps)
	if err != nil {
		return nil, err
	}
	return &Costas{
		osc:        sdrdsp.NewOscillator(1 / f),
		k:          k,
		loopFilter: fir,
	}, nil
}

// Theta returns the loop's accumulated phase offset.
func (c *Costas) Theta() sdrdsp.Real { return c.theta }

// ProcessSample advances the loop by one real input sample from
// band-limited RF-band audio.
func (c *Costas) ProcessSample(s sdrdsp.Real) Step {
	carrier := c.osc.NextWithOffset(c.theta)
	x := carrier.MulReal(s)
	y := c.loopFilter.ProcessSample(x)

	unit := y.Unit()
	e := unit.I * unit.Q

	c.theta -= c.k * e

	return Step{Baseband: y, Carrier: carrier, Error: e}
}
