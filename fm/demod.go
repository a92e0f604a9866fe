// Package fm implements a differential-phase FM demodulator over an IQ
// stream.
package fm

import "github.com/kb9dsp/sdrdsp"

// Demod computes the instantaneous phase increment between consecutive
// IQ samples, proportional to frequency deviation from the carrier
// after upstream mixing/downconversion. Output is in (-pi, pi]; callers
// scale by 1/pi to map to (-1, 1].
type Demod struct {
	prev sdrdsp.IQ
}

// New builds a Demod with a zero previous sample.
func New() *Demod { return &Demod{} }

// ProcessSample returns phase(z * conj(prev)) and remembers z as prev.
func (d *Demod) ProcessSample(z sdrdsp.IQ) sdrdsp.Real {
	out := z.Mul(d.prev.Conj()).Phase()
	d.prev = z
	return out
}
