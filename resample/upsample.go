// Package resample implements integer-factor upsampling and
// decimating downsampling, each wrapping a sdrdsp/filter.FIR as its
// interpolation or anti-aliasing filter.
package resample

import (
	"errors"

	"github.com/kb9dsp/sdrdsp"
	"github.com/kb9dsp/sdrdsp/filter"
)

// ErrLengthMismatch indicates an input/output slice whose length does
// not match the resampler's integer factor, a fatal precondition
// violation per spec.
var ErrLengthMismatch = errors.New("resample: length mismatch")

// Upsample raises the sample rate by an integer factor: zero-insertion
// followed by an interpolation low-pass filter and a post-gain of
// factor, producing unity-passband amplitude.
type Upsample[S sdrdsp.Sample[S]] struct {
	factor int
	fir    *filter.FIR[S]
}

// NewUpsample builds an Upsample with the given integer factor and
// interpolation filter. Process applies the factor post-gain itself, so
// any gain designed into the filter (for example Designer.Gain) is
// applied in addition to it.
func NewUpsample[S sdrdsp.Sample[S]](factor int, fir *filter.FIR[S]) *Upsample[S] {
	return &Upsample[S]{factor: factor, fir: fir}
}

// Process upsamples in, which must have length L, into out, which must
// have length L*factor.
func (u *Upsample[S]) Process(in, out []S) error {
	if len(out) != len(in)*u.factor {
		return ErrLengthMismatch
	}
	for i := range out {
		out[i] = *new(S)
	}
	for i, s := range in {
		out[i*u.factor] = s
	}
	u.fir.ProcessInplace(out)
	factor := sdrdsp.Real(u.factor)
	for i := range out {
		out[i] = out[i].Scale(factor)
	}
	return nil
}
