package resample

import (
	"github.com/kb9dsp/sdrdsp"
	"github.com/kb9dsp/sdrdsp/filter"
)

// Downsample reduces the sample rate by an integer factor: the FIR
// processes every input sample (so its delay line never skips state),
// and one output is emitted per factor inputs as the fused sum of that
// block's per-sample filter outputs.
type Downsample[S sdrdsp.Sample[S]] struct {
	factor int
	fir    *filter.FIR[S]
}

// NewDownsample builds a Downsample with the given integer factor and
// anti-aliasing filter.
func NewDownsample[S sdrdsp.Sample[S]](factor int, fir *filter.FIR[S]) *Downsample[S] {
	return &Downsample[S]{factor: factor, fir: fir}
}

// Process downsamples in, which must have length M*factor, into out,
// which must have length M.
func (d *Downsample[S]) Process(in, out []S) error {
	if len(in) != len(out)*d.factor {
		return ErrLengthMismatch
	}
	for i := range out {
		lo := i * d.factor
		hi := lo + d.factor
		out[i] = d.fir.Decimate(in[lo:hi])
	}
	return nil
}
