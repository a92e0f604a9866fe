package resample

import (
	"math"
	"testing"

	"github.com/kb9dsp/sdrdsp"
	"github.com/kb9dsp/sdrdsp/filter"
)

func TestUpsampleLengthMismatch(t *testing.T) {
	fir, _ := filter.NewFIR[sdrdsp.Real]([]sdrdsp.Real{1})
	up := NewUpsample(4, fir)
	in := make([]sdrdsp.Real, 10)
	out := make([]sdrdsp.Real, 39)
	if err := up.Process(in, out); err != ErrLengthMismatch {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestDownsampleLengthMismatch(t *testing.T) {
	fir, _ := filter.NewFIR[sdrdsp.Real]([]sdrdsp.Real{1})
	down := NewDownsample(4, fir)
	in := make([]sdrdsp.Real, 39)
	out := make([]sdrdsp.Real, 10)
	if err := down.Process(in, out); err != ErrLengthMismatch {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestUpDownRoundTrip(t *testing.T) {
	const factor = 4
	d := filter.Designer{
		Gain:       1,
		SampleRate: 1000,
		Passband:   filter.LowPass(1000 / (2 * factor)),
		NumTaps:    81,
		Window:     filter.HammingWindow(),
	}
	taps, err := d.Build()
	if err != nil {
		t.Fatal(err)
	}
	upFIR, _ := filter.NewFIR[sdrdsp.Real](taps)
	downFIR, _ := filter.NewFIR[sdrdsp.Real](taps)
	up := NewUpsample(factor, upFIR)
	down := NewDownsample(factor, downFIR)

	n := 64
	in := make([]sdrdsp.Real, n)
	for i := range in {
		// Low-frequency tone, well inside the passband.
		in[i] = sdrdsp.Real(math.Sin(2 * math.Pi * 0.02 * float64(i)))
	}

	upOut := make([]sdrdsp.Real, n*factor)
	if err := up.Process(in, upOut); err != nil {
		t.Fatal(err)
	}
	downOut := make([]sdrdsp.Real, n)
	if err := down.Process(upOut, downOut); err != nil {
		t.Fatal(err)
	}

	// Both filters introduce a roughly equal group delay; compare the
	// tail of the signal (past startup transients) for bounded error.
	var maxErr sdrdsp.Real
	for i := 40; i < n; i++ {
		diff := in[i] - downOut[i]
		if diff.Mag() > maxErr {
			maxErr = diff.Mag()
		}
	}
	if maxErr > 0.5 {
		t.Errorf("max round-trip error = %v, want < 0.5", maxErr)
	}
}
