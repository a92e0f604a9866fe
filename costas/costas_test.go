package costas

import (
	"math"
	"testing"

	"github.com/kb9dsp/sdrdsp"
	"github.com/kb9dsp/sdrdsp/filter"
)

func TestCostasLocksOntoCarrier(t *testing.T) {
	const fs sdrdsp.Real = 8000
	const carrierHz sdrdsp.Real = 800
	const f = carrierHz / fs

	loopDesign := filter.Designer{
		Gain:            1,
		SampleRate:      fs,
		Passband:        filter.LowPass(100),
		TransitionWidth: 200,
		Window:          filter.HammingWindow(),
	}
	taps, err := loopDesign.Build()
	if err != nil {
		t.Fatal(err)
	}

	c, err := New(f, 0.01, taps)
	if err != nil {
		t.Fatal(err)
	}

	n := 4000
	var lastErr sdrdsp.Real
	for i := 0; i < n; i++ {
		s := sdrdsp.Real(math.Cos(2 * math.Pi * float64(carrierHz) * float64(i) / float64(fs)))
		step := c.ProcessSample(s)
		if i == n-1 {
			lastErr = step.Error
		}
	}
	if lastErr.Mag() > 0.2 {
		t.Errorf("final loop error = %v, want small after lock acquisition", lastErr)
	}
}

func TestCostasZeroTapsError(t *testing.T) {
	if _, err := New(0.1, 0.01, nil); err == nil {
		t.Error("expected error for empty loop filter taps")
	}
}
