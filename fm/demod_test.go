package fm

import (
	"testing"

	"github.com/kb9dsp/sdrdsp"
)

func TestDemodFirstSampleIsZero(t *testing.T) {
	d := New()
	// prev starts as the zero IQ sample, so conj(prev) is zero and the
	// phase of z*0 is 0 (atan2(0,0)=0).
	got := d.ProcessSample(sdrdsp.IQ{I: 1, Q: 0})
	if got != 0 {
		t.Errorf("ProcessSample(first) = %v, want 0", got)
	}
}

func TestDemodConstantPhaseIsZero(t *testing.T) {
	d := New()
	d.ProcessSample(sdrdsp.IQ{I: 1, Q: 0})
	got := d.ProcessSample(sdrdsp.IQ{I: 1, Q: 0})
	if got != 0 {
		t.Errorf("ProcessSample(repeat) = %v, want 0", got)
	}
}

func TestDemodQuarterTurn(t *testing.T) {
	d := New()
	d.ProcessSample(sdrdsp.IQ{I: 1, Q: 0})
	got := d.ProcessSample(sdrdsp.IQ{I: 0, Q: 1})
	want := sdrdsp.Real(1.5707964) // pi/2
	if diff := got - want; diff.Mag() > 1e-5 {
		t.Errorf("ProcessSample(quarter turn) = %v, want %v", got, want)
	}
}
