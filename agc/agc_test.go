package agc

import "testing"

func TestAGCInitialGainUnity(t *testing.T) {
	a := New(0.01, 1.0)
	if a.Gain() != 1.0 {
		t.Errorf("Gain() = %v, want 1.0", a.Gain())
	}
}

func TestAGCProcessSampleScales(t *testing.T) {
	a := New(0.01, 1.0)
	if got := a.ProcessSample(2); got != 2 {
		t.Errorf("ProcessSample(2) = %v, want 2", got)
	}
}

func TestAGCFeedbackPullsTowardTarget(t *testing.T) {
	a := New(0.1, 1.0)
	// A decision sample larger than target should reduce gain.
	a.Feedback(2.0)
	if a.Gain() >= 1.0 {
		t.Errorf("Gain() = %v, want < 1.0 after large-sample feedback", a.Gain())
	}
}
