package filter

import (
	"testing"

	"github.com/kb9dsp/sdrdsp"
)

func TestNumTapsHammingLowPass(t *testing.T) {
	d := Designer{
		Gain:            1,
		SampleRate:      8000,
		Passband:        LowPass(1000),
		TransitionWidth: 100,
		Window:          HammingWindow(),
	}
	n, err := d.numTaps()
	if err != nil {
		t.Fatal(err)
	}
	if n != 321 {
		t.Errorf("numTaps = %d, want 321", n)
	}
}

func TestNumTapsOddExplicit(t *testing.T) {
	d := Designer{NumTaps: 10}
	n, err := d.numTaps()
	if err != nil {
		t.Fatal(err)
	}
	if n != 11 {
		t.Errorf("numTaps = %d, want 11 (forced odd)", n)
	}
}

func TestNumTapsZeroIsError(t *testing.T) {
	d := Designer{}
	if _, err := d.numTaps(); err != ErrInvalidTapCount {
		t.Errorf("err = %v, want ErrInvalidTapCount", err)
	}
}

func TestBuildLowPassSymmetric(t *testing.T) {
	d := Designer{
		Gain:       1,
		SampleRate: 8000,
		Passband:   LowPass(1000),
		NumTaps:    31,
		Window:     HammingWindow(),
	}
	taps, err := d.Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(taps) != 31 {
		t.Fatalf("len(taps) = %d, want 31", len(taps))
	}
	// With xc = 2x/N-1 and xn = x/N, a low-pass window-method design is
	// symmetric about x = N/2: taps[i] == taps[N-i] for 1 <= i <= N/2.
	for i := 1; i <= len(taps)/2; i++ {
		j := len(taps) - i
		diff := taps[i] - taps[j]
		if diff.Mag() > 1e-4 {
			t.Errorf("taps[%d]=%v != taps[%d]=%v", i, taps[i], j, taps[j])
		}
	}
}

func TestLinearInterp(t *testing.T) {
	taps := LinearInterp(3)
	if len(taps) != 5 {
		t.Fatalf("len = %d, want 5", len(taps))
	}
	if taps[2] != 1 {
		t.Errorf("center tap = %v, want 1", taps[2])
	}
	want := sdrdsp.Real(1.0 / 3.0)
	if diff := taps[0] - want; diff.Mag() > 1e-6 {
		t.Errorf("edge tap = %v, want %v", taps[0], want)
	}
}

func TestRaisedCosineTapsForcedOdd(t *testing.T) {
	taps := RaisedCosineTaps(64, 1.0, 16)
	if len(taps)%2 == 0 {
		t.Fatalf("len(taps) = %d, want odd", len(taps))
	}
}
