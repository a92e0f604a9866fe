package channel

import (
	"math"
	"testing"

	"github.com/kb9dsp/sdrdsp"
)

func TestAWGNDeterministicWithSeed(t *testing.T) {
	a1 := New(0.1, 42)
	a2 := New(0.1, 42)

	buf1 := make([]sdrdsp.Real, 16)
	buf2 := make([]sdrdsp.Real, 16)
	a1.ProcessInplace(buf1)
	a2.ProcessInplace(buf2)

	for i := range buf1 {
		if buf1[i] != buf2[i] {
			t.Fatalf("sample %d diverged: %v vs %v", i, buf1[i], buf2[i])
		}
	}
}

func TestAWGNAddsNonZeroNoise(t *testing.T) {
	a := New(1.0, 7)
	buf := make([]sdrdsp.Real, 256)
	a.ProcessInplace(buf)

	var sumSq float64
	for _, v := range buf {
		sumSq += float64(v) * float64(v)
	}
	rms := math.Sqrt(sumSq / float64(len(buf)))
	if rms < 0.3 || rms > 3.0 {
		t.Errorf("rms = %v, want roughly around sigma=1.0", rms)
	}
}
