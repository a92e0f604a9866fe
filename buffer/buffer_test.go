package buffer

import (
	"testing"

	"github.com/kb9dsp/sdrdsp"
)

func TestBufferRechunks(t *testing.T) {
	const chunk = 4
	var next sdrdsp.Real
	gen := GeneratorFunc(func(buf []sdrdsp.Real) {
		for i := range buf {
			buf[i] = next
			next++
		}
	})
	b := New(chunk, gen)

	out := make([]sdrdsp.Real, 3)
	b.Read(out)
	want := []sdrdsp.Real{0, 1, 2}
	for i := range out {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}

	out2 := make([]sdrdsp.Real, 3)
	b.Read(out2)
	want2 := []sdrdsp.Real{3, 4, 5}
	for i := range out2 {
		if out2[i] != want2[i] {
			t.Errorf("out2[%d] = %v, want %v", i, out2[i], want2[i])
		}
	}
}

func TestBufferFillAcrossMultipleChunks(t *testing.T) {
	const chunk = 2
	var next sdrdsp.Real
	gen := GeneratorFunc(func(buf []sdrdsp.Real) {
		for i := range buf {
			buf[i] = next
			next++
		}
	})
	b := New(chunk, gen)

	out := make([]sdrdsp.Real, chunk)
	b.Read(out) // consumes exactly one chunk, no cross-chunk fill needed

	out2 := make([]sdrdsp.Real, chunk)
	b.Read(out2)
	if out2[0] != 2 || out2[1] != 3 {
		t.Errorf("out2 = %v, want [2 3]", out2)
	}
}
