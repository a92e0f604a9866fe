// Package filter implements the FIR execution engine and the filter
// designer that builds tap vectors from a gain, sample rate, passband
// selector, and window function.
package filter

import (
	"errors"

	"github.com/kb9dsp/sdrdsp"
)

// ErrNoTaps indicates a FIR constructed with zero taps.
var ErrNoTaps = errors.New("filter: tap count must be > 0")

// FIR is a finite-impulse-response filter over any sdrdsp.Sample type:
// a fixed tap vector convolved against a circular delay line. The tap
// vector is immutable after construction; the delay line and write
// cursor are the filter's only mutable state.
type FIR[S sdrdsp.Sample[S]] struct {
	taps  []sdrdsp.Real
	delay []S
	pos   int
}

// NewFIR builds a FIR from an explicit, already-designed tap vector. The
// delay line is initialized to the zero value of S.
func NewFIR[S sdrdsp.Sample[S]](taps []sdrdsp.Real) (*FIR[S], error) {
	if len(taps) == 0 {
		return nil, ErrNoTaps
	}
	cp := make([]sdrdsp.Real, len(taps))
	copy(cp, taps)
	return &FIR[S]{
		taps:  cp,
		delay: make([]S, len(taps)),
	}, nil
}

// Len returns the number of taps (and delay-line slots).
func (f *FIR[S]) Len() int { return len(f.taps) }

// Taps returns the filter's tap vector. The caller must not modify it.
func (f *FIR[S]) Taps() []sdrdsp.Real { return f.taps }

// ProcessSample writes s into the delay line at the current cursor,
// advances the cursor modulo N, and returns the dot product of the
// delay line (most-recent-first) with the taps.
func (f *FIR[S]) ProcessSample(s S) S {
	n := len(f.taps)
	f.delay[f.pos] = s
	f.pos++
	if f.pos == n {
		f.pos = 0
	}

	var sum S
	for k := 0; k < n; k++ {
		idx := f.pos - 1 - k
		if idx < 0 {
			idx += n
		}
		sum = sum.Add(f.delay[idx].Scale(f.taps[k]))
	}
	return sum
}

// ProcessInplace runs ProcessSample across buf, overwriting each element
// with the filter's output.
func (f *FIR[S]) ProcessInplace(buf []S) {
	for i := range buf {
		buf[i] = f.ProcessSample(buf[i])
	}
}

// Decimate runs ProcessSample across the entire buf and returns the sum
// of the per-sample outputs. This is used as a single decimation output
// per D inputs: the FIR processes every input sample (so its delay line
// stays coherent across decimation boundaries) while the caller only
// keeps one accumulated output per D-sample block.
func (f *FIR[S]) Decimate(buf []S) S {
	var sum S
	for _, s := range buf {
		sum = sum.Add(f.ProcessSample(s))
	}
	return sum
}
