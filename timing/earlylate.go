// Package timing implements early-late symbol-timing recovery: a
// five-tap symbol-center picker with +/-1 sample timing adjustment.
package timing

import (
	"errors"

	"github.com/kb9dsp/sdrdsp"
)

// ErrDecimationTooSmall indicates a decimation factor below the minimum
// of 5 required to hold a five-sample window.
var ErrDecimationTooSmall = errors.New("timing: decimation factor must be >= 5")

// EarlyLate is a five-sample sliding window over post-matched-filter
// samples at the oversampled rate, emitting the center sample once per
// symbol once its countdown reaches zero.
type EarlyLate[S sdrdsp.Sample[S]] struct {
	window    [5]S
	d         int
	eps       sdrdsp.Real
	countdown int
}

// New builds an EarlyLate gate with decimation factor d (>=5) and
// tolerance eps (>=0). The countdown starts at d.
func New[S sdrdsp.Sample[S]](d int, eps sdrdsp.Real) (*EarlyLate[S], error) {
	if d < 5 {
		return nil, ErrDecimationTooSmall
	}
	return &EarlyLate[S]{d: d, eps: eps, countdown: d}, nil
}

// ProcessSample shifts s into the window and decrements the countdown.
// When the countdown reaches zero, the center sample (index 2) is
// emitted unconditionally and the countdown resets for the next
// symbol: the window's early (index 0) and late (index 4) magnitudes
// are compared only to pick that next countdown. If they agree within
// tolerance, the countdown resets to d. If the symbol arrived late
// relative to the sampling grid (early > late), the countdown resets
// to d-1 to advance the grid; otherwise it resets to d+1 to delay it.
// Between emissions, ok is false.
func (e *EarlyLate[S]) ProcessSample(s S) (out S, ok bool) {
	e.window[0] = e.window[1]
	e.window[1] = e.window[2]
	e.window[2] = e.window[3]
	e.window[3] = e.window[4]
	e.window[4] = s

	e.countdown--
	if e.countdown > 0 {
		return out, false
	}

	early := e.window[0].Mag()
	late := e.window[4].Mag()
	diff := early - late

	switch {
	case diff.Mag() <= e.eps:
		e.countdown = e.d
	case early > late:
		e.countdown = e.d - 1
	default:
		e.countdown = e.d + 1
	}
	return e.window[2], true
}
