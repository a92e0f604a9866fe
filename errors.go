// errors.go defines public error types for the sdrdsp package.

package sdrdsp

import "errors"

// Configuration errors for the core numeric types. Subpackages with
// failure modes of their own (filter, resample, timing, wavfile) define
// their own sentinel errors in the same style, prefixed with their own
// package name. No constructor in this module returns
// ErrNonPositiveRate or ErrInvalidCutoff.
var (
	// ErrNonPositiveRate indicates a sample rate or period that is not
	// strictly positive.
	ErrNonPositiveRate = errors.New("sdrdsp: sample rate/period must be positive")

	// ErrInvalidCutoff indicates a cutoff frequency outside (0, fs/2).
	ErrInvalidCutoff = errors.New("sdrdsp: cutoff frequency must be in (0, fs/2)")
)
