// Package audioio defines an audio capture/playback boundary: a Device
// reads/writes mono float samples in [-1, 1] at a fixed sample rate.
// The default build provides a WAV-file device via sdrdsp/wavfile; an
// optional portaudio-tagged build adds a live soundcard device for
// on-air operation. cmd/bpsk31tx and cmd/bpsk31rx do not use this
// package; they read and write WAV files through sdrdsp/wavfile.
package audioio

import "github.com/kb9dsp/sdrdsp"

// Device is an audio capture/playback boundary. Implementations include
// a WAV-file-backed device (the default build's only one) and, behind
// the portaudio build tag, a live soundcard device.
type Device interface {
	// SampleRate returns the device's fixed sample rate in Hz.
	SampleRate() sdrdsp.Real

	// Read fills buf with captured samples, blocking until buf is full
	// or the device is closed.
	Read(buf []sdrdsp.Real) (int, error)

	// Write plays buf, blocking until it has been consumed.
	Write(buf []sdrdsp.Real) error

	// Close releases the device.
	Close() error
}
