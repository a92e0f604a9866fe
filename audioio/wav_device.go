package audioio

import (
	"io"

	"github.com/kb9dsp/sdrdsp"
	"github.com/kb9dsp/sdrdsp/wavfile"
)

// WAVDevice adapts a wavfile Reader/Writer pair to Device, for
// file-based bench transmit/receive.
type WAVDevice struct {
	sampleRate sdrdsp.Real
	r          *wavfile.Reader
	w          *wavfile.Writer
	closer     io.Closer
}

// NewWAVSource wraps a WAV reader as a read-only Device.
func NewWAVSource(r *wavfile.Reader, closer io.Closer) *WAVDevice {
	return &WAVDevice{sampleRate: sdrdsp.Real(r.SampleRate), r: r, closer: closer}
}

// NewWAVSink wraps a WAV writer as a write-only Device.
func NewWAVSink(w *wavfile.Writer, sampleRate sdrdsp.Real, closer io.Closer) *WAVDevice {
	return &WAVDevice{sampleRate: sampleRate, w: w, closer: closer}
}

func (d *WAVDevice) SampleRate() sdrdsp.Real { return d.sampleRate }

func (d *WAVDevice) Read(buf []sdrdsp.Real) (int, error) {
	frame := make([]sdrdsp.Real, 1)
	for i := range buf {
		if err := d.r.ReadFrame(frame); err != nil {
			return i, err
		}
		buf[i] = frame[0]
	}
	return len(buf), nil
}

func (d *WAVDevice) Write(buf []sdrdsp.Real) error {
	return d.w.WriteMono(buf)
}

func (d *WAVDevice) Close() error {
	if d.w != nil {
		if err := d.w.Close(); err != nil {
			return err
		}
	}
	if d.closer != nil {
		return d.closer.Close()
	}
	return nil
}
