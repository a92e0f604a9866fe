//go:build portaudio

package audioio

import (
	"github.com/gordonklaus/portaudio"

	"github.com/kb9dsp/sdrdsp"
)

// PortAudioDevice is a live soundcard Device backed by
// github.com/gordonklaus/portaudio, for on-air transmit/receive instead
// of WAV-file bench testing.
type PortAudioDevice struct {
	stream     *portaudio.Stream
	sampleRate sdrdsp.Real
	in, out    []float32
}

// OpenPortAudioDevice opens the default input/output device at
// sampleRate Hz, mono, with the given frames-per-buffer. The stream's
// input and output buffers are bound once here and reused on every
// Read/Write, per the portaudio binding's streaming convention.
func OpenPortAudioDevice(sampleRate sdrdsp.Real, framesPerBuffer int) (*PortAudioDevice, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}

	d := &PortAudioDevice{
		sampleRate: sampleRate,
		in:         make([]float32, framesPerBuffer),
		out:        make([]float32, framesPerBuffer),
	}
	stream, err := portaudio.OpenDefaultStream(1, 1, float64(sampleRate), framesPerBuffer, d.in, d.out)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	d.stream = stream
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, err
	}
	return d, nil
}

// SampleRate returns the device's fixed sample rate.
func (d *PortAudioDevice) SampleRate() sdrdsp.Real { return d.sampleRate }

// Read captures len(buf) samples (<= the bound frames-per-buffer) from
// the input stream.
func (d *PortAudioDevice) Read(buf []sdrdsp.Real) (int, error) {
	if err := d.stream.Read(); err != nil {
		return 0, err
	}
	n := len(buf)
	for i := 0; i < n; i++ {
		buf[i] = sdrdsp.Real(d.in[i])
	}
	return n, nil
}

// Write plays buf (<= the bound frames-per-buffer) on the output
// stream.
func (d *PortAudioDevice) Write(buf []sdrdsp.Real) error {
	for i, v := range buf {
		d.out[i] = float32(v)
	}
	return d.stream.Write()
}

// Close stops the stream and terminates the portaudio runtime.
func (d *PortAudioDevice) Close() error {
	err := d.stream.Close()
	portaudio.Terminate()
	return err
}
