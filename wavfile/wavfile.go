// Package wavfile implements a minimal 16-bit signed PCM mono (or
// multi-channel) WAV codec for the BPSK31 reference programs: write
// Real samples in [-1, 1] scaled by 32767 with truncation, and read
// 16-bit PCM samples back by dividing by the int16 max. Debug outputs
// such as a two-channel baseband capture interleave I and Q as
// left/right.
package wavfile

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/kb9dsp/sdrdsp"
)

// ErrUnsupportedFormat indicates a WAV file that is not 16-bit PCM.
var ErrUnsupportedFormat = errors.New("wavfile: only 16-bit PCM WAV is supported")

const (
	formatPCM   = 1
	bitsPerSamp = 16
)

// Writer streams 16-bit PCM samples to an io.WriteSeeker, patching the
// RIFF and data chunk sizes on Close once the total frame count is
// known.
type Writer struct {
	w          io.WriteSeeker
	sampleRate uint32
	channels   uint16
	frames     uint32
}

// NewWriter writes a placeholder WAV header (fixed up on Close) for the
// given sample rate and channel count.
func NewWriter(w io.WriteSeeker, sampleRate int, channels int) (*Writer, error) {
	wr := &Writer{w: w, sampleRate: uint32(sampleRate), channels: uint16(channels)}
	if err := wr.writeHeader(); err != nil {
		return nil, err
	}
	return wr, nil
}

func (w *Writer) writeHeader() error {
	byteRate := w.sampleRate * uint32(w.channels) * (bitsPerSamp / 8)
	blockAlign := w.channels * (bitsPerSamp / 8)

	hdr := make([]byte, 44)
	copy(hdr[0:4], "RIFF")
	binary.LittleEndian.PutUint32(hdr[4:8], 36) // patched on Close
	copy(hdr[8:12], "WAVE")
	copy(hdr[12:16], "fmt ")
	binary.LittleEndian.PutUint32(hdr[16:20], 16)
	binary.LittleEndian.PutUint16(hdr[20:22], formatPCM)
	binary.LittleEndian.PutUint16(hdr[22:24], w.channels)
	binary.LittleEndian.PutUint32(hdr[24:28], w.sampleRate)
	binary.LittleEndian.PutUint32(hdr[28:32], byteRate)
	binary.LittleEndian.PutUint16(hdr[32:34], blockAlign)
	binary.LittleEndian.PutUint16(hdr[34:36], bitsPerSamp)
	copy(hdr[36:40], "data")
	binary.LittleEndian.PutUint32(hdr[40:44], 0) // patched on Close

	_, err := w.w.Write(hdr)
	return err
}

// WriteFrame writes one multi-channel frame (len(frame) == channels),
// scaling each Real sample in [-1, 1] by 32767 with truncation.
func (w *Writer) WriteFrame(frame []sdrdsp.Real) error {
	buf := make([]byte, 2*len(frame))
	for i, s := range frame {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(toInt16Truncate(s)))
	}
	if _, err := w.w.Write(buf); err != nil {
		return err
	}
	w.frames++
	return nil
}

// WriteMono writes a single-channel buffer of samples, one frame each.
func (w *Writer) WriteMono(samples []sdrdsp.Real) error {
	for _, s := range samples {
		if err := w.WriteFrame([]sdrdsp.Real{s}); err != nil {
			return err
		}
	}
	return nil
}

// Close patches the RIFF and data chunk sizes with the final frame
// count.
func (w *Writer) Close() error {
	dataBytes := uint32(w.frames) * uint32(w.channels) * (bitsPerSamp / 8)
	if _, err := w.w.Seek(4, io.SeekStart); err != nil {
		return err
	}
	if err := binary.Write(w.w, binary.LittleEndian, uint32(36+dataBytes)); err != nil {
		return err
	}
	if _, err := w.w.Seek(40, io.SeekStart); err != nil {
		return err
	}
	return binary.Write(w.w, binary.LittleEndian, dataBytes)
}

func toInt16Truncate(s sdrdsp.Real) int16 {
	scaled := float64(s) * 32767.0
	if scaled > 32767.0 {
		return 32767
	}
	if scaled < -32768.0 {
		return -32768
	}
	return int16(scaled) // truncates toward zero, per spec
}

// Reader reads a 16-bit PCM mono (or multi-channel) WAV file.
type Reader struct {
	r          io.Reader
	SampleRate int
	Channels   int
}

// NewReader parses the RIFF/fmt header and positions r at the start of
// the data chunk's samples.
func NewReader(r io.Reader) (*Reader, error) {
	hdr := make([]byte, 12)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, err
	}
	if string(hdr[0:4]) != "RIFF" || string(hdr[8:12]) != "WAVE" {
		return nil, ErrUnsupportedFormat
	}

	rdr := &Reader{r: r}
	for {
		chunkHdr := make([]byte, 8)
		if _, err := io.ReadFull(r, chunkHdr); err != nil {
			return nil, err
		}
		id := string(chunkHdr[0:4])
		size := binary.LittleEndian.Uint32(chunkHdr[4:8])

		if id == "fmt " {
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, err
			}
			format := binary.LittleEndian.Uint16(body[0:2])
			bits := binary.LittleEndian.Uint16(body[14:16])
			if format != formatPCM || bits != bitsPerSamp {
				return nil, ErrUnsupportedFormat
			}
			rdr.Channels = int(binary.LittleEndian.Uint16(body[2:4]))
			rdr.SampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			continue
		}
		if id == "data" {
			return rdr, nil
		}
		// Skip any other chunk (e.g. LIST) we don't care about.
		if _, err := io.CopyN(io.Discard, r, int64(size)); err != nil {
			return nil, err
		}
	}
}

// ReadFrame reads one multi-channel frame into frame (len(frame) ==
// Channels), converting each int16 sample to Real by dividing by the
// int16 max.
func (r *Reader) ReadFrame(frame []sdrdsp.Real) error {
	buf := make([]byte, 2*len(frame))
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return err
	}
	for i := range frame {
		v := int16(binary.LittleEndian.Uint16(buf[2*i:]))
		frame[i] = sdrdsp.Real(v) / 32767.0
	}
	return nil
}

// ReadAllMono reads every remaining mono sample.
func (r *Reader) ReadAllMono() ([]sdrdsp.Real, error) {
	var out []sdrdsp.Real
	frame := make([]sdrdsp.Real, r.Channels)
	for {
		if err := r.ReadFrame(frame); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return out, nil
			}
			return out, err
		}
		out = append(out, frame[0])
	}
}
