// Package buffer implements a pull-based re-chunker: an adapter that
// turns a fixed-chunk-size generator into a consumer that can request
// arbitrary slice sizes (up to chunkSize) at a time.
package buffer

import "github.com/kb9dsp/sdrdsp"

// Generator produces chunkSize samples at a time into buf. Implementers
// without closures can hold their own generator state (e.g. the BPSK31
// TX premod generator in sdrdsp/modem) and expose it through Fill.
type Generator interface {
	Fill(buf []sdrdsp.Real)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(buf []sdrdsp.Real)

// Fill calls f(buf).
func (f GeneratorFunc) Fill(buf []sdrdsp.Real) { f(buf) }

// Buffer bridges a generator's fixed chunk size to a consumer's
// arbitrary request sizes. Backing storage is 2*chunkSize so that the
// worst case — count = chunkSize-1 just before a FillBuffer(chunkSize)
// — fits without reallocation.
type Buffer struct {
	chunkSize int
	gen       Generator
	data      []sdrdsp.Real
	cursor    int
	count     int
}

// New builds a Buffer that pulls chunkSize samples at a time from gen.
func New(chunkSize int, gen Generator) *Buffer {
	return &Buffer{
		chunkSize: chunkSize,
		gen:       gen,
		data:      make([]sdrdsp.Real, 2*chunkSize),
	}
}

// FillBuffer ensures at least n samples (n <= chunkSize) are available
// starting at the current cursor, sliding existing data down to index 0
// and pulling whole chunks from the generator as needed.
func (b *Buffer) FillBuffer(n int) {
	if n <= b.count {
		return
	}
	copy(b.data[0:b.count], b.data[b.cursor:b.cursor+b.count])
	b.cursor = 0
	for b.count < n {
		b.gen.Fill(b.data[b.count : b.count+b.chunkSize])
		b.count += b.chunkSize
	}
}

// Peek returns the first n available samples without consuming them.
// The caller must have called FillBuffer(n) first.
func (b *Buffer) Peek(n int) []sdrdsp.Real {
	return b.data[b.cursor : b.cursor+n]
}

// Consume advances past k samples, decrementing the available count.
func (b *Buffer) Consume(k int) {
	b.cursor += k
	b.count -= k
}

// Read fills out with exactly len(out) samples, pulling from the
// generator as needed and consuming them.
func (b *Buffer) Read(out []sdrdsp.Real) {
	n := len(out)
	b.FillBuffer(n)
	copy(out, b.Peek(n))
	b.Consume(n)
}
