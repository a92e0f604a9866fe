// Package sdrdsp implements a software-defined-radio DSP core: FIR
// filtering and filter design, integer-factor resampling, oscillators,
// automatic gain control, symbol-timing recovery, a Costas carrier
// tracking loop, an FM demodulator, and an AWGN channel model.
//
// The blocks operate on real-valued audio streams (Real) and complex
// baseband streams (IQ). Every block is single-threaded, single-producer/
// single-consumer, and free of internal concurrency: state is owned
// exclusively by whichever goroutine drives it sample-at-a-time or
// slice-at-a-time.
//
// # Sample types
//
// Real is a single-precision real sample. IQ is a complex baseband
// sample. Both satisfy the generic Sample[S] constraint used by the FIR
// engine in sdrdsp/filter and by sdrdsp/costas's loop filter, so the
// same filter code runs unchanged over audio and over baseband.
//
// # Reference modem
//
// sdrdsp/modem composes the blocks in this package into a complete
// BPSK31 transmit and receive chain; see cmd/bpsk31tx and cmd/bpsk31rx
// for runnable reference programs.
package sdrdsp
