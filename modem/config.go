// Package modem assembles the DSP building blocks into a full BPSK31
// transmit and receive chain: Varicode encode/decode, differential
// coding, raised-cosine pulse shaping, carrier modulation/demodulation
// via a Costas loop, and symbol timing recovery.
package modem

import "github.com/kb9dsp/sdrdsp"

// Lock reports the receive chain's carrier/timing acquisition state.
type Lock int

const (
	// Unlocked means the Costas loop error is large; no symbols are
	// being reliably decided.
	Unlocked Lock = iota
	// Acquiring means the loop error has started to settle but hasn't
	// yet cleared the lock threshold.
	Acquiring
	// Locked means the loop error has stayed below the lock threshold
	// long enough that decoded bits should be trustworthy.
	Locked
)

func (l Lock) String() string {
	switch l {
	case Unlocked:
		return "unlocked"
	case Acquiring:
		return "acquiring"
	case Locked:
		return "locked"
	default:
		return "unknown"
	}
}

// Config holds every tunable parameter of the BPSK31 TX/RX chain. The
// zero value is not usable; use DefaultConfig as a starting point.
type Config struct {
	SampleRate sdrdsp.Real // audio sample rate, Hz
	CarrierHz  sdrdsp.Real // nominal carrier frequency, Hz

	SymbolRate     sdrdsp.Real // 31.25 baud, nominal PSK31 rate
	SPS            int         // premod-rate samples per symbol (16)
	UpsampleFactor int         // premod-rate to audio-rate upsample factor (16)
	D              int         // decimation factor, audio-rate to premod-rate (16)

	RCBeta sdrdsp.Real // raised-cosine roll-off
	RCLen  int         // raised-cosine/matched-filter tap count (65)

	TXGain    sdrdsp.Real // post-carrier-multiply gain
	AWGNSigma sdrdsp.Real // 0 disables channel noise
	AWGNSeed  int64

	PreambleBits int // leading zero bits before the message
	TailZeroBits int // trailing zero bits after the message
	TailOneBits  int // trailing one bits after the tail zeros
	GapSamples   int // silent audio samples between repeats

	AGCMu     sdrdsp.Real
	AGCTarget sdrdsp.Real

	CostasK              sdrdsp.Real // loop gain
	CostasLoopCutoff     sdrdsp.Real // loop filter cutoff, Hz
	CostasLoopTransition sdrdsp.Real // loop filter transition width, Hz

	RXBPFBandwidth  sdrdsp.Real // band-pass half-width around carrier, Hz
	RXBPFTransition sdrdsp.Real

	RXDownsampleCutoff     sdrdsp.Real // post-Costas anti-alias LPF, Hz
	RXDownsampleTransition sdrdsp.Real

	TimingEps sdrdsp.Real // early-late tolerance
}

// DefaultConfig returns the standard PSK31 parameterization at an 8 kHz
// audio sample rate and an 800 Hz audio carrier, matching a typical
// soundcard-interfaced HF rig: 31.25 baud, 16x oversampling between the
// premod and audio rate, a raised-cosine-shaped pulse with unity
// roll-off, and 0.2 post-modulation gain with light AWGN for bench
// testing.
func DefaultConfig() Config {
	return Config{
		SampleRate: 8000,
		CarrierHz:  800,

		SymbolRate:     31.25,
		SPS:            16,
		UpsampleFactor: 16,
		D:              16,

		RCBeta: 1.0,
		RCLen:  65,

		TXGain:    0.2,
		AWGNSigma: 0.1,
		AWGNSeed:  1,

		PreambleBits: 80,
		TailZeroBits: 20,
		TailOneBits:  30,
		GapSamples:   30,

		AGCMu:     0.001,
		AGCTarget: 1.0,

		CostasK:              0.02,
		CostasLoopCutoff:     250,
		CostasLoopTransition: 200,

		RXBPFBandwidth:  50,
		RXBPFTransition: 50,

		RXDownsampleCutoff:     50,
		RXDownsampleTransition: 50,

		TimingEps: 0,
	}
}
