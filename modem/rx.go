package modem

import (
	"github.com/kb9dsp/sdrdsp"
	"github.com/kb9dsp/sdrdsp/agc"
	"github.com/kb9dsp/sdrdsp/costas"
	"github.com/kb9dsp/sdrdsp/filter"
	"github.com/kb9dsp/sdrdsp/resample"
	"github.com/kb9dsp/sdrdsp/timing"
	"github.com/kb9dsp/sdrdsp/varicode"
)

// RX runs one real-valued audio sample at a time through the full
// BPSK31 receive chain: a band-pass filter, an AGC, a Costas carrier
// tracking loop, anti-alias decimation down to the premod rate, a
// raised-cosine matched filter, early-late symbol timing, BPSK
// decision, differential decode, and streaming Varicode decode.
type RX struct {
	cfg Config

	bpf  *filter.FIR[sdrdsp.Real]
	gain *agc.AGC
	loop *costas.Costas

	downFIR *filter.FIR[sdrdsp.IQ]
	down    *resample.Downsample[sdrdsp.IQ]
	accum   []sdrdsp.IQ
	accPos  int

	matched   *filter.FIR[sdrdsp.IQ]
	earlyLate *timing.EarlyLate[sdrdsp.IQ]

	diffDec *varicode.DiffDecoder
	vDec    *varicode.Decoder

	lock     Lock
	errorEMA sdrdsp.Real

	// OnBaseband, if set, is called once per cfg.D audio samples with
	// the decimated baseband IQ sample — a debug hook for capturing a
	// baseband.wav trace at the post-decimation rate.
	OnBaseband func(sdrdsp.IQ)

	// OnSymbol, if set, is called with each matched-filter symbol
	// recovered by the early-late gate — a debug hook for capturing a
	// symbols.wav trace.
	OnSymbol func(sdrdsp.IQ)
}

const (
	lockThreshold    = 0.02
	acquireThreshold = 0.2
	emaAlpha         = 0.05
)

// NewRX builds an RX chain for cfg.
func NewRX(cfg Config) (*RX, error) {
	bpfTaps, err := (filter.Designer{
		Gain:            1,
		SampleRate:      cfg.SampleRate,
		Passband:        filter.BandPass(cfg.CarrierHz-cfg.RXBPFBandwidth, cfg.CarrierHz+cfg.RXBPFBandwidth),
		TransitionWidth: cfg.RXBPFTransition,
		Window:          filter.HammingWindow(),
	}).Build()
	if err != nil {
		return nil, err
	}
	bpf, err := filter.NewFIR[sdrdsp.Real](bpfTaps)
	if err != nil {
		return nil, err
	}

	loopTaps, err := (filter.Designer{
		Gain:            1,
		SampleRate:      cfg.SampleRate,
		Passband:        filter.LowPass(cfg.CostasLoopCutoff),
		TransitionWidth: cfg.CostasLoopTransition,
		Window:          filter.HammingWindow(),
	}).Build()
	if err != nil {
		return nil, err
	}
	loop, err := costas.New(cfg.CarrierHz/cfg.SampleRate, cfg.CostasK, loopTaps)
	if err != nil {
		return nil, err
	}

	downTaps, err := (filter.Designer{
		Gain:            1,
		SampleRate:      cfg.SampleRate,
		Passband:        filter.LowPass(cfg.RXDownsampleCutoff),
		TransitionWidth: cfg.RXDownsampleTransition,
		Window:          filter.HammingWindow(),
	}).Build()
	if err != nil {
		return nil, err
	}
	downFIR, err := filter.NewFIR[sdrdsp.IQ](downTaps)
	if err != nil {
		return nil, err
	}

	matchedTaps := filter.RaisedCosineTaps(cfg.RCLen, cfg.RCBeta, sdrdsp.Real(cfg.SPS))
	matched, err := filter.NewFIR[sdrdsp.IQ](matchedTaps)
	if err != nil {
		return nil, err
	}

	earlyLate, err := timing.New[sdrdsp.IQ](cfg.SPS, cfg.TimingEps)
	if err != nil {
		return nil, err
	}

	return &RX{
		cfg:       cfg,
		bpf:       bpf,
		gain:      agc.New(cfg.AGCMu, cfg.AGCTarget),
		loop:      loop,
		downFIR:   downFIR,
		down:      resample.NewDownsample[sdrdsp.IQ](cfg.D, downFIR),
		accum:     make([]sdrdsp.IQ, cfg.D),
		matched:   matched,
		earlyLate: earlyLate,
		diffDec:   varicode.NewDiffDecoder(),
		vDec:      varicode.NewDecoder(),
		lock:      Unlocked,
	}, nil
}

// Lock returns the chain's current carrier/timing acquisition state.
func (rx *RX) Lock() Lock { return rx.lock }

// ProcessSample advances the receive chain by one audio-rate real
// sample. It returns a decoded byte and true the instant a complete
// Varicode character is recovered.
func (rx *RX) ProcessSample(s sdrdsp.Real) (byte, bool) {
	filtered := rx.bpf.ProcessSample(s)
	agcOut := rx.gain.ProcessSample(filtered)

	step := rx.loop.ProcessSample(agcOut)
	rx.updateLock(step.Error)

	rx.accum[rx.accPos] = step.Baseband
	rx.accPos++
	if rx.accPos < rx.cfg.D {
		return 0, false
	}
	rx.accPos = 0

	out := make([]sdrdsp.IQ, 1)
	rx.down.Process(rx.accum, out) // error impossible: lengths fixed at construction
	decimated := out[0]
	if rx.OnBaseband != nil {
		rx.OnBaseband(decimated)
	}

	mf := rx.matched.ProcessSample(decimated)
	q, ok := rx.earlyLate.ProcessSample(mf)
	if !ok {
		return 0, false
	}
	if rx.OnSymbol != nil {
		rx.OnSymbol(q)
	}

	rx.gain.Feedback(q.Mag())

	bit := q.I > 0
	decoded := rx.diffDec.Decode(bit)
	return rx.vDec.Feed(decoded)
}

func (rx *RX) updateLock(errSample sdrdsp.Real) {
	mag := errSample.Mag()
	rx.errorEMA = (1-emaAlpha)*rx.errorEMA + emaAlpha*mag
	switch {
	case rx.errorEMA < lockThreshold:
		rx.lock = Locked
	case rx.errorEMA < acquireThreshold:
		rx.lock = Acquiring
	default:
		rx.lock = Unlocked
	}
}
