package modem

import (
	"github.com/kb9dsp/sdrdsp"
	"github.com/kb9dsp/sdrdsp/buffer"
	"github.com/kb9dsp/sdrdsp/channel"
	"github.com/kb9dsp/sdrdsp/filter"
	"github.com/kb9dsp/sdrdsp/resample"
	"github.com/kb9dsp/sdrdsp/varicode"
)

type txStage int

const (
	stagePreamble txStage = iota
	stagePayload
	stageTailZero
	stageTailOne
	stageGap
)

// TX generates a continuously repeating BPSK31 audio signal for a
// message: an 80-bit zero preamble, the Varicode-encoded (and
// differentially-coded) message bytes, a 20-zero/30-one tail, and a
// silent gap before the next repetition. It implements
// buffer.Generator, producing one symbol's worth of audio (or the gap
// burst) per internal generation step, rechunked through an internal
// pending slice so Fill can satisfy any requested length.
type TX struct {
	cfg     Config
	message []byte

	stage      txStage
	stageCount int
	msgPos     int

	curBits []bool
	bitPos  int

	diff    *varicode.DiffEncoder
	rc      *filter.FIR[sdrdsp.Real]
	up      *resample.Upsample[sdrdsp.Real]
	carrier *sdrdsp.Sine
	noise   *channel.AWGN

	pending []sdrdsp.Real
	pendPos int
}

// NewTX builds a TX for message using cfg's parameters.
func NewTX(cfg Config, message string) (*TX, error) {
	rcTaps := filter.RaisedCosineTaps(cfg.RCLen, cfg.RCBeta, sdrdsp.Real(cfg.SPS))
	rc, err := filter.NewFIR[sdrdsp.Real](rcTaps)
	if err != nil {
		return nil, err
	}

	upDesign := filter.Designer{
		Gain:       1,
		SampleRate: cfg.SampleRate,
		Passband:   filter.LowPass(cfg.SampleRate / sdrdsp.Real(2*cfg.UpsampleFactor)),
		NumTaps:    cfg.RCLen,
		Window:     filter.HammingWindow(),
	}
	upTaps, err := upDesign.Build()
	if err != nil {
		return nil, err
	}
	upFIR, err := filter.NewFIR[sdrdsp.Real](upTaps)
	if err != nil {
		return nil, err
	}

	tx := &TX{
		cfg:     cfg,
		message: []byte(message),
		diff:    varicode.NewDiffEncoder(),
		rc:      rc,
		up:      resample.NewUpsample[sdrdsp.Real](cfg.UpsampleFactor, upFIR),
		carrier: sdrdsp.NewSine(cfg.SampleRate / cfg.CarrierHz),
	}
	if cfg.AWGNSigma > 0 {
		tx.noise = channel.New(cfg.AWGNSigma, cfg.AWGNSeed)
	}
	return tx, nil
}

// AudioSamplesPerSymbol returns the natural generation quantum: SPS
// premod samples upsampled by UpsampleFactor.
func (tx *TX) AudioSamplesPerSymbol() int {
	return tx.cfg.SPS * tx.cfg.UpsampleFactor
}

// HostBuffer wraps tx in a buffer.Buffer whose native chunk size is one
// symbol's worth of audio samples, mediating between that quantum and a
// host audio callback's arbitrary slice sizes.
func (tx *TX) HostBuffer() *buffer.Buffer {
	return buffer.New(tx.AudioSamplesPerSymbol(), tx)
}

// Fill implements buffer.Generator, producing exactly len(buf) audio
// samples by draining (and, as needed, regenerating) an internal
// pending slice.
func (tx *TX) Fill(buf []sdrdsp.Real) {
	for i := 0; i < len(buf); {
		if tx.pendPos >= len(tx.pending) {
			tx.generateNext()
		}
		n := copy(buf[i:], tx.pending[tx.pendPos:])
		tx.pendPos += n
		i += n
	}
}

func (tx *TX) generateNext() {
	if tx.stage == stageGap {
		burst := make([]sdrdsp.Real, tx.cfg.GapSamples)
		if tx.noise != nil {
			tx.noise.ProcessInplace(burst)
		}
		tx.pending, tx.pendPos = burst, 0
		tx.stage, tx.stageCount, tx.msgPos = stagePreamble, 0, 0
		return
	}

	bit := tx.nextBitNonGap()
	diffed := tx.diff.Encode(bit)
	amp := sdrdsp.Real(-1)
	if diffed {
		amp = 1
	}

	premod := make([]sdrdsp.Real, tx.cfg.SPS)
	premod[0] = amp
	tx.rc.ProcessInplace(premod)

	audio := make([]sdrdsp.Real, tx.AudioSamplesPerSymbol())
	tx.up.Process(premod, audio) // error impossible: lengths fixed at construction

	for i := range audio {
		audio[i] = audio[i] * tx.carrier.Next() * tx.cfg.TXGain
	}
	if tx.noise != nil {
		tx.noise.ProcessInplace(audio)
	}
	tx.pending, tx.pendPos = audio, 0
}

// nextBitNonGap advances the preamble/payload/tail state machine by one
// bit and returns it, transitioning to stageGap once the tail completes.
func (tx *TX) nextBitNonGap() bool {
	switch tx.stage {
	case stagePreamble:
		tx.stageCount++
		if tx.stageCount >= tx.cfg.PreambleBits {
			tx.stage, tx.stageCount = stagePayload, 0
			if len(tx.message) == 0 {
				tx.stage = stageTailZero
			} else {
				tx.loadNextByteBits()
			}
		}
		return false

	case stagePayload:
		bit := tx.curBits[tx.bitPos]
		tx.bitPos++
		if tx.bitPos >= len(tx.curBits) {
			tx.msgPos++
			if tx.msgPos >= len(tx.message) {
				tx.stage, tx.stageCount = stageTailZero, 0
			} else {
				tx.loadNextByteBits()
			}
		}
		return bit

	case stageTailZero:
		tx.stageCount++
		if tx.stageCount >= tx.cfg.TailZeroBits {
			tx.stage, tx.stageCount = stageTailOne, 0
		}
		return false

	case stageTailOne:
		tx.stageCount++
		if tx.stageCount >= tx.cfg.TailOneBits {
			tx.stage, tx.stageCount = stageGap, 0
		}
		return true

	default:
		return false
	}
}

func (tx *TX) loadNextByteBits() {
	tx.curBits = varicode.EncodeASCIIByte(tx.message[tx.msgPos])
	tx.bitPos = 0
}
