// Package config loads modem.Config from a YAML file, falling back to
// modem.DefaultConfig for any field left unset, in the style of
// direwolf's tocalls.yaml loader.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kb9dsp/sdrdsp"
	"github.com/kb9dsp/sdrdsp/modem"
)

func sdReal(f float64) sdrdsp.Real { return sdrdsp.Real(f) }

// File mirrors modem.Config with YAML tags and optional fields; zero
// values are treated as "unset" and left at modem.DefaultConfig's
// value.
type File struct {
	SampleRate float64 `yaml:"sample_rate_hz"`
	CarrierHz  float64 `yaml:"carrier_hz"`

	SymbolRate     float64 `yaml:"symbol_rate_baud"`
	SPS            int     `yaml:"samples_per_symbol"`
	UpsampleFactor int     `yaml:"upsample_factor"`
	D              int     `yaml:"decimation_factor"`

	RCBeta float64 `yaml:"rc_beta"`
	RCLen  int     `yaml:"rc_taps"`

	TXGain    float64 `yaml:"tx_gain"`
	AWGNSigma float64 `yaml:"awgn_sigma"`
	AWGNSeed  int64   `yaml:"awgn_seed"`

	PreambleBits int `yaml:"preamble_bits"`
	TailZeroBits int `yaml:"tail_zero_bits"`
	TailOneBits  int `yaml:"tail_one_bits"`
	GapSamples   int `yaml:"gap_samples"`

	AGCMu     float64 `yaml:"agc_mu"`
	AGCTarget float64 `yaml:"agc_target"`

	CostasK              float64 `yaml:"costas_k"`
	CostasLoopCutoff     float64 `yaml:"costas_loop_cutoff_hz"`
	CostasLoopTransition float64 `yaml:"costas_loop_transition_hz"`

	RXBPFBandwidth  float64 `yaml:"rx_bpf_bandwidth_hz"`
	RXBPFTransition float64 `yaml:"rx_bpf_transition_hz"`

	RXDownsampleCutoff     float64 `yaml:"rx_downsample_cutoff_hz"`
	RXDownsampleTransition float64 `yaml:"rx_downsample_transition_hz"`

	TimingEps float64 `yaml:"timing_eps"`
}

// Load reads path as YAML and overlays non-zero fields onto
// modem.DefaultConfig.
func Load(path string) (modem.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return modem.Config{}, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return modem.Config{}, err
	}
	return f.apply(modem.DefaultConfig()), nil
}

func (f File) apply(cfg modem.Config) modem.Config {
	if f.SampleRate != 0 {
		cfg.SampleRate = sdReal(f.SampleRate)
	}
	if f.CarrierHz != 0 {
		cfg.CarrierHz = sdReal(f.CarrierHz)
	}
	if f.SymbolRate != 0 {
		cfg.SymbolRate = sdReal(f.SymbolRate)
	}
	if f.SPS != 0 {
		cfg.SPS = f.SPS
	}
	if f.UpsampleFactor != 0 {
		cfg.UpsampleFactor = f.UpsampleFactor
	}
	if f.D != 0 {
		cfg.D = f.D
	}
	if f.RCBeta != 0 {
		cfg.RCBeta = sdReal(f.RCBeta)
	}
	if f.RCLen != 0 {
		cfg.RCLen = f.RCLen
	}
	if f.TXGain != 0 {
		cfg.TXGain = sdReal(f.TXGain)
	}
	if f.AWGNSigma != 0 {
		cfg.AWGNSigma = sdReal(f.AWGNSigma)
	}
	if f.AWGNSeed != 0 {
		cfg.AWGNSeed = f.AWGNSeed
	}
	if f.PreambleBits != 0 {
		cfg.PreambleBits = f.PreambleBits
	}
	if f.TailZeroBits != 0 {
		cfg.TailZeroBits = f.TailZeroBits
	}
	if f.TailOneBits != 0 {
		cfg.TailOneBits = f.TailOneBits
	}
	if f.GapSamples != 0 {
		cfg.GapSamples = f.GapSamples
	}
	if f.AGCMu != 0 {
		cfg.AGCMu = sdReal(f.AGCMu)
	}
	if f.AGCTarget != 0 {
		cfg.AGCTarget = sdReal(f.AGCTarget)
	}
	if f.CostasK != 0 {
		cfg.CostasK = sdReal(f.CostasK)
	}
	if f.CostasLoopCutoff != 0 {
		cfg.CostasLoopCutoff = sdReal(f.CostasLoopCutoff)
	}
	if f.CostasLoopTransition != 0 {
		cfg.CostasLoopTransition = sdReal(f.CostasLoopTransition)
	}
	if f.RXBPFBandwidth != 0 {
		cfg.RXBPFBandwidth = sdReal(f.RXBPFBandwidth)
	}
	if f.RXBPFTransition != 0 {
		cfg.RXBPFTransition = sdReal(f.RXBPFTransition)
	}
	if f.RXDownsampleCutoff != 0 {
		cfg.RXDownsampleCutoff = sdReal(f.RXDownsampleCutoff)
	}
	if f.RXDownsampleTransition != 0 {
		cfg.RXDownsampleTransition = sdReal(f.RXDownsampleTransition)
	}
	cfg.TimingEps = sdReal(f.TimingEps) // 0 is a valid, common value
	return cfg
}
