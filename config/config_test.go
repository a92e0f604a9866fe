package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kb9dsp/sdrdsp/modem"
)

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modem.yaml")
	yaml := "carrier_hz: 1000\ntx_gain: 0.5\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := modem.DefaultConfig()
	if cfg.CarrierHz != 1000 {
		t.Errorf("CarrierHz = %v, want 1000", cfg.CarrierHz)
	}
	if cfg.TXGain != 0.5 {
		t.Errorf("TXGain = %v, want 0.5", cfg.TXGain)
	}
	if cfg.SampleRate != def.SampleRate {
		t.Errorf("SampleRate = %v, want default %v", cfg.SampleRate, def.SampleRate)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) = nil error, want non-nil")
	}
}
