// Command bpsk31tx generates a BPSK31-modulated audio signal for a
// message and writes it to a WAV file.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/kb9dsp/sdrdsp"
	"github.com/kb9dsp/sdrdsp/config"
	"github.com/kb9dsp/sdrdsp/modem"
	"github.com/kb9dsp/sdrdsp/wavfile"
)

func main() {
	var (
		outPath = pflag.StringP("out", "o", "bpsk31.wav", "Output WAV file.")
		cfgPath = pflag.StringP("config", "c", "", "Optional YAML config overriding modem defaults.")
		repeats = pflag.IntP("repeats", "r", 3, "Number of times to repeat the framed message.")
		help    = pflag.BoolP("help", "h", false, "Display help text.")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: bpsk31tx [flags] MESSAGE\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}
	if len(pflag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "exactly one argument required (MESSAGE) - got %v\n", pflag.Args())
		os.Exit(1)
	}
	message := pflag.Arg(0)

	cfg := modem.DefaultConfig()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal("loading config", "path", *cfgPath, "err", err)
		}
		cfg = loaded
	}

	tx, err := modem.NewTX(cfg, message)
	if err != nil {
		log.Fatal("building transmitter", "err", err)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatal("creating output file", "path", *outPath, "err", err)
	}
	defer f.Close()

	w, err := wavfile.NewWriter(f, int(cfg.SampleRate), 1)
	if err != nil {
		log.Fatal("writing WAV header", "err", err)
	}

	bitsPerRepeat := cfg.PreambleBits + cfg.TailZeroBits + cfg.TailOneBits + len(message)*16
	n := bitsPerRepeat*tx.AudioSamplesPerSymbol()*(*repeats) + cfg.GapSamples*(*repeats)
	buf := make([]sdrdsp.Real, n)
	tx.Fill(buf)
	if err := w.WriteMono(buf); err != nil {
		log.Fatal("writing samples", "err", err)
	}
	if err := w.Close(); err != nil {
		log.Fatal("finalizing WAV file", "err", err)
	}

	log.Info("wrote signal", "path", *outPath, "message", message, "samples", n)
}
