// Command bpsk31rx demodulates a BPSK31 WAV recording, printing the
// decoded text to stdout and optionally writing debug baseband/symbol
// WAV captures.
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
		cfgPath     = pflag.StringP("config", "c", "", "Optional YAML config overriding modem defaults.")
		basebandOut = pflag.String("baseband-out", "", "Optional path for a two-channel (I/Q) baseband debug capture.")
		symbolsOut  = pflag.String("symbols-out", "", "Optional path for a two-channel (I/Q) recovered-symbol debug capture.")
		help        = pflag.BoolP("help", "h", false, "Display help text.")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: bpsk31rx [flags] INPUT.wav\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}
	if len(pflag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "exactly one argument required (INPUT.wav) - got %v\n", pflag.Args())
		os.Exit(1)
	}
	inPath := pflag.Arg(0)

	f, err := os.Open(inPath)
	if err != nil {
		log.Fatal("opening input file", "path", inPath, "err", err)
	}
	defer f.Close()

	r, err := wavfile.NewReader(f)
	if err != nil {
		log.Fatal("reading WAV header", "err", err)
	}
	samples, err := r.ReadAllMono()
	if err != nil {
		log.Fatal("reading samples", "err", err)
	}

	cfg := modem.DefaultConfig()
	cfg.SampleRate = sdrdsp.Real(r.SampleRate)
	if *cfgPath != "" {
		loaded, loadErr := config.Load(*cfgPath)
		if loadErr != nil {
			log.Fatal("loading config", "path", *cfgPath, "err", loadErr)
		}
		loaded.SampleRate = cfg.SampleRate
		cfg = loaded
	}

	rx, err := modem.NewRX(cfg)
	if err != nil {
		log.Fatal("building receiver", "err", err)
	}

	if *basebandOut != "" {
		bf, createErr := os.Create(*basebandOut)
		if createErr != nil {
			log.Fatal("creating baseband debug file", "path", *basebandOut, "err", createErr)
		}
		defer bf.Close()
		// OnBaseband fires once per cfg.D audio samples (post-decimation
		// rate), not once per audio sample.
		baseband, werr := wavfile.NewWriter(bf, int(cfg.SampleRate)/cfg.D, 2)
		if werr != nil {
			log.Fatal("writing baseband WAV header", "err", werr)
		}
		defer baseband.Close()
		rx.OnBaseband = func(iq sdrdsp.IQ) {
			baseband.WriteFrame([]sdrdsp.Real{iq.I, iq.Q})
		}
	}

	if *symbolsOut != "" {
		sf, createErr := os.Create(*symbolsOut)
		if createErr != nil {
			log.Fatal("creating symbols debug file", "path", *symbolsOut, "err", createErr)
		}
		defer sf.Close()
		// The symbol stream runs at the baud rate, not the audio rate;
		// approximating it here at symbol_rate=31 (rather than the exact
		// 31.25) keeps the WAV header's integer sample rate simple.
		symbols, werr := wavfile.NewWriter(sf, 31, 2)
		if werr != nil {
			log.Fatal("writing symbols WAV header", "err", werr)
		}
		defer symbols.Close()
		rx.OnSymbol = func(iq sdrdsp.IQ) {
			symbols.WriteFrame([]sdrdsp.Real{iq.I, iq.Q})
		}
	}

	var decoded []byte
	for _, s := range samples {
		b, ok := rx.ProcessSample(s)
		if ok {
			decoded = append(decoded, b)
		}
	}

	log.Info("decoded", "lock", rx.Lock().String(), "bytes", len(decoded))
	fmt.Println(string(decoded))
}
