// Package channel implements a simple additive-white-Gaussian-noise
// channel model.
package channel

import (
	"math/rand"

	"github.com/kb9dsp/sdrdsp"
)

// AWGN perturbs a real buffer by adding an independent N(0, sigma^2)
// sample to each element.
type AWGN struct {
	sigma sdrdsp.Real
	rng   *rand.Rand
}

// New builds an AWGN channel with standard deviation sigma, seeded from
// seed for deterministic test vectors.
func New(sigma sdrdsp.Real, seed int64) *AWGN {
	return &AWGN{sigma: sigma, rng: rand.New(rand.NewSource(seed))}
}

// ProcessInplace adds noise to every element of buf.
func (a *AWGN) ProcessInplace(buf []sdrdsp.Real) {
	for i := range buf {
		buf[i] += sdrdsp.Real(a.rng.NormFloat64()) * a.sigma
	}
}
