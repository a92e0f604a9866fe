package sdrdsp

// IQ is a complex baseband sample: an in-phase/quadrature pair of Real
// values.
type IQ struct {
	I Real
	Q Real
}

// Polar builds an IQ sample from a magnitude and phase angle, in radians.
func Polar(phase, r Real) IQ {
	return IQ{I: r * Cos(phase), Q: r * Sin(phase)}
}

// Add returns the complex sum z+o.
func (z IQ) Add(o IQ) IQ {
	return IQ{I: z.I + o.I, Q: z.Q + o.Q}
}

// Sub returns the complex difference z-o.
func (z IQ) Sub(o IQ) IQ {
	return IQ{I: z.I - o.I, Q: z.Q - o.Q}
}

// Mul returns the complex product z*o: (i1*i2-q1*q2, i1*q2+q1*i2).
func (z IQ) Mul(o IQ) IQ {
	return IQ{
		I: z.I*o.I - z.Q*o.Q,
		Q: z.I*o.Q + z.Q*o.I,
	}
}

// MulReal scales both components of z by a real scalar. It is both IQ's
// "scale by Real" Sample operation and the "IQ times real sample"
// operation the Costas loop uses to mix an oscillator against an audio
// sample.
func (z IQ) MulReal(k Real) IQ {
	return IQ{I: z.I * k, Q: z.Q * k}
}

// Scale implements Sample[IQ].
func (z IQ) Scale(k Real) IQ { return z.MulReal(k) }

// Div divides both components of z by a real scalar.
func (z IQ) Div(k Real) IQ {
	return IQ{I: z.I / k, Q: z.Q / k}
}

// Conj returns the complex conjugate (i, -q).
func (z IQ) Conj() IQ {
	return IQ{I: z.I, Q: -z.Q}
}

// MagSquared returns i^2+q^2, the squared magnitude.
func (z IQ) MagSquared() Real {
	return z.I*z.I + z.Q*z.Q
}

// Mag returns sqrt(i^2+q^2), the magnitude. Implements Sample[IQ].
func (z IQ) Mag() Real {
	return Sqrt(z.MagSquared())
}

// Phase returns atan2(q, i) in (-pi, pi].
func (z IQ) Phase() Real {
	return Atan2(z.Q, z.I)
}

// Unit returns z scaled to unit magnitude, or the zero IQ sample if z is
// itself zero.
func (z IQ) Unit() IQ {
	m := z.Mag()
	if m == 0 {
		return IQ{}
	}
	return z.Div(m)
}
