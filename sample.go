package sdrdsp

// Sample is the numeric capability shared by every type the FIR engine
// and the Costas loop filter can run over: Real (audio-rate) and IQ
// (baseband). S is the concrete sample type itself, so generic code can
// accumulate and return S values rather than losing the concrete type
// behind an interface.
//
// The zero value of S (Go's normal zero value — 0 for Real, {0,0} for
// IQ) is used as the FIR delay line's initial fill; no explicit Zero
// method is needed for that.
type Sample[S any] interface {
	Add(S) S
	Sub(S) S
	Scale(Real) S
	Mag() Real
}
