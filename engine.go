package gf2x

import "fmt"

// debugAsserts gates the internal consistency checks that catch a bug in
// the caller or in this package, as opposed to a user-facing failure.
// Following the ancestor library's debugDecimal constant, these compile
// into every build; set to false before a release if the assertions'
// overhead matters.
const debugAsserts = true

// RangeError reports an out-of-range operand or precision argument: an
// operand wider than Engine.MaxBits, or an Inverse precision that is
// non-positive or wider than MaxBits.
type RangeError struct {
	Msg string
}

func (e *RangeError) Error() string { return "gf2x: " + e.Msg }

// ErrDivideByZero is returned by DivMod and Inverse when the denominator
// is the zero polynomial.
var ErrDivideByZero error = &RangeError{Msg: "division by zero"}

func rangeErrorf(format string, args ...any) *RangeError {
	return &RangeError{Msg: fmt.Sprintf(format, args...)}
}

// Engine bundles the radix S with the tunables that control how
// multiplication and division dispatch internally. It has no mutable
// global state: every field is read-only after NewEngine returns, so an
// *Engine may be shared and used concurrently by multiple goroutines.
type Engine struct {
	// S is the number of significant bits per digit: 15 or 30.
	S uint
	// Mask is (1<<S)-1.
	Mask Word
	// MaxBits bounds the bit-length of any operand and of an Inverse
	// precision; a larger one fails with a *RangeError. Result lengths
	// are not checked against it.
	MaxBits int
	// KaratsubaLimit is the operand length, in digits, below which the
	// schoolbook multiply is used in place of Karatsuba.
	KaratsubaLimit int
	// BitwiseDivLimit is the denominator bit-length below which DivMod
	// uses the bitwise fallback instead of the reciprocal-driven long
	// division. 0 disables the fallback.
	BitwiseDivLimit int
	// Backend selects the small-operand multiply primitive (backend.go).
	// Nil means use the platform default chosen at init time.
	Backend backend
}

// prim returns e's effective backend, falling back to defaultBackend.
func (e *Engine) prim() backend {
	if e.Backend != nil {
		return e.Backend
	}
	return defaultBackend
}

// NewEngine returns an Engine for the given radix s, which must be 15 or
// 30, with KaratsubaLimit 8 and BitwiseDivLimit 64. These defaults are the
// same whichever backend the Engine ends up using.
func NewEngine(s uint) (*Engine, error) {
	if s != 15 && s != 30 {
		return nil, rangeErrorf("digit width must be 15 or 30, got %d", s)
	}
	return &Engine{
		S:               s,
		Mask:            Word(1)<<s - 1,
		MaxBits:         1 << 24,
		KaratsubaLimit:  8,
		BitwiseDivLimit: 64,
	}, nil
}

// checkOperand fails if a's bit-length exceeds e.MaxBits.
func (e *Engine) checkOperand(name string, a Poly) error {
	if n := a.bitLen(e.S); n > e.MaxBits {
		return rangeErrorf("%s has %d bits, exceeds MaxBits=%d", name, n, e.MaxBits)
	}
	return nil
}
