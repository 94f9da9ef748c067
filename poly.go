package gf2x

import "math/bits"

// Word holds one digit of a Poly: S significant bits, S <= 30, with the
// upper bits always zero.
type Word uint32

// dword accumulates cross products of two Words before they are split back
// into two Words; S <= 30 so 2*S <= 60 always fits.
type dword uint64

// Poly is an ordered, little-endian sequence of digits representing the
// GF(2)[x] element Σ digit[i]·x^(i·S). A normalized Poly carries no leading
// (most significant) zero digit; the zero polynomial is Poly(nil) or
// Poly{} of any length whose digits are all zero once normalized away.
//
// Poly values are caller-owned: Engine methods never mutate an argument and
// never retain a reference to one after returning.
type Poly []Word

// clear zeroes every digit of z in place.
func (z Poly) clear() {
	for i := range z {
		z[i] = 0
	}
}

// norm returns the prefix of z with trailing (most significant) zero
// digits removed.
func (z Poly) norm() Poly {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// clone returns an independent copy of x.
func (x Poly) clone() Poly {
	z := make(Poly, len(x))
	copy(z, x)
	return z
}

// digit returns x[i], or 0 if i is out of range.
func (x Poly) digit(i int) Word {
	if i < 0 || i >= len(x) {
		return 0
	}
	return x[i]
}

// digitLen returns ceil(nbits/s), the number of s-bit digits needed to
// hold nbits bits; 0 if nbits is 0.
func digitLen(nbits int, s uint) int {
	if nbits <= 0 {
		return 0
	}
	return (nbits + int(s) - 1) / int(s)
}

// bitLen returns the one-based index of the top set bit of x under radix
// s, or 0 if x is zero.
func (x Poly) bitLen(s uint) int {
	x = x.norm()
	n := len(x)
	if n == 0 {
		return 0
	}
	return (n-1)*int(s) + bits.Len32(uint32(x[n-1]))
}
