package gf2x

// squareDigits writes x^2 into dst, one input digit at a time: squaring
// an s-bit digit produces up to 2s bits, split into a low and a high
// s-bit output digit following generic.h's square_n. dst must have
// exactly 2*len(x) digits; squareDigits never reads dst, only overwrites
// it, since GF(2) squaring never produces cross-digit carries to
// accumulate.
func squareDigits(dst, x Poly, s uint, b backend) {
	mask := Word(1)<<s - 1
	for i, xd := range x {
		p := b.sqrDigit(xd, s)
		dst[2*i] = Word(p) & mask
		dst[2*i+1] = Word(p>>s) & mask
	}
}
