package gf2x

import "sync"

// polyPool recycles scratch Poly buffers across calls, following the
// ancestor library's decPool/getDec/putDec (dec.go). Karatsuba's
// recursion allocates and discards several same-shaped scratch buffers
// per call; pooling them cuts GC pressure on the deep recursions large
// operands produce.
var polyPool sync.Pool

// getPoly returns a zeroed Poly of length n, drawn from the pool when
// possible.
func getPoly(n int) Poly {
	if v := polyPool.Get(); v != nil {
		z := v.(Poly)
		if cap(z) >= n {
			z = z[:n]
			z.clear()
			return z
		}
	}
	return make(Poly, n)
}

// putPoly returns x to the pool for reuse. Callers must not use x again
// after calling putPoly.
func putPoly(x Poly) {
	polyPool.Put(x)
}
