// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gf2x implements arbitrary-precision arithmetic for polynomials over
the binary field GF(2): "carry-less" integers in which addition is bitwise
exclusive-or and multiplication is polynomial multiplication with no
implicit reduction.

A polynomial is stored as a little-endian slice of digits, Poly, each digit
holding S significant bits, with S chosen (15 or 30) when an Engine is
created. Unlike big.Int, a Poly carries no sign and no notion of two's
complement: every Poly is the coefficient vector of a GF(2)[x] element, and
Poly(nil) denotes the zero polynomial.

An Engine bundles the radix S together with the tunables that control how
it multiplies and divides:

    e, err := gf2x.NewEngine(30)
    p, err := e.Mul(a, b)       // p = a * b
    s, err := e.Sqr(a)          // s = a * a
    q, r, err := e.DivMod(u, d) // u = q*d + r, deg(r) < deg(d)
    v, err := e.Inverse(d, 64)  // v*d = x^k + (deg < deg(d))

Engine methods are pure functions of their arguments: each allocates and
returns its own result, none retains a reference to an input Poly, and all
are safe to call concurrently from multiple goroutines on disjoint Poly
values. None may be called with an input and output Poly that alias the
same underlying array.

Notational convention: operands are named u, v, d, a, b, l, r, x (never z); a
method returns its result rather than writing through a receiver, since Poly
has no natural accumulator identity the way Decimal does in this package's
ancestor.
*/
package gf2x
