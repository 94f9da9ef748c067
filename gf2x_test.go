// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf2x

import (
	"math/big"
	"math/rand"
)

// rnd is the package tests' shared random source, seeded for reproducible
// failures across runs.
var rnd = rand.New(rand.NewSource(1))

// rndPoly returns a random Poly of exactly n digits under radix s, with
// the top digit guaranteed nonzero when n > 0 (so bitLen reports n*s bits
// minus whatever leading zeros the top digit happens to have).
func rndPoly(n int, s uint) Poly {
	if n == 0 {
		return nil
	}
	mask := Word(1)<<s - 1
	p := make(Poly, n)
	for i := range p {
		p[i] = Word(rnd.Uint64()) & mask
	}
	if p[n-1] == 0 {
		p[n-1] = 1
	}
	return p
}

// rndBits returns a random Poly with bit-length exactly nbits (or the
// zero Poly when nbits is 0).
func rndBits(nbits int, s uint) Poly {
	if nbits <= 0 {
		return nil
	}
	n := digitLen(nbits, s)
	p := rndPoly(n, s)
	top := uint(nbits-1) % s
	if top != s-1 {
		p[n-1] &= Word(1)<<(top+1) - 1
	}
	p[n-1] |= Word(1) << top
	return p.norm()
}

func mustEngine(t interface{ Fatalf(string, ...any) }, s uint) *Engine {
	e, err := NewEngine(s)
	if err != nil {
		t.Fatalf("NewEngine(%d): %v", s, err)
	}
	return e
}

// polyFromUint builds a Poly from a plain bit-string value, useful for
// the worked examples in small hex constants.
func polyFromUint(v uint64, s uint) Poly {
	mask := Word(1)<<s - 1
	var p Poly
	for v != 0 {
		p = append(p, Word(v)&mask)
		v >>= s
	}
	return p.norm()
}

// uintFromPoly is polyFromUint's inverse, valid only while the result
// fits in a uint64.
func uintFromPoly(p Poly, s uint) uint64 {
	var v uint64
	for i := len(p) - 1; i >= 0; i-- {
		v = (v << s) | uint64(p[i])
	}
	return v
}

// uintFromPolyBig is uintFromPoly without the uint64 ceiling, for tests
// that shift operands wide enough to overflow it.
func uintFromPolyBig(p Poly, s uint) *big.Int {
	v := new(big.Int)
	d := big.NewInt(int64(s))
	for i := len(p) - 1; i >= 0; i-- {
		v.Lsh(v, uint(d.Int64()))
		v.Or(v, big.NewInt(int64(p[i])))
	}
	return v
}
