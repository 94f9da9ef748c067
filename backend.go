package gf2x

import "golang.org/x/sys/cpu"

// backend is one of the three interchangeable small-operand multiply
// primitives: multiply two s-bit digits (s <= 30) into a 2s-bit product,
// or square one digit. All three stay reachable at runtime, rather than
// picked once at compile time the way the C original's intel_clmul.h /
// armv8_crypto.h / generic.h are chosen by preprocessor macro, so that
// the backends can be checked against each other for agreement within a
// single test binary.
type backend interface {
	name() string
	mulDigit(l, r Word, s uint) dword
	sqrDigit(l Word, s uint) dword
}

// tableBackend composes the atom tables (tables.go) the way generic.h's
// mul_15_15/mul_30_30/sqr_15 compose mul_5_5/sqr_8: split each operand
// into 5-bit (multiply) or 8-bit (square) atoms and accumulate the
// cross products by table lookup.
type tableBackend struct{}

func (tableBackend) name() string { return "table" }
func (tableBackend) mulDigit(l, r Word, s uint) dword { return tableMulDigit(l, r, s) }
func (tableBackend) sqrDigit(l Word, s uint) dword { return tableSqrDigit(l, s) }

// laneBackend splits each operand into 8-bit lanes like tableBackend,
// but multiplies each lane pair with a direct shift/xor carry-less
// multiply (clmulBits) instead of a table lookup -- the pure-Go shape of
// what a vector of 8-bit PCLMUL lanes would compute.
type laneBackend struct{}

func (laneBackend) name() string { return "lane" }
func (laneBackend) mulDigit(l, r Word, s uint) dword { return laneMulDigit(l, r, s) }
func (laneBackend) sqrDigit(l Word, s uint) dword { return laneSqrDigit(l, s) }

// hardwareBackend multiplies or squares the whole digit in one
// shift/xor pass with no atom decomposition at all: the shape of a
// single PCLMULQDQ/PMULL instruction, realized in pure Go since no
// assembly template exists anywhere in the retrieved example pack to
// ground a hand-written one on.
type hardwareBackend struct{}

func (hardwareBackend) name() string { return "hardware" }
func (hardwareBackend) mulDigit(l, r Word, s uint) dword { return clmulBits(dword(l), dword(r)) }
func (hardwareBackend) sqrDigit(l Word, s uint) dword { return clmulBits(dword(l), dword(l)) }

// The three backends, exported so callers (and the equivalence tests)
// can force one directly instead of going through the platform default.
var (
	TableBackend    backend = tableBackend{}
	LaneBackend     backend = laneBackend{}
	HardwareBackend backend = hardwareBackend{}
)

// defaultBackend is the backend an Engine uses when none is set
// explicitly. golang.org/x/sys/cpu only picks a *preferred order* among
// the three pure-Go implementations above -- it never gates a real
// PCLMULQDQ/PMULL call, unlike ericlagergren/polyval's polyval_amd64.go
// / polyval_arm64.go, which this dispatch is otherwise modeled on.
var defaultBackend backend = TableBackend

func init() {
	if cpu.X86.HasPCLMULQDQ || cpu.ARM64.HasPMULL {
		defaultBackend = HardwareBackend
	}
}

// tableMulDigit multiplies two s-bit digits by splitting them into
// 5-bit atoms and summing the cross products from mul5x5, generalizing
// generic.h's mul_15_15 (3 atoms) and mul_30_30 (6 atoms, there built via
// Karatsuba-of-mul_15_15 rather than a flat double sum; the flat sum
// computes the identical carry-less product).
func tableMulDigit(l, r Word, s uint) dword {
	const atomBits = 5
	na := digitLen(int(s), atomBits)
	var lA, rA [6]Word
	ll, rr := l, r
	for i := 0; i < na; i++ {
		lA[i] = ll & 0x1f
		ll >>= atomBits
		rA[i] = rr & 0x1f
		rr >>= atomBits
	}
	var p dword
	for i := 0; i < na; i++ {
		if lA[i] == 0 {
			continue
		}
		for j := 0; j < na; j++ {
			p ^= dword(mul5x5[lA[i]][rA[j]]) << uint(atomBits*(i+j))
		}
	}
	return p
}

// tableSqrDigit squares an s-bit digit by splitting it into byte atoms
// and placing sqr8 of each atom at its doubled position, following
// generic.h's square_n: cross terms between atoms vanish in GF(2), so no
// cross product is needed, only the per-atom square.
func tableSqrDigit(l Word, s uint) dword {
	nb := digitLen(int(s), 8)
	var p dword
	for i := 0; i < nb; i++ {
		b := (l >> uint(8*i)) & 0xff
		p ^= dword(sqr8[b]) << uint(16*i)
	}
	return p
}

// laneMulDigit is tableMulDigit's 8-bit-lane twin: same split-and-sum
// shape, but each lane product comes from clmulBits instead of a table.
func laneMulDigit(l, r Word, s uint) dword {
	nb := digitLen(int(s), 8)
	var lB, rB [4]Word
	ll, rr := l, r
	for i := 0; i < nb; i++ {
		lB[i] = ll & 0xff
		ll >>= 8
		rB[i] = rr & 0xff
		rr >>= 8
	}
	var p dword
	for i := 0; i < nb; i++ {
		if lB[i] == 0 {
			continue
		}
		for j := 0; j < nb; j++ {
			p ^= clmulBits(dword(lB[i]), dword(rB[j])) << uint(8*(i+j))
		}
	}
	return p
}

func laneSqrDigit(l Word, s uint) dword {
	nb := digitLen(int(s), 8)
	var p dword
	for i := 0; i < nb; i++ {
		b := (l >> uint(8*i)) & 0xff
		p ^= clmulBits(dword(b), dword(b)) << uint(16*i)
	}
	return p
}
