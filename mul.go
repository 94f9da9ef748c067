package gf2x

// Mul returns u*v, the GF(2)[x] product of u and v. u and v must not
// alias each other or the result.
func (e *Engine) Mul(u, v Poly) (Poly, error) {
	if err := e.checkOperand("u", u); err != nil {
		return nil, err
	}
	if err := e.checkOperand("v", v); err != nil {
		return nil, err
	}
	u, v = u.norm(), v.norm()
	if len(u) == 0 || len(v) == 0 {
		return nil, nil
	}
	p := make(Poly, len(u)+len(v))
	e.mulAdd(p, u, v, e.karatsubaLimit())
	return p.norm(), nil
}

// Sqr returns x*x. Squaring never needs Karatsuba or a multiply backend
// beyond a single digit square: every cross term between digits cancels
// in GF(2), so squareDigits runs in time linear in len(x).
func (e *Engine) Sqr(x Poly) (Poly, error) {
	if err := e.checkOperand("x", x); err != nil {
		return nil, err
	}
	x = x.norm()
	if len(x) == 0 {
		return nil, nil
	}
	p := make(Poly, 2*len(x))
	squareDigits(p, x, e.S, e.prim())
	return p.norm(), nil
}

// karatsubaLimit returns e.KaratsubaLimit, defaulting to the table's
// KARATSUBA_LIMIT constant (generic.h) when the Engine was built without
// going through NewEngine.
func (e *Engine) karatsubaLimit() int {
	if e.KaratsubaLimit > 0 {
		return e.KaratsubaLimit
	}
	return 4
}
