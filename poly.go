package rs1509

// Poly is a polynomial over GF(16), stored as an ordered sequence of
// symbols with index 0 the constant term (coefficient of x^0). A Poly is
// trimmed when its last element is nonzero, except for the zero
// polynomial, canonically represented as the singleton Poly{0}. Every
// function in this file returns a trimmed result and never mutates its
// inputs.
type Poly []Symbol

// zeroPoly is the canonical representation of the zero polynomial.
func zeroPoly() Poly {
	return Poly{0}
}

// isZeroPoly reports whether p is the canonical zero polynomial.
func isZeroPoly(p Poly) bool {
	return len(p) == 1 && p[0] == 0
}

// polyDegree returns the degree of p, or -1 for the zero polynomial.
func polyDegree(p Poly) int {
	if isZeroPoly(p) {
		return -1
	}
	return len(p) - 1
}

// trimPoly drops trailing zero coefficients, always leaving at least one
// coefficient (the canonical zero polynomial).
func trimPoly(p Poly) Poly {
	i := len(p) - 1
	for i > 0 && p[i] == 0 {
		i--
	}
	out := make(Poly, i+1)
	copy(out, p[:i+1])
	return out
}

// polyAdd returns p+q, padded coefficient-wise XOR then trimmed.
func polyAdd(p, q Poly) Poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	r := make(Poly, n)
	for i := 0; i < n; i++ {
		var pi, qi Symbol
		if i < len(p) {
			pi = p[i]
		}
		if i < len(q) {
			qi = q[i]
		}
		r[i] = fieldAdd(pi, qi)
	}
	return trimPoly(r)
}

// polyScale returns p with every coefficient multiplied by c, trimmed.
func polyScale(p Poly, c Symbol) Poly {
	r := make(Poly, len(p))
	for i, v := range p {
		r[i] = fieldMul(v, c)
	}
	return trimPoly(r)
}

// polyMul returns the convolution p*q over GF(16), trimmed.
func polyMul(p, q Poly) Poly {
	if isZeroPoly(p) || isZeroPoly(q) {
		return zeroPoly()
	}
	r := make(Poly, len(p)+len(q)-1)
	for i, pi := range p {
		if pi == 0 {
			continue
		}
		for j, qj := range q {
			r[i+j] = fieldAdd(r[i+j], fieldMul(pi, qj))
		}
	}
	return trimPoly(r)
}

// polyDivMod performs long division of num by den, treating the
// highest index of each as its leading coefficient. Fails with
// ErrDivisionByZero if den is the zero polynomial. On success, q and r
// satisfy num == add(mul(q, den), r) and deg(r) < deg(den).
func polyDivMod(num, den Poly) (q, r Poly, err error) {
	den = trimPoly(den)
	if isZeroPoly(den) {
		return nil, nil, ErrDivisionByZero
	}

	remainder := trimPoly(append(Poly(nil), num...))
	degDen := polyDegree(den)
	denLeadInv, _ := fieldInv(den[degDen]) // den trimmed nonzero, safe

	degRem := polyDegree(remainder)
	if degRem < degDen {
		return zeroPoly(), remainder, nil
	}

	quotient := make(Poly, degRem-degDen+1)
	for degRem >= degDen && !isZeroPoly(remainder) {
		coef := fieldMul(remainder[degRem], denLeadInv)
		shift := degRem - degDen
		quotient[shift] = coef
		for i := 0; i <= degDen; i++ {
			remainder[shift+i] = fieldAdd(remainder[shift+i], fieldMul(coef, den[i]))
		}
		remainder = trimPoly(remainder)
		degRem = polyDegree(remainder)
	}
	return trimPoly(quotient), remainder, nil
}

// polyEval evaluates p at x using a running power of x in ascending-index
// order (a Horner-equivalent accumulation), returning a single symbol.
func polyEval(p Poly, x Symbol) Symbol {
	var result Symbol
	xp := Symbol(1)
	for _, c := range p {
		result = fieldAdd(result, fieldMul(c, xp))
		xp = fieldMul(xp, x)
	}
	return result
}

// polyDerivative returns the formal derivative of p in characteristic 2:
// d[i-1] = p[i] when i is odd, else 0. This is NOT the integer derivative
// (which would keep every term, scaled by i); over GF(16) every coefficient
// with an even exponent differentiates to zero because 2*c = 0.
func polyDerivative(p Poly) Poly {
	if len(p) <= 1 {
		return zeroPoly()
	}
	d := make(Poly, len(p)-1)
	for i := 1; i < len(p); i++ {
		if i%2 == 1 {
			d[i-1] = p[i]
		}
	}
	return trimPoly(d)
}
