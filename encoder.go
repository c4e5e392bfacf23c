package rs1509

import (
	"fmt"
	"sync"
)

// Code parameters for RS(15, 9) over GF(16).
const (
	N         = 15 // code word length
	K         = 9  // information symbols per code word
	T         = 3  // maximum correctable errors per code word
	ParityLen = N - K
)

var (
	generatorOnce sync.Once
	generator     Poly
)

// GeneratorPoly returns g(x) = product_{i=1..ParityLen} (x - α^i) expanded
// over GF(16), built once and shared thereafter. Degree is ParityLen, with
// ParityLen+1 coefficients and a nonzero leading term.
func GeneratorPoly() Poly {
	generatorOnce.Do(func() {
		g := Poly{1}
		for i := 1; i <= ParityLen; i++ {
			// (x + α^i): addition is subtraction in characteristic 2.
			root := Poly{fieldPow(i), 1}
			g = polyMul(g, root)
		}
		generator = g
	})
	return generator
}

// Encode produces the systematic RS(15,9) code word for a 9-symbol
// information block: code word layout is w[0:ParityLen] = parity,
// w[ParityLen:N] = info, unaltered. Fails with ErrInvalidLength if info is
// not exactly K symbols.
func Encode(info []Symbol) ([]Symbol, error) {
	if len(info) != K {
		return nil, fmt.Errorf("%w: encode requires %d symbols, got %d", ErrInvalidLength, K, len(info))
	}

	// M(x) has length N: info symbols occupy the high-order ParityLen..N-1
	// slots (ascending-index form), zeros below.
	m := make(Poly, N)
	for i, s := range info {
		m[ParityLen+i] = s
	}
	m = trimPoly(m)

	_, remainder, err := polyDivMod(m, GeneratorPoly())
	if err != nil {
		return nil, err
	}

	word := make([]Symbol, N)
	copy(word, remainder) // remainder has degree < ParityLen
	copy(word[ParityLen:], info)
	return word, nil
}
