package rs1509

import "fmt"

// DecodeResult is the outcome of decoding one 15-symbol received word.
type DecodeResult struct {
	// CodeWord is the corrected 15-symbol code word.
	CodeWord []Symbol
	// Information is CodeWord[ParityLen:], the recovered 9-symbol block.
	Information []Symbol
	// ErrorPositions lists the corrected indices into the received word,
	// in ascending order. Empty when the word had no detectable errors.
	ErrorPositions []int
	// Magnitudes[i] is the correction XORed into position
	// ErrorPositions[i].
	Magnitudes []Symbol
}

// Decode corrects a single 15-symbol received word using syndrome
// computation, the extended-Euclidean key equation, Chien search, and
// Forney's formula. It tolerates up to T symbol errors; beyond that it
// either reports ErrUncorrectable or, by the code's own theoretical
// limits, may miscorrect into a neighboring valid word.
func Decode(received []Symbol) (*DecodeResult, error) {
	if len(received) != N {
		return nil, fmt.Errorf("%w: decode requires %d symbols, got %d", ErrInvalidLength, N, len(received))
	}

	syndromes, clean := computeSyndromes(received)
	if clean {
		word := append([]Symbol(nil), received...)
		return &DecodeResult{
			CodeWord:    word,
			Information: append([]Symbol(nil), word[ParityLen:]...),
		}, nil
	}

	lambda, omega, err := solveKeyEquation(syndromes)
	if err != nil {
		return nil, err
	}

	positions, err := chienSearch(lambda)
	if err != nil {
		return nil, err
	}

	corrected, magnitudes, err := forneyCorrect(received, omega, lambda, positions)
	if err != nil {
		return nil, err
	}
	if _, ok := computeSyndromes(corrected); !ok {
		return nil, fmt.Errorf("%w: corrected word still has nonzero syndromes", ErrUncorrectable)
	}

	return &DecodeResult{
		CodeWord:       corrected,
		Information:    append([]Symbol(nil), corrected[ParityLen:]...),
		ErrorPositions: positions,
		Magnitudes:     magnitudes,
	}, nil
}

// computeSyndromes evaluates the received word at α^1..α^ParityLen. The
// second return value is true iff every syndrome is zero (no detectable
// error).
func computeSyndromes(received []Symbol) (Poly, bool) {
	syndromes := make(Poly, ParityLen)
	clean := true
	word := Poly(received)
	for i := 1; i <= ParityLen; i++ {
		s := polyEval(word, fieldPow(i))
		syndromes[i-1] = s
		if s != 0 {
			clean = false
		}
	}
	return syndromes, clean
}

// solveKeyEquation runs the extended Euclidean algorithm to termination
// (deg(r) < T) and returns the normalized error-locator Λ and
// error-evaluator Ω. Fails with ErrUncorrectable if Λ(0) is zero, which
// means the received word cannot be normalized into a valid locator.
func solveKeyEquation(syndromes Poly) (lambda, omega Poly, err error) {
	rPrev := make(Poly, 2*T+1)
	rPrev[2*T] = 1
	rCurr := trimPoly(syndromes)
	tPrev := zeroPoly()
	tCurr := Poly{1}

	for polyDegree(rCurr) >= T {
		q, rNext, divErr := polyDivMod(rPrev, rCurr)
		if divErr != nil {
			return nil, nil, fmt.Errorf("%w: key equation step failed: %v", ErrUncorrectable, divErr)
		}
		tNext := polyAdd(tPrev, polyMul(q, tCurr))
		rPrev, rCurr = rCurr, rNext
		tPrev, tCurr = tCurr, tNext
	}

	c := tCurr[0]
	if c == 0 {
		return nil, nil, fmt.Errorf("%w: locator normalization failed (Λ(0)=0)", ErrUncorrectable)
	}
	cInv, _ := fieldInv(c)
	lambda = polyScale(tCurr, cInv)
	omega = polyScale(rCurr, cInv)
	return lambda, omega, nil
}

// chienSearch evaluates lambda at every code-word position and returns the
// indices where it has a root, i.e. the error locations. Fails with
// ErrUncorrectable if more than T roots are found.
func chienSearch(lambda Poly) ([]int, error) {
	var positions []int
	for i := 0; i < N; i++ {
		x := fieldPow((N - i) % N)
		if polyEval(lambda, x) == 0 {
			positions = append(positions, i)
		}
	}
	if len(positions) > T {
		return nil, fmt.Errorf("%w: %d error locations exceed t=%d", ErrUncorrectable, len(positions), T)
	}
	return positions, nil
}

// forneyCorrect computes the error magnitude at each located position via
// Forney's formula and applies the correction, returning the corrected
// word and the magnitudes in the same order as positions. Fails with
// ErrUncorrectable if the Forney denominator vanishes at any position.
func forneyCorrect(received []Symbol, omega, lambda Poly, positions []int) ([]Symbol, []Symbol, error) {
	lambdaPrime := polyDerivative(lambda)
	corrected := append([]Symbol(nil), received...)
	magnitudes := make([]Symbol, len(positions))

	for idx, p := range positions {
		xInv := fieldPow((N - p) % N)
		denom := polyEval(lambdaPrime, xInv)
		if denom == 0 {
			return nil, nil, fmt.Errorf("%w: zero Forney denominator at position %d", ErrUncorrectable, p)
		}
		numer := polyEval(omega, xInv)
		e, err := fieldDiv(numer, denom)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrUncorrectable, err)
		}
		magnitudes[idx] = e
		corrected[p] = fieldAdd(corrected[p], e)
	}
	return corrected, magnitudes, nil
}
