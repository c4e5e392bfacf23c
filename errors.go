package rs1509

import "errors"

// Sentinel errors covering the codec's failure modes. Callers should use
// errors.Is against these, since the concrete errors returned are always
// wrapped with additional context via fmt.Errorf("%w: ...", ...).
var (
	// ErrDivisionByZero is returned by Field division or polynomial divmod
	// when the divisor is the zero element/polynomial.
	ErrDivisionByZero = errors.New("rs1509: division by zero")

	// ErrInvalidLength is returned when Encode is not given exactly K
	// symbols, or a decode stream's length is not a multiple of N.
	ErrInvalidLength = errors.New("rs1509: invalid length")

	// ErrInvalidSymbol is returned when an on-disk byte is outside
	// {'0'..'9','A'..'F','a'..'f', whitespace}.
	ErrInvalidSymbol = errors.New("rs1509: invalid symbol byte")

	// ErrUncorrectable is returned when the decoder detects more errors
	// than it can correct, or an internal precondition (normalization,
	// Forney denominator) fails.
	ErrUncorrectable = errors.New("rs1509: uncorrectable code word")

	// ErrIO wraps underlying read/write failures in the codec driver.
	ErrIO = errors.New("rs1509: i/o failure")
)
