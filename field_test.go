package rs1509

import "testing"

func TestExpTableMatchesWorkedExample(t *testing.T) {
	want := []Symbol{1, 2, 4, 8, 3, 6, 12, 11, 5, 10, 7, 14, 15, 13, 9}
	for i, w := range want {
		if got := fieldPow(i); got != w {
			t.Fatalf("fieldPow(%d) = %d, want %d", i, got, w)
		}
	}
	if fieldPow(15) != fieldPow(0) {
		t.Fatalf("fieldPow should be periodic with period %d", fieldOrder)
	}
}

func TestFieldMulWorkedExample(t *testing.T) {
	if got := fieldMul(0xB, 0xD); got != 6 {
		t.Fatalf("fieldMul(0xB, 0xD) = %d, want 6", got)
	}
}

func TestFieldAddIsXor(t *testing.T) {
	for a := Symbol(0); a < 16; a++ {
		for b := Symbol(0); b < 16; b++ {
			if got, want := fieldAdd(a, b), a^b; got != want {
				t.Fatalf("fieldAdd(%d,%d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestFieldMulZero(t *testing.T) {
	for a := Symbol(0); a < 16; a++ {
		if fieldMul(a, 0) != 0 || fieldMul(0, a) != 0 {
			t.Fatalf("multiplication by zero must be zero (a=%d)", a)
		}
	}
}

func TestFieldDivByZero(t *testing.T) {
	if _, err := fieldDiv(5, 0); err == nil {
		t.Fatalf("expected error dividing by zero")
	}
}

func TestFieldMulDivRoundTrip(t *testing.T) {
	for a := Symbol(0); a < 16; a++ {
		for b := Symbol(1); b < 16; b++ {
			product := fieldMul(a, b)
			quotient, err := fieldDiv(product, b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if quotient != a {
				t.Fatalf("(%d*%d)/%d = %d, want %d", a, b, b, quotient, a)
			}
		}
	}
}

func TestFieldInv(t *testing.T) {
	for a := Symbol(1); a < 16; a++ {
		inv, err := fieldInv(a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fieldMul(a, inv) != 1 {
			t.Fatalf("%d * inv(%d)=%d should be 1", a, a, inv)
		}
	}
}

func TestFieldMulCommutative(t *testing.T) {
	for a := Symbol(0); a < 16; a++ {
		for b := Symbol(0); b < 16; b++ {
			if fieldMul(a, b) != fieldMul(b, a) {
				t.Fatalf("multiplication not commutative for %d,%d", a, b)
			}
		}
	}
}
