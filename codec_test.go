package rs1509

import (
	"bytes"
	"strings"
	"testing"
)

func TestProtectedStreamWriteReadRoundTrip(t *testing.T) {
	ps := ProtectedStream{Symbols: []Symbol{0, 1, 2, 3, 10, 11, 12, 13, 14, 15}}
	var buf bytes.Buffer
	if _, err := ps.WriteTo(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var back ProtectedStream
	if _, err := back.ReadFrom(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(back.Symbols) != len(ps.Symbols) {
		t.Fatalf("length mismatch: got %d, want %d", len(back.Symbols), len(ps.Symbols))
	}
	for i := range ps.Symbols {
		if back.Symbols[i] != ps.Symbols[i] {
			t.Fatalf("symbol %d = %d, want %d", i, back.Symbols[i], ps.Symbols[i])
		}
	}
}

func TestProtectedStreamWriteIsUppercase(t *testing.T) {
	ps := ProtectedStream{Symbols: []Symbol{0xA, 0xB, 0xC}}
	var buf bytes.Buffer
	if _, err := ps.WriteTo(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.ContainsAny(buf.String(), "abc") {
		t.Fatalf("expected uppercase hex, got %q", buf.String())
	}
}

func TestProtectedStreamReadSkipsWhitespace(t *testing.T) {
	var ps ProtectedStream
	if _, err := ps.ReadFrom(strings.NewReader("0 1\n2\t3")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Symbol{0, 1, 2, 3}
	for i, s := range want {
		if ps.Symbols[i] != s {
			t.Fatalf("symbol %d = %d, want %d", i, ps.Symbols[i], s)
		}
	}
}

func TestProtectedStreamReadRejectsBadByte(t *testing.T) {
	var ps ProtectedStream
	if _, err := ps.ReadFrom(strings.NewReader("0G1")); err == nil {
		t.Fatalf("expected error for non-hex byte")
	}
}

func TestEncodeStreamDecodeSequentialRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	data := []byte("the quick brown fox jumps over the lazy dog")

	symbols, err := EncodeStream(data, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, report, err := DecodeSequential(symbols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got[:len(data)], data) {
		t.Fatalf("round trip mismatch: got %q, want %q", got[:len(data)], data)
	}
	if report.CorrectedSymbols != 0 {
		t.Fatalf("expected no corrections on a clean stream, got %d", report.CorrectedSymbols)
	}
}

func TestEncodeStreamDecodeInterleavedRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InterleaveWidth = 4
	data := []byte("interleaved round trip test payload")

	symbols, err := EncodeStream(data, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _, err := DecodeInterleaved(symbols, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got[:len(data)], data) {
		t.Fatalf("round trip mismatch: got %q, want %q", got[:len(data)], data)
	}
}

func TestDecodeInterleavedSubstitutesLostWord(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InterleaveWidth = 3
	cfg.OnUncorrectable = PolicySubstitute
	data := []byte("0123456789abcdef0123456789abcdef")

	symbols, err := EncodeStream(data, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Corrupt every symbol of the first code word in the first group
	// (column-major: row 0 is every InterleaveWidth-th symbol). The deltas
	// differ per symbol: a constant delta vector is itself a code word and
	// would leave the word decodable.
	for i := 0; i < N; i++ {
		symbols[i*cfg.InterleaveWidth] = fieldAdd(symbols[i*cfg.InterleaveWidth], Symbol(i+1))
	}

	_, report, err := DecodeInterleaved(symbols, cfg)
	if err != nil {
		t.Fatalf("substitute policy should not return an error, got: %v", err)
	}
	if len(report.LostWords) == 0 {
		t.Fatalf("expected at least one lost word")
	}
}

func TestDecodeSequentialRejectsMalformedLength(t *testing.T) {
	if _, _, err := DecodeSequential(make([]Symbol, N-1)); err == nil {
		t.Fatalf("expected error for malformed stream length")
	}
}
