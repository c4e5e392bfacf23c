// Package rs1509 implements RS(15,9) Reed-Solomon forward error correction
// over GF(16), with block interleaving for burst-error resilience.
//
// # Overview
//
// RS(15,9) encodes 9 information symbols (nibbles) into a 15-symbol code
// word using 6 parity symbols, correcting up to 3 symbol errors per word
// regardless of where they fall. Interleaving spreads the symbols of m
// code words across a single transmitted block so a contiguous burst of
// lost symbols is divided among m independent code words instead of
// overwhelming one.
//
// # When to Use
//
// RS(15,9) is suited to:
//   - Channels with bursty symbol loss: serial links, tape, punch
//     cards, barcodes
//   - Streams where per-block correction (not whole-message
//     retransmission) is required
//   - Any nibble-oriented data that tolerates a ~40% parity overhead
//     in exchange for guaranteed 3-error correction per word
//
// # When Not to Use
//
// RS(15,9) is not suitable for:
//   - Data with more than 3 errors per 15-symbol word and no
//     interleaving to spread them out
//   - Applications needing error detection only (a lighter checksum
//     or CRC is cheaper)
//   - Very large messages where a longer Reed-Solomon code (larger
//     field, more parity symbols) would waste less overhead
//
// # Basic Usage
//
//	cfg := rs1509.DefaultConfig()
//	cfg.InterleaveWidth = 4
//
//	stream, err := rs1509.EncodeStream([]byte("hello, world"), cfg)
//	if err != nil {
//	    // handle err
//	}
//
//	var ps rs1509.ProtectedStream
//	ps.Symbols = stream
//	data, _ := ps.MarshalBinary() // ASCII hex, ready to write to disk
//
//	var decoded rs1509.ProtectedStream
//	_ = decoded.UnmarshalBinary(data)
//	original, report, err := rs1509.DecodeInterleaved(decoded.Symbols, cfg)
//	if err != nil {
//	    // handle err
//	}
//	_ = report.CorrectedSymbols
//
// # Performance Characteristics
//
// Encode: O(K*ParityLen) per code word via polynomial long division.
// Decode: O(T^2) per code word for the key equation, O(N) for Chien
// search, O(T) for Forney correction — all fixed-size for RS(15,9), so
// decoding a stream is linear in the number of code words.
package rs1509
