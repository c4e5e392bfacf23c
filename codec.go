package rs1509

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// hexCharsPerLine wraps the wire format for readability; it has no effect
// on the decoded value.
const hexCharsPerLine = 64

var hexDigits = "0123456789ABCDEF"

// ProtectedStream is a sequence of GF(16) symbols in wire order: the
// output of EncodeStream, ready for WriteTo, or the input read back by
// ReadFrom before DecodeSequential/DecodeInterleaved.
type ProtectedStream struct {
	Symbols []Symbol
}

// WriteTo writes the stream as uppercase ASCII hex, one digit per symbol,
// wrapped at hexCharsPerLine columns.
func (ps *ProtectedStream) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	col := 0
	for _, s := range ps.Symbols {
		if err := bw.WriteByte(hexDigits[s&0x0F]); err != nil {
			return n, fmt.Errorf("%w: %v", ErrIO, err)
		}
		n++
		col++
		if col == hexCharsPerLine {
			if err := bw.WriteByte('\n'); err != nil {
				return n, fmt.Errorf("%w: %v", ErrIO, err)
			}
			n++
			col = 0
		}
	}
	if col > 0 {
		if err := bw.WriteByte('\n'); err != nil {
			return n, fmt.Errorf("%w: %v", ErrIO, err)
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return n, nil
}

// ReadFrom reads an ASCII hex stream back into symbols, skipping
// whitespace. Fails with ErrInvalidSymbol on any other byte.
func (ps *ProtectedStream) ReadFrom(r io.Reader) (int64, error) {
	br := bufio.NewReader(r)
	var n int64
	symbols := make([]Symbol, 0, 256)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, fmt.Errorf("%w: %v", ErrIO, err)
		}
		n++
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			continue
		case b >= '0' && b <= '9':
			symbols = append(symbols, Symbol(b-'0'))
		case b >= 'A' && b <= 'F':
			symbols = append(symbols, Symbol(b-'A'+10))
		case b >= 'a' && b <= 'f':
			symbols = append(symbols, Symbol(b-'a'+10))
		default:
			return n, fmt.Errorf("%w: byte 0x%02x is not a hex digit or whitespace", ErrInvalidSymbol, b)
		}
	}
	ps.Symbols = symbols
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (ps *ProtectedStream) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := ps.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (ps *ProtectedStream) UnmarshalBinary(data []byte) error {
	_, err := ps.ReadFrom(bytes.NewReader(data))
	return err
}

// WordReport describes the correction applied to one code word.
type WordReport struct {
	// Index is the code word's position in decode order.
	Index int
	// ErrorPositions are the corrected symbol indices within the word.
	ErrorPositions []int
	// Magnitudes[i] is the correction applied at ErrorPositions[i].
	Magnitudes []Symbol
}

// DecodeReport summarizes a whole-stream decode: how many words needed
// correction, how many symbols were fixed, and which words (under a
// substitute policy) could not be recovered at all.
type DecodeReport struct {
	TotalWords       int
	CorrectedSymbols int
	LostWords        []int
	WordReports      []WordReport
}

// EncodeStream packs data into information blocks, encodes each into a
// code word, and concatenates them in wire order. When cfg.InterleaveWidth
// is greater than 1, code words are grouped and interleaved in groups of
// that width; a short trailing group is padded with all-zero filler code
// words so every group is full width.
func EncodeStream(data []byte, cfg Config) ([]Symbol, error) {
	nibbles := BytesToNibbles(data)
	blocks := BlockInfo(nibbles)

	codeWords := make([][]Symbol, len(blocks))
	for i, block := range blocks {
		cw, err := Encode(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		codeWords[i] = cw
	}

	m := cfg.InterleaveWidth
	if m <= 1 {
		flat := make([]Symbol, 0, len(codeWords)*N)
		for _, cw := range codeWords {
			flat = append(flat, cw...)
		}
		return flat, nil
	}

	filler, err := Encode(make([]Symbol, K))
	if err != nil {
		return nil, err
	}

	flat := make([]Symbol, 0, ((len(codeWords)+m-1)/m)*N*m)
	for i := 0; i < len(codeWords); i += m {
		end := i + m
		if end > len(codeWords) {
			end = len(codeWords)
		}
		group := make([][]Symbol, m)
		copy(group, codeWords[i:end])
		for j := end - i; j < m; j++ {
			group[j] = filler
		}
		flat = append(flat, Interleave(group)...)
	}
	return flat, nil
}

// DecodeSequential decodes a stream of back-to-back code words with no
// deinterleaving. It always aborts on the first uncorrectable word and
// takes no Config, so no OnUncorrectable policy applies: without
// interleaving there is no wider context to substitute against, so there
// is nothing for a substitute policy to stand in for.
func DecodeSequential(stream []Symbol) ([]byte, *DecodeReport, error) {
	if len(stream)%N != 0 {
		return nil, nil, fmt.Errorf("%w: stream length %d is not a multiple of %d", ErrInvalidLength, len(stream), N)
	}
	numWords := len(stream) / N
	report := &DecodeReport{TotalWords: numWords}
	blocks := make([][]Symbol, numWords)

	for i := 0; i < numWords; i++ {
		word := stream[i*N : (i+1)*N]
		result, err := Decode(word)
		if err != nil {
			return nil, report, fmt.Errorf("word %d: %w", i, err)
		}
		blocks[i] = result.Information
		if len(result.ErrorPositions) > 0 {
			report.CorrectedSymbols += len(result.ErrorPositions)
			report.WordReports = append(report.WordReports, WordReport{
				Index:          i,
				ErrorPositions: result.ErrorPositions,
				Magnitudes:     result.Magnitudes,
			})
		}
	}

	nibbles := UnblockInfo(blocks)
	return NibblesToBytes(nibbles), report, nil
}

// DecodeInterleaved decodes a stream organized as groups of
// cfg.InterleaveWidth interleaved code words. On an uncorrectable word it
// honors cfg.OnUncorrectable: PolicyAbort stops and returns the error,
// PolicySubstitute records the word as lost (zero-filled information) and
// continues with the rest of the stream.
func DecodeInterleaved(stream []Symbol, cfg Config) ([]byte, *DecodeReport, error) {
	m := cfg.InterleaveWidth
	if m < 1 {
		m = 1
	}
	groupSize := N * m
	if len(stream)%groupSize != 0 {
		return nil, nil, fmt.Errorf("%w: stream length %d is not a multiple of %d (width %d)", ErrInvalidLength, len(stream), groupSize, m)
	}
	numGroups := len(stream) / groupSize
	report := &DecodeReport{}
	var blocks [][]Symbol

	for g := 0; g < numGroups; g++ {
		flatGroup := stream[g*groupSize : (g+1)*groupSize]
		matrix, err := Deinterleave(flatGroup, m)
		if err != nil {
			return nil, report, err
		}
		for row, word := range matrix {
			idx := g*m + row
			report.TotalWords++
			result, decErr := Decode(word)
			if decErr != nil {
				if cfg.OnUncorrectable == PolicySubstitute {
					report.LostWords = append(report.LostWords, idx)
					blocks = append(blocks, make([]Symbol, K))
					continue
				}
				return nil, report, fmt.Errorf("word %d: %w", idx, decErr)
			}
			blocks = append(blocks, result.Information)
			if len(result.ErrorPositions) > 0 {
				report.CorrectedSymbols += len(result.ErrorPositions)
				report.WordReports = append(report.WordReports, WordReport{
					Index:          idx,
					ErrorPositions: result.ErrorPositions,
					Magnitudes:     result.Magnitudes,
				})
			}
		}
	}

	nibbles := UnblockInfo(blocks)
	return NibblesToBytes(nibbles), report, nil
}
