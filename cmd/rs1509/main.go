// Command rs1509 encodes and decodes byte streams with RS(15,9) forward
// error correction, and can inject synthetic symbol errors for testing.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/aeldric/rs1509"
)

type cli struct {
	Encode            encodeCmd            `cmd:"" help:"Encode a file into a protected stream."`
	DecodeSequential  decodeSequentialCmd  `cmd:"decode-sequential" help:"Decode a non-interleaved protected stream."`
	DecodeInterleaved decodeInterleavedCmd `cmd:"decode-interleaved" help:"Decode an interleaved protected stream."`
	InjectErrors      injectErrorsCmd      `cmd:"inject-errors" help:"Corrupt symbols in a protected stream."`
	Verbose           bool                 `short:"v" help:"Enable debug logging."`
}

func main() {
	logger := log.New(os.Stderr)

	var c cli
	kctx := kong.Parse(&c,
		kong.Name("rs1509"),
		kong.Description("RS(15,9) forward error correction over GF(16)."),
	)
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	err := kctx.Run(logger)
	kctx.FatalIfErrorf(err)
}

type encodeCmd struct {
	In              string `arg:"" help:"Input file (raw bytes)."`
	Out             string `arg:"" help:"Output file (ASCII hex protected stream)."`
	InterleaveWidth int    `default:"1" help:"Number of code words per interleave group."`
}

func (c *encodeCmd) Run(logger *log.Logger) error {
	data, err := os.ReadFile(c.In)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", rs1509.ErrIO, c.In, err)
	}

	cfg := rs1509.DefaultConfig()
	cfg.InterleaveWidth = c.InterleaveWidth
	if err := cfg.Validate(); err != nil {
		return err
	}

	symbols, err := rs1509.EncodeStream(data, cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", rs1509.ErrIO, c.Out, err)
	}
	defer f.Close()

	ps := rs1509.ProtectedStream{Symbols: symbols}
	n, err := ps.WriteTo(f)
	if err != nil {
		return err
	}

	logger.Info("encoded", "input_bytes", len(data), "code_words", len(symbols)/rs1509.N, "wire_bytes", n)
	return nil
}

type decodeSequentialCmd struct {
	In  string `arg:"" help:"Input file (ASCII hex protected stream)."`
	Out string `arg:"" help:"Output file (decoded raw bytes)."`
}

func (c *decodeSequentialCmd) Run(logger *log.Logger) error {
	ps, err := readProtectedStream(c.In)
	if err != nil {
		return err
	}

	data, report, err := rs1509.DecodeSequential(ps.Symbols)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Out, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", rs1509.ErrIO, c.Out, err)
	}

	logReport(logger, report)
	return nil
}

type decodeInterleavedCmd struct {
	In              string `arg:"" help:"Input file (ASCII hex protected stream)."`
	Out             string `arg:"" help:"Output file (decoded raw bytes)."`
	InterleaveWidth int    `default:"1" help:"Number of code words per interleave group."`
	OnUncorrectable string `default:"abort" help:"Policy on an uncorrectable word: abort or substitute."`
}

func (c *decodeInterleavedCmd) Run(logger *log.Logger) error {
	ps, err := readProtectedStream(c.In)
	if err != nil {
		return err
	}

	cfg := rs1509.DefaultConfig()
	cfg.InterleaveWidth = c.InterleaveWidth
	cfg.OnUncorrectable = rs1509.UncorrectablePolicy(c.OnUncorrectable)
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, report, err := rs1509.DecodeInterleaved(ps.Symbols, cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Out, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", rs1509.ErrIO, c.Out, err)
	}

	logReport(logger, report)
	if len(report.LostWords) > 0 {
		logger.Warn("words lost to substitution", "count", len(report.LostWords), "indices", report.LostWords)
	}
	return nil
}

type injectErrorsCmd struct {
	In        string `arg:"" help:"Input file (ASCII hex protected stream)."`
	Out       string `arg:"" help:"Output file (corrupted ASCII hex protected stream)."`
	Positions string `help:"Explicit corruptions as word:symbol=value,word:symbol=value,..."`
	Random    int    `help:"Inject this many random single-symbol errors instead of explicit positions."`
	Seed      int64  `default:"1" help:"Seed for --random (deterministic by default)."`
}

func (c *injectErrorsCmd) Run(logger *log.Logger) error {
	ps, err := readProtectedStream(c.In)
	if err != nil {
		return err
	}
	if len(ps.Symbols)%rs1509.N != 0 {
		return fmt.Errorf("%w: stream length %d is not a multiple of %d", rs1509.ErrInvalidLength, len(ps.Symbols), rs1509.N)
	}
	numWords := len(ps.Symbols) / rs1509.N

	switch {
	case c.Positions != "":
		if err := injectExplicit(ps.Symbols, c.Positions); err != nil {
			return err
		}
	case c.Random > 0:
		injectRandom(logger, ps.Symbols, numWords, c.Random, c.Seed)
	default:
		return fmt.Errorf("specify either --positions or --random")
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", rs1509.ErrIO, c.Out, err)
	}
	defer f.Close()
	_, err = ps.WriteTo(f)
	return err
}

func injectExplicit(symbols []rs1509.Symbol, spec string) error {
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		posPart, valuePart, ok := strings.Cut(entry, "=")
		if !ok {
			return fmt.Errorf("malformed position %q: expected word:symbol=value", entry)
		}
		wordStr, symStr, ok := strings.Cut(posPart, ":")
		if !ok {
			return fmt.Errorf("malformed position %q: expected word:symbol=value", entry)
		}
		word, err := strconv.Atoi(wordStr)
		if err != nil {
			return fmt.Errorf("malformed word index %q: %v", wordStr, err)
		}
		sym, err := strconv.Atoi(symStr)
		if err != nil {
			return fmt.Errorf("malformed symbol index %q: %v", symStr, err)
		}
		value, err := strconv.Atoi(valuePart)
		if err != nil {
			return fmt.Errorf("malformed symbol value %q: %v", valuePart, err)
		}
		idx := word*rs1509.N + sym
		if idx < 0 || idx >= len(symbols) {
			return fmt.Errorf("position word=%d symbol=%d is out of range", word, sym)
		}
		symbols[idx] = rs1509.Symbol(value & 0x0F)
	}
	return nil
}

// injectRandom scatters count single-symbol errors across the stream,
// never placing more than T errors in the same code word: beyond that the
// word becomes uncorrectable by construction, which is useful to request
// explicitly but not as an accidental side effect of random placement.
func injectRandom(logger *log.Logger, symbols []rs1509.Symbol, numWords, count int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	perWord := make([]int, numWords)
	injected := 0
	attempts := 0
	maxAttempts := count * 20

	for injected < count && attempts < maxAttempts {
		attempts++
		word := rng.Intn(numWords)
		if perWord[word] >= rs1509.T {
			continue
		}
		sym := rng.Intn(rs1509.N)
		idx := word*rs1509.N + sym
		original := symbols[idx]
		corrupted := rs1509.Symbol(rng.Intn(16))
		if corrupted == original {
			continue
		}
		symbols[idx] = corrupted
		perWord[word]++
		injected++
	}

	if injected < count {
		logger.Warn("could not place all requested errors without exceeding the per-word cap", "requested", count, "placed", injected)
	}

	full := true
	for _, n := range perWord {
		if n < rs1509.T {
			full = false
			break
		}
	}
	if full {
		logger.Warn("every word is now at the per-word error cap", "words", numWords, "cap", rs1509.T)
	}
}

func readProtectedStream(path string) (*rs1509.ProtectedStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", rs1509.ErrIO, path, err)
	}
	defer f.Close()

	var ps rs1509.ProtectedStream
	if _, err := ps.ReadFrom(f); err != nil {
		return nil, err
	}
	return &ps, nil
}

func logReport(logger *log.Logger, report *rs1509.DecodeReport) {
	logger.Info("decoded", "words", report.TotalWords, "corrected_symbols", report.CorrectedSymbols)
	for _, wr := range report.WordReports {
		logger.Debug("word corrected", "word", wr.Index, "positions", wr.ErrorPositions)
	}
}
