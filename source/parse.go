package source

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"
	"unicode"
)

const (
	// maxRatLength bounds a single weight literal.
	maxRatLength = 256

	initialLineBuffer = 64 * 1024
)

// ParseRat parses a single weight: an integer ("3"), a fraction ("1/10") or a
// decimal ("0.25").
//
// Exponent forms ("1e9") and literals longer than 256 bytes are rejected, since
// big.Rat would otherwise expand them into arbitrarily large numbers.
func ParseRat(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidGenerator)
	}
	if len(s) > maxRatLength {
		return nil, fmt.Errorf("%w: value of %d bytes exceeds %d", ErrInvalidGenerator, len(s), maxRatLength)
	}
	if strings.ContainsAny(s, "eEpP") {
		return nil, fmt.Errorf("%w: %q uses an exponent", ErrInvalidGenerator, s)
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a rational number", ErrInvalidGenerator, s)
	}

	return r, nil
}

// ParseWeights reads weights from r.
//
// Values are separated by whitespace or commas; everything after '#' on a line is
// a comment. Lines have no length limit. Negative values are parsed as-is and
// rejected later by planning.
//
// Parameters:
//   - r: Text input
//
// Returns:
//   - []*big.Rat: Weights in input order
//   - error: Parse error naming the line, or a read error
//
// Example:
//
//	# ten hot elements, then a long cold tail
//	1 1 1 1 1 1 1 1 1 1
//	1/10, 1/10, 1/10
func ParseWeights(r io.Reader) ([]*big.Rat, error) {
	var weights []*big.Rat

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}

		fields := strings.FieldsFunc(line, func(c rune) bool {
			return c == ',' || unicode.IsSpace(c)
		})
		for _, field := range fields {
			w, err := ParseRat(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			weights = append(weights, w)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read weights: %w", err)
	}

	return weights, nil
}
