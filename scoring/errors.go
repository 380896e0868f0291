// SPDX-License-Identifier: MIT
// Package scoring: sentinel error set.
// Every message is prefixed with "scoring: ...". Sentinels are wrapped with
// fmt.Errorf("ctx: %w", ErrX) when position or symbol context helps; callers
// match them with errors.Is.

package scoring

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedMatrix indicates scoring-matrix input that is not a square,
	// consistent table (row length, non-integer entry, label mismatch).
	ErrMalformedMatrix = errors.New("scoring: malformed matrix")

	// ErrUnsupportedAlphabet indicates a packed (2-bit) matrix was requested
	// for an alphabet that does not have exactly 4 symbols.
	ErrUnsupportedAlphabet = errors.New("scoring: packed matrix needs exactly 4 symbols")

	// ErrUnknownSymbol indicates a symbol absent from the matrix alphabet.
	ErrUnknownSymbol = errors.New("scoring: unknown symbol")
)

// malformedf wraps ErrMalformedMatrix with a formatted context.
func malformedf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrMalformedMatrix)
}

// unknownSymbol wraps ErrUnknownSymbol with the symbol and its position.
// pos < 0 means the position is not meaningful (pair lookups).
func unknownSymbol(sym byte, pos int) error {
	if pos < 0 {
		return fmt.Errorf("symbol %q: %w", sym, ErrUnknownSymbol)
	}

	return fmt.Errorf("symbol %q at position %d: %w", sym, pos, ErrUnknownSymbol)
}
