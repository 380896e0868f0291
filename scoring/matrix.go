// SPDX-License-Identifier: MIT

package scoring

import (
	"fmt"
	"strings"
)

// noCode marks a byte that is not part of the alphabet in a symbol index.
const noCode = 0xFF

// maxAlphabet bounds alphabet size so codes fit in a uint8 below noCode.
const maxAlphabet = noCode

// Matrix is a read-only substitution matrix.
//
// Lookup is the checked contract for callers. Encode and ScoreCodes form the
// fast path of the alignment engine: sequences are validated and encoded
// once, then scored by code without further checks.
type Matrix interface {
	// Size returns the number of alphabet symbols.
	Size() int

	// Alphabet returns a copy of the symbols in header order.
	Alphabet() []byte

	// Lookup returns score(a, b) or ErrUnknownSymbol.
	Lookup(a, b byte) (int, error)

	// Encode translates symbols into matrix codes.
	// Returns ErrUnknownSymbol for the first symbol outside the alphabet.
	Encode(symbols []byte) (Codes, error)

	// ScoreCodes returns the score of two codes produced by Encode.
	// Codes are not checked.
	ScoreCodes(a, b uint8) int
}

// Codes is a sequence translated into matrix codes.
type Codes interface {
	// Len returns the number of encoded symbols.
	Len() int

	// At returns the code at position i (0 ≤ i < Len()).
	At(i int) uint8
}

// ByteCodes stores one code per byte.
type ByteCodes []uint8

// Len returns the number of codes.
func (c ByteCodes) Len() int { return len(c) }

// At returns the code at position i.
func (c ByteCodes) At(i int) uint8 { return c[i] }

// Plain is a dense n×n substitution matrix over an arbitrary alphabet.
// Scores are stored row-major in a flat slice, like matrix.Dense.
type Plain struct {
	alphabet []byte
	index    [256]uint8 // symbol → code, noCode when absent
	scores   []int      // len == n*n
}

var _ Matrix = (*Plain)(nil)

// New builds a Plain matrix from an alphabet and a square score table.
// Stage 1 (Validate): non-empty, unique single-byte symbols, n×n scores.
// Stage 2 (Prepare): copy scores into flat storage and build the index.
// Returns ErrMalformedMatrix on any shape or alphabet violation.
// Complexity: O(n²).
func New(alphabet []byte, scores [][]int) (*Plain, error) {
	n := len(alphabet)
	if n == 0 {
		return nil, malformedf("empty alphabet")
	}
	if n > maxAlphabet {
		return nil, malformedf("alphabet of %d symbols", n)
	}
	if len(scores) != n {
		return nil, malformedf("%d rows for %d symbols", len(scores), n)
	}

	p := &Plain{
		alphabet: append([]byte(nil), alphabet...),
		scores:   make([]int, n*n),
	}
	for i := range p.index {
		p.index[i] = noCode
	}
	for code, sym := range p.alphabet {
		if p.index[sym] != noCode {
			return nil, malformedf("duplicate symbol %q", sym)
		}
		p.index[sym] = uint8(code)
	}
	// Letters present in only one case also answer to the other case.
	for code, sym := range p.alphabet {
		other, ok := swapCase(sym)
		if ok && p.index[other] == noCode {
			p.index[other] = uint8(code)
		}
	}

	for i, row := range scores {
		if len(row) != n {
			return nil, malformedf("row %q has %d scores, want %d", alphabet[i], len(row), n)
		}
		copy(p.scores[i*n:(i+1)*n], row)
	}

	return p, nil
}

// Identity builds a matrix scoring match for equal symbols and mismatch
// otherwise.
func Identity(alphabet []byte, match, mismatch int) (*Plain, error) {
	n := len(alphabet)
	scores := make([][]int, n)
	for i := range scores {
		scores[i] = make([]int, n)
		for j := range scores[i] {
			if i == j {
				scores[i][j] = match
			} else {
				scores[i][j] = mismatch
			}
		}
	}

	return New(alphabet, scores)
}

// Nucleotide returns the 4-symbol ACGT identity matrix.
// It never fails and is the natural input for Pack.
func Nucleotide(match, mismatch int) *Plain {
	p, err := Identity([]byte("ACGT"), match, mismatch)
	if err != nil {
		panic("scoring: Nucleotide: " + err.Error()) // static alphabet, unreachable
	}

	return p
}

// Size returns the alphabet size.
func (p *Plain) Size() int { return len(p.alphabet) }

// Alphabet returns a copy of the alphabet in header order.
func (p *Plain) Alphabet() []byte { return append([]byte(nil), p.alphabet...) }

// Lookup returns score(a, b).
// Complexity: O(1).
func (p *Plain) Lookup(a, b byte) (int, error) {
	ca, cb := p.index[a], p.index[b]
	if ca == noCode {
		return 0, unknownSymbol(a, -1)
	}
	if cb == noCode {
		return 0, unknownSymbol(b, -1)
	}

	return p.ScoreCodes(ca, cb), nil
}

// Encode translates symbols into one code per byte.
// Complexity: O(len(symbols)).
func (p *Plain) Encode(symbols []byte) (Codes, error) {
	out := make(ByteCodes, len(symbols))
	for i, s := range symbols {
		c := p.index[s]
		if c == noCode {
			return nil, unknownSymbol(s, i)
		}
		out[i] = c
	}

	return out, nil
}

// ScoreCodes returns the score for two codes.
func (p *Plain) ScoreCodes(a, b uint8) int {
	return p.scores[int(a)*len(p.alphabet)+int(b)]
}

// set overwrites one score. Only used while building a fresh matrix.
func (p *Plain) set(a, b byte, score int) error {
	ca, cb := p.index[a], p.index[b]
	if ca == noCode {
		return unknownSymbol(a, -1)
	}
	if cb == noCode {
		return unknownSymbol(b, -1)
	}
	p.scores[int(ca)*len(p.alphabet)+int(cb)] = score

	return nil
}

// clone returns a deep copy.
func (p *Plain) clone() *Plain {
	c := &Plain{
		alphabet: append([]byte(nil), p.alphabet...),
		index:    p.index,
		scores:   append([]int(nil), p.scores...),
	}

	return c
}

// String renders the matrix as a text table accepted by Parse.
func (p *Plain) String() string {
	var sb strings.Builder
	n := len(p.alphabet)
	sb.WriteString(" ")
	for _, s := range p.alphabet {
		sb.WriteString("   ")
		sb.WriteByte(s)
	}
	sb.WriteByte('\n')
	for i, s := range p.alphabet {
		sb.WriteByte(s)
		for j := 0; j < n; j++ {
			fmt.Fprintf(&sb, "%4d", p.scores[i*n+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Symmetric reports whether score(a,b) == score(b,a) for every pair.
// Symmetry is documented for the standard matrices but never enforced.
// Complexity: O(n²) over the upper triangle.
func Symmetric(m Matrix) bool {
	n := m.Size()
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if m.ScoreCodes(uint8(a), uint8(b)) != m.ScoreCodes(uint8(b), uint8(a)) {
				return false
			}
		}
	}

	return true
}

// swapCase returns the other case of an ASCII letter.
func swapCase(b byte) (byte, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return b - ('a' - 'A'), true
	case b >= 'A' && b <= 'Z':
		return b + ('a' - 'A'), true
	}

	return 0, false
}
