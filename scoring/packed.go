// SPDX-License-Identifier: MIT

package scoring

// packedSize is the only alphabet size a Packed matrix accepts.
const packedSize = 4

// Packed is a substitution matrix over exactly four symbols.
// Each symbol is a 2-bit code, so a pair indexes a fixed 16-cell table
// directly (a<<2 | b) and sequences encode at four symbols per byte.
type Packed struct {
	alphabet [packedSize]byte
	index    [256]uint8
	scores   [packedSize * packedSize]int
}

var _ Matrix = (*Packed)(nil)

// Pack converts m into its 2-bit representation.
// Returns ErrUnsupportedAlphabet unless m has exactly 4 symbols.
// Lookup results are identical to those of m.
// Complexity: O(1).
func Pack(m Matrix) (*Packed, error) {
	if p, ok := m.(*Packed); ok {
		return p, nil
	}
	if m == nil || m.Size() != packedSize {
		return nil, ErrUnsupportedAlphabet
	}

	p := &Packed{}
	copy(p.alphabet[:], m.Alphabet())
	for i := range p.index {
		p.index[i] = noCode
	}
	for code, sym := range p.alphabet {
		p.index[sym] = uint8(code)
	}
	for code, sym := range p.alphabet {
		if other, ok := swapCase(sym); ok && p.index[other] == noCode {
			p.index[other] = uint8(code)
		}
	}
	for a := uint8(0); a < packedSize; a++ {
		for b := uint8(0); b < packedSize; b++ {
			p.scores[a<<2|b] = m.ScoreCodes(a, b)
		}
	}

	return p, nil
}

// Size always returns 4.
func (p *Packed) Size() int { return packedSize }

// Alphabet returns a copy of the four symbols.
func (p *Packed) Alphabet() []byte { return append([]byte(nil), p.alphabet[:]...) }

// Lookup returns score(a, b).
func (p *Packed) Lookup(a, b byte) (int, error) {
	ca, cb := p.index[a], p.index[b]
	if ca == noCode {
		return 0, unknownSymbol(a, -1)
	}
	if cb == noCode {
		return 0, unknownSymbol(b, -1)
	}

	return p.scores[ca<<2|cb], nil
}

// Encode packs symbols at 2 bits each.
// Complexity: O(len(symbols)) time, len/4 bytes of memory.
func (p *Packed) Encode(symbols []byte) (Codes, error) {
	tb := &TwoBit{data: make([]byte, (len(symbols)+3)/4), n: len(symbols)}
	for i, s := range symbols {
		c := p.index[s]
		if c == noCode {
			return nil, unknownSymbol(s, i)
		}
		tb.data[i>>2] |= c << ((i & 3) << 1)
	}

	return tb, nil
}

// ScoreCodes returns the score for two 2-bit codes.
func (p *Packed) ScoreCodes(a, b uint8) int {
	return p.scores[(a&3)<<2|(b&3)]
}

// TwoBit is a sequence of 2-bit codes, four per byte, lowest bits first.
type TwoBit struct {
	data []byte
	n    int
}

// Len returns the number of encoded symbols.
func (t *TwoBit) Len() int { return t.n }

// At returns the code at position i.
func (t *TwoBit) At(i int) uint8 {
	return (t.data[i>>2] >> ((i & 3) << 1)) & 3
}

// Bytes returns the number of bytes backing the sequence.
func (t *TwoBit) Bytes() int { return len(t.data) }
