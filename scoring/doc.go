// Package scoring provides substitution matrices for pairwise alignment.
//
// 🚀 What is a scoring matrix?
//
//	A square table mapping an ordered pair of alphabet symbols to a signed
//	integer score: positive for favoured pairs (matches), negative for
//	penalised ones (mismatches).
//
// ✨ Key features:
//   - Plain: any alphabet, n×n row-major table, case-insensitive letters
//   - Packed: 4-symbol alphabets, 2 bits per symbol, 16-cell table
//   - Parse: NCBI-style text tables (header row + labelled score rows)
//   - ParsePairs: "a t -4" override lines on top of a base matrix
//   - built-ins: EDNAFULL (IUPAC nucleotides) and BLOSUM62 (amino acids)
//
// Both representations satisfy Matrix, so the alignment engine never needs
// to know which one backs a given alignment. Matrices are read-only after
// construction and safe to share between goroutines.
//
// ⚙️ Usage:
//
//	m, err := scoring.Parse(strings.NewReader(table))
//	if err != nil {
//	  // handle ErrMalformedMatrix
//	}
//	s, err := m.Lookup('A', 'G')
//
//	p, err := scoring.Pack(scoring.Nucleotide(1, -1)) // ErrUnsupportedAlphabet unless 4 symbols
package scoring
