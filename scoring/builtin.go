// SPDX-License-Identifier: MIT

package scoring

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"
)

var (
	//go:embed data/EDNAFULL
	ednafullTable []byte

	//go:embed data/BLOSUM62
	blosum62Table []byte
)

// Built-in matrices are parsed once and shared; they are never mutated.
var (
	ednafull = sync.OnceValue(func() *Plain { return mustParse("EDNAFULL", ednafullTable) })
	blosum62 = sync.OnceValue(func() *Plain { return mustParse("BLOSUM62", blosum62Table) })
)

// EDNAFULL returns the IUPAC nucleotide matrix (NCBI NUC.4.4), the default
// matrix for nucleotide alignments.
func EDNAFULL() *Plain { return ednafull() }

// BLOSUM62 returns the BLOSUM62 amino acid matrix.
func BLOSUM62() *Plain { return blosum62() }

// Builtin returns a built-in matrix by case-insensitive name
// ("ednafull", "blosum62").
func Builtin(name string) (*Plain, error) {
	switch strings.ToLower(name) {
	case "ednafull", "nuc.4.4":
		return EDNAFULL(), nil
	case "blosum62":
		return BLOSUM62(), nil
	}

	return nil, fmt.Errorf("scoring: no built-in matrix %q", name)
}

// mustParse panics on embedded tables that fail to parse (build defect).
func mustParse(name string, table []byte) *Plain {
	p, err := Parse(bytes.NewReader(table))
	if err != nil {
		panic(fmt.Sprintf("scoring: built-in %s: %v", name, err))
	}

	return p
}
