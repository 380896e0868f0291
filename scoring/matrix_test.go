// SPDX-License-Identifier: MIT
package scoring_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/alnseq/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation covers shape and alphabet violations.
func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		alphabet string
		scores   [][]int
		wantErr  error
	}{
		{"ok 2x2", "AB", [][]int{{1, -1}, {-1, 1}}, nil},
		{"empty alphabet", "", nil, scoring.ErrMalformedMatrix},
		{"too few rows", "AB", [][]int{{1, -1}}, scoring.ErrMalformedMatrix},
		{"short row", "AB", [][]int{{1, -1}, {-1}}, scoring.ErrMalformedMatrix},
		{"duplicate symbol", "AA", [][]int{{1, -1}, {-1, 1}}, scoring.ErrMalformedMatrix},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := scoring.New([]byte(tc.alphabet), tc.scores)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestPlain_Lookup checks scores, case folding and unknown symbols.
func TestPlain_Lookup(t *testing.T) {
	m, err := scoring.New([]byte("ACGT"), [][]int{
		{5, -4, -4, -4},
		{-4, 5, -4, -4},
		{-4, -4, 5, -3},
		{-4, -4, -2, 5},
	})
	require.NoError(t, err)

	s, err := m.Lookup('G', 'T')
	require.NoError(t, err)
	assert.Equal(t, -3, s, "row G column T")

	s, err = m.Lookup('t', 'g')
	require.NoError(t, err)
	assert.Equal(t, -2, s, "lower case folds onto the upper case symbol")

	_, err = m.Lookup('A', 'N')
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol)
	_, err = m.Lookup('?', 'A')
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol)

	assert.False(t, scoring.Symmetric(m), "G/T entries differ")
	assert.Equal(t, []byte("ACGT"), m.Alphabet())
	assert.Equal(t, 4, m.Size())
}

// TestPlain_Encode reports the first unknown position.
func TestPlain_Encode(t *testing.T) {
	m := scoring.Nucleotide(1, -1)

	codes, err := m.Encode([]byte("ACgt"))
	require.NoError(t, err)
	require.Equal(t, 4, codes.Len())
	for i, want := range []uint8{0, 1, 2, 3} {
		assert.Equal(t, want, codes.At(i))
	}

	_, err = m.Encode([]byte("ACNT"))
	require.ErrorIs(t, err, scoring.ErrUnknownSymbol)
	assert.Contains(t, err.Error(), "position 2")
}

// TestIdentity builds match/mismatch tables.
func TestIdentity(t *testing.T) {
	m, err := scoring.Identity([]byte("XYZ"), 3, -2)
	require.NoError(t, err)

	s, _ := m.Lookup('Y', 'Y')
	assert.Equal(t, 3, s)
	s, _ = m.Lookup('Y', 'Z')
	assert.Equal(t, -2, s)
	assert.True(t, scoring.Symmetric(m))
}

// TestPlain_StringRoundTrip verifies String output is accepted by Parse.
func TestPlain_StringRoundTrip(t *testing.T) {
	orig := scoring.EDNAFULL()

	back, err := scoring.Parse(strings.NewReader(orig.String()))
	require.NoError(t, err)
	require.Equal(t, orig.Alphabet(), back.Alphabet())
	for _, a := range orig.Alphabet() {
		for _, b := range orig.Alphabet() {
			want, _ := orig.Lookup(a, b)
			got, _ := back.Lookup(a, b)
			require.Equal(t, want, got, "pair %c/%c", a, b)
		}
	}
}
