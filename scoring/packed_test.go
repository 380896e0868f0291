// SPDX-License-Identifier: MIT
package scoring_test

import (
	"testing"

	"github.com/katalvlaran/alnseq/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPack_RequiresFourSymbols checks ErrUnsupportedAlphabet.
func TestPack_RequiresFourSymbols(t *testing.T) {
	_, err := scoring.Pack(scoring.EDNAFULL())
	require.ErrorIs(t, err, scoring.ErrUnsupportedAlphabet, "15 symbols cannot pack")

	three, err := scoring.Identity([]byte("ACG"), 1, -1)
	require.NoError(t, err)
	_, err = scoring.Pack(three)
	require.ErrorIs(t, err, scoring.ErrUnsupportedAlphabet)

	_, err = scoring.Pack(nil)
	require.ErrorIs(t, err, scoring.ErrUnsupportedAlphabet)
}

// TestPack_SameLookupAsPlain verifies both representations agree on every pair.
func TestPack_SameLookupAsPlain(t *testing.T) {
	plain, err := scoring.New([]byte("ACGT"), [][]int{
		{2, -1, -3, 0},
		{-1, 2, 0, -3},
		{-3, 0, 2, -1},
		{0, -3, -1, 2},
	})
	require.NoError(t, err)

	packed, err := scoring.Pack(plain)
	require.NoError(t, err)
	assert.Equal(t, plain.Alphabet(), packed.Alphabet())

	for _, a := range []byte("ACGTacgt") {
		for _, b := range []byte("ACGTacgt") {
			want, err := plain.Lookup(a, b)
			require.NoError(t, err)
			got, err := packed.Lookup(a, b)
			require.NoError(t, err)
			assert.Equal(t, want, got, "pair %c/%c", a, b)
		}
	}

	again, err := scoring.Pack(packed)
	require.NoError(t, err)
	assert.Same(t, packed, again, "packing a packed matrix is a no-op")
}

// TestPacked_Encode checks 2-bit storage and positions across byte boundaries.
func TestPacked_Encode(t *testing.T) {
	packed, err := scoring.Pack(scoring.Nucleotide(1, -1))
	require.NoError(t, err)

	seq := []byte("ACGTTGCAA")
	codes, err := packed.Encode(seq)
	require.NoError(t, err)
	require.Equal(t, len(seq), codes.Len())

	tb, ok := codes.(*scoring.TwoBit)
	require.True(t, ok, "packed matrices encode to TwoBit")
	assert.Equal(t, 3, tb.Bytes(), "9 symbols need 3 bytes")

	want := []uint8{0, 1, 2, 3, 3, 2, 1, 0, 0}
	for i := range want {
		assert.Equal(t, want[i], codes.At(i), "position %d", i)
	}

	_, err = packed.Encode([]byte("ACXT"))
	require.ErrorIs(t, err, scoring.ErrUnknownSymbol)
	_, err = packed.Lookup('A', 'N')
	require.ErrorIs(t, err, scoring.ErrUnknownSymbol)
}
