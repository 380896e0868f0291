package seqio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/alnseq/align"
	"github.com/katalvlaran/alnseq/scoring"
	"github.com/katalvlaran/alnseq/seqio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoRecords = `>chr1 first record
ACGTacgt
NNAC
>read7
GATTACA
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestReadFasta(t *testing.T) {
	recs, err := seqio.ReadFasta(strings.NewReader(twoRecords))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "chr1", recs[0].Label)
	assert.Equal(t, "ACGTacgtNNAC", string(recs[0].Symbols), "lines joined, case kept")
	assert.Equal(t, "read7", recs[1].Label)
	assert.Equal(t, "GATTACA", string(recs[1].Symbols))
}

func TestReadFasta_Empty(t *testing.T) {
	recs, err := seqio.ReadFasta(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestReadFile(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		body    string
		label   string
		symbols string
		err     error
	}{
		{name: "fasta takes first record", file: "two.fa", body: twoRecords, label: "chr1", symbols: "ACGTacgtNNAC"},
		{name: "fasta after blank lines", file: "pad.fa", body: "\n\n>q\nAC\n", label: "q", symbols: "AC"},
		{name: "plain text", file: "ref.txt", body: "ACGT\nACGT  \n", label: "ref.txt", symbols: "ACGTACGT"},
		{name: "empty file", file: "empty.txt", body: "", err: seqio.ErrNoSequence},
		{name: "only whitespace", file: "blank.txt", body: " \n\t\n", err: seqio.ErrNoSequence},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := seqio.ReadFile(writeFile(t, tc.file, tc.body))
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.label, got.Label)
			assert.Equal(t, tc.symbols, string(got.Symbols))
		})
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := seqio.ReadFile(filepath.Join(t.TempDir(), "nope.fa"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteAligned_RoundTrip(t *testing.T) {
	ref := align.Sequence{Label: "ref", Symbols: []byte("ACGTACGT")}
	qry := align.Sequence{Label: "qry", Symbols: []byte("ACGACGT")}
	res, err := align.AlignGlobal(ref, qry, -3, -1, false, scoring.Nucleotide(2, -1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, seqio.WriteAligned(&buf, res, 4))
	assert.True(t, strings.HasPrefix(buf.String(), ">ref\nACGT\nACGT\n"), buf.String())

	recs, err := seqio.ReadFasta(&buf)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "ACGTACGT", string(recs[0].Symbols))
	assert.Equal(t, "ACG-ACGT", string(recs[1].Symbols))
	assert.Equal(t, "qry", recs[1].Label)
}

func TestCigar(t *testing.T) {
	nuc := scoring.Nucleotide(1, -1)
	ref := align.Sequence{Label: "ref", Symbols: []byte("CGTA")}
	qry := align.Sequence{Label: "qry", Symbols: []byte("TTACGTA")}

	for _, out := range []align.Output{align.Trimmed, align.Full} {
		res, err := align.AlignLocal(ref, qry, -10, -1, false, nuc, false, out)
		require.NoError(t, err)
		assert.Equal(t, "3S4=", seqio.Cigar(res, len(qry.Symbols)).String(), out.String())
	}

	glob, err := align.AlignGlobal(align.Sequence{Symbols: []byte("ACGTACGT")},
		align.Sequence{Symbols: []byte("ACGACGT")}, -3, -1, false, scoring.Nucleotide(2, -1))
	require.NoError(t, err)
	assert.Equal(t, "3=1D4=", seqio.Cigar(glob, 7).String())
}

func TestWriteSAM(t *testing.T) {
	ref := align.Sequence{Label: "chr1", Symbols: []byte("GGCGTAGG")}
	qry := align.Sequence{Label: "read7", Symbols: []byte("TTACGTA")}
	res, err := align.AlignLocal(ref, qry, -10, -1, false, scoring.Nucleotide(1, -1), false, align.Trimmed)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, seqio.WriteSAM(&buf, ref, qry, res))
	out := buf.String()
	assert.Contains(t, out, "@SQ\tSN:chr1\tLN:8")
	assert.Contains(t, out, "read7\t0\tchr1\t3\t255\t3S4=\t")
	assert.Contains(t, out, "TTACGTA")
}

func TestWriteSAM_ScanRecords(t *testing.T) {
	ref := align.Sequence{Label: "r", Symbols: []byte("CCCCCAAAA")}
	qry := align.Sequence{Label: "q", Symbols: []byte("AAAACCCCC")}
	opts := align.DefaultOptions()
	opts.Scan = align.ScanMatrix
	opts.MinScore = 20
	res, err := align.AlignScan(ref, qry, opts)
	require.NoError(t, err)
	res = align.DropOverlaps(res)
	require.Len(t, res, 2)

	var buf bytes.Buffer
	require.NoError(t, seqio.WriteSAM(&buf, ref, qry, res...))
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "@SQ"))
	assert.Contains(t, out, "q\t0\tr\t1\t255\t4S5=\t")
	assert.Contains(t, out, "q\t0\tr\t6\t255\t4=5S\t")
}
