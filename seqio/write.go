package seqio

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/katalvlaran/alnseq/align"
)

// DefaultFastaWidth is the residue count per FASTA line.
const DefaultFastaWidth = 60

// WriteAligned writes the reference and query rows of res as two gapped
// FASTA records, width residues per line.
func WriteAligned(w io.Writer, res align.Result, width int) error {
	if width < 1 {
		width = DefaultFastaWidth
	}
	fw := fasta.NewWriter(w, width)

	rows := []struct {
		label string
		row   []byte
	}{
		{res.RefLabel, res.RefAligned},
		{res.QryLabel, res.QryAligned},
	}
	for _, r := range rows {
		s := linear.NewSeq(r.label, alphabet.BytesToLetters(r.row), alphabet.Protein)
		if _, err := fw.Write(s); err != nil {
			return fmt.Errorf("seqio: writing %q: %w", r.label, err)
		}
	}

	return nil
}
