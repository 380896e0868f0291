package seqio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/alphabet"
	bioseqio "github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/katalvlaran/alnseq/align"
)

// ErrNoSequence indicates an input held no sequence record.
var ErrNoSequence = errors.New("seqio: no sequence found")

// ReadFasta returns every record of a FASTA stream in input order.
func ReadFasta(r io.Reader) ([]align.Sequence, error) {
	sc := bioseqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.Protein)))

	var out []align.Sequence
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("seqio: unexpected record type %T", sc.Seq())
		}
		out = append(out, align.Sequence{Label: s.Name(), Symbols: letters(s.Seq)})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("seqio: reading fasta: %w", err)
	}

	return out, nil
}

// ReadFile returns the first sequence of path.
//
// A file whose first non-blank byte is '>' is read as FASTA. Anything else
// is plain text: whitespace is dropped and the label is the file name.
func ReadFile(path string) (align.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return align.Sequence{}, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	first, err := firstByte(br)
	if errors.Is(err, io.EOF) {
		return align.Sequence{}, fmt.Errorf("%s: %w", path, ErrNoSequence)
	}
	if err != nil {
		return align.Sequence{}, err
	}

	if first == '>' {
		recs, err := ReadFasta(br)
		if err != nil {
			return align.Sequence{}, fmt.Errorf("%s: %w", path, err)
		}
		if len(recs) == 0 || len(recs[0].Symbols) == 0 {
			return align.Sequence{}, fmt.Errorf("%s: %w", path, ErrNoSequence)
		}

		return recs[0], nil
	}

	raw, err := io.ReadAll(br)
	if err != nil {
		return align.Sequence{}, err
	}
	symbols := bytes.Join(bytes.Fields(raw), nil)
	if len(symbols) == 0 {
		return align.Sequence{}, fmt.Errorf("%s: %w", path, ErrNoSequence)
	}

	return align.Sequence{Label: filepath.Base(path), Symbols: symbols}, nil
}

// firstByte skips leading whitespace and returns the next byte unread.
func firstByte(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if err := br.UnreadByte(); err != nil {
			return 0, err
		}

		return b, nil
	}
}

func letters(l alphabet.Letters) []byte {
	b := make([]byte, len(l))
	for i, c := range l {
		b[i] = byte(c)
	}

	return b
}
