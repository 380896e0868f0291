package seqio

import (
	"fmt"
	"io"

	"github.com/biogo/hts/sam"

	"github.com/katalvlaran/alnseq/align"
)

// unknownMapQ is the SAM value for "mapping quality not available".
const unknownMapQ = 255

// Cigar converts the aligned columns of res to a SAM CIGAR.
//
// Query flanks outside [QryStart, QryEnd) become soft clips whether or not
// res carries them as columns; reference-only flank columns are dropped,
// since SAM positions the read with POS instead.
func Cigar(res align.Result, qryLen int) sam.Cigar {
	var co sam.Cigar
	add := func(t sam.CigarOpType, n int) {
		if n == 0 {
			return
		}
		if k := len(co) - 1; k >= 0 && co[k].Type() == t {
			co[k] = sam.NewCigarOp(t, co[k].Len()+n)
			return
		}
		co = append(co, sam.NewCigarOp(t, n))
	}

	add(sam.CigarSoftClipped, res.QryStart)
	for _, op := range res.Ops {
		switch op {
		case align.OpMatch:
			add(sam.CigarEqual, 1)
		case align.OpMismatch:
			add(sam.CigarMismatch, 1)
		case align.OpInsertion:
			add(sam.CigarInsertion, 1)
		case align.OpDeletion:
			add(sam.CigarDeletion, 1)
		}
	}
	add(sam.CigarSoftClipped, qryLen-res.QryEnd)

	return co
}

// WriteSAM writes a one-reference SAM header and one record per result,
// each placing qry on ref. An alignment covering no symbols is written as
// an unmapped record. The AS tag carries the alignment score.
func WriteSAM(w io.Writer, ref, qry align.Sequence, results ...align.Result) error {
	sref, err := sam.NewReference(ref.Label, "", "", len(ref.Symbols), nil, nil)
	if err != nil {
		return fmt.Errorf("seqio: sam reference: %w", err)
	}
	h, err := sam.NewHeader(nil, []*sam.Reference{sref})
	if err != nil {
		return fmt.Errorf("seqio: sam header: %w", err)
	}
	sw, err := sam.NewWriter(w, h, sam.FlagDecimal)
	if err != nil {
		return fmt.Errorf("seqio: sam writer: %w", err)
	}

	for _, res := range results {
		rec, err := samRecord(sref, qry, res)
		if err != nil {
			return fmt.Errorf("seqio: sam record: %w", err)
		}
		if err := sw.Write(rec); err != nil {
			return err
		}
	}

	return nil
}

func samRecord(sref *sam.Reference, qry align.Sequence, res align.Result) (*sam.Record, error) {
	as, err := sam.NewAux(sam.NewTag("AS"), res.Score)
	if err != nil {
		return nil, err
	}

	if res.RefEnd == res.RefStart && res.QryEnd == res.QryStart {
		rec, err := sam.NewRecord(qry.Label, nil, nil, -1, -1, 0, 0, nil, qry.Symbols, nil, []sam.Aux{as})
		if err != nil {
			return nil, err
		}
		rec.Flags = sam.Unmapped

		return rec, nil
	}

	return sam.NewRecord(qry.Label, sref, nil, res.RefStart, -1, 0, unknownMapQ,
		Cigar(res, len(qry.Symbols)), qry.Symbols, nil, []sam.Aux{as})
}
