package align

import (
	"fmt"

	"github.com/katalvlaran/alnseq/gap"
	"github.com/katalvlaran/alnseq/scoring"
)

// Rescore recomputes the score of res from its columns.
//
// Match and mismatch columns are looked up in m; gap columns follow the
// same run rule as the fill: a gap extends only a run of the same kind.
// Soft-masked flank columns score nothing. For Global and Local results
// Rescore equals res.Score; for LocalLinearSpace it does whenever the gap
// model has NoExtend set.
func Rescore(res Result, m scoring.Matrix, g gap.Model) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if err := g.Validate(); err != nil {
		return 0, err
	}

	score, prev := 0, None
	for c, op := range res.Ops {
		switch op {
		case OpMatch, OpMismatch:
			s, err := m.Lookup(res.RefAligned[c], res.QryAligned[c])
			if err != nil {
				return 0, fmt.Errorf("column %d: %w", c, err)
			}
			score += s
			prev = Diagonal
		case OpDeletion:
			score += g.Step(prev == Up)
			prev = Up
		case OpInsertion:
			score += g.Step(prev == Left)
			prev = Left
		}
	}

	return score, nil
}
