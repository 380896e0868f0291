package align

import (
	"github.com/katalvlaran/alnseq/gap"
	"github.com/katalvlaran/alnseq/scoring"
)

// kernel is the cell recurrence shared by every fill: the full matrix,
// the rolling vectors of the linear-space engine and the local scan.
// It holds read-only state only.
type kernel struct {
	m     scoring.Matrix
	g     gap.Model
	order [3]Direction
	local bool
}

func newKernel(m scoring.Matrix, g gap.Model, p Priority, local bool) kernel {
	return kernel{m: m, g: g, order: p.order(), local: local}
}

// step computes one cell from its three predecessors and the
// substitution score of the symbols it consumes.
//
// A gap move is charged as an extension only when its predecessor was
// itself reached by the same kind of move. Ties are resolved by the
// kernel's priority order. Local cells scoring ≤ 0 restart at {0, None}.
func (k *kernel) step(diag, up, left Cell, sub int) Cell {
	var cand [4]Cell
	cand[Diagonal] = Cell{Score: diag.Score + sub, Dir: Diagonal}
	cand[Up] = Cell{Score: up.Score + k.g.Step(up.Dir == Up), Dir: Up}
	cand[Left] = Cell{Score: left.Score + k.g.Step(left.Dir == Left), Dir: Left}

	best := cand[k.order[0]]
	for _, d := range k.order[1:] {
		if cand[d].Score > best.Score {
			best = cand[d]
		}
	}
	if k.local && best.Score <= 0 {
		return Cell{}
	}

	return best
}

// sub returns the substitution score for reference code a against query code b.
func (k *kernel) sub(a, b uint8) int { return k.m.ScoreCodes(a, b) }

// topBorder returns row-0 cell j of a fill entered with seed.
func (k *kernel) topBorder(j int, seed Direction) Cell {
	if j == 0 {
		return Cell{Dir: seed}
	}
	if k.local {
		return Cell{}
	}

	return Cell{Score: k.g.Cost(j, seed != Left), Dir: Left}
}

// leftBorder returns column-0 cell i (i ≥ 1) of a fill entered with seed.
func (k *kernel) leftBorder(i int, seed Direction) Cell {
	if k.local {
		return Cell{}
	}

	return Cell{Score: k.g.Cost(i, seed != Up), Dir: Up}
}

// span is a window over encoded symbols, optionally read back to front.
// Reversed views let backward passes reuse the forward fill without copies.
type span struct {
	codes scoring.Codes
	lo    int
	n     int
	rev   bool
}

func fullSpan(c scoring.Codes) span { return span{codes: c, n: c.Len()} }

// sub returns the window [lo, hi) of s, relative to s and read in the
// same direction as s.
func (s span) sub(lo, hi int) span {
	if s.rev {
		return span{codes: s.codes, lo: s.lo + s.n - hi, n: hi - lo, rev: true}
	}

	return span{codes: s.codes, lo: s.lo + lo, n: hi - lo}
}

// reversed returns s read from its last symbol to its first.
func (s span) reversed() span {
	s.rev = !s.rev
	return s
}

// at returns the k-th code of the view.
func (s span) at(k int) uint8 {
	if s.rev {
		return s.codes.At(s.lo + s.n - 1 - k)
	}

	return s.codes.At(s.lo + k)
}
