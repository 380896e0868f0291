package align

import (
	"fmt"
	"sort"
)

// Scan selects which local alignments AlignScan reports.
//
//   - ScanNone     — the best alignment only.
//   - ScanRefQuery — for every reference symbol and every query symbol, the
//     best alignment ending on a match or mismatch at that symbol.
//   - ScanMatrix   — every path end: a cell reached diagonally that no
//     neighbour continues with an equal or higher score.
type Scan int

const (
	// ScanNone reports the best local alignment.
	ScanNone Scan = iota

	// ScanRefQuery keeps the best alignment per reference and per query symbol.
	ScanRefQuery

	// ScanMatrix keeps every path end of the local matrix.
	ScanMatrix
)

var scanNames = [...]string{
	ScanNone:     "none",
	ScanRefQuery: "ref-query",
	ScanMatrix:   "matrix",
}

// String implements fmt.Stringer.
func (s Scan) String() string {
	if !s.valid() {
		return "unknown"
	}

	return scanNames[s]
}

func (s Scan) valid() bool { return s >= ScanNone && s <= ScanMatrix }

// ParseScan maps a name such as "ref-query" to a Scan.
func ParseScan(name string) (Scan, bool) {
	for s, n := range scanNames {
		if n == name {
			return Scan(s), true
		}
	}

	return ScanNone, false
}

// DefaultMinScore is the lowest score an alternative alignment needs to be
// reported.
const DefaultMinScore = 100

// AlignScan fills one Local matrix and returns the alignments selected by
// opts.Scan whose score is positive and at least opts.MinScore.
//
// Alignments ending in the same cell are reported once. The slice is
// ordered by score (highest first), then by reference and query start.
// No alignment qualifying yields an empty slice and a nil error.
//
// Errors: ErrUnknownScan, plus every error of Fill.
func AlignScan(ref, qry Sequence, opts Options) ([]Result, error) {
	if !opts.Scan.valid() {
		return nil, fmt.Errorf("scan %d: %w", int(opts.Scan), ErrUnknownScan)
	}
	mx, err := Fill(ref, qry, Local, opts)
	if err != nil {
		return nil, err
	}

	var ends []int
	switch opts.Scan {
	case ScanRefQuery:
		ends = mx.baseBests()
	case ScanMatrix:
		ends = mx.pathEnds()
	default:
		ends = []int{mx.bestI*mx.cols + mx.bestJ}
	}

	seen := make(map[int]bool, len(ends))
	out := make([]Result, 0, len(ends))
	for _, idx := range ends {
		c := mx.cells[idx]
		if seen[idx] || c.Score <= 0 || c.Score < opts.MinScore {
			continue
		}
		seen[idx] = true
		i, j := idx/mx.cols, idx%mx.cols
		p := trace(mx, mx.rcod, mx.qcod, i, j)
		out = append(out, buildResult(Local, c.Score, mx.ref, mx.qry, p, opts.Output))
	}

	sort.Slice(out, func(a, b int) bool {
		x, y := out[a], out[b]
		switch {
		case x.Score != y.Score:
			return x.Score > y.Score
		case x.RefStart != y.RefStart:
			return x.RefStart < y.RefStart
		case x.QryStart != y.QryStart:
			return x.QryStart < y.QryStart
		case x.RefEnd != y.RefEnd:
			return x.RefEnd < y.RefEnd
		}

		return x.QryEnd < y.QryEnd
	})

	return out, nil
}

// DropOverlaps walks results best first and keeps each alignment that
// shares no reference or query position with one already kept.
// results must be ordered as AlignScan returns them.
func DropOverlaps(results []Result) []Result {
	kept := make([]Result, 0, len(results))

next:
	for _, r := range results {
		for _, k := range kept {
			if overlaps(r.RefStart, r.RefEnd, k.RefStart, k.RefEnd) ||
				overlaps(r.QryStart, r.QryEnd, k.QryStart, k.QryEnd) {
				continue next
			}
		}
		kept = append(kept, r)
	}

	return kept
}

func overlaps(aLo, aHi, bLo, bHi int) bool { return aLo < bHi && bLo < aHi }

// baseBests returns the flat index of the best diagonally reached cell for
// each reference row and each query column. Ties keep the first cell in
// row-major order.
func (mx *Matrix) baseBests() []int {
	refBest := make([]int, mx.rows-1)
	qryBest := make([]int, mx.cols-1)
	for k := range refBest {
		refBest[k] = -1
	}
	for k := range qryBest {
		qryBest[k] = -1
	}

	for i := 1; i < mx.rows; i++ {
		for j := 1; j < mx.cols; j++ {
			idx := i*mx.cols + j
			c := mx.cells[idx]
			if c.Dir != Diagonal || c.Score <= 0 {
				continue
			}
			if r := refBest[i-1]; r < 0 || c.Score > mx.cells[r].Score {
				refBest[i-1] = idx
			}
			if q := qryBest[j-1]; q < 0 || c.Score > mx.cells[q].Score {
				qryBest[j-1] = idx
			}
		}
	}

	ends := make([]int, 0, len(refBest)+len(qryBest))
	for _, idx := range append(refBest, qryBest...) {
		if idx >= 0 {
			ends = append(ends, idx)
		}
	}

	return ends
}

// pathEnds returns, in row-major order, the flat index of every positive
// diagonally reached cell that no successor continues.
func (mx *Matrix) pathEnds() []int {
	var ends []int
	for i := 1; i < mx.rows; i++ {
		for j := 1; j < mx.cols; j++ {
			c := mx.cell(i, j)
			if c.Dir != Diagonal || c.Score <= 0 {
				continue
			}
			if mx.continues(i+1, j+1, Diagonal, c.Score) ||
				mx.continues(i+1, j, Up, c.Score) ||
				mx.continues(i, j+1, Left, c.Score) {
				continue
			}
			ends = append(ends, i*mx.cols+j)
		}
	}

	return ends
}

// continues reports whether cell (i, j) was reached by move d with at
// least score.
func (mx *Matrix) continues(i, j int, d Direction, score int) bool {
	if i >= mx.rows || j >= mx.cols {
		return false
	}
	c := mx.cell(i, j)

	return c.Dir == d && c.Score >= score
}
