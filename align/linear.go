package align

// LocalLinearSpace
//
// Two phases, neither of which keeps more than a few rows of cells:
//
//  1. scanLocal runs the local recurrence once, carrying for every cell
//     the origin of its path (the cell where the zero floor last reset).
//     Score, end and start come out exactly as the full engine reports
//     them, because the kernel and the row-major order are the same.
//  2. divide rebuilds the columns of [start, end) with Hirschberg's
//     split: a forward vector down to the middle reference row, a backward
//     vector over the reversed lower half, and the query column that
//     maximises their sum. Sub-problems live on an explicit work stack;
//     small ones are filled and traced directly.

// origin is a cell coordinate.
type origin struct{ i, j int }

// scanResult is the outcome of scanLocal.
type scanResult struct {
	score          int
	startI, startJ int
	endI, endJ     int
}

// scanLocal finds the local score, end cell and path start in O(qry.n) memory.
func scanLocal(ref, qry span, k *kernel) scanResult {
	m := qry.n
	prev, curr := make([]Cell, m+1), make([]Cell, m+1)
	prevO, currO := make([]origin, m+1), make([]origin, m+1)

	var best scanResult
	for i := 1; i <= ref.n; i++ {
		curr[0], currO[0] = Cell{}, origin{i, 0}
		r := ref.at(i - 1)
		for j := 1; j <= m; j++ {
			c := k.step(prev[j-1], prev[j], curr[j-1], k.sub(r, qry.at(j-1)))
			curr[j] = c
			switch c.Dir {
			case Diagonal:
				currO[j] = inherit(prev[j-1], prevO[j-1], i-1, j-1)
			case Up:
				currO[j] = inherit(prev[j], prevO[j], i-1, j)
			case Left:
				currO[j] = inherit(curr[j-1], currO[j-1], i, j-1)
			default:
				currO[j] = origin{i, j}
			}
			if c.Score > best.score {
				best = scanResult{score: c.Score, startI: currO[j].i, startJ: currO[j].j, endI: i, endJ: j}
			}
		}
		prev, curr = curr, prev
		prevO, currO = currO, prevO
	}

	return best
}

// inherit returns the origin a cell takes over from predecessor (pi, pj):
// the predecessor itself when the path restarts there, its origin otherwise.
func inherit(pred Cell, o origin, pi, pj int) origin {
	if pred.Dir == None {
		return origin{pi, pj}
	}

	return o
}

// task is one pending sub-problem of divide, in coordinates of the root spans.
type task struct {
	refLo, refHi int
	qryLo, qryHi int
	seed         Direction
}

// divide globally aligns ref against qry with a global kernel and returns
// the columns left to right. Sub-problems with either side ≤ base are
// filled as full matrices.
func divide(ref, qry span, k *kernel, base int) []Op {
	ops := make([]Op, 0, ref.n+qry.n)
	stack := []task{{refHi: ref.n, qryHi: qry.n, seed: None}}

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		r, q := ref.sub(t.refLo, t.refHi), qry.sub(t.qryLo, t.qryHi)
		if r.n <= base || q.n <= base {
			mx := fillMatrix(r, q, k, t.seed)
			ops = append(ops, trace(mx, r, q, r.n, q.n).ops...)
			continue
		}

		mid := r.n / 2
		j, dir := splitPoint(r, q, mid, k, t.seed)
		// LIFO: the upper half is popped first.
		stack = append(stack,
			task{refLo: t.refLo + mid, refHi: t.refHi, qryLo: t.qryLo + j, qryHi: t.qryHi, seed: dir},
			task{refLo: t.refLo, refHi: t.refLo + mid, qryLo: t.qryLo, qryHi: t.qryLo + j, seed: t.seed},
		)
	}

	return ops
}

// splitPoint returns the query column where an optimal global path of
// ref×qry crosses reference row mid, and the direction it arrives with.
// The smallest column wins ties.
func splitPoint(ref, qry span, mid int, k *kernel, seed Direction) (int, Direction) {
	m := qry.n
	fwd := lastRow(ref.sub(0, mid), qry, k, seed)
	bwd := lastRow(ref.sub(mid, ref.n).reversed(), qry.reversed(), k, None)

	best, bestScore := 0, fwd[0].Score+bwd[m].Score
	for j := 1; j <= m; j++ {
		if s := fwd[j].Score + bwd[m-j].Score; s > bestScore {
			best, bestScore = j, s
		}
	}

	return best, fwd[best].Dir
}
