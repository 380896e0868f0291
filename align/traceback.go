package align

// path is a traced alignment: its columns left to right and the half-open
// windows it consumes, relative to the traced spans.
type path struct {
	ops      []Op
	refStart int
	refEnd   int
	qryStart int
	qryEnd   int
}

// trace follows directions back from (endI, endJ).
//
// Diagonal emits = or X, Up emits D, Left emits I. A Global matrix is
// followed to (0, 0); a Local one stops at the first None cell or border.
func trace(mx *Matrix, ref, qry span, endI, endJ int) path {
	i, j := endI, endJ
	ops := make([]Op, 0, endI+endJ)

walk:
	for i > 0 || j > 0 {
		c := mx.cell(i, j)
		if mx.mode != Global && (i == 0 || j == 0) {
			break
		}
		switch c.Dir {
		case Diagonal:
			if ref.at(i-1) == qry.at(j-1) {
				ops = append(ops, OpMatch)
			} else {
				ops = append(ops, OpMismatch)
			}
			i--
			j--
		case Up:
			ops = append(ops, OpDeletion)
			i--
		case Left:
			ops = append(ops, OpInsertion)
			j--
		default:
			break walk
		}
	}

	// reverse in place
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	return path{ops: ops, refStart: i, refEnd: endI, qryStart: j, qryEnd: endJ}
}
