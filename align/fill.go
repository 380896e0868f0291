package align

// fillMatrix runs the kernel over every cell of ref×qry.
//
// Global fills use cumulative gap borders; the (0,0) cell carries seed so a
// gap run entering a sub-block continues as an extension. Local fills use
// zero borders and remember the first maximal cell in row-major order.
func fillMatrix(ref, qry span, k *kernel, seed Direction) *Matrix {
	n, m := ref.n, qry.n
	mx := newMatrix(n+1, m+1)
	mx.mode = Global
	if k.local {
		mx.mode = Local
	}

	for j := 0; j <= m; j++ {
		mx.set(0, j, k.topBorder(j, seed))
	}

	best := 0
	for i := 1; i <= n; i++ {
		mx.set(i, 0, k.leftBorder(i, seed))
		r := ref.at(i - 1)
		row := i * mx.cols
		prev := row - mx.cols
		for j := 1; j <= m; j++ {
			c := k.step(mx.cells[prev+j-1], mx.cells[prev+j], mx.cells[row+j-1], k.sub(r, qry.at(j-1)))
			mx.cells[row+j] = c
			if k.local && c.Score > best {
				best, mx.bestI, mx.bestJ = c.Score, i, j
			}
		}
	}

	return mx
}

// lastRow runs the global kernel over ref×qry keeping two rows only and
// returns row ref.n. Memory is O(qry.n).
func lastRow(ref, qry span, k *kernel, seed Direction) []Cell {
	m := qry.n
	prev := make([]Cell, m+1)
	curr := make([]Cell, m+1)
	for j := range prev {
		prev[j] = k.topBorder(j, seed)
	}

	for i := 1; i <= ref.n; i++ {
		curr[0] = k.leftBorder(i, seed)
		r := ref.at(i - 1)
		for j := 1; j <= m; j++ {
			curr[j] = k.step(prev[j-1], prev[j], curr[j-1], k.sub(r, qry.at(j-1)))
		}
		prev, curr = curr, prev
	}

	return prev
}
