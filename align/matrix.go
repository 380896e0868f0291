package align

import "fmt"

// Matrix is a filled DP grid of (RefLen+1)×(QryLen+1) cells, stored flat
// in row-major order. Row i corresponds to the first i reference symbols,
// column j to the first j query symbols.
type Matrix struct {
	rows, cols int
	cells      []Cell

	mode  Mode
	bestI int
	bestJ int

	ref, qry   Sequence
	rcod, qcod span
}

func newMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

// Rows returns RefLen+1.
func (mx *Matrix) Rows() int { return mx.rows }

// Cols returns QryLen+1.
func (mx *Matrix) Cols() int { return mx.cols }

// Mode returns the mode the matrix was filled in.
func (mx *Matrix) Mode() Mode { return mx.mode }

// At returns cell (i, j) or ErrOutOfRange.
func (mx *Matrix) At(i, j int) (Cell, error) {
	if i < 0 || i >= mx.rows || j < 0 || j >= mx.cols {
		return Cell{}, fmt.Errorf("At(%d,%d) in %dx%d: %w", i, j, mx.rows, mx.cols, ErrOutOfRange)
	}

	return mx.cells[i*mx.cols+j], nil
}

// Score returns the alignment score the matrix encodes: cell (n, m) for
// Global, the best cell for Local.
func (mx *Matrix) Score() int {
	i, j := mx.End()
	return mx.cell(i, j).Score
}

// End returns the traceback start cell.
func (mx *Matrix) End() (i, j int) {
	if mx.mode == Global {
		return mx.rows - 1, mx.cols - 1
	}

	return mx.bestI, mx.bestJ
}

func (mx *Matrix) cell(i, j int) Cell { return mx.cells[i*mx.cols+j] }
func (mx *Matrix) set(i, j int, c Cell) { mx.cells[i*mx.cols+j] = c }
