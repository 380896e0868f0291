// SPDX-License-Identifier: MIT

package gap

import (
	"errors"
	"fmt"
)

// ErrInvalidGapPenalty indicates a positive gap open or extend value.
// Penalties are expressed as scores, so they must be ≤ 0.
var ErrInvalidGapPenalty = errors.New("gap: penalties must be <= 0")

// Defaults mirror the command line defaults of alnseq.
const (
	// DefaultOpen is the score charged for the first position of a gap.
	DefaultOpen = -10

	// DefaultExtend is the score charged for every further position.
	DefaultExtend = -1
)

// Model is an affine gap penalty.
//
// Fields:
//   - Open     — score of the first position of a gap run (≤ 0).
//   - Extend   — score of each following position (≤ 0).
//   - NoExtend — charge Open for every position; Extend is ignored.
type Model struct {
	Open     int
	Extend   int
	NoExtend bool
}

// New validates the penalties and returns a Model.
// Returns ErrInvalidGapPenalty (wrapped with the offending value) when
// open or extend is positive.
func New(open, extend int, noExtend bool) (Model, error) {
	m := Model{Open: open, Extend: extend, NoExtend: noExtend}
	if err := m.Validate(); err != nil {
		return Model{}, err
	}

	return m, nil
}

// Default returns the Model built from DefaultOpen and DefaultExtend.
func Default() Model {
	return Model{Open: DefaultOpen, Extend: DefaultExtend}
}

// Validate reports ErrInvalidGapPenalty for positive penalties.
// Complexity: O(1).
func (m Model) Validate() error {
	if m.Open > 0 {
		return fmt.Errorf("open=%d: %w", m.Open, ErrInvalidGapPenalty)
	}
	if m.Extend > 0 {
		return fmt.Errorf("extend=%d: %w", m.Extend, ErrInvalidGapPenalty)
	}

	return nil
}

// Cost returns the score of runLength consecutive gap positions.
//
// When firstInRun is true the run opens a new gap: the first position is
// charged Open and the rest Extend. When false the run continues a gap that
// is already open, so every position is charged Extend. With NoExtend every
// position costs Open regardless of firstInRun.
//
// runLength ≤ 0 costs nothing.
// Complexity: O(1).
func (m Model) Cost(runLength int, firstInRun bool) int {
	if runLength <= 0 {
		return 0
	}
	if m.NoExtend {
		return runLength * m.Open
	}
	if firstInRun {
		return m.Open + (runLength-1)*m.Extend
	}

	return runLength * m.Extend
}

// Step is the score of a single gap position: Extend when the previous
// position was already a gap of the same kind, Open otherwise.
// It is the per-cell charge used by the DP fills.
func (m Model) Step(extending bool) int {
	return m.Cost(1, !extending)
}

// String implements fmt.Stringer.
func (m Model) String() string {
	if m.NoExtend {
		return fmt.Sprintf("gap(open=%d, no-extend)", m.Open)
	}

	return fmt.Sprintf("gap(open=%d, extend=%d)", m.Open, m.Extend)
}
