// Package gap implements the affine gap-penalty model shared by every
// alignment mode in alnseq.
//
// 🚀 What is an affine gap?
//
//	Opening a gap costs more than widening one that is already open:
//	  run of k positions = Open + (k-1)·Extend
//	With NoExtend set every position is charged Open instead.
//
// ✨ Key features:
//   - one pure function (Model.Cost) is the single source of truth for gap
//     economics; global, local and linear-space fills all call it
//   - penalties are non-positive integers; positive values are rejected
//     with ErrInvalidGapPenalty
//
// ⚙️ Usage:
//
//	g, err := gap.New(-10, -1, false)
//	if err != nil {
//	  // handle ErrInvalidGapPenalty
//	}
//	g.Cost(3, true)  // -12: open + 2×extend
//	g.Step(true)     // -1: one more position of an open gap
package gap
