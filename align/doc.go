// Package align computes optimal pairwise alignments of nucleotide or
// protein sequences under a substitution matrix and an affine gap model.
//
// 🚀 Modes
//
//	Global            — Needleman–Wunsch, spans both sequences end to end.
//	Local             — Smith–Waterman, best-scoring subsequence pair.
//	LocalLinearSpace  — the Local result without the quadratic matrix:
//	                    a score-vector scan finds score and coordinates,
//	                    Hirschberg divide-and-conquer rebuilds the columns.
//
// ✨ Key features:
//   - one cell kernel shared by every fill, so gap economics never diverge
//   - tie-break priority between match, insertion and deletion moves
//   - plain or 2-bit packed scoring matrices behind the same contract
//   - trimmed or full (soft-masked flanks) output, EQX ops and CIGAR
//   - WriteReport prints wrapped Ref/Query/Eqx blocks
//
// ⚙️ Usage:
//
//	ref := align.Sequence{Label: "ref", Symbols: []byte("ACGTTTGG")}
//	qry := align.Sequence{Label: "qry", Symbols: []byte("ACGTGG")}
//
//	res, err := align.AlignLocal(ref, qry, -10, -1, false,
//	  scoring.Nucleotide(1, -1), false, align.Trimmed)
//	if err != nil {
//	  // ErrEmptySequence, gap.ErrInvalidGapPenalty, scoring.ErrUnknownSymbol, ...
//	}
//	fmt.Println(res.Score, string(res.RefAligned), string(res.QryAligned))
//
// Performance:
//
//   - Global/Local: O(N·M) time and memory.
//   - LocalLinearSpace: O(N·M) time, O(M) memory per step,
//     O(log N) work-stack depth.
//
// Every call owns its matrices and vectors; scoring matrices are read-only,
// so independent alignments may run in parallel.
package align
