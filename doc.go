// Package alnseq is a pairwise sequence aligner: global, local and
// linear-space local alignment of nucleotide or protein sequences under a
// substitution matrix and an affine gap model.
//
// 🚀 What is alnseq?
//
//	A small, dependency-light toolkit that brings together:
//		• Scoring: plain and 2-bit packed matrices, EDNAFULL & BLOSUM62 built in
//		• Gaps: one affine model (open, extend, or open-only) for every fill
//		• Alignment: Needleman–Wunsch, Smith–Waterman, Hirschberg linear space
//		• Output: trimmed or soft-masked rows, EQX/CIGAR, report, FASTA, SAM
//		• CLI: alnseq global|local|linear with flags, YAML and ALNSEQ_* env
//
// ✨ Why choose alnseq?
//
//   - Same kernel everywhere – the linear-space engine reports exactly
//     the local score and coordinates of the full matrix
//   - Deterministic – explicit tie-break priority, no hidden state
//   - Safe for concurrent use – matrices are read-only once built
//
// Everything is organized under these packages:
//
//	scoring/ — substitution matrices: parse, look up, pack to 2 bits
//	gap/     — affine gap model and its cost function
//	align/   — DP engines, traceback, results, report writer
//	seqio/   — FASTA / plain text input, gapped FASTA and SAM output
//	config/  — Viper-backed settings
//	cli/     — cobra commands behind cmd/alnseq
//
// Quick ASCII example:
//
//	Ref:     ACGTACGT
//	Query:   ACG-ACGT
//	Eqx:     ===D====
//
//	go install github.com/katalvlaran/alnseq/cmd/alnseq@latest
package alnseq
