package align

import (
	"fmt"

	"github.com/katalvlaran/alnseq/gap"
	"github.com/katalvlaran/alnseq/scoring"
)

// AlignGlobal aligns ref and qry end to end (Needleman–Wunsch).
//
// Errors:
//   - ErrNilMatrix              — m is nil.
//   - gap.ErrInvalidGapPenalty  — gapOpen or gapExtend is positive.
//   - ErrEmptySequence          — either sequence is empty.
//   - scoring.ErrUnknownSymbol  — a symbol is missing from m.
func AlignGlobal(ref, qry Sequence, gapOpen, gapExtend int, noGapExtend bool, m scoring.Matrix) (Result, error) {
	opts := DefaultOptions()
	opts.Gap = gap.Model{Open: gapOpen, Extend: gapExtend, NoExtend: noGapExtend}
	opts.Matrix = m

	return Align(ref, qry, Global, opts)
}

// AlignLocal returns the best-scoring local alignment (Smith–Waterman).
// With twoBit the matrix must have a 4-symbol alphabet
// (scoring.ErrUnsupportedAlphabet otherwise).
func AlignLocal(ref, qry Sequence, gapOpen, gapExtend int, noGapExtend bool, m scoring.Matrix, twoBit bool, output Output) (Result, error) {
	opts := DefaultOptions()
	opts.Gap = gap.Model{Open: gapOpen, Extend: gapExtend, NoExtend: noGapExtend}
	opts.Matrix = m
	opts.TwoBit = twoBit
	opts.Output = output

	return Align(ref, qry, Local, opts)
}

// AlignLocalLinearSpace returns the same score and coordinates as
// AlignLocal while holding only O(len(qry)) cells at a time. Pass the
// shorter sequence as qry to keep memory at O(min(len(ref), len(qry))).
// See Result for how its columns relate to Score under affine gaps.
func AlignLocalLinearSpace(ref, qry Sequence, gapOpen, gapExtend int, noGapExtend bool, m scoring.Matrix) (Result, error) {
	opts := DefaultOptions()
	opts.Gap = gap.Model{Open: gapOpen, Extend: gapExtend, NoExtend: noGapExtend}
	opts.Matrix = m

	return Align(ref, qry, LocalLinearSpace, opts)
}

// Align runs mode over ref and qry with opts.
// All input errors are reported before any cell is filled.
func Align(ref, qry Sequence, mode Mode, opts Options) (Result, error) {
	if mode == LocalLinearSpace {
		rc, qc, opts, err := prepare(ref, qry, mode, opts)
		if err != nil {
			return Result{}, err
		}

		return alignLinear(ref, qry, rc, qc, opts), nil
	}

	mx, err := Fill(ref, qry, mode, opts)
	if err != nil {
		return Result{}, err
	}

	return Traceback(mx, opts.Output), nil
}

// Fill returns the filled DP matrix for Global or Local mode, for
// inspection or a later Traceback. LocalLinearSpace has no matrix and
// yields ErrNeedsFullMatrix.
func Fill(ref, qry Sequence, mode Mode, opts Options) (*Matrix, error) {
	if mode == LocalLinearSpace {
		return nil, ErrNeedsFullMatrix
	}
	rc, qc, opts, err := prepare(ref, qry, mode, opts)
	if err != nil {
		return nil, err
	}

	k := newKernel(opts.Matrix, opts.Gap, opts.Priority, mode == Local)
	mx := fillMatrix(fullSpan(rc), fullSpan(qc), &k, None)
	mx.ref, mx.qry, mx.rcod, mx.qcod = ref, qry, fullSpan(rc), fullSpan(qc)

	return mx, nil
}

// Traceback walks mx back from its end cell and renders the result.
func Traceback(mx *Matrix, out Output) Result {
	i, j := mx.End()
	p := trace(mx, mx.rcod, mx.qcod, i, j)

	return buildResult(mx.mode, mx.cell(i, j).Score, mx.ref, mx.qry, p, out)
}

func alignLinear(ref, qry Sequence, rc, qc scoring.Codes, opts Options) Result {
	r, q := fullSpan(rc), fullSpan(qc)
	local := newKernel(opts.Matrix, opts.Gap, opts.Priority, true)
	s := scanLocal(r, q, &local)

	p := path{refStart: s.startI, refEnd: s.endI, qryStart: s.startJ, qryEnd: s.endJ}
	if s.score > 0 {
		global := newKernel(opts.Matrix, opts.Gap, opts.Priority, false)
		p.ops = divide(r.sub(s.startI, s.endI), q.sub(s.startJ, s.endJ), &global, opts.BaseCase)
	}

	return buildResult(LocalLinearSpace, s.score, ref, qry, p, opts.Output)
}

// prepare validates inputs in a fixed order and encodes both sequences.
// The returned Options carry the packed matrix when TwoBit is set and a
// usable BaseCase.
func prepare(ref, qry Sequence, mode Mode, opts Options) (scoring.Codes, scoring.Codes, Options, error) {
	if !mode.valid() {
		return nil, nil, opts, fmt.Errorf("mode %d: %w", int(mode), ErrUnknownMode)
	}
	if opts.Matrix == nil {
		return nil, nil, opts, ErrNilMatrix
	}
	if err := opts.Gap.Validate(); err != nil {
		return nil, nil, opts, err
	}
	if len(ref.Symbols) == 0 || len(qry.Symbols) == 0 {
		return nil, nil, opts, ErrEmptySequence
	}
	if opts.TwoBit {
		packed, err := scoring.Pack(opts.Matrix)
		if err != nil {
			return nil, nil, opts, err
		}
		opts.Matrix = packed
	}
	if opts.BaseCase < 1 {
		opts.BaseCase = DefaultBaseCase
	}

	rc, err := opts.Matrix.Encode(ref.Symbols)
	if err != nil {
		return nil, nil, opts, fmt.Errorf("reference %q: %w", ref.Label, err)
	}
	qc, err := opts.Matrix.Encode(qry.Symbols)
	if err != nil {
		return nil, nil, opts, fmt.Errorf("query %q: %w", qry.Label, err)
	}

	return rc, qc, opts, nil
}
