package align

import (
	"strconv"
	"strings"
)

// Result is a finished alignment. It is never modified after return.
//
// RefStart/RefEnd and QryStart/QryEnd are 0-based half-open bounds of the
// aligned region: ref.Symbols[RefStart:RefEnd] is what RefAligned holds
// once gaps are stripped (Trimmed output). Under Full output the aligned
// rows also carry the flanks, marked S, s or P in Ops.
//
// Score is the DP score of the end cell. For Global and Local it equals
// Rescore of the columns. LocalLinearSpace rebuilds its columns by divide
// and conquer, which is exact only for linear gaps (gap.Model.NoExtend):
// with affine gaps the columns may rescore differently from Score.
type Result struct {
	Mode     Mode
	Score    int
	RefLabel string
	QryLabel string

	RefAligned []byte
	QryAligned []byte
	Ops        []Op

	RefStart int
	RefEnd   int
	QryStart int
	QryEnd   int
}

// Len returns the number of alignment columns.
func (r Result) Len() int { return len(r.Ops) }

// Identity returns the fraction of aligned columns that are matches.
// Soft-masked flank columns are not counted. Zero for an empty alignment.
func (r Result) Identity() float64 {
	var match, cols int
	for _, op := range r.Ops {
		switch op {
		case OpMatch:
			match++
			cols++
		case OpMismatch, OpInsertion, OpDeletion:
			cols++
		}
	}
	if cols == 0 {
		return 0
	}

	return float64(match) / float64(cols)
}

// Cigar returns the run-length encoded EQX operations, e.g. "4=1X2I".
// Soft-masked flank columns are included when present.
func (r Result) Cigar() string {
	var sb strings.Builder
	for i := 0; i < len(r.Ops); {
		k := i
		for k < len(r.Ops) && r.Ops[k] == r.Ops[i] {
			k++
		}
		sb.WriteString(strconv.Itoa(k - i))
		sb.WriteByte(byte(r.Ops[i]))
		i = k
	}

	return sb.String()
}

// buildResult renders p against the caller's symbols of ref and qry.
func buildResult(mode Mode, score int, ref, qry Sequence, p path, out Output) Result {
	res := Result{
		Mode:     mode,
		Score:    score,
		RefLabel: ref.Label,
		QryLabel: qry.Label,
		RefStart: p.refStart,
		RefEnd:   p.refEnd,
		QryStart: p.qryStart,
		QryEnd:   p.qryEnd,
	}

	n := len(p.ops)
	if out == Full {
		n += max(p.refStart, p.qryStart) + max(len(ref.Symbols)-p.refEnd, len(qry.Symbols)-p.qryEnd)
	}
	res.RefAligned = make([]byte, 0, n)
	res.QryAligned = make([]byte, 0, n)
	res.Ops = make([]Op, 0, n)

	if out == Full {
		res.flank(ref.Symbols[:p.refStart], qry.Symbols[:p.qryStart], true)
	}

	ri, qi := p.refStart, p.qryStart
	for _, op := range p.ops {
		switch op {
		case OpMatch, OpMismatch:
			res.push(ref.Symbols[ri], qry.Symbols[qi], op)
			ri++
			qi++
		case OpDeletion:
			res.push(ref.Symbols[ri], GapSymbol, op)
			ri++
		case OpInsertion:
			res.push(GapSymbol, qry.Symbols[qi], op)
			qi++
		}
	}

	if out == Full {
		res.flank(ref.Symbols[p.refEnd:], qry.Symbols[p.qryEnd:], false)
	}

	return res
}

func (r *Result) push(a, b byte, op Op) {
	r.RefAligned = append(r.RefAligned, a)
	r.QryAligned = append(r.QryAligned, b)
	r.Ops = append(r.Ops, op)
}

// flank appends unaligned symbols as soft-masked columns. Leading flanks
// are right-aligned against the aligned region, trailing ones left-aligned.
func (r *Result) flank(ref, qry []byte, leading bool) {
	w := max(len(ref), len(qry))
	for c := 0; c < w; c++ {
		ri, qi := c, c
		if leading {
			ri, qi = c-(w-len(ref)), c-(w-len(qry))
		}
		hasRef := ri >= 0 && ri < len(ref)
		hasQry := qi >= 0 && qi < len(qry)
		switch {
		case hasRef && hasQry:
			r.push(ref[ri], qry[qi], OpSoftBoth)
		case hasQry:
			r.push(GapSymbol, qry[qi], OpSoftQuery)
		default:
			r.push(ref[ri], GapSymbol, OpSoftRef)
		}
	}
}
