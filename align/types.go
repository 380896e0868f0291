package align

import (
	"github.com/katalvlaran/alnseq/gap"
	"github.com/katalvlaran/alnseq/scoring"
)

// Mode selects matrix initialisation, cell floor and traceback termination.
//
//   - Global           — borders hold cumulative gap costs, no floor,
//     traceback from (n, m) to (0, 0).
//   - Local            — zero borders, cells ≤ 0 restart at {0, None},
//     traceback from the best cell to the first None.
//   - LocalLinearSpace — Local semantics computed with score vectors only.
type Mode int

const (
	// Global is Needleman–Wunsch alignment.
	Global Mode = iota

	// Local is Smith–Waterman alignment.
	Local

	// LocalLinearSpace is Smith–Waterman in linear memory.
	LocalLinearSpace
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	case LocalLinearSpace:
		return "local-linear-space"
	}

	return "unknown"
}

// valid reports whether m is one of the declared modes.
func (m Mode) valid() bool { return m >= Global && m <= LocalLinearSpace }

// Direction is the traceback predecessor recorded for a DP cell.
type Direction uint8

const (
	// None marks the origin and the local zero floor.
	None Direction = iota

	// Diagonal consumes one reference and one query symbol.
	Diagonal

	// Up consumes a reference symbol against a gap in the query.
	Up

	// Left consumes a query symbol against a gap in the reference.
	Left
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Diagonal:
		return "diagonal"
	case Up:
		return "up"
	case Left:
		return "left"
	}

	return "none"
}

// Cell is one DP matrix entry.
type Cell struct {
	Score int
	Dir   Direction
}

// Priority decides which move wins when candidates score the same.
// Names follow the EQX vocabulary: match is Diagonal, ins is Left
// (query symbol, gap in the reference), del is Up.
type Priority int

const (
	// MatchInsDel prefers match/mismatch, then insertion, then deletion.
	MatchInsDel Priority = iota
	// MatchDelIns prefers match/mismatch, then deletion, then insertion.
	MatchDelIns
	// InsMatchDel prefers insertion, then match/mismatch, then deletion.
	InsMatchDel
	// DelMatchIns prefers deletion, then match/mismatch, then insertion.
	DelMatchIns
	// InsDelMatch prefers insertion, then deletion, then match/mismatch.
	InsDelMatch
	// DelInsMatch prefers deletion, then insertion, then match/mismatch.
	DelInsMatch
)

var priorityNames = [...]string{
	MatchInsDel: "match-ins-del",
	MatchDelIns: "match-del-ins",
	InsMatchDel: "ins-match-del",
	DelMatchIns: "del-match-ins",
	InsDelMatch: "ins-del-match",
	DelInsMatch: "del-ins-match",
}

var priorityOrders = [...][3]Direction{
	MatchInsDel: {Diagonal, Left, Up},
	MatchDelIns: {Diagonal, Up, Left},
	InsMatchDel: {Left, Diagonal, Up},
	DelMatchIns: {Up, Diagonal, Left},
	InsDelMatch: {Left, Up, Diagonal},
	DelInsMatch: {Up, Left, Diagonal},
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	if p < MatchInsDel || p > DelInsMatch {
		return "unknown"
	}

	return priorityNames[p]
}

// order returns the moves from most to least preferred.
// Unknown priorities fall back to MatchInsDel.
func (p Priority) order() [3]Direction {
	if p < MatchInsDel || p > DelInsMatch {
		return priorityOrders[MatchInsDel]
	}

	return priorityOrders[p]
}

// ParsePriority maps a name such as "match-ins-del" to a Priority.
func ParsePriority(name string) (Priority, bool) {
	for p, n := range priorityNames {
		if n == name {
			return Priority(p), true
		}
	}

	return MatchInsDel, false
}

// Output selects how Result rows treat unaligned flanks.
type Output int

const (
	// Trimmed rows cover the aligned span only.
	Trimmed Output = iota

	// Full rows add the flanking symbols as soft-masked columns.
	Full
)

// String implements fmt.Stringer.
func (o Output) String() string {
	if o == Full {
		return "full"
	}

	return "trimmed"
}

// Op is one EQX alignment column code.
type Op byte

const (
	OpMatch     Op = '=' // same symbol
	OpMismatch  Op = 'X' // substitution
	OpInsertion Op = 'I' // query symbol, gap in reference
	OpDeletion  Op = 'D' // reference symbol, gap in query
	OpSoftBoth  Op = 'S' // unaligned flank on both sequences
	OpSoftQuery Op = 's' // unaligned flank on the query only
	OpSoftRef   Op = 'P' // unaligned flank on the reference only
)

// GapSymbol fills gap positions in aligned rows.
const GapSymbol = '-'

// Sequence is a labelled symbol sequence. Symbols are never modified.
type Sequence struct {
	Label   string
	Symbols []byte
}

// Len returns the number of symbols.
func (s Sequence) Len() int { return len(s.Symbols) }

// DefaultBaseCase is the sub-problem size at which the linear-space engine
// stops dividing and fills a full matrix.
const DefaultBaseCase = 8

// Options configures an alignment.
//
// Fields:
//   - Gap      — affine gap model (penalties ≤ 0).
//   - Matrix   — substitution matrix; required.
//   - TwoBit   — pack Matrix and sequences at 2 bits per symbol
//     (needs a 4-symbol alphabet).
//   - Output   — Trimmed or Full rows.
//   - Priority — tie-break order between moves.
//   - BaseCase — linear-space leaf size; values < 1 use DefaultBaseCase.
//   - Scan     — which alternative local alignments AlignScan reports.
//   - MinScore — lowest score AlignScan reports.
type Options struct {
	Gap      gap.Model
	Matrix   scoring.Matrix
	TwoBit   bool
	Output   Output
	Priority Priority
	BaseCase int
	Scan     Scan
	MinScore int
}

// DefaultOptions returns EDNAFULL with gap open -10, extend -1,
// trimmed output, match-ins-del priority and DefaultMinScore.
func DefaultOptions() Options {
	return Options{
		Gap:      gap.Default(),
		Matrix:   scoring.EDNAFULL(),
		Output:   Trimmed,
		Priority: MatchInsDel,
		BaseCase: DefaultBaseCase,
		MinScore: DefaultMinScore,
	}
}
