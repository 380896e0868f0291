package align

import (
	"fmt"
	"io"
	"strings"
)

const (
	// DefaultLineWrap is the report line width, labels included.
	DefaultLineWrap = 59

	// minWrapColumns keeps the header legend on one screen width.
	minWrapColumns = 42

	// labelWidth is the width of the "Ref:     " style prefixes.
	labelWidth = 9
)

const rule = "###########################################"

var legend = []string{
	"# Eqx = Error line",
	"#   - = is match",
	"#   - X is mismatch",
	"#   - I is insertion",
	"#   - D is deletion",
	"#   - S is soft mask on query and reference",
	"#   - s is soft mask on query only",
	"#   - P is soft mask on reference only",
}

// WriteReport prints res as a commented header followed by Ref/Query/Eqx
// blocks.
//
// wrap is the full line width: each block carries wrap-9 alignment columns,
// never fewer than 42. wrap ≤ 0 prints every column on one line.
// Base ranges in the header are 1-based and inclusive.
func WriteReport(w io.Writer, res Result, wrap int) error {
	var sb strings.Builder

	sb.WriteString(rule + "\n")
	fmt.Fprintf(&sb, "# Query = %s\n", res.QryLabel)
	fmt.Fprintf(&sb, "#   - Query bases %d to %d\n", baseFrom(res.QryStart, res.QryEnd), res.QryEnd)
	fmt.Fprintf(&sb, "# Ref = %s\n", res.RefLabel)
	fmt.Fprintf(&sb, "#   - Reference bases %d to %d\n", baseFrom(res.RefStart, res.RefEnd), res.RefEnd)
	fmt.Fprintf(&sb, "# Alignment Score = %d\n", res.Score)
	for _, l := range legend {
		sb.WriteString(l + "\n")
	}
	sb.WriteString(rule + "\n")

	n := len(res.Ops)
	width := n
	if wrap > 0 {
		width = max(wrap-labelWidth, minWrapColumns)
	}
	for lo := 0; lo < n; lo += width {
		hi := min(lo+width, n)
		sb.WriteString("\nRef:     ")
		sb.Write(res.RefAligned[lo:hi])
		sb.WriteString("\nQuery:   ")
		sb.Write(res.QryAligned[lo:hi])
		sb.WriteString("\nEqx:     ")
		for _, op := range res.Ops[lo:hi] {
			sb.WriteByte(byte(op))
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// baseFrom converts a half-open start to a 1-based inclusive one;
// empty ranges report 0.
func baseFrom(start, end int) int {
	if end <= start {
		return 0
	}

	return start + 1
}
