// SPDX-License-Identifier: MIT

package scoring

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Parse reads a substitution matrix in the NCBI text layout:
//
//	#  comment lines and blank lines are ignored
//	   A  C  G  T
//	A  1 -1 -1 -1
//	C -1  1 -1 -1
//	...
//
// The first non-comment line lists the alphabet, one single-byte symbol per
// field. Every following line holds one row: an optional row symbol (which
// must repeat the header symbol of that row) and one integer per header
// symbol.
//
// Errors: ErrMalformedMatrix for empty input, multi-byte or duplicate
// header symbols, row length mismatch, non-integer entries, a row label out
// of header order, or a row count different from the header size.
// Complexity: O(n²).
func Parse(r io.Reader) (*Plain, error) {
	sc := bufio.NewScanner(r)
	var (
		alphabet []byte
		rows     [][]int
		line     int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		if alphabet == nil {
			alphabet = make([]byte, 0, len(fields))
			for _, f := range fields {
				if len(f) != 1 {
					return nil, malformedf("line %d: header symbol %q is not a single byte", line, f)
				}
				alphabet = append(alphabet, f[0])
			}
			continue
		}

		n := len(alphabet)
		if len(rows) == n {
			return nil, malformedf("line %d: more than %d rows", line, n)
		}
		switch len(fields) {
		case n + 1:
			if len(fields[0]) != 1 || fields[0][0] != alphabet[len(rows)] {
				return nil, malformedf("line %d: row label %q, want %q", line, fields[0], alphabet[len(rows)])
			}
			fields = fields[1:]
		case n:
		default:
			return nil, malformedf("line %d: %d fields for %d symbols", line, len(fields), n)
		}

		row := make([]int, n)
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, malformedf("line %d: entry %q is not an integer", line, f)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if alphabet == nil {
		return nil, malformedf("no header row")
	}
	if len(rows) != len(alphabet) {
		return nil, malformedf("%d rows for %d symbols", len(rows), len(alphabet))
	}

	return New(alphabet, rows)
}

// ParsePairs applies per-pair overrides to a copy of base. Each line holds
// a reference symbol, a query symbol and a score:
//
//	// comment
//	a t -4
//	a a 5
//
// Only the named ordered pair changes; supply both orders to keep a matrix
// symmetric. base itself is never modified.
//
// Errors: ErrMalformedMatrix for lines that are not "sym sym int",
// ErrUnknownSymbol for symbols outside the base alphabet.
func ParsePairs(r io.Reader, base *Plain) (*Plain, error) {
	if base == nil {
		return nil, malformedf("nil base matrix")
	}
	out := base.clone()

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "//") || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) < 3 || len(fields[0]) != 1 || len(fields[1]) != 1 {
			return nil, malformedf("line %d: want \"sym sym score\"", line)
		}
		v, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, malformedf("line %d: score %q is not an integer", line, fields[2])
		}
		if err = out.set(fields[0][0], fields[1][0], v); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
