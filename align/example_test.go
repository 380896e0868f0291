package align_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/alnseq/align"
	"github.com/katalvlaran/alnseq/scoring"
)

// ExampleAlignGlobal aligns two reads that differ by one deleted base.
func ExampleAlignGlobal() {
	ref := align.Sequence{Label: "ref", Symbols: []byte("ACGTACGT")}
	qry := align.Sequence{Label: "qry", Symbols: []byte("ACGACGT")}

	res, err := align.AlignGlobal(ref, qry, -3, -1, false, scoring.Nucleotide(2, -1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Score, res.Cigar())
	fmt.Println(string(res.RefAligned))
	fmt.Println(string(res.QryAligned))
	// Output:
	// 11 3=1D4=
	// ACGTACGT
	// ACG-ACGT
}

// ExampleAlignLocal keeps only the shared prefix; Full output would add
// the remaining bases as soft-masked columns.
func ExampleAlignLocal() {
	ref := align.Sequence{Label: "ref", Symbols: []byte("ACGTTTGG")}
	qry := align.Sequence{Label: "qry", Symbols: []byte("ACGTGG")}

	res, err := align.AlignLocal(ref, qry, -10, -1, false, scoring.Nucleotide(1, -1), false, align.Trimmed)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("score=%d ref[%d:%d] qry[%d:%d] %s\n",
		res.Score, res.RefStart, res.RefEnd, res.QryStart, res.QryEnd, res.Cigar())
	// Output:
	// score=4 ref[0:4] qry[0:4] 4=
}

// ExampleAlignLocalLinearSpace gives the Local answer without the matrix.
func ExampleAlignLocalLinearSpace() {
	ref := align.Sequence{Label: "ref", Symbols: []byte("TTTTGATTACAGGGG")}
	qry := align.Sequence{Label: "qry", Symbols: []byte("CCGATTACACC")}

	res, err := align.AlignLocalLinearSpace(ref, qry, -10, -1, false, scoring.EDNAFULL())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Score, string(res.RefAligned), res.RefStart, res.QryStart)
	// Output:
	// 35 GATTACA 4 2
}

// ExampleWriteReport prints the report block for a short alignment.
func ExampleWriteReport() {
	ref := align.Sequence{Label: "chr1", Symbols: []byte("GATTACA")}
	qry := align.Sequence{Label: "read7", Symbols: []byte("GATCACA")}

	res, _ := align.AlignGlobal(ref, qry, -10, -1, false, scoring.EDNAFULL())
	_ = align.WriteReport(os.Stdout, res, align.DefaultLineWrap)
	// Output:
	// ###########################################
	// # Query = read7
	// #   - Query bases 1 to 7
	// # Ref = chr1
	// #   - Reference bases 1 to 7
	// # Alignment Score = 26
	// # Eqx = Error line
	// #   - = is match
	// #   - X is mismatch
	// #   - I is insertion
	// #   - D is deletion
	// #   - S is soft mask on query and reference
	// #   - s is soft mask on query only
	// #   - P is soft mask on reference only
	// ###########################################
	//
	// Ref:     GATTACA
	// Query:   GATCACA
	// Eqx:     ===X===
}
