// Package cli is for command line interactions with the alnseq aligner.
package cli

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/alnseq/align"
	"github.com/katalvlaran/alnseq/config"
	"github.com/katalvlaran/alnseq/gap"
)

// Version is reported by --version.
const Version = "0.1.0"

// app carries the per-invocation state shared by the subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	ref     string
	query   string
}

// NewRootCmd builds the command tree. Each call binds its flags to a fresh
// Viper, so trees are independent of each other.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use: "alnseq",
		Short: `Pairwise alignment of nucleotide or protein sequences.
Global (Needleman-Wunsch), local (Smith-Waterman) and linear-space local`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flags for the input files and the settings file
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "path to a YAML settings file")
	pf.StringVarP(&a.ref, "ref", "r", "", "path to the reference sequence (FASTA or plain text)")
	pf.StringVarP(&a.query, "query", "q", "", "path to the query sequence (FASTA or plain text)")

	// Alignment settings, also read from the settings file and ALNSEQ_* variables
	pf.Int("gap-open", gap.DefaultOpen, "gap opening penalty (<= 0)")
	pf.Int("gap-extend", gap.DefaultExtend, "gap extension penalty (<= 0)")
	pf.Bool("no-gap-extend", false, "charge every gap position the opening penalty")
	pf.String("score-matrix", "", "path to a substitution table replacing --matrix")
	pf.String("score-pairs", "", `path to "a t -4" style score overrides`)
	pf.String("matrix", "ednafull", "built-in matrix: ednafull or blosum62")
	pf.Bool("two-bit", false, "store sequences at 2 bits per symbol (4-symbol matrices only)")
	pf.String("output", align.Trimmed.String(), "trimmed, or full to keep unaligned flanks soft-masked")
	pf.String("priority", align.MatchInsDel.String(), "tie-break order between match, ins and del moves")
	pf.Int("line-wrap", align.DefaultLineWrap, "report line width, 0 for no wrapping")
	pf.Int("base-case", align.DefaultBaseCase, "linear-space sub-problem size filled directly")
	pf.String("scan", align.ScanNone.String(), "local only: none, ref-query (best per base) or matrix (every path end)")
	pf.Int("min-score", align.DefaultMinScore, "lowest score a --scan alignment needs")
	pf.Bool("drop-overlaps", false, "drop --scan alignments overlapping a better one")
	pf.String("format", config.FormatReport, "report, fasta or sam")
	pf.StringP("out", "o", "", "output file (default stdout)")
	pf.Bool("verbose", false, "log progress to stderr")

	// Bind the settings to viper
	for _, key := range []string{
		"gap-open", "gap-extend", "no-gap-extend", "score-matrix", "score-pairs",
		"matrix", "two-bit", "output", "priority", "line-wrap", "base-case",
		"scan", "min-score", "drop-overlaps", "format", "out", "verbose",
	} {
		if err := a.v.BindPFlag(key, pf.Lookup(key)); err != nil {
			log.Fatalf("binding --%s: %v", key, err)
		}
	}

	// Mark required flags
	for _, name := range []string{"ref", "query"} {
		if err := root.MarkPersistentFlagRequired(name); err != nil {
			log.Fatalf("marking --%s required: %v", name, err)
		}
	}

	root.AddCommand(
		a.alignCmd(align.Global, "global", "Align both sequences end to end (Needleman-Wunsch)"),
		a.alignCmd(align.Local, "local", "Find the best-scoring local alignment (Smith-Waterman)"),
		a.alignCmd(align.LocalLinearSpace, "linear", "Local alignment in linear memory (Hirschberg)"),
	)

	return root
}

// Execute runs the command tree on os.Args. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
