package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/alnseq/align"
	"github.com/katalvlaran/alnseq/config"
	"github.com/katalvlaran/alnseq/seqio"
)

func (a *app) alignCmd(mode align.Mode, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `

Reads the first record of --ref and --query, aligns them with the
substitution matrix and gap penalties in effect, and writes a report
(Ref/Query/Eqx blocks), gapped FASTA rows or SAM records. With --scan
the local command reports every alternative alignment scoring at least
--min-score.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, mode)
		},
	}
}

func (a *app) run(cmd *cobra.Command, mode align.Mode) (err error) {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(cmd.ErrOrStderr(), "alnseq: ", log.LstdFlags)
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	ref, err := seqio.ReadFile(a.ref)
	if err != nil {
		return err
	}
	qry, err := seqio.ReadFile(a.query)
	if err != nil {
		return err
	}
	logger.Printf("%s alignment of %s (%d) against %s (%d), %s", mode, qry.Label, qry.Len(), ref.Label, ref.Len(), opts.Gap)

	results, err := alignAll(ref, qry, mode, opts, cfg.DropOverlaps)
	if err != nil {
		return err
	}
	for _, res := range results {
		logger.Printf("score %d, %d columns, cigar %s", res.Score, res.Len(), res.Cigar())
	}

	w := cmd.OutOrStdout()
	if cfg.Out != "" {
		f, ferr := os.Create(cfg.Out)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	if err = write(w, cfg, ref, qry, results); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Format, err)
	}

	return nil
}

// write emits results in cfg.Format: one SAM header for all records, or
// one report or FASTA pair per result.
func write(w io.Writer, cfg config.Config, ref, qry align.Sequence, results []align.Result) error {
	if cfg.Format == config.FormatSAM {
		return seqio.WriteSAM(w, ref, qry, results...)
	}
	for _, res := range results {
		var err error
		if cfg.Format == config.FormatFasta {
			err = seqio.WriteAligned(w, res, seqio.DefaultFastaWidth)
		} else {
			err = align.WriteReport(w, res, cfg.LineWrap)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// alignAll returns the single alignment of mode, or with a scan set the
// alternative local alignments, best first.
func alignAll(ref, qry align.Sequence, mode align.Mode, opts align.Options, dropOverlaps bool) ([]align.Result, error) {
	if opts.Scan == align.ScanNone {
		res, err := align.Align(ref, qry, mode, opts)
		if err != nil {
			return nil, err
		}

		return []align.Result{res}, nil
	}
	if mode != align.Local {
		return nil, fmt.Errorf("scan %s with %s alignment: %w", opts.Scan, mode, config.ErrInvalidConfig)
	}

	results, err := align.AlignScan(ref, qry, opts)
	if err != nil {
		return nil, err
	}
	if dropOverlaps {
		results = align.DropOverlaps(results)
	}

	return results, nil
}
