// Package config is for run-wide alignment settings that are unmarshalled
// from Viper: command line flags, an optional YAML file and ALNSEQ_*
// environment variables (see: /cli).
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/alnseq/align"
	"github.com/katalvlaran/alnseq/gap"
	"github.com/katalvlaran/alnseq/scoring"
)

// EnvPrefix prefixes every environment override, e.g. ALNSEQ_GAP_OPEN.
const EnvPrefix = "ALNSEQ"

// Output formats.
const (
	FormatReport = "report"
	FormatFasta  = "fasta"
	FormatSAM    = "sam"
)

// ErrInvalidConfig indicates a setting outside its allowed values.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config is the root-level settings struct, a mix of the config file,
// the environment and the command line.
type Config struct {
	// gap opening penalty, ≤ 0
	GapOpen int `mapstructure:"gap-open"`

	// gap extension penalty, ≤ 0
	GapExtend int `mapstructure:"gap-extend"`

	// charge every gap position the opening penalty
	NoGapExtend bool `mapstructure:"no-gap-extend"`

	// path to a full substitution table; empty selects Matrix
	ScoreMatrix string `mapstructure:"score-matrix"`

	// path to "a t -4" style pair overrides applied on top of the table
	ScorePairs string `mapstructure:"score-pairs"`

	// built-in table: ednafull or blosum62
	Matrix string `mapstructure:"matrix"`

	// pack matrix and sequences at 2 bits per symbol
	TwoBit bool `mapstructure:"two-bit"`

	// trimmed or full
	Output string `mapstructure:"output"`

	// tie-break order, e.g. match-ins-del
	Priority string `mapstructure:"priority"`

	// report line width, 0 for no wrapping
	LineWrap int `mapstructure:"line-wrap"`

	// linear-space leaf size
	BaseCase int `mapstructure:"base-case"`

	// alternative local alignments: none, ref-query or matrix
	Scan string `mapstructure:"scan"`

	// lowest score an alternative alignment needs
	MinScore int `mapstructure:"min-score"`

	// drop alternative alignments overlapping a better one
	DropOverlaps bool `mapstructure:"drop-overlaps"`

	// report, fasta or sam
	Format string `mapstructure:"format"`

	// output path, empty for stdout
	Out string `mapstructure:"out"`

	// log progress to stderr
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults registers every key with its default so that environment
// variables and Unmarshal see the full key set.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("gap-open", gap.DefaultOpen)
	v.SetDefault("gap-extend", gap.DefaultExtend)
	v.SetDefault("no-gap-extend", false)
	v.SetDefault("score-matrix", "")
	v.SetDefault("score-pairs", "")
	v.SetDefault("matrix", "ednafull")
	v.SetDefault("two-bit", false)
	v.SetDefault("output", align.Trimmed.String())
	v.SetDefault("priority", align.MatchInsDel.String())
	v.SetDefault("line-wrap", align.DefaultLineWrap)
	v.SetDefault("base-case", align.DefaultBaseCase)
	v.SetDefault("scan", align.ScanNone.String())
	v.SetDefault("min-score", align.DefaultMinScore)
	v.SetDefault("drop-overlaps", false)
	v.SetDefault("format", FormatReport)
	v.SetDefault("out", "")
	v.SetDefault("verbose", false)
}

// Load wires defaults and ALNSEQ_* variables into v, reads file when it is
// not empty, and returns the validated Config.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", file, err)
		}
	}

	return New(v)
}

// New returns a Config populated from v.
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unable to decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks the enumerated settings and built-in matrix names. Gap
// penalties and matrix files are checked by Options, where the packages
// owning them report their errors.
func (c Config) Validate() error {
	if _, err := c.output(); err != nil {
		return err
	}
	if _, ok := align.ParsePriority(c.Priority); !ok {
		return fmt.Errorf("priority %q: %w", c.Priority, ErrInvalidConfig)
	}
	if _, ok := align.ParseScan(c.Scan); !ok {
		return fmt.Errorf("scan %q: %w", c.Scan, ErrInvalidConfig)
	}
	switch c.Format {
	case FormatReport, FormatFasta, FormatSAM:
	default:
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalidConfig)
	}
	if c.ScoreMatrix == "" {
		if _, err := scoring.Builtin(c.Matrix); err != nil {
			return fmt.Errorf("matrix %q: %w", c.Matrix, ErrInvalidConfig)
		}
	}
	if c.LineWrap < 0 {
		return fmt.Errorf("line-wrap %d: %w", c.LineWrap, ErrInvalidConfig)
	}

	return nil
}

// Options converts c to align.Options, loading the scoring matrix.
func (c Config) Options() (align.Options, error) {
	g, err := gap.New(c.GapOpen, c.GapExtend, c.NoGapExtend)
	if err != nil {
		return align.Options{}, err
	}
	m, err := c.matrix()
	if err != nil {
		return align.Options{}, err
	}
	out, err := c.output()
	if err != nil {
		return align.Options{}, err
	}
	prio, ok := align.ParsePriority(c.Priority)
	if !ok {
		return align.Options{}, fmt.Errorf("priority %q: %w", c.Priority, ErrInvalidConfig)
	}
	scan, ok := align.ParseScan(c.Scan)
	if !ok {
		return align.Options{}, fmt.Errorf("scan %q: %w", c.Scan, ErrInvalidConfig)
	}

	return align.Options{
		Gap:      g,
		Matrix:   m,
		TwoBit:   c.TwoBit,
		Output:   out,
		Priority: prio,
		BaseCase: c.BaseCase,
		Scan:     scan,
		MinScore: c.MinScore,
	}, nil
}

func (c Config) output() (align.Output, error) {
	switch strings.ToLower(c.Output) {
	case "", "trimmed":
		return align.Trimmed, nil
	case "full":
		return align.Full, nil
	}

	return align.Trimmed, fmt.Errorf("output %q: %w", c.Output, ErrInvalidConfig)
}

// matrix loads the table named by ScoreMatrix or Matrix and applies
// ScorePairs on top.
func (c Config) matrix() (*scoring.Plain, error) {
	var (
		base *scoring.Plain
		err  error
	)
	if c.ScoreMatrix != "" {
		base, err = parseFile(c.ScoreMatrix, scoring.Parse)
	} else {
		base, err = scoring.Builtin(c.Matrix)
	}
	if err != nil {
		return nil, err
	}
	if c.ScorePairs == "" {
		return base, nil
	}

	return parseFile(c.ScorePairs, func(r io.Reader) (*scoring.Plain, error) {
		return scoring.ParsePairs(r, base)
	})
}

func parseFile(path string, parse func(io.Reader) (*scoring.Plain, error)) (*scoring.Plain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
