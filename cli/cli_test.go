package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alnseq/cli"
	"github.com/katalvlaran/alnseq/config"
)

func inputs(t *testing.T, ref, qry string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	rp, qp := filepath.Join(dir, "ref.fa"), filepath.Join(dir, "qry.fa")
	require.NoError(t, os.WriteFile(rp, []byte(ref), 0o600))
	require.NoError(t, os.WriteFile(qp, []byte(qry), 0o600))

	return rp, qp
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestGlobal_Report(t *testing.T) {
	rp, qp := inputs(t, ">r\nACGTACGT\n", ">q\nACGACGT\n")

	out, _, err := run(t, "global", "--ref", rp, "--query", qp, "--gap-open", "-3")
	require.NoError(t, err)
	assert.Contains(t, out, "# Alignment Score = 32\n")
	assert.Contains(t, out, "# Query = q\n")
	assert.Contains(t, out, "Ref:     ACGTACGT\n")
	assert.Contains(t, out, "Query:   ACG-ACGT\n")
	assert.Contains(t, out, "Eqx:     ===D====\n")
}

func TestLocal_FullFasta(t *testing.T) {
	rp, qp := inputs(t, ">r\nACGTTTGG\n", ">q\nACGTGG\n")

	out, _, err := run(t, "local", "-r", rp, "-q", qp, "--output", "full", "--format", "fasta")
	require.NoError(t, err)
	assert.Equal(t, ">r\nACGTTTGG\n>q\nACGTGG--\n", out)
}

func TestLinear_SAMToFile(t *testing.T) {
	rp, qp := inputs(t, ">r\nACGTTTGG\n", "ACGTGG\n")
	dest := filepath.Join(t.TempDir(), "out.sam")

	out, logs, err := run(t, "linear", "-r", rp, "-q", qp, "--format", "sam", "-o", dest, "--verbose")
	require.NoError(t, err)
	assert.Empty(t, out, "written to --out instead")
	assert.Contains(t, logs, "score 20")

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(b), "\t4=2S\t")
	assert.Contains(t, string(b), "qry.fa\t0\tr\t1\t")
}

func TestLocal_Scan(t *testing.T) {
	rp, qp := inputs(t, ">r\nCCCCCAAAA\n", ">q\nAAAACCCCC\n")

	out, _, err := run(t, "local", "-r", rp, "-q", qp, "--scan", "matrix", "--min-score", "20",
		"--drop-overlaps", "--format", "sam")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "@SQ"))
	assert.Contains(t, out, "q\t0\tr\t1\t255\t4S5=\t")
	assert.Contains(t, out, "q\t0\tr\t6\t255\t4=5S\t")

	out, _, err = run(t, "local", "-r", rp, "-q", qp, "--scan", "ref-query", "--min-score", "21")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "# Alignment Score ="), "only the C run reaches 21")
	assert.Contains(t, out, "# Alignment Score = 25\n")
}

func TestConfigFile(t *testing.T) {
	rp, qp := inputs(t, ">r\nACGTACGT\n", ">q\nACGACGT\n")
	cfg := filepath.Join(t.TempDir(), "alnseq.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("gap-open: -3\nline-wrap: 0\n"), 0o600))

	out, _, err := run(t, "global", "--config", cfg, "-r", rp, "-q", qp)
	require.NoError(t, err)
	assert.Contains(t, out, "# Alignment Score = 32\n")

	out, _, err = run(t, "global", "--config", cfg, "-r", rp, "-q", qp, "--gap-open", "-5")
	require.NoError(t, err)
	assert.Contains(t, out, "# Alignment Score = 30\n", "flags beat the file")
}

func TestErrors(t *testing.T) {
	rp, qp := inputs(t, ">r\nACGT\n", ">q\nACGT\n")

	_, _, err := run(t, "global", "--query", qp)
	assert.ErrorContains(t, err, "ref")

	_, _, err = run(t, "global", "-r", rp, "-q", qp, "--priority", "first")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "global", "-r", rp, "-q", qp, "--scan", "matrix")
	assert.ErrorIs(t, err, config.ErrInvalidConfig, "scans are local only")

	_, _, err = run(t, "local", "-r", rp, "-q", qp, "--two-bit")
	assert.Error(t, err, "EDNAFULL has 15 symbols")

	_, _, err = run(t, "linear", "-r", filepath.Join(t.TempDir(), "missing.fa"), "-q", qp)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
