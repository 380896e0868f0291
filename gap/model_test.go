package gap_test

import (
	"testing"

	"github.com/katalvlaran/alnseq/gap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_RejectsPositivePenalties verifies ErrInvalidGapPenalty on open/extend > 0.
func TestNew_RejectsPositivePenalties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		open, extend int
		wantErr      error
	}{
		{"defaults", -10, -1, nil},
		{"zero penalties", 0, 0, nil},
		{"positive open", 1, -1, gap.ErrInvalidGapPenalty},
		{"positive extend", -10, 2, gap.ErrInvalidGapPenalty},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := gap.New(tc.open, tc.extend, false)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestCost_Affine checks open-then-extend charging and continued runs.
func TestCost_Affine(t *testing.T) {
	g, err := gap.New(-10, -1, false)
	require.NoError(t, err)

	assert.Equal(t, 0, g.Cost(0, true), "empty run is free")
	assert.Equal(t, -10, g.Cost(1, true), "single opened position")
	assert.Equal(t, -12, g.Cost(3, true), "open + 2 extends")
	assert.Equal(t, -3, g.Cost(3, false), "continued run only extends")
	assert.Equal(t, -10, g.Step(false), "new gap opens")
	assert.Equal(t, -1, g.Step(true), "open gap extends")
}

// TestCost_NoExtend checks that every position costs Open in NoExtend mode.
func TestCost_NoExtend(t *testing.T) {
	g, err := gap.New(-4, -1, true)
	require.NoError(t, err)

	assert.Equal(t, -12, g.Cost(3, true))
	assert.Equal(t, -12, g.Cost(3, false), "run position is irrelevant")
	assert.Equal(t, g.Step(false), g.Step(true))
}

// TestDefault matches the documented constants.
func TestDefault(t *testing.T) {
	g := gap.Default()
	require.NoError(t, g.Validate())
	assert.Equal(t, gap.DefaultOpen, g.Open)
	assert.Equal(t, gap.DefaultExtend, g.Extend)
	assert.Equal(t, "gap(open=-10, extend=-1)", g.String())
}
