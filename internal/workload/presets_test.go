package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets_AreValidSequences(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 3)
	for i, p := range presets {
		assert.Equal(t, i+1, p.ID)
		require.Len(t, p.BurstTimes, len(p.ArrivalTimes))
		assert.NoError(t, ValidateSequence(p.Sequence()))
	}
	assert.Equal(t, "0,1;1,11;3,3;4,1;8,6;14,2;25,1", presets[0].Sequence())
}

func TestPresets_ReturnsFreshCopies(t *testing.T) {
	Presets()[0].ArrivalTimes[0] = 99
	assert.Equal(t, 0, Presets()[0].ArrivalTimes[0])
}

func TestLookupPreset(t *testing.T) {
	p, err := LookupPreset(2)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 5, 3, 1, 2, 1}, p.BurstTimes)

	_, err = LookupPreset(4)
	assert.Error(t, err)
}
