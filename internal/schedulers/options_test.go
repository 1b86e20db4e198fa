package schedulers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_WithTimeQuantum(t *testing.T) {
	opts, err := Options{}.WithTimeQuantum(3)
	require.NoError(t, err)
	assert.Equal(t, 3, opts.timeQuantum())

	for _, quantum := range []int{0, -2} {
		_, err := Options{}.WithTimeQuantum(quantum)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), "quantum %d", quantum)
		assert.Equal(t, KindInvalidQuantum, verr.Kind)
		assert.Equal(t, quantum, verr.Value)
	}
}

func TestOptions_ZeroValueSelectsDefaults(t *testing.T) {
	assert.Equal(t, DefaultTimeQuantum, Options{}.timeQuantum())

	readyQueue := Options{}.newReadyQueue()
	_, bounded := readyQueue.Capacity()
	assert.False(t, bounded)
}
