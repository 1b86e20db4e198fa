package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitJobs(t *testing.T) {
	arrivals, bursts := SplitJobs([]Job{{ArrivalTime: 0, BurstTime: 7}, {ArrivalTime: 2, BurstTime: 3}})
	assert.Equal(t, []int{0, 2}, arrivals)
	assert.Equal(t, []int{7, 3}, bursts)
}

func TestSplitJobs_Empty(t *testing.T) {
	arrivals, bursts := SplitJobs(nil)
	assert.Empty(t, arrivals)
	assert.Empty(t, bursts)
}

func TestJoinJobs_RoundTripsSplit(t *testing.T) {
	jobs := []Job{{ArrivalTime: 1, BurstTime: 1}, {ArrivalTime: 4, BurstTime: 9}}
	assert.Equal(t, jobs, JoinJobs(SplitJobs(jobs)))
}

func TestJoinJobs_TruncatesToShorter(t *testing.T) {
	assert.Equal(t, []Job{{ArrivalTime: 1, BurstTime: 5}}, JoinJobs([]int{1, 2}, []int{5}))
}
