package schedulers

import (
	"math/rand"
	"testing"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

func run(id int, start, end int) core.Segment {
	return core.Segment{ProcessIndex: id, Start: start, End: end}
}

func idle(start, end int) core.Segment {
	return core.Segment{ProcessIndex: core.IdleProcessIndex, Start: start, End: end, Idle: true}
}

type scheduleFunc func(arrivalTimes, burstTimes []int, opts Options) (*responses.ScheduleResponse, error)

func allSchedulers() map[Algorithm]scheduleFunc {
	return map[Algorithm]scheduleFunc{
		FirstComeFirstServe:         ScheduleFirstComeFirstServe,
		ShortestJobFirst:            ScheduleShortestJobFirst,
		RoundRobin:                  ScheduleRoundRobin,
		TwoLevelFirstComeFirstServe: ScheduleTwoLevelFirstComeFirstServe,
	}
}

// serviceOrder lists process indices of non-idle segments in timeline order.
func serviceOrder(history []core.Segment) []int {
	order := make([]int, 0, len(history))
	for _, seg := range history {
		if !seg.Idle {
			order = append(order, seg.ProcessIndex)
		}
	}
	return order
}

// randomWorkload builds n processes with arrivals in [0, maxArrival] and
// bursts in [1, maxBurst].
func randomWorkload(rng *rand.Rand, n, maxArrival, maxBurst int) (arrivalTimes, burstTimes []int) {
	arrivalTimes = make([]int, n)
	burstTimes = make([]int, n)
	for i := 0; i < n; i++ {
		arrivalTimes[i] = rng.Intn(maxArrival + 1)
		burstTimes[i] = rng.Intn(maxBurst) + 1
	}
	return arrivalTimes, burstTimes
}

// assertTimelineInvariants checks the properties every report must satisfy.
func assertTimelineInvariants(t *testing.T, arrivalTimes, burstTimes []int, response *responses.ScheduleResponse) {
	t.Helper()
	if response == nil {
		t.Fatal("nil response")
	}
	if response.History == nil {
		t.Fatal("computed response has nil history")
	}

	// work conservation
	totalBurst, worked := 0, 0
	for _, b := range burstTimes {
		totalBurst += b
	}
	perProcess := make([]int, len(burstTimes))
	for _, seg := range response.History {
		if seg.Duration() <= 0 {
			t.Errorf("empty or negative segment %v", seg)
		}
		if !seg.Idle {
			worked += seg.Duration()
			perProcess[seg.ProcessIndex] += seg.Duration()
			if seg.Start < arrivalTimes[seg.ProcessIndex] {
				t.Errorf("segment %v starts before arrival %d", seg, arrivalTimes[seg.ProcessIndex])
			}
		}
	}
	if worked != totalBurst {
		t.Errorf("worked %d units, want %d", worked, totalBurst)
	}
	for i := range burstTimes {
		if perProcess[i] != burstTimes[i] {
			t.Errorf("process %d ran %d units, want %d", i, perProcess[i], burstTimes[i])
		}
	}

	// contiguous, ordered, starting at the first arrival
	firstArrival := arrivalTimes[0]
	for _, a := range arrivalTimes {
		if a < firstArrival {
			firstArrival = a
		}
	}
	clock := firstArrival
	for i, seg := range response.History {
		if seg.Start != clock {
			t.Errorf("segment %d %v starts at %d, want %d", i, seg, seg.Start, clock)
		}
		if seg.Idle && i > 0 && response.History[i-1].Idle {
			t.Errorf("consecutive idle segments at %d", i)
		}
		clock = seg.End
	}
	if response.TotalTime != clock-firstArrival {
		t.Errorf("TotalTime = %d, want %d", response.TotalTime, clock-firstArrival)
	}

	// per-process accounting and the mean
	if len(response.Details) != len(arrivalTimes) {
		t.Fatalf("got %d details, want %d", len(response.Details), len(arrivalTimes))
	}
	waitSum := 0
	for i, d := range response.Details {
		if d.ProcessId != i {
			t.Errorf("details[%d].ProcessId = %d", i, d.ProcessId)
		}
		if d.CompletionTime < arrivalTimes[i]+burstTimes[i] {
			t.Errorf("process %d completes at %d before arrival+burst", i, d.CompletionTime)
		}
		if d.WaitingTime != d.CompletionTime-arrivalTimes[i]-burstTimes[i] {
			t.Errorf("process %d wait %d inconsistent", i, d.WaitingTime)
		}
		if d.WaitingTime < 0 {
			t.Errorf("process %d negative wait %d", i, d.WaitingTime)
		}
		waitSum += d.WaitingTime
	}
	want := float64(waitSum) / float64(len(arrivalTimes))
	if response.AverageWaitingTime != want {
		t.Errorf("AverageWaitingTime = %v, want %v", response.AverageWaitingTime, want)
	}
	if response.AverageWaitingTime < 0 {
		t.Errorf("negative AverageWaitingTime %v", response.AverageWaitingTime)
	}
}
