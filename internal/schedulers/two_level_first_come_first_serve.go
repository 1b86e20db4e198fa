package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// ScheduleTwoLevelFirstComeFirstServe runs two FCFS queues with fixed priority.
//
// A process joins the primary queue when its burst is at most the threshold
// (Options.BurstThreshold, or the mean burst when it is 0) and the secondary
// queue otherwise. Whenever the cpu frees up the head of the primary queue
// runs; the secondary queue is drained only while the primary queue is empty.
// Nothing is preempted: a secondary process that started finishes even if a
// primary process arrives meanwhile.
func ScheduleTwoLevelFirstComeFirstServe(arrivalTimes, burstTimes []int, opts Options) (*responses.ScheduleResponse, error) {
	if err := validate(arrivalTimes, burstTimes, opts); err != nil {
		return nil, err
	}
	inPrimary := primaryTier(burstTimes, opts.BurstThreshold)
	logrus.Debugf("running 2x fcfs algorithm on %d processes", len(arrivalTimes))

	procs := core.NewProcesses(arrivalTimes, burstTimes)
	arrivals := core.NewArrivals(procs)
	cpu := core.NewCpu(arrivals.FirstArrivalTime())
	primaryQueue := opts.newReadyQueue()
	secondaryQueue := opts.newReadyQueue()
	admit := func(p *core.Process) error {
		tier := secondaryQueue
		if inPrimary(p.BurstTime) {
			tier = primaryQueue
		}
		if err := tier.Enqueue(p.Index); err != nil {
			return admitError(TwoLevelFirstComeFirstServe, tier, err)
		}
		return nil
	}

	for arrivals.Pending() || primaryQueue.Len() > 0 || secondaryQueue.Len() > 0 {
		if err := arrivals.AdmitUntil(cpu.Clock(), admit); err != nil {
			return nil, err
		}
		tier, name := primaryQueue, "primary"
		if _, ok := primaryQueue.Peek(); !ok {
			tier, name = secondaryQueue, "secondary"
		}
		pid, ok := tier.Dequeue()
		if !ok {
			cpu.IdleUntil(arrivals.NextArrivalTime())
			continue
		}
		logrus.Debugf("pid: %d %s queue send process to cpu at %d", pid, name, cpu.Clock())
		cpu.Execute(procs[pid], procs[pid].RemainingTime)
	}

	return generateResponse(TwoLevelFirstComeFirstServe, procs, cpu), nil
}

// primaryTier returns the tier predicate. With a zero threshold a burst is
// primary when burst <= mean(burstTimes), compared exactly as burst*n <= sum.
func primaryTier(burstTimes []int, threshold int) func(burst int) bool {
	if threshold > 0 {
		return func(burst int) bool { return burst <= threshold }
	}
	n, sum := len(burstTimes), util.Sum(burstTimes)
	return func(burst int) bool { return burst*n <= sum }
}
