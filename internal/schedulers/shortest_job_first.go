package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/queue"
	"cpu-scheduler/internal/responses"
)

// ScheduleShortestJobFirst is non-preemptive SJF: whenever the cpu frees up it
// picks the arrived process with the smallest remaining burst. A started
// process always runs to completion.
func ScheduleShortestJobFirst(arrivalTimes, burstTimes []int, opts Options) (*responses.ScheduleResponse, error) {
	if err := validate(arrivalTimes, burstTimes, opts); err != nil {
		return nil, err
	}
	logrus.Debugf("running sjf algorithm on %d processes", len(arrivalTimes))

	procs := core.NewProcesses(arrivalTimes, burstTimes)
	arrivals := core.NewArrivals(procs)
	cpu := core.NewCpu(arrivals.FirstArrivalTime())
	readyQueue := opts.newReadyQueue()
	admit := func(p *core.Process) error {
		return readyQueue.Enqueue(p.Index)
	}

	for arrivals.Pending() || readyQueue.Len() > 0 {
		if err := arrivals.AdmitUntil(cpu.Clock(), admit); err != nil {
			return nil, admitError(ShortestJobFirst, readyQueue, err)
		}
		if readyQueue.Len() == 0 {
			cpu.IdleUntil(arrivals.NextArrivalTime())
			continue
		}
		pid, err := dequeueShortest(readyQueue, procs)
		if err != nil {
			return nil, admitError(ShortestJobFirst, readyQueue, err)
		}
		logrus.Debugf("pid: %d dispatched at %d with burst %d", pid, cpu.Clock(), procs[pid].RemainingTime)
		cpu.Execute(procs[pid], procs[pid].RemainingTime)
	}

	return generateResponse(ShortestJobFirst, procs, cpu), nil
}

// dequeueShortest removes the shortest job from readyQueue. The rest of the
// queue keeps its relative order.
func dequeueShortest(readyQueue *queue.Queue[int], procs []*core.Process) (int, error) {
	waiting := make([]int, 0, readyQueue.Len())
	for readyQueue.Len() > 0 {
		pid, _ := readyQueue.Dequeue()
		waiting = append(waiting, pid)
	}
	best := 0
	for i := 1; i < len(waiting); i++ {
		if shorterJob(procs[waiting[i]], procs[waiting[best]]) {
			best = i
		}
	}
	for i, pid := range waiting {
		if i == best {
			continue
		}
		if err := readyQueue.Enqueue(pid); err != nil {
			return 0, err
		}
	}
	return waiting[best], nil
}

// shorterJob orders by remaining burst, then arrival time, then index.
func shorterJob(a, b *core.Process) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Index < b.Index
}
