package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

// ScheduleFirstComeFirstServe serves processes in arrival order, each one
// running to completion. Equal arrivals are served by input index.
func ScheduleFirstComeFirstServe(arrivalTimes, burstTimes []int, opts Options) (*responses.ScheduleResponse, error) {
	if err := validate(arrivalTimes, burstTimes, opts); err != nil {
		return nil, err
	}
	logrus.Debugf("running fcfs algorithm on %d processes", len(arrivalTimes))

	procs := core.NewProcesses(arrivalTimes, burstTimes)
	arrivals := core.NewArrivals(procs)
	cpu := core.NewCpu(arrivals.FirstArrivalTime())
	readyQueue := opts.newReadyQueue()
	admit := func(p *core.Process) error {
		return readyQueue.Enqueue(p.Index)
	}

	for arrivals.Pending() || readyQueue.Len() > 0 {
		if err := arrivals.AdmitUntil(cpu.Clock(), admit); err != nil {
			return nil, admitError(FirstComeFirstServe, readyQueue, err)
		}
		pid, ok := readyQueue.Dequeue()
		if !ok {
			cpu.IdleUntil(arrivals.NextArrivalTime())
			continue
		}
		logrus.Debugf("pid: %d dispatched at %d", pid, cpu.Clock())
		cpu.Execute(procs[pid], procs[pid].RemainingTime)
	}

	return generateResponse(FirstComeFirstServe, procs, cpu), nil
}
