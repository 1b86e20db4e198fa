package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

// ScheduleRoundRobin gives each ready process at most one time quantum per
// turn. Processes that arrive during a slice join the ready queue before the
// preempted process is put back at its tail.
func ScheduleRoundRobin(arrivalTimes, burstTimes []int, opts Options) (*responses.ScheduleResponse, error) {
	if err := validate(arrivalTimes, burstTimes, opts); err != nil {
		return nil, err
	}
	timeQuantum := opts.timeQuantum()
	logrus.Debugf("running roundRobin algorithm with timeQuantum = %d on %d processes", timeQuantum, len(arrivalTimes))

	procs := core.NewProcesses(arrivalTimes, burstTimes)
	arrivals := core.NewArrivals(procs)
	cpu := core.NewCpu(arrivals.FirstArrivalTime())
	roundRobinQueue := opts.newReadyQueue()
	admit := func(p *core.Process) error {
		return roundRobinQueue.Enqueue(p.Index)
	}
	wrap := func(err error) error {
		return admitError(RoundRobin, roundRobinQueue, err)
	}

	if err := arrivals.AdmitUntil(cpu.Clock(), admit); err != nil {
		return nil, wrap(err)
	}
	for arrivals.Pending() || roundRobinQueue.Len() > 0 {
		pid, ok := roundRobinQueue.Dequeue()
		if !ok {
			cpu.IdleUntil(arrivals.NextArrivalTime())
			if err := arrivals.AdmitUntil(cpu.Clock(), admit); err != nil {
				return nil, wrap(err)
			}
			continue
		}

		proccess := procs[pid]
		cpu.Execute(proccess, min(proccess.RemainingTime, timeQuantum))

		// arrivals during the slice go ahead of the preempted process
		if err := arrivals.AdmitUntil(cpu.Clock(), admit); err != nil {
			return nil, wrap(err)
		}
		if proccess.State == core.StateDone {
			logrus.Debugf("pid: %d completed at %d", pid, proccess.CompletionTime)
			continue
		}
		logrus.Debugf("pid: %d context switch detected. send proccess to roundRobin queue", pid)
		cpu.Requeue(proccess)
		if err := roundRobinQueue.Enqueue(pid); err != nil {
			return nil, wrap(err)
		}
		logrus.Debugf("roundRobin queue: %s", roundRobinQueue)
	}

	return generateResponse(RoundRobin, procs, cpu), nil
}
