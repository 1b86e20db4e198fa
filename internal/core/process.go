package core

import (
	"fmt"
	"sort"
)

// ProcessState is the lifecycle stage of a simulated process.
type ProcessState string

const (
	StatePending ProcessState = "pending" // not arrived yet
	StateReady   ProcessState = "ready"   // arrived, waiting for the cpu
	StateRunning ProcessState = "running" // on the cpu
	StateDone    ProcessState = "done"
)

const notStarted = -1

// Process is the working copy of one input process for a single simulation run.
// Index is the position in the caller's input and doubles as the process id.
type Process struct {
	Index          int
	ArrivalTime    int
	BurstTime      int
	RemainingTime  int
	FirstStartTime int
	CompletionTime int
	State          ProcessState
}

// NewProcesses builds fresh working copies from index-aligned input slices.
// The input slices are not retained.
func NewProcesses(arrivalTimes, burstTimes []int) []*Process {
	procs := make([]*Process, len(arrivalTimes))
	for i := range arrivalTimes {
		procs[i] = &Process{
			Index:          i,
			ArrivalTime:    arrivalTimes[i],
			BurstTime:      burstTimes[i],
			RemainingTime:  burstTimes[i],
			FirstStartTime: notStarted,
			State:          StatePending,
		}
	}
	return procs
}

// Started reports whether the process has been dispatched at least once.
func (p *Process) Started() bool {
	return p.FirstStartTime != notStarted
}

// TurnaroundTime is completion minus arrival.
func (p *Process) TurnaroundTime() int {
	return p.CompletionTime - p.ArrivalTime
}

// WaitTime is the time spent ready but not running: turnaround minus burst.
func (p *Process) WaitTime() int {
	return p.TurnaroundTime() - p.BurstTime
}

// ResponseTime is the delay between arrival and the first dispatch.
func (p *Process) ResponseTime() int {
	return p.FirstStartTime - p.ArrivalTime
}

// MarkReady moves a pending process into the ready state.
func (p *Process) MarkReady() {
	if p.State != StatePending {
		panic(fmt.Sprintf("pid %d: MarkReady from state %q", p.Index, p.State))
	}
	p.State = StateReady
}

func (p *Process) String() string {
	return fmt.Sprintf("pid=%d arrival=%d burst=%d remaining=%d state=%s",
		p.Index, p.ArrivalTime, p.BurstTime, p.RemainingTime, p.State)
}

// ArrivalOrder returns the processes sorted by arrival time.
// Equal arrivals keep input order, so the lower index comes first.
func ArrivalOrder(procs []*Process) []*Process {
	ordered := make([]*Process, len(procs))
	copy(ordered, procs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ArrivalTime < ordered[j].ArrivalTime
	})
	return ordered
}
