package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// IdleProcessIndex is the ProcessIndex carried by idle segments.
const IdleProcessIndex = -1

// Segment is one contiguous interval [Start, End) of the cpu timeline.
type Segment struct {
	ProcessIndex int  `json:"process_index"`
	Start        int  `json:"start"`
	End          int  `json:"end"`
	Idle         bool `json:"idle,omitempty"`
}

// Duration is the length of the segment in time units.
func (s Segment) Duration() int {
	return s.End - s.Start
}

func (s Segment) String() string {
	if s.Idle {
		return fmt.Sprintf("idle[%d,%d)", s.Start, s.End)
	}
	return fmt.Sprintf("p%d[%d,%d)", s.ProcessIndex, s.Start, s.End)
}

// CpuMetric summarizes the timeline of a single run.
type CpuMetric struct {
	TotalTime       int `json:"total_time"`
	UtilizationTime int `json:"utilization_time"`
	IdleTime        int `json:"idle_time"`
}

// Utilization is the busy fraction of the timeline.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Cpu is a single simulated core driven by a discrete integer clock.
// It records every slice it executes and every idle gap it skips.
type Cpu struct {
	clock   int
	start   int
	history []Segment
	metric  CpuMetric
}

// NewCpu creates a core whose clock starts at start.
func NewCpu(start int) *Cpu {
	return &Cpu{clock: start, start: start, history: make([]Segment, 0)}
}

// Clock returns the current simulated time.
func (c *Cpu) Clock() int {
	return c.clock
}

// IdleUntil advances the clock to t, recording an idle segment for the gap.
// It does nothing when t is not in the future.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	logrus.Debugf("cpu idle from %d to %d", c.clock, t)
	c.history = append(c.history, Segment{ProcessIndex: IdleProcessIndex, Start: c.clock, End: t, Idle: true})
	c.metric.IdleTime += t - c.clock
	c.clock = t
}

// Execute runs p for duration time units starting at the current clock.
// The process is left in StateDone once its remaining time reaches zero and in
// StateRunning otherwise; the caller decides whether to requeue it.
func (c *Cpu) Execute(p *Process, duration int) Segment {
	if duration <= 0 || duration > p.RemainingTime {
		panic(fmt.Sprintf("pid %d: execute %d units with %d remaining", p.Index, duration, p.RemainingTime))
	}
	if p.ArrivalTime > c.clock {
		panic(fmt.Sprintf("pid %d: execute at %d before arrival %d", p.Index, c.clock, p.ArrivalTime))
	}
	if !p.Started() {
		p.FirstStartTime = c.clock
	}
	p.State = StateRunning
	seg := Segment{ProcessIndex: p.Index, Start: c.clock, End: c.clock + duration}
	c.history = append(c.history, seg)
	c.clock += duration
	c.metric.UtilizationTime += duration
	p.RemainingTime -= duration
	logrus.Debugf("pid: %d ran %v, %d remaining", p.Index, seg, p.RemainingTime)
	if p.RemainingTime == 0 {
		p.State = StateDone
		p.CompletionTime = c.clock
	}
	return seg
}

// Requeue moves a preempted process back to the ready state.
func (c *Cpu) Requeue(p *Process) {
	if p.State != StateRunning {
		panic(fmt.Sprintf("pid %d: requeue from state %q", p.Index, p.State))
	}
	p.State = StateReady
}

// History returns the recorded segments in time order.
func (c *Cpu) History() []Segment {
	return c.history
}

// Metric returns the totals accumulated so far.
func (c *Cpu) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock - c.start
	return m
}
