package core

// Arrivals walks processes in arrival order and hands them to the scheduler
// once the simulated clock reaches their arrival time.
type Arrivals struct {
	order []*Process
	next  int
}

// NewArrivals creates a cursor over procs sorted by ArrivalOrder.
func NewArrivals(procs []*Process) *Arrivals {
	return &Arrivals{order: ArrivalOrder(procs)}
}

// Pending reports whether some process has not been admitted yet.
func (a *Arrivals) Pending() bool {
	return a.next < len(a.order)
}

// NextArrivalTime returns the arrival time of the next process to be admitted.
// It must only be called when Pending is true.
func (a *Arrivals) NextArrivalTime() int {
	return a.order[a.next].ArrivalTime
}

// FirstArrivalTime is the arrival time of the earliest process.
func (a *Arrivals) FirstArrivalTime() int {
	if len(a.order) == 0 {
		return 0
	}
	return a.order[0].ArrivalTime
}

// AdmitUntil passes every process with arrival <= clock to admit, in arrival
// order, and marks it ready. It stops at the first admit error, leaving that
// process pending.
func (a *Arrivals) AdmitUntil(clock int, admit func(*Process) error) error {
	for a.Pending() && a.order[a.next].ArrivalTime <= clock {
		p := a.order[a.next]
		if err := admit(p); err != nil {
			return err
		}
		p.MarkReady()
		a.next++
	}
	return nil
}
