package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/queue"
)

// DefaultTimeQuantum is the round-robin slice used when none is configured.
const DefaultTimeQuantum = 2

// Options tunes the algorithms. The zero value selects every default.
type Options struct {
	// TimeQuantum is the round-robin slice; 0 means DefaultTimeQuantum.
	TimeQuantum int
	// BurstThreshold splits two-level fcfs into tiers: bursts <= threshold go to
	// the primary tier. 0 means the mean burst of the input.
	BurstThreshold int
	// QueueCapacity bounds every ready queue. Nil means unbounded.
	QueueCapacity *int
}

func (o Options) validate() error {
	if o.TimeQuantum < 0 {
		return &ValidationError{Kind: KindInvalidQuantum, Index: -1, Value: o.TimeQuantum}
	}
	if o.BurstThreshold < 0 {
		return &ValidationError{Kind: KindInvalidThreshold, Index: -1, Value: o.BurstThreshold}
	}
	if o.QueueCapacity != nil && *o.QueueCapacity < 1 {
		return &ValidationError{Kind: KindInvalidCapacity, Index: -1, Value: *o.QueueCapacity}
	}
	return nil
}

// WithTimeQuantum returns o with an explicit round-robin quantum. An explicit
// quantum must be >= 1; only the zero value of Options selects the default.
func (o Options) WithTimeQuantum(quantum int) (Options, error) {
	if quantum < 1 {
		return o, &ValidationError{Kind: KindInvalidQuantum, Index: -1, Value: quantum}
	}
	o.TimeQuantum = quantum
	return o, nil
}

func (o Options) timeQuantum() int {
	if o.TimeQuantum == 0 {
		return DefaultTimeQuantum
	}
	return o.TimeQuantum
}

// newReadyQueue creates a queue of process indices honoring QueueCapacity.
func (o Options) newReadyQueue() *queue.Queue[int] {
	if o.QueueCapacity != nil {
		return queue.New[int](queue.WithCapacity(*o.QueueCapacity))
	}
	return queue.New[int]()
}

// validate checks the process sequence and the options together.
func validate(arrivalTimes, burstTimes []int, opts Options) error {
	if err := validateInput(arrivalTimes, burstTimes); err != nil {
		return err
	}
	return opts.validate()
}

// admitError wraps a failed enqueue with the algorithm and, for a bounded
// queue, its contents and capacity.
func admitError(alg Algorithm, q *queue.Queue[int], err error) error {
	if capacity, ok := q.Capacity(); ok {
		return fmt.Errorf("%s: ready queue %s at capacity %d: %w", alg, q, capacity, err)
	}
	return fmt.Errorf("%s: %w", alg, err)
}
