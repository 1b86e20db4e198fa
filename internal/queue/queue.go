// Package queue implements the FIFO ready queue shared by the schedulers.
package queue

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCapacityExceeded is returned by Enqueue when a bounded queue is full.
var ErrCapacityExceeded = errors.New("queue has reached max capacity")

// Option configures a Queue at construction time.
type Option func(*options)

type options struct {
	capacity *int
}

// WithCapacity bounds the queue to at most n items.
// Without it the queue is unbounded.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = &n
	}
}

// Queue is a first-in-first-out container with an optional capacity ceiling.
// It is not safe for concurrent use; every simulation run owns its own queues.
type Queue[T any] struct {
	items    []T
	capacity *int
}

// New creates an empty queue.
func New[T any](opts ...Option) *Queue[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	q := &Queue[T]{capacity: o.capacity}
	if o.capacity != nil && *o.capacity > 0 {
		q.items = make([]T, 0, *o.capacity)
	}
	return q
}

// Enqueue appends item to the tail of the queue.
func (q *Queue[T]) Enqueue(item T) error {
	if q.capacity != nil && len(q.items) >= *q.capacity {
		return fmt.Errorf("enqueue with %d items: %w", len(q.items), ErrCapacityExceeded)
	}
	q.items = append(q.items, item)
	return nil
}

// Dequeue removes and returns the head of the queue.
// The second result is false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return item, true
}

// Peek returns the head of the queue without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Capacity returns the configured bound, or false when the queue is unbounded.
func (q *Queue[T]) Capacity() (int, bool) {
	if q.capacity == nil {
		return 0, false
	}
	return *q.capacity, true
}

func (q *Queue[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range q.items {
		sb.WriteString(fmt.Sprint(val))
		if i < len(q.items)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
