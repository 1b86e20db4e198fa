package schedulers

import (
	"errors"
	"fmt"
	"math"

	"cpu-scheduler/internal/util"
)

var (
	// ErrInputValidation is wrapped by every *ValidationError.
	ErrInputValidation = errors.New("invalid scheduling input")
	// ErrUnknownAlgorithm is returned for a name outside the supported set.
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
)

// ValidationKind identifies which input rule was broken.
type ValidationKind string

const (
	KindLengthMismatch   ValidationKind = "length_mismatch"
	KindEmptyInput       ValidationKind = "empty_input"
	KindNegativeArrival  ValidationKind = "negative_arrival"
	KindNonPositiveBurst ValidationKind = "non_positive_burst"
	KindInvalidQuantum   ValidationKind = "invalid_quantum"
	KindInvalidThreshold ValidationKind = "invalid_threshold"
	KindInvalidCapacity  ValidationKind = "invalid_capacity"
	KindTimeOverflow     ValidationKind = "time_overflow"
)

// ValidationError describes rejected input. Index is the offending process,
// or -1 when the error is not about a single process.
type ValidationError struct {
	Kind  ValidationKind
	Index int
	Value int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindLengthMismatch:
		return fmt.Sprintf("%s: %d arrival times but %d burst times", e.Kind, e.Index, e.Value)
	case KindEmptyInput:
		return string(e.Kind)
	}
	if e.Index >= 0 {
		return fmt.Sprintf("%s: process %d has value %d", e.Kind, e.Index, e.Value)
	}
	return fmt.Sprintf("%s: %d", e.Kind, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrInputValidation
}

// validateInput rejects malformed process sequences before any state is built.
func validateInput(arrivalTimes, burstTimes []int) error {
	if len(arrivalTimes) != len(burstTimes) {
		// Index and Value carry the two lengths.
		return &ValidationError{Kind: KindLengthMismatch, Index: len(arrivalTimes), Value: len(burstTimes)}
	}
	if len(arrivalTimes) == 0 {
		return &ValidationError{Kind: KindEmptyInput, Index: -1}
	}
	totalBurst := 0
	for i := range arrivalTimes {
		if arrivalTimes[i] < 0 {
			return &ValidationError{Kind: KindNegativeArrival, Index: i, Value: arrivalTimes[i]}
		}
		if burstTimes[i] <= 0 {
			return &ValidationError{Kind: KindNonPositiveBurst, Index: i, Value: burstTimes[i]}
		}
		if burstTimes[i] > math.MaxInt-totalBurst {
			return &ValidationError{Kind: KindTimeOverflow, Index: i, Value: burstTimes[i]}
		}
		totalBurst += burstTimes[i]
	}
	return validateTimeline(arrivalTimes, totalBurst)
}

// validateTimeline rejects inputs whose clock could leave the int range. The
// last completion is at most maxArrival + totalBurst, and totalBurst * n bounds
// both the mean-burst comparison and the sums of per-process times.
func validateTimeline(arrivalTimes []int, totalBurst int) error {
	if maxArrival := util.Max(arrivalTimes); maxArrival > math.MaxInt-totalBurst {
		return &ValidationError{Kind: KindTimeOverflow, Index: -1, Value: maxArrival}
	}
	if totalBurst > math.MaxInt/len(arrivalTimes) {
		return &ValidationError{Kind: KindTimeOverflow, Index: -1, Value: totalBurst}
	}
	return nil
}
