// Package workload turns the external process descriptions (text sequences,
// built-in presets and YAML files) into index-aligned arrival and burst times.
package workload

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidSequence is wrapped by every *SequenceError.
var ErrInvalidSequence = errors.New("invalid process sequence")

// SequenceErrorKind identifies the first rule a sequence string broke.
type SequenceErrorKind string

const (
	KindEmpty      SequenceErrorKind = "empty"
	KindWhitespace SequenceErrorKind = "whitespace"
	KindLetters    SequenceErrorKind = "letters"
	KindFormat     SequenceErrorKind = "format"
	KindRange      SequenceErrorKind = "range"
)

// SequenceError reports a rejected sequence. Callers localize Kind.
type SequenceError struct {
	Kind  SequenceErrorKind
	Input string
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrInvalidSequence, e.Kind, e.Input)
}

func (e *SequenceError) Unwrap() error {
	return ErrInvalidSequence
}

var (
	whitespacePattern = regexp.MustCompile(`\s`)
	lettersPattern    = regexp.MustCompile(`[a-zA-Z]`)
	sequencePattern   = regexp.MustCompile(`^(?:\d+,\d+;)*\d+,\d+$`)
)

const (
	pairSeparator  = ";"
	valueSeparator = ","
)

// ValidateSequence checks s against the "arrival,burst;arrival,burst" format.
// Rules are checked in order: empty, whitespace, letters, overall format, and
// finally that every number fits in an int.
func ValidateSequence(s string) error {
	_, _, err := ParseSequence(s)
	return err
}

func checkFormat(s string) error {
	switch {
	case s == "":
		return &SequenceError{Kind: KindEmpty, Input: s}
	case whitespacePattern.MatchString(s):
		return &SequenceError{Kind: KindWhitespace, Input: s}
	case lettersPattern.MatchString(s):
		return &SequenceError{Kind: KindLetters, Input: s}
	case !sequencePattern.MatchString(s):
		return &SequenceError{Kind: KindFormat, Input: s}
	}
	return nil
}

// ParseSequence validates s and splits it into arrival and burst times.
// Value ranges (e.g. zero bursts) are left to the scheduler's validation.
func ParseSequence(s string) (arrivalTimes, burstTimes []int, err error) {
	if err := checkFormat(s); err != nil {
		return nil, nil, err
	}
	pairs := strings.Split(s, pairSeparator)
	arrivalTimes = make([]int, 0, len(pairs))
	burstTimes = make([]int, 0, len(pairs))
	for _, pair := range pairs {
		values := strings.Split(pair, valueSeparator)
		// the pattern admits only digits, so Atoi can fail only on range
		arrival, err := strconv.Atoi(values[0])
		if err != nil {
			return nil, nil, &SequenceError{Kind: KindRange, Input: values[0]}
		}
		burst, err := strconv.Atoi(values[1])
		if err != nil {
			return nil, nil, &SequenceError{Kind: KindRange, Input: values[1]}
		}
		arrivalTimes = append(arrivalTimes, arrival)
		burstTimes = append(burstTimes, burst)
	}
	return arrivalTimes, burstTimes, nil
}

// FormatSequence is the inverse of ParseSequence.
func FormatSequence(arrivalTimes, burstTimes []int) string {
	var sb strings.Builder
	for i := range arrivalTimes {
		if i > 0 {
			sb.WriteString(pairSeparator)
		}
		sb.WriteString(strconv.Itoa(arrivalTimes[i]))
		sb.WriteString(valueSeparator)
		sb.WriteString(strconv.Itoa(burstTimes[i]))
	}
	return sb.String()
}
