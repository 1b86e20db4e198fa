package schedulers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/responses"
)

// Algorithm names one of the supported scheduling disciplines.
type Algorithm string

const (
	FirstComeFirstServe         Algorithm = "fcfs"
	ShortestJobFirst            Algorithm = "sjf"
	RoundRobin                  Algorithm = "rr"
	TwoLevelFirstComeFirstServe Algorithm = "2xfcfs"
)

// Algorithms lists every algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{FirstComeFirstServe, ShortestJobFirst, RoundRobin, TwoLevelFirstComeFirstServe}
}

// ParseAlgorithm maps a name to an Algorithm. Matching ignores case and
// surrounding space; "2x fcfs" is accepted for the two-level variant.
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "2x fcfs" {
		return TwoLevelFirstComeFirstServe, nil
	}
	for _, alg := range Algorithms() {
		if string(alg) == normalized {
			return alg, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Schedule runs alg over the process sequence.
func Schedule(alg Algorithm, arrivalTimes, burstTimes []int, opts Options) (*responses.ScheduleResponse, error) {
	var (
		response *responses.ScheduleResponse
		err      error
	)
	switch alg {
	case FirstComeFirstServe:
		response, err = ScheduleFirstComeFirstServe(arrivalTimes, burstTimes, opts)
	case ShortestJobFirst:
		response, err = ScheduleShortestJobFirst(arrivalTimes, burstTimes, opts)
	case RoundRobin:
		response, err = ScheduleRoundRobin(arrivalTimes, burstTimes, opts)
	case TwoLevelFirstComeFirstServe:
		response, err = ScheduleTwoLevelFirstComeFirstServe(arrivalTimes, burstTimes, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
	if err != nil {
		if errors.Is(err, ErrInputValidation) {
			metrics.RecordFailure(string(alg), metrics.OutcomeInvalid)
		} else {
			metrics.RecordFailure(string(alg), metrics.OutcomeError)
		}
		return nil, err
	}
	metrics.RecordSimulation(string(alg), response.AverageWaitingTime, response.TotalTime)
	return response, nil
}

// ScheduleAll runs every algorithm concurrently on the same input and returns
// the reports in Algorithms() order. Runs share only the read-only inputs.
func ScheduleAll(ctx context.Context, arrivalTimes, burstTimes []int, opts Options) ([]*responses.ScheduleResponse, error) {
	if err := validate(arrivalTimes, burstTimes, opts); err != nil {
		return nil, err
	}
	algorithms := Algorithms()
	results := make([]*responses.ScheduleResponse, len(algorithms))
	g, ctx := errgroup.WithContext(ctx)
	for i, alg := range algorithms {
		i, alg := i, alg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			response, err := Schedule(alg, arrivalTimes, burstTimes, opts)
			if err != nil {
				return err
			}
			results[i] = response
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logrus.Debugf("all %d algorithms completed", len(algorithms))
	return results, nil
}
