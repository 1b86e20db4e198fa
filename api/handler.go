package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/queue"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/workload"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	TwoLevelFirstComeFirstServe(ctx *fiber.Ctx) error
	Algorithm(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Presets(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) TwoLevelFirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.TwoLevelFirstComeFirstServe)
}

// Algorithm schedules with the algorithm named in the :algorithm path parameter.
func (s *SchedulerHandlerImpl) Algorithm(ctx *fiber.Ctx) error {
	alg, err := schedulers.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(newErrorResponse(err))
	}
	return s.schedule(ctx, alg)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	arrivalTimes, burstTimes, opts, err := s.parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	response, err := schedulers.ScheduleAll(ctx.UserContext(), arrivalTimes, burstTimes, opts)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(response)
}

type presetResponse struct {
	ID       int            `json:"id"`
	Sequence string         `json:"sequence"`
	Jobs     []requests.Job `json:"jobs"`
}

func (s *SchedulerHandlerImpl) Presets(ctx *fiber.Ctx) error {
	presets := workload.Presets()
	body := make([]presetResponse, 0, len(presets))
	for _, p := range presets {
		body = append(body, presetResponse{
			ID:       p.ID,
			Sequence: p.Sequence(),
			Jobs:     requests.JoinJobs(p.ArrivalTimes, p.BurstTimes),
		})
	}
	return ctx.JSON(body)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, alg schedulers.Algorithm) error {
	arrivalTimes, burstTimes, opts, err := s.parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	response, err := schedulers.Schedule(alg, arrivalTimes, burstTimes, opts)
	if err != nil {
		return writeError(ctx, err)
	}
	logrus.Infof("%s scheduled %d processes, average waiting time %.2f", alg, len(arrivalTimes), response.AverageWaitingTime)
	return ctx.JSON(response)
}

var errInvalidRequestFormat = errors.New("invalid request format")

// parseRequest resolves the body to process times: sequence first, then
// preset, then jobs. Per-request overrides replace the configured options.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) ([]int, []int, schedulers.Options, error) {
	opts := s.config.SchedulerOptions()
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		logrus.Debugf("body parser: %v", err)
		return nil, nil, opts, errInvalidRequestFormat
	}
	if request.TimeQuantum != nil {
		var err error
		if opts, err = opts.WithTimeQuantum(*request.TimeQuantum); err != nil {
			return nil, nil, opts, err
		}
	}
	if request.BurstThreshold != nil {
		opts.BurstThreshold = *request.BurstThreshold
	}

	switch {
	case request.Sequence != "":
		arrivalTimes, burstTimes, err := workload.ParseSequence(request.Sequence)
		return arrivalTimes, burstTimes, opts, err
	case request.Preset != 0:
		preset, err := workload.LookupPreset(request.Preset)
		if err != nil {
			return nil, nil, opts, errInvalidRequestFormat
		}
		return preset.ArrivalTimes, preset.BurstTimes, opts, nil
	}
	arrivalTimes, burstTimes := requests.SplitJobs(request.Jobs)
	return arrivalTimes, burstTimes, opts, nil
}

func newErrorResponse(err error) responses.ErrorResponse {
	body := responses.ErrorResponse{Error: err.Error(), ScheduleResponse: responses.Empty()}
	var validationErr *schedulers.ValidationError
	var sequenceErr *workload.SequenceError
	switch {
	case errors.As(err, &validationErr):
		body.Kind = string(validationErr.Kind)
		if validationErr.Index >= 0 && validationErr.Kind != schedulers.KindLengthMismatch {
			index := validationErr.Index
			body.Index = &index
		}
	case errors.As(err, &sequenceErr):
		body.Kind = string(sequenceErr.Kind)
	case errors.Is(err, queue.ErrCapacityExceeded):
		body.Kind = "capacity_exceeded"
	case errors.Is(err, schedulers.ErrUnknownAlgorithm):
		body.Kind = "unknown_algorithm"
	}
	return body
}

func writeError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errInvalidRequestFormat),
		errors.Is(err, schedulers.ErrInputValidation),
		errors.Is(err, workload.ErrInvalidSequence):
		status = fiber.StatusBadRequest
	case errors.Is(err, queue.ErrCapacityExceeded):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, schedulers.ErrUnknownAlgorithm):
		status = fiber.StatusNotFound
	}
	if status == fiber.StatusInternalServerError {
		logrus.Errorf("can not proccess request: %v", err)
	} else {
		logrus.Debugf("rejected request: %v", err)
	}
	return ctx.Status(status).JSON(newErrorResponse(err))
}
