package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

func generateResponse(algorithm Algorithm, procs []*core.Process, cpu *core.Cpu) *responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(procs))
	for _, p := range procs {
		proccessDetails = append(proccessDetails, generateProcessDetails(p))
	}
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	metric := cpu.Metric()
	var throughput float64
	if metric.TotalTime > 0 {
		throughput = float64(len(procs)) / float64(metric.TotalTime)
	}
	return &responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		CpuUtilization:        metric.Utilization(),
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		History:               cpu.History(),
		Details:               proccessDetails,
	}
}

func generateProcessDetails(process *core.Process) responses.ProcessResponse {
	if process.State != core.StateDone {
		panic("generateProcessDetails: process " + process.String() + " did not complete")
	}
	return responses.ProcessResponse{
		ProcessId:      process.Index,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		CompletionTime: process.CompletionTime,
		ResponseTime:   process.ResponseTime(),
		TurnAroundTime: process.TurnaroundTime(),
		WaitingTime:    process.WaitTime(),
	}
}
