package responses

import "cpu-scheduler/internal/core"

// NotComputed is the average_waiting_time reported when no algorithm ran.
const NotComputed = -1

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	CompletionTime int `json:"completion_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

// ScheduleResponse is the report produced by one scheduling algorithm.
// A nil *ScheduleResponse means nothing was computed; History is never nil on
// a computed report.
type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	History               []core.Segment    `json:"history"`
	Details               []ProcessResponse `json:"details"`
}

// Empty returns the wire shape used when no simulation was performed:
// average waiting time -1 and a null history.
func Empty() ScheduleResponse {
	return ScheduleResponse{AverageWaitingTime: NotComputed}
}

// ErrorResponse is returned by the api with a non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Index *int   `json:"index,omitempty"`
	ScheduleResponse
}
