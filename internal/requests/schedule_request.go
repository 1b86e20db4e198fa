package requests

type Job struct {
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
}

// ScheduleRequests carries the processes to simulate, either as Jobs or as a
// "arrival,burst;arrival,burst" Sequence, plus optional per-request overrides
// of the configured scheduler settings.
type ScheduleRequests struct {
	Jobs           []Job  `json:"jobs"`
	Sequence       string `json:"sequence,omitempty"`
	Preset         int    `json:"preset,omitempty"`
	TimeQuantum    *int   `json:"time_quantum,omitempty"`
	BurstThreshold *int   `json:"burst_threshold,omitempty"`
}

// SplitJobs returns the arrival and burst times of jobs as index-aligned slices.
func SplitJobs(jobs []Job) (arrivalTimes, burstTimes []int) {
	arrivalTimes = make([]int, len(jobs))
	burstTimes = make([]int, len(jobs))
	for i, job := range jobs {
		arrivalTimes[i] = job.ArrivalTime
		burstTimes[i] = job.BurstTime
	}
	return arrivalTimes, burstTimes
}

// JoinJobs is the inverse of SplitJobs. It truncates to the shorter slice.
func JoinJobs(arrivalTimes, burstTimes []int) []Job {
	n := len(arrivalTimes)
	if len(burstTimes) < n {
		n = len(burstTimes)
	}
	jobs := make([]Job, n)
	for i := 0; i < n; i++ {
		jobs[i] = Job{ArrivalTime: arrivalTimes[i], BurstTime: burstTimes[i]}
	}
	return jobs
}
