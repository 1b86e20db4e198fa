package workload

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/requests"
)

// File is a workload loaded from YAML. Exactly one of Processes and Sequence
// must be set.
//
//	processes:
//	  - arrival_time: 0
//	    burst_time: 4
//	  - arrival_time: 2
//	    burst_time: 3
//	time_quantum: 2
type File struct {
	Name           string         `yaml:"name,omitempty"`
	Processes      []requests.Job `yaml:"processes,omitempty"`
	Sequence       string         `yaml:"sequence,omitempty"`
	TimeQuantum    *int           `yaml:"time_quantum,omitempty"`
	BurstThreshold *int           `yaml:"burst_threshold,omitempty"`
}

// LoadFile reads and decodes a workload file. Unknown keys are rejected.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload file: %w", err)
	}
	return DecodeFile(data)
}

// DecodeFile decodes a YAML workload document.
func DecodeFile(data []byte) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing workload file: %w", err)
	}
	if len(f.Processes) > 0 && f.Sequence != "" {
		return nil, fmt.Errorf("workload file sets both processes and sequence")
	}
	if len(f.Processes) == 0 && f.Sequence == "" {
		return nil, fmt.Errorf("workload file has neither processes nor sequence")
	}
	logrus.Debugf("loaded workload %q", f.Name)
	return &f, nil
}

// Times returns the arrival and burst times described by the file.
func (f *File) Times() (arrivalTimes, burstTimes []int, err error) {
	if f.Sequence != "" {
		return ParseSequence(f.Sequence)
	}
	arrivalTimes, burstTimes = requests.SplitJobs(f.Processes)
	return arrivalTimes, burstTimes, nil
}
