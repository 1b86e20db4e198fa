package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/workload"
)

const allAlgorithms = "all"

type runOptions struct {
	sequence  string
	preset    int
	file      string
	algorithm string
}

func newRunCommand(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a workload and print the schedules",
		Example: `  schedsim run --sequence "0,3;1,2;2,1"
  schedsim run --preset 2 --algorithm rr --quantum 3
  schedsim run --file workload.yaml --algorithm 2xfcfs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, root.config)
		},
	}

	runCmd.Flags().StringVar(&opts.sequence, "sequence", "", `Processes as "arrival,burst;arrival,burst"`)
	runCmd.Flags().IntVar(&opts.preset, "preset", 0, "Built-in sequence id (see presets)")
	runCmd.Flags().StringVar(&opts.file, "file", "", "YAML workload file")
	runCmd.Flags().StringVar(&opts.algorithm, "algorithm", allAlgorithms, "fcfs, sjf, rr, 2xfcfs or all")
	runCmd.Flags().Int("quantum", schedulers.DefaultTimeQuantum, "Round-robin time quantum")
	runCmd.Flags().Int("threshold", 0, "Two-level FCFS burst threshold (0 = mean burst)")
	runCmd.Flags().Int("capacity", 0, "Ready queue capacity (0 = unbounded)")
	bindFlags(root.v, runCmd.Flags(), map[string]string{
		"quantum":   config.KeyRoundRobinTimeQuantum,
		"threshold": config.KeyTwoLevelThreshold,
		"capacity":  config.KeyQueueCapacity,
	})
	runCmd.MarkFlagsOneRequired("sequence", "preset", "file")
	runCmd.MarkFlagsMutuallyExclusive("sequence", "preset", "file")
	return runCmd
}

func (o *runOptions) run(cmd *cobra.Command, cfg *config.SchedulerConfig) error {
	arrivalTimes, burstTimes, file, err := o.resolveWorkload()
	if err != nil {
		return err
	}

	opts := cfg.SchedulerOptions()
	// explicit flags win over the workload file, which wins over config
	if file != nil {
		if file.TimeQuantum != nil && !cmd.Flags().Changed("quantum") {
			if opts, err = opts.WithTimeQuantum(*file.TimeQuantum); err != nil {
				return fmt.Errorf("workload file %s: %w", o.file, err)
			}
		}
		if file.BurstThreshold != nil && !cmd.Flags().Changed("threshold") {
			opts.BurstThreshold = *file.BurstThreshold
		}
	}

	out := cmd.OutOrStdout()
	if o.algorithm == allAlgorithms {
		reports, err := schedulers.ScheduleAll(cmd.Context(), arrivalTimes, burstTimes, opts)
		if err != nil {
			return err
		}
		for _, report := range reports {
			render.Report(out, report)
		}
		render.Summary(out, reports)
		return nil
	}

	alg, err := schedulers.ParseAlgorithm(o.algorithm)
	if err != nil {
		return err
	}
	report, err := schedulers.Schedule(alg, arrivalTimes, burstTimes, opts)
	if err != nil {
		return err
	}
	render.Report(out, report)
	render.Summary(out, []*responses.ScheduleResponse{report})
	return nil
}

// resolveWorkload resolves the single process source named on the command line.
func (o *runOptions) resolveWorkload() ([]int, []int, *workload.File, error) {
	switch {
	case o.sequence != "":
		arrivalTimes, burstTimes, err := workload.ParseSequence(o.sequence)
		return arrivalTimes, burstTimes, nil, err
	case o.file == "":
		preset, err := workload.LookupPreset(o.preset)
		if err != nil {
			return nil, nil, nil, err
		}
		return preset.ArrivalTimes, preset.BurstTimes, nil, nil
	}
	file, err := workload.LoadFile(o.file)
	if err != nil {
		return nil, nil, nil, err
	}
	arrivalTimes, burstTimes, err := file.Times()
	if err != nil {
		return nil, nil, nil, err
	}
	logrus.Debugf("workload %q: %d processes", file.Name, len(arrivalTimes))
	return arrivalTimes, burstTimes, file, nil
}
