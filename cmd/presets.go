package cmd

import (
	"github.com/spf13/cobra"

	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/workload"
)

func newPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in process sequences",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			render.Presets(cmd.OutOrStdout(), workload.Presets())
		},
	}
}
