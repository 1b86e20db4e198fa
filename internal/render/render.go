// Package render prints scheduling reports for terminals.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/workload"
)

// Titles maps algorithm keys to display names.
var Titles = map[string]string{
	"fcfs":   "First-come, first-serve",
	"sjf":    "Shortest-job-first",
	"rr":     "Round-robin",
	"2xfcfs": "Two-level first-come, first-serve",
}

// Report writes the title, the gantt line and the per-process table.
func Report(w io.Writer, response *responses.ScheduleResponse) {
	if response == nil {
		_, _ = fmt.Fprintln(w, "no schedule computed")
		return
	}
	title, ok := Titles[response.Algorithm]
	if !ok {
		title = response.Algorithm
	}
	Title(w, title)
	Gantt(w, response.History)
	Schedule(w, response)
}

// Title writes a framed heading.
func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Gantt writes one cell per segment followed by the segment boundaries.
func Gantt(w io.Writer, history []core.Segment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, seg := range history {
		label := "-"
		if !seg.Idle {
			label = fmt.Sprintf("P%d", seg.ProcessIndex)
		}
		padding := strings.Repeat(" ", (8-len(label))/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, seg := range history {
		_, _ = fmt.Fprint(w, seg.Start, "\t")
		if i == len(history)-1 {
			_, _ = fmt.Fprint(w, seg.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// Schedule writes the per-process table with averages in the footer.
func Schedule(w io.Writer, response *responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Response", "Wait", "Turnaround", "Exit"})
	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
		})
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization %.2f%%, idle %d of %d time units\n\n",
		response.CpuUtilization*100, response.IdleTime, response.TotalTime)
}

// Summary writes one row per algorithm comparing the averages.
func Summary(w io.Writer, reports []*responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg wait", "Avg response", "Avg turnaround", "Utilization", "Total time"})
	for _, r := range reports {
		if r == nil {
			continue
		}
		table.Append([]string{
			r.Algorithm,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.CpuUtilization),
			fmt.Sprint(r.TotalTime),
		})
	}
	table.Render()
}

// Presets lists the built-in sequences.
func Presets(w io.Writer, presets []workload.Preset) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Preset", "Processes", "Sequence"})
	table.SetAutoWrapText(false)
	for _, p := range presets {
		table.Append([]string{fmt.Sprint(p.ID), fmt.Sprint(len(p.ArrivalTimes)), p.Sequence()})
	}
	table.Render()
}
