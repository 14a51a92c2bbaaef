package builtin

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	add("jobs", "list background jobs", Jobs)
}

// Jobs converts jobs invocations to filters over the Nushell job table.
func Jobs(args []string) string {
	if len(args) == 0 {
		return "jobs"
	}

	showPids := false
	showLong := false
	showRunning := false
	showStopped := false
	var jobSpecs []string

	for _, arg := range args {
		switch {
		case arg == "-l":
			showLong = true
		case arg == "-p":
			showPids = true
		case arg == "-r":
			showRunning = true
		case arg == "-s":
			showStopped = true
		case arg == "-n" || arg == "-x":
			// Status-change filtering and per-job execution are not modeled.
		case strings.HasPrefix(arg, "%"):
			jobSpecs = append(jobSpecs, arg)
		default:
			if _, err := strconv.Atoi(arg); err == nil {
				jobSpecs = append(jobSpecs, "%"+arg)
			}
		}
	}

	out := "jobs"
	if showPids {
		out += " | get pid"
	} else if showLong {
		out += " | select job_id pid command status"
	}

	if showRunning && !showStopped {
		out += " | where status == \"running\""
	} else if showStopped && !showRunning {
		out += " | where status == \"stopped\""
	}

	if len(jobSpecs) > 0 {
		var filters []string
		for _, spec := range jobSpecs {
			filters = append(filters, jobIDFilter(spec))
		}
		out += fmt.Sprintf(" | where (%s)", strings.Join(filters, " or "))
	}

	return out
}

func jobIDFilter(spec string) string {
	if !strings.HasPrefix(spec, "%") {
		return fmt.Sprintf("job_id == %q", spec)
	}
	switch id := spec[1:]; id {
	case "%", "+":
		return `job_id == "current"`
	case "-":
		return `job_id == "previous"`
	default:
		return fmt.Sprintf("job_id == %q", id)
	}
}
