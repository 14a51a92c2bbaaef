package builtin

import (
	"fmt"
	"strings"
)

func init() {
	add("kill", "signal processes or jobs", Kill)
}

// Kill converts kill invocations. Job specs become lookups over the job
// table; multiple PIDs iterate with each. Only non-default signals are
// spelled out (`--signal`).
func Kill(args []string) string {
	if len(args) == 0 {
		return "kill"
	}

	signal := "TERM"
	listSignals := false
	var pids []string
	var jobSpecs []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-l" || arg == "--list":
			listSignals = true
		case arg == "-s":
			if i+1 < len(args) {
				signal = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			// -SIGNAL or -NUM.
			signal = arg[1:]
		case strings.HasPrefix(arg, "%"):
			jobSpecs = append(jobSpecs, arg)
		default:
			pids = append(pids, arg)
		}
	}

	if listSignals {
		return "# Signal list: HUP INT QUIT ILL TRAP ABRT BUS FPE KILL USR1 SEGV USR2 PIPE ALRM TERM"
	}

	var out strings.Builder

	for i, spec := range jobSpecs {
		if i > 0 {
			out.WriteString("; ")
		}
		out.WriteString(jobKillPrefix(spec))
		if signal != "TERM" {
			fmt.Fprintf(&out, " --signal %s", signal)
		}
		out.WriteString(" $pid }")
	}

	if len(pids) > 0 {
		if out.Len() > 0 {
			out.WriteString("; ")
		}
		if len(pids) == 1 {
			out.WriteString("kill")
			if signal != "TERM" {
				fmt.Fprintf(&out, " --signal %s", signal)
			}
			fmt.Fprintf(&out, " %s", pids[0])
		} else {
			fmt.Fprintf(&out, "[%s] | each { |pid| kill", strings.Join(pids, " "))
			if signal != "TERM" {
				fmt.Fprintf(&out, " --signal %s", signal)
			}
			out.WriteString(" $pid }")
		}
	}

	if len(pids) == 0 && len(jobSpecs) == 0 {
		return "kill # Usage: kill [-signal] pid..."
	}

	return out.String()
}

func jobKillPrefix(spec string) string {
	id := strings.TrimPrefix(spec, "%")
	switch id {
	case "%", "+":
		id = "current"
	case "-":
		id = "previous"
	}
	return fmt.Sprintf("jobs | where job_id == %q | get pid | each { |pid| kill", id)
}
