package launch

import (
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// FindProcess reports whether a process whose executable name matches
// name (case-insensitive) is currently running, and its PID. Used by
// the status command to tell whether the main application is already
// up; the launch pipeline itself never branches on it.
func FindProcess(name string) (int32, bool) {
	procs, err := process.Processes()
	if err != nil {
		return 0, false
	}
	want := strings.ToLower(name)
	for _, p := range procs {
		n, err := p.Name()
		if err != nil {
			continue
		}
		if strings.ToLower(n) == want {
			return p.Pid, true
		}
	}
	return 0, false
}
