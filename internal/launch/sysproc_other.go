//go:build !windows

package launch

import (
	"os/exec"
	"syscall"
)

// Detach from this session/process group so the child outlives the
// launcher.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}

func independent(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
