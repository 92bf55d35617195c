package launch

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// Spawner starts successor processes. Both operations are fire and
// forget: success means process creation succeeded, nothing more. The
// launcher gives up all lifecycle control at spawn time: no handle is
// retained and the child is never waited on.
type Spawner interface {
	// StartInstaller spawns the installer fully detached (new process
	// group, no console, hidden window) with the given args.
	StartInstaller(path string, args []string) error

	// StartMainApp spawns the main application with its working
	// directory set to the executable's directory, so the app's
	// relative-path assumptions hold.
	StartMainApp(path string) error
}

// ProcSpawner is the production Spawner backed by os/exec.
type ProcSpawner struct{}

func (ProcSpawner) StartInstaller(path string, args []string) error {
	cmd := exec.Command(path, args...)
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start installer: %w", err)
	}
	// Release immediately: the installer now owns the update.
	_ = cmd.Process.Release()
	return nil
}

func (ProcSpawner) StartMainApp(path string) error {
	cmd := exec.Command(path)
	cmd.Dir = filepath.Dir(path)
	independent(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", filepath.Base(path), err)
	}
	_ = cmd.Process.Release()
	return nil
}
