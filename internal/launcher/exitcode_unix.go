//go:build !windows

package launcher

import (
	"os/exec"
	"syscall"
)

// exitCode maps a child exit to the shell convention: the child's own code,
// or 128+signal when the child was killed. ExitCode alone reports -1 for a
// signal death, which os.Exit would fold into 255.
func exitCode(err *exec.ExitError) int {
	if status, ok := err.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return err.ExitCode()
}
