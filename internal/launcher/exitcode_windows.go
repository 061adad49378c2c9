//go:build windows

package launcher

import "os/exec"

// exitCode returns the child's exit code. Windows has no signal deaths, so
// no mapping is needed.
func exitCode(err *exec.ExitError) int {
	return err.ExitCode()
}
