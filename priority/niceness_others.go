//go:build unix && !linux

package priority

import (
	"errors"

	"golang.org/x/sys/unix"
)

const (
	minNiceness = -20
	maxNiceness = 20
)

// Outside linux getpriority goes through libc, where -1 is both a valid
// niceness and the failure marker, and errno is only meaningful when it was
// cleared before the call. A -1 reported with an error is therefore
// confirmed against the process table before it is trusted as a failure.
func getNiceness(pid int) (int, error) {
	niceness, err := unix.Getpriority(unix.PRIO_PROCESS, pid)
	if err == nil {
		return niceness, nil
	}
	if niceness != -1 {
		return 0, err
	}

	killErr := unix.Kill(pid, 0)
	if killErr == nil || errors.Is(killErr, unix.EPERM) {
		return -1, nil
	}
	return 0, killErr
}
