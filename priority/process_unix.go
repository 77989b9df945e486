//go:build unix

package priority

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

const invalidPID = -1

type handle struct {
	id int
}

func currentHandle() handle {
	return handle{id: unix.Getpid()}
}

func handleFromPID(pid int) handle {
	if pid <= 0 {
		return handle{id: invalidPID}
	}
	return handle{id: pid}
}

func (h handle) pid() int {
	return h.id
}

func (h handle) get() (level, error) {
	if h.id == invalidPID {
		return level{}, ErrNotFound
	}

	niceness, err := getNiceness(h.id)
	if err != nil {
		return level{}, classifyGetError(err)
	}
	return level{niceness: niceness}, nil
}

func (h handle) set(l level) error {
	if h.id == invalidPID {
		return ErrNotFound
	}

	err := unix.Setpriority(unix.PRIO_PROCESS, h.id, l.niceness)
	if err != nil {
		return classifySetError(err)
	}
	return nil
}

// getpriority(2) documents ESRCH as the only failure for a valid PRIO_PROCESS
// query; anything else means the call itself was malformed.
func classifyGetError(err error) error {
	if errors.Is(err, unix.ESRCH) {
		return ErrNotFound
	}
	panic(fmt.Sprintf("Internal inconsistency: unexpected getpriority error: %s", err))
}

func classifySetError(err error) error {
	switch {
	case errors.Is(err, unix.ESRCH):
		return ErrNotFound
	case errors.Is(err, unix.EPERM), errors.Is(err, unix.EACCES):
		return ErrPermissionDenied
	}
	panic(fmt.Sprintf("Internal inconsistency: unexpected setpriority error: %s", err))
}
