package priority

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

const invalidPID = -1

// handle is either the current process, addressed through its pseudo handle,
// or a process id that is opened for the duration of each call.
type handle struct {
	id      int
	current bool
}

func currentHandle() handle {
	return handle{id: int(windows.GetCurrentProcessId()), current: true}
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

func (h handle) open(access uint32) (windows.Handle, func(), error) {
	if h.current {
		return windows.CurrentProcess(), func() {}, nil
	}
	if h.id == invalidPID {
		return 0, nil, ErrNotFound
	}

	process, err := windows.OpenProcess(access, false, uint32(h.id))
	if err != nil {
		return 0, nil, err
	}
	return process, func() { _ = windows.CloseHandle(process) }, nil
}

func (h handle) get() (level, error) {
	process, closeProcess, err := h.open(windows.PROCESS_QUERY_LIMITED_INFORMATION)
	if err != nil {
		return level{}, classifyGetError(err)
	}
	defer closeProcess()

	// Zero is the only failure value and carries no further meaning.
	class, _ := windows.GetPriorityClass(process)
	if class == 0 {
		return level{}, ErrNotFound
	}

	l := levelOf(class)
	l.rank() // panics on a class outside the documented set
	return l, nil
}

func (h handle) set(l level) error {
	process, closeProcess, err := h.open(windows.PROCESS_SET_INFORMATION)
	if err != nil {
		return classifySetError(err)
	}
	defer closeProcess()

	if err := windows.SetPriorityClass(process, l.native()); err != nil {
		return classifySetError(err)
	}
	return nil
}

// OpenProcess reports a process id that names no process as
// ERROR_INVALID_PARAMETER. A process the caller may not open for querying,
// such as a protected or another session's process, cannot be observed
// either and reads as not found.
func classifyGetError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, windows.ERROR_INVALID_PARAMETER),
		errors.Is(err, windows.ERROR_INVALID_HANDLE),
		errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return ErrNotFound
	}
	panic(fmt.Sprintf("Internal inconsistency: unexpected GetPriorityClass error: %s", err))
}

func classifySetError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, windows.ERROR_INVALID_PARAMETER),
		errors.Is(err, windows.ERROR_INVALID_HANDLE):
		return ErrNotFound
	case errors.Is(err, windows.ERROR_ACCESS_DENIED),
		errors.Is(err, windows.ERROR_PRIVILEGE_NOT_HELD):
		return ErrPermissionDenied
	}
	panic(fmt.Sprintf("Internal inconsistency: unexpected SetPriorityClass error: %s", err))
}
