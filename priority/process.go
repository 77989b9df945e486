package priority

import "os"

// Process refers to a process owned by the OS, not by this package. The
// process may exit at any time; every operation then reports ErrNotFound.
// Dropping a Process has no effect on the process itself.
type Process struct {
	handle handle
}

// Current returns the calling process. It stays usable for the lifetime of
// the program since it cannot outlive the process it refers to.
func Current() Process {
	return Process{currentHandle()}
}

// FromProcess borrows a process started and owned elsewhere, typically a
// child from os/exec. The Process must not be used once the owner has
// waited for or released p; operations on a released process report
// ErrNotFound.
func FromProcess(p *os.Process) Process {
	if p == nil {
		return Process{handleFromPID(invalidPID)}
	}
	return Process{handleFromPID(p.Pid)}
}

// FromPID refers to a process by id alone. Nothing pins the id, so it may
// already name an unrelated process if the original one exited.
func FromPID(pid int) Process {
	return Process{handleFromPID(pid)}
}

func (p Process) Pid() int {
	return p.handle.pid()
}

// Priority reads the current priority of the process. The only error is
// ErrNotFound, which on windows also covers a process the caller is not
// allowed to query.
func (p Process) Priority() (Priority, error) {
	l, err := p.handle.get()
	if err != nil {
		return Priority{}, err
	}
	return Priority{l}, nil
}

// SetPriority changes the priority of the process. On failure it returns an
// *UnchangedError. The rules for who may set whose priority are platform
// defined: lowering one's own priority is usually allowed, raising it or
// touching unrelated processes usually needs elevated rights.
func (p *Process) SetPriority(priority Priority) error {
	if err := p.handle.set(priority.level); err != nil {
		return &UnchangedError{Reason: err}
	}
	return nil
}
