package priority

import "errors"

// ErrNotFound is returned when the referenced process no longer exists.
var ErrNotFound error = NotFoundError{}

// ErrPermissionDenied is the Reason of an UnchangedError when the caller is
// not allowed to change the process's priority.
var ErrPermissionDenied = errors.New("missing permissions to set priority")

// NotFoundError means the process does not exist at the time of the call.
type NotFoundError struct{}

func (NotFoundError) Error() string {
	return "process not found"
}

// UnchangedError is returned by SetPriority when the priority was not
// applied. Reason is either ErrNotFound or ErrPermissionDenied.
type UnchangedError struct {
	Reason error
}

func (e *UnchangedError) Error() string {
	if e.NotFound() {
		return "couldn't set priority of missing process"
	}
	return e.Reason.Error()
}

func (e *UnchangedError) Unwrap() error {
	return e.Reason
}

func (e *UnchangedError) NotFound() bool {
	return errors.Is(e.Reason, ErrNotFound)
}

func (e *UnchangedError) PermissionDenied() bool {
	return errors.Is(e.Reason, ErrPermissionDenied)
}
