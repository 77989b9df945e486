package priority

import "golang.org/x/sys/unix"

const (
	minNiceness = -20
	maxNiceness = 19
)

// The raw getpriority syscall returns 20-nice so that no valid result can
// be mistaken for an error; the errno comes back separately.
func getNiceness(pid int) (int, error) {
	raw, err := unix.Getpriority(unix.PRIO_PROCESS, pid)
	if err != nil {
		return 0, err
	}
	return 20 - raw, nil
}
