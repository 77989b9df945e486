package system

import (
	"io"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

type Command struct {
	Name string
	Args []string
	Env  map[string]string

	UseIsolatedEnv bool

	WorkingDir string

	// AdjustPriority walks the child's priority Adjustment steps away from
	// normal once it has started, the way a nice increment does. Negative
	// adjustments raise the priority.
	AdjustPriority bool
	Adjustment     int

	// Don't echo stdout/stderr
	Quiet bool

	Stdin io.Reader

	// Full stdout and stderr will be captured to memory
	// and also piped to following streams
	Stdout io.Writer
	Stderr io.Writer
}

type Process interface {
	Pid() int

	// Wait may be called any number of times; each returned channel delivers
	// the same Result.
	Wait() <-chan Result
}

type Result struct {
	Stdout string
	Stderr string

	// Exit status of the command, or 128+N when it was killed by signal N.
	// -1 when it could not be determined.
	ExitStatus int
	Error      error
}

type CmdRunner interface {
	// RunComplexCommand returns error as nil:
	//  - command runs and exits with a zero exit status
	// RunComplexCommand returns error:
	//  - command runs and exits with a non-zero exit status
	//  - command does not run
	RunComplexCommand(cmd Command) (stdout, stderr string, exitStatus int, err error)

	// RunComplexCommandAsync starts the command and returns as soon as it is
	// running; the result arrives on Process.Wait().
	RunComplexCommandAsync(cmd Command) (Process, error)

	RunCommand(cmdName string, args ...string) (stdout, stderr string, exitStatus int, err error)
	RunCommandQuietly(cmdName string, args ...string) (stdout, stderr string, exitStatus int, err error)
	RunCommandWithInput(input, cmdName string, args ...string) (stdout, stderr string, exitStatus int, err error)

	CommandExists(cmdName string) bool
}
