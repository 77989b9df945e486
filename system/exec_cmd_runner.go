package system

import (
	"os"
	"os/exec"
	"strings"

	"code.cloudfoundry.org/clock"

	boshlog "github.com/cloudfoundry/bosh-nice/logger"
)

type execCmdRunner struct {
	adjuster PriorityAdjuster
	clock    clock.Clock
	logger   boshlog.Logger
}

func NewExecCmdRunner(logger boshlog.Logger) CmdRunner {
	return NewExecCmdRunnerWithAdjuster(NewPriorityAdjuster(logger), clock.NewClock(), logger)
}

func NewExecCmdRunnerWithAdjuster(adjuster PriorityAdjuster, clk clock.Clock, logger boshlog.Logger) CmdRunner {
	return execCmdRunner{
		adjuster: adjuster,
		clock:    clk,
		logger:   logger,
	}
}

func (r execCmdRunner) RunComplexCommand(cmd Command) (string, string, int, error) {
	process, err := r.RunComplexCommandAsync(cmd)
	if err != nil {
		return "", "", -1, err
	}

	result := <-process.Wait()

	return result.Stdout, result.Stderr, result.ExitStatus, result.Error
}

func (r execCmdRunner) RunComplexCommandAsync(cmd Command) (Process, error) {
	process := NewExecProcess(r.buildComplexCommand(cmd), cmd.Quiet, r.clock, r.logger)

	err := process.Start()
	if err != nil {
		return nil, err
	}

	if cmd.AdjustPriority {
		r.adjustPriority(cmd, process)
	}

	return process, nil
}

// A priority that could not be applied never stops the command: it keeps
// running at the priority it inherited.
func (r execCmdRunner) adjustPriority(cmd Command, process *execProcess) {
	parentName := os.Args[0]

	target, err := r.adjuster.Adjust(process.cmd.Process, cmd.Adjustment)
	if err != nil {
		r.logger.Warn(parentName, "Failed to set priority: %s", err)
		return
	}

	r.logger.Debug(parentName, "Running '%s' (%d) at priority %s", cmd.Name, process.Pid(), target)
}

func (r execCmdRunner) RunCommand(cmdName string, args ...string) (string, string, int, error) {
	return r.RunComplexCommand(Command{Name: cmdName, Args: args})
}

func (r execCmdRunner) RunCommandQuietly(cmdName string, args ...string) (string, string, int, error) {
	return r.RunComplexCommand(Command{Name: cmdName, Args: args, Quiet: true})
}

func (r execCmdRunner) RunCommandWithInput(input, cmdName string, args ...string) (string, string, int, error) {
	cmd := Command{
		Name:  cmdName,
		Args:  args,
		Stdin: strings.NewReader(input),
	}
	return r.RunComplexCommand(cmd)
}

func (r execCmdRunner) CommandExists(cmdName string) bool {
	_, err := exec.LookPath(cmdName)
	return err == nil
}

func (r execCmdRunner) buildComplexCommand(cmd Command) *exec.Cmd {
	execCmd := newExecCmd(cmd.Name, cmd.Args...)

	if cmd.Stdin != nil {
		execCmd.Stdin = cmd.Stdin
	}

	if cmd.Stdout != nil {
		execCmd.Stdout = cmd.Stdout
	}

	if cmd.Stderr != nil {
		execCmd.Stderr = cmd.Stderr
	}

	execCmd.Dir = cmd.WorkingDir

	if cmd.UseIsolatedEnv {
		execCmd.Env = mergeEnv(nil, cmd.Env)
	} else {
		execCmd.Env = mergeEnv(os.Environ(), cmd.Env)
	}

	return execCmd
}

func newExecCmd(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}
