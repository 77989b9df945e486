package system

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"code.cloudfoundry.org/clock"

	bosherr "github.com/cloudfoundry/bosh-nice/errors"
	boshlog "github.com/cloudfoundry/bosh-nice/logger"
)

const execProcessLogTag = "Cmd Runner"

type execProcess struct {
	cmd          *exec.Cmd
	cmdString    string
	stdoutWriter *bytes.Buffer
	stderrWriter *bytes.Buffer
	quiet        bool
	startedAt    time.Time

	waitOnce sync.Once
	done     chan struct{}
	result   Result

	clock  clock.Clock
	logger boshlog.Logger
}

func NewExecProcess(cmd *exec.Cmd, quiet bool, clk clock.Clock, logger boshlog.Logger) *execProcess {
	return &execProcess{
		cmd:          cmd,
		cmdString:    strings.Join(cmd.Args, " "),
		stdoutWriter: bytes.NewBufferString(""),
		stderrWriter: bytes.NewBufferString(""),
		quiet:        quiet,
		done:         make(chan struct{}),
		clock:        clk,
		logger:       logger,
	}
}

func (p *execProcess) Start() error {
	if p.cmd.Stdout == nil {
		p.cmd.Stdout = p.stdoutWriter
	}

	if p.cmd.Stderr == nil {
		p.cmd.Stderr = p.stderrWriter
	}

	if !p.quiet {
		p.logger.Debug(execProcessLogTag, "Running command '%s'", p.cmdString)
	}

	err := p.cmd.Start()
	if err != nil {
		return bosherr.WrapErrorf(err, "Running command: '%s'", p.cmdString)
	}

	p.startedAt = p.clock.Now()

	return nil
}

func (p *execProcess) Pid() int {
	if p.cmd.Process == nil {
		return -1
	}
	return p.cmd.Process.Pid
}

// Wait returns a channel that receives the result once the command exits.
// Every call gets its own channel carrying the same result.
func (p *execProcess) Wait() <-chan Result {
	p.waitOnce.Do(func() {
		go func() {
			p.result = p.wait()
			close(p.done)
		}()
	})

	waitCh := make(chan Result, 1)
	go func() {
		<-p.done
		waitCh <- p.result
		close(waitCh)
	}()

	return waitCh
}

func (p *execProcess) wait() Result {
	// err will be non-nil if command exits with non-0 status
	err := p.cmd.Wait()

	stdout := p.stdoutWriter.String()
	stderr := p.stderrWriter.String()

	exitStatus := -1
	if p.cmd.ProcessState != nil {
		exitStatus = ExitStatus(p.cmd.ProcessState)
	}

	if !p.quiet {
		p.logger.Debug(execProcessLogTag, "Stdout: %s", stdout)
		p.logger.Debug(execProcessLogTag, "Stderr: %s", stderr)
		p.logger.Debug(execProcessLogTag, "Command '%s' exited with %d after %s", p.cmdString, exitStatus, p.clock.Since(p.startedAt))
	}

	if err != nil {
		err = bosherr.WrapErrorf(err, "Running command: '%s', stdout: '%s', stderr: '%s'", p.cmdString, stdout, stderr)
	}

	return Result{
		Stdout:     stdout,
		Stderr:     stderr,
		ExitStatus: exitStatus,
		Error:      err,
	}
}

// ExitStatus follows the shell convention of reporting a process killed by
// signal N as 128+N.
func ExitStatus(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}
